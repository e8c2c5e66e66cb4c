package trade

import (
	"context"
	"fmt"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/tx"
	"exportdoc/internal/domain"
)

// PerformaInvoiceService provides business logic for performa invoices.
type PerformaInvoiceService struct {
	repo      PerformaInvoiceRepository
	txManager tx.Manager
	audit     domain.AuditLogger
}

// NewPerformaInvoiceService creates a new performa invoice service.
func NewPerformaInvoiceService(repo PerformaInvoiceRepository, txManager tx.Manager) *PerformaInvoiceService {
	return &PerformaInvoiceService{repo: repo, txManager: txManager}
}

// SetAuditLogger enables audit logging for performa invoice saves.
func (s *PerformaInvoiceService) SetAuditLogger(audit domain.AuditLogger) {
	s.audit = audit
}

func (s *PerformaInvoiceService) logAudit(ctx context.Context, action domain.AuditAction, pi *PerformaInvoice) {
	if s.audit == nil {
		return
	}
	_ = s.audit.LogChange(ctx, "performa_invoice", pi.ID, action, map[string]any{
		"number":  pi.Number,
		"version": pi.Version,
	})
}

// Create normalizes, validates and saves a new performa invoice.
func (s *PerformaInvoiceService) Create(ctx context.Context, pi *PerformaInvoice) error {
	pi.Normalize()

	if err := pi.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, pi); err != nil {
			return fmt.Errorf("create performa invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditActionCreate, pi)
	return nil
}

// Update normalizes, validates and saves an existing performa invoice.
func (s *PerformaInvoiceService) Update(ctx context.Context, pi *PerformaInvoice) error {
	pi.Normalize()

	if err := pi.Validate(ctx); err != nil {
		return err
	}

	pi.Touch()

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, pi); err != nil {
			return fmt.Errorf("update performa invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditActionUpdate, pi)
	return nil
}

// GetByID retrieves one performa invoice with items.
func (s *PerformaInvoiceService) GetByID(ctx context.Context, piID id.ID) (*PerformaInvoice, error) {
	pi, err := s.repo.GetByID(ctx, piID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("performa invoice", piID.String())
		}
		return nil, err
	}
	return pi, nil
}

// Delete soft-deletes a performa invoice.
func (s *PerformaInvoiceService) Delete(ctx context.Context, piID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeleted(ctx, piID, true)
	})
	if err != nil {
		return err
	}

	if s.audit != nil {
		_ = s.audit.LogChange(ctx, "performa_invoice", piID, domain.AuditActionDelete, nil)
	}
	return nil
}

// List retrieves performa invoices with filtering and pagination.
func (s *PerformaInvoiceService) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*PerformaInvoice], error) {
	return s.repo.List(ctx, filter)
}

// ListByClient retrieves performa invoices for one client.
func (s *PerformaInvoiceService) ListByClient(ctx context.Context, clientID id.ID) ([]*PerformaInvoice, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// PurchaseOrderService provides business logic for purchase orders.
type PurchaseOrderService struct {
	repo      PurchaseOrderRepository
	piRepo    PerformaInvoiceRepository
	txManager tx.Manager
	audit     domain.AuditLogger
}

// NewPurchaseOrderService creates a new purchase order service.
func NewPurchaseOrderService(repo PurchaseOrderRepository, piRepo PerformaInvoiceRepository, txManager tx.Manager) *PurchaseOrderService {
	return &PurchaseOrderService{repo: repo, piRepo: piRepo, txManager: txManager}
}

// SetAuditLogger enables audit logging for purchase order saves.
func (s *PurchaseOrderService) SetAuditLogger(audit domain.AuditLogger) {
	s.audit = audit
}

func (s *PurchaseOrderService) logAudit(ctx context.Context, action domain.AuditAction, po *PurchaseOrder) {
	if s.audit == nil {
		return
	}
	_ = s.audit.LogChange(ctx, "purchase_order", po.ID, action, map[string]any{
		"number":  po.Number,
		"version": po.Version,
	})
}

// Create normalizes, validates and saves a new purchase order. The performa
// invoice reference must resolve.
func (s *PurchaseOrderService) Create(ctx context.Context, po *PurchaseOrder) error {
	po.Normalize()

	if err := po.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkPerformaInvoice(ctx, po.PerformaInvoiceID); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, po); err != nil {
			return fmt.Errorf("create purchase order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditActionCreate, po)
	return nil
}

// Update normalizes, validates and saves an existing purchase order.
func (s *PurchaseOrderService) Update(ctx context.Context, po *PurchaseOrder) error {
	po.Normalize()

	if err := po.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkPerformaInvoice(ctx, po.PerformaInvoiceID); err != nil {
		return err
	}

	po.Touch()

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, po); err != nil {
			return fmt.Errorf("update purchase order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditActionUpdate, po)
	return nil
}

// GetByID retrieves one purchase order with items.
func (s *PurchaseOrderService) GetByID(ctx context.Context, poID id.ID) (*PurchaseOrder, error) {
	po, err := s.repo.GetByID(ctx, poID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("purchase order", poID.String())
		}
		return nil, err
	}
	return po, nil
}

// Delete soft-deletes a purchase order.
func (s *PurchaseOrderService) Delete(ctx context.Context, poID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeleted(ctx, poID, true)
	})
	if err != nil {
		return err
	}

	if s.audit != nil {
		_ = s.audit.LogChange(ctx, "purchase_order", poID, domain.AuditActionDelete, nil)
	}
	return nil
}

// List retrieves purchase orders with filtering and pagination.
func (s *PurchaseOrderService) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*PurchaseOrder], error) {
	return s.repo.List(ctx, filter)
}

func (s *PurchaseOrderService) checkPerformaInvoice(ctx context.Context, piID id.ID) error {
	if _, err := s.piRepo.GetByID(ctx, piID); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewValidation("performa invoice does not exist").
				WithDetail("performaInvoiceId", piID.String())
		}
		return err
	}
	return nil
}
