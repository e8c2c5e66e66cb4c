package bill

import (
	"context"
	"fmt"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/tx"
	"exportdoc/internal/domain"
)

// Service provides business logic for vendor bills.
type Service struct {
	repo      Repository
	txManager tx.Manager
	audit     domain.AuditLogger
}

// NewService creates a new bill service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// SetAuditLogger enables audit logging for bill saves.
func (s *Service) SetAuditLogger(audit domain.AuditLogger) {
	s.audit = audit
}

func (s *Service) logAudit(ctx context.Context, action domain.AuditAction, b *Bill) {
	if s.audit == nil {
		return
	}
	_ = s.audit.LogChange(ctx, "bill", b.ID, action, map[string]any{
		"kind":    string(b.Kind),
		"number":  b.Number,
		"version": b.Version,
	})
}

// Create recalculates totals, validates and saves a new bill.
func (s *Service) Create(ctx context.Context, b *Bill) error {
	b.RecalculateTotals()

	if err := b.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, b); err != nil {
			return fmt.Errorf("create %s bill: %w", b.Kind, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditActionCreate, b)
	return nil
}

// Update recalculates totals, validates and saves an existing bill.
func (s *Service) Update(ctx context.Context, b *Bill) error {
	b.RecalculateTotals()

	if err := b.Validate(ctx); err != nil {
		return err
	}

	b.Touch()

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, b); err != nil {
			return fmt.Errorf("update %s bill: %w", b.Kind, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditActionUpdate, b)
	return nil
}

// GetByID retrieves one bill with items.
func (s *Service) GetByID(ctx context.Context, billID id.ID) (*Bill, error) {
	b, err := s.repo.GetByID(ctx, billID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("bill", billID.String())
		}
		return nil, err
	}
	return b, nil
}

// Delete soft-deletes a bill.
func (s *Service) Delete(ctx context.Context, billID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeleted(ctx, billID, true)
	})
	if err != nil {
		return err
	}

	if s.audit != nil {
		_ = s.audit.LogChange(ctx, "bill", billID, domain.AuditActionDelete, nil)
	}
	return nil
}

// List retrieves bills of one kind with filtering and pagination.
func (s *Service) List(ctx context.Context, kind Kind, filter domain.ListFilter) (domain.ListResult[*Bill], error) {
	if !isValidKind(kind) {
		return domain.ListResult[*Bill]{}, apperror.NewValidation("invalid bill kind").
			WithDetail("value", string(kind))
	}
	return s.repo.List(ctx, kind, filter)
}

// GetAllByKind retrieves every non-deleted bill of one kind.
func (s *Service) GetAllByKind(ctx context.Context, kind Kind) ([]*Bill, error) {
	return s.repo.GetAllByKind(ctx, kind)
}
