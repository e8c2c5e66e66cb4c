package exportdoc

import (
	"context"
	"fmt"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/tx"
	"exportdoc/internal/domain"
	"exportdoc/pkg/numerator"
)

// InvoicePrefix is the fixed export invoice number prefix.
const InvoicePrefix = "EXP/HEM"

// Service provides business logic for export documents.
type Service struct {
	repo      Repository
	txManager tx.Manager
	numCfg    numerator.Config
	audit     domain.AuditLogger
}

// NewService creates a new export document service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		numCfg:    numerator.DefaultConfig(InvoicePrefix),
	}
}

// SetAuditLogger enables audit logging for document saves.
func (s *Service) SetAuditLogger(audit domain.AuditLogger) {
	s.audit = audit
}

func (s *Service) logAudit(ctx context.Context, action domain.AuditAction, doc *ExportDocument) {
	if s.audit == nil {
		return
	}
	_ = s.audit.LogChange(ctx, "export_document", doc.ID, action, map[string]any{
		"number":  doc.Number,
		"version": doc.Version,
	})
}

// Create validates, numbers and saves a new export document.
// The invoice number is assigned from the document date's fiscal year
// unless the caller supplied one explicitly.
func (s *Service) Create(ctx context.Context, doc *ExportDocument) error {
	doc.Normalize()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		number, err := s.NextInvoiceNumber(ctx, numerator.FiscalYear(doc.Date))
		if err != nil {
			return fmt.Errorf("assign invoice number: %w", err)
		}
		doc.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create export document: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditActionCreate, doc)
	return nil
}

// Update validates and saves an existing export document.
func (s *Service) Update(ctx context.Context, doc *ExportDocument) error {
	doc.Normalize()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		return apperror.NewValidation("invoice number is required").
			WithDetail("field", "number")
	}

	doc.Touch()

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update export document: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditActionUpdate, doc)
	return nil
}

// GetByID retrieves one export document with all table parts.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*ExportDocument, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("export document", docID.String())
		}
		return nil, err
	}
	return doc, nil
}

// Delete soft-deletes an export document. The record stays behind so the
// numbering sequence and historical ledgers remain explainable.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeleted(ctx, docID, true)
	})
	if err != nil {
		return err
	}

	if s.audit != nil {
		_ = s.audit.LogChange(ctx, "export_document", docID, domain.AuditActionDelete, nil)
	}
	return nil
}

// List retrieves export documents with filtering and pagination.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*ExportDocument], error) {
	return s.repo.List(ctx, filter)
}

// GetAll retrieves every non-deleted export document with table parts.
func (s *Service) GetAll(ctx context.Context) ([]*ExportDocument, error) {
	return s.repo.GetAll(ctx)
}

// NextInvoiceNumber derives the next invoice number for a fiscal year by
// scanning the non-deleted documents. Gap-tolerant; single writer assumed.
func (s *Service) NextInvoiceNumber(ctx context.Context, fiscalYear string) (string, error) {
	existing, err := s.repo.ListInvoiceNumbers(ctx)
	if err != nil {
		return "", fmt.Errorf("list invoice numbers: %w", err)
	}
	return numerator.NextNumber(s.numCfg, existing, fiscalYear), nil
}
