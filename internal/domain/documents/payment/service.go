package payment

import (
	"context"
	"fmt"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/tx"
	"exportdoc/internal/domain"
)

// Service provides business logic for payment transactions.
type Service struct {
	repo      Repository
	txManager tx.Manager
	audit     domain.AuditLogger
}

// NewService creates a new payment service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// SetAuditLogger enables audit logging for transaction saves.
func (s *Service) SetAuditLogger(audit domain.AuditLogger) {
	s.audit = audit
}

func (s *Service) logAudit(ctx context.Context, action domain.AuditAction, t *Transaction) {
	if s.audit == nil {
		return
	}
	_ = s.audit.LogChange(ctx, "transaction", t.ID, action, map[string]any{
		"number":  t.Number,
		"type":    string(t.Type),
		"version": t.Version,
	})
}

// Create validates and saves a new transaction.
func (s *Service) Create(ctx context.Context, t *Transaction) error {
	if t.Currency == "" {
		t.Currency = "INR"
	}

	if err := t.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, t); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditActionCreate, t)
	return nil
}

// Update validates and saves an existing transaction.
func (s *Service) Update(ctx context.Context, t *Transaction) error {
	if err := t.Validate(ctx); err != nil {
		return err
	}

	t.Touch()

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, t); err != nil {
			return fmt.Errorf("update transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditActionUpdate, t)
	return nil
}

// GetByID retrieves one transaction.
func (s *Service) GetByID(ctx context.Context, txID id.ID) (*Transaction, error) {
	t, err := s.repo.GetByID(ctx, txID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("transaction", txID.String())
		}
		return nil, err
	}
	return t, nil
}

// Delete soft-deletes a transaction.
func (s *Service) Delete(ctx context.Context, txID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeleted(ctx, txID, true)
	})
	if err != nil {
		return err
	}

	if s.audit != nil {
		_ = s.audit.LogChange(ctx, "transaction", txID, domain.AuditActionDelete, nil)
	}
	return nil
}

// List retrieves transactions with filtering and pagination.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Transaction], error) {
	return s.repo.List(ctx, filter)
}

// ListByParty retrieves transactions for one party reference.
func (s *Service) ListByParty(ctx context.Context, kind PartyKind, partyID id.ID) ([]*Transaction, error) {
	if !isValidPartyKind(kind) {
		return nil, apperror.NewValidation("invalid party type").
			WithDetail("value", string(kind))
	}
	return s.repo.ListByParty(ctx, kind, partyID)
}

// ListByPartyKind retrieves all transactions under one party kind.
func (s *Service) ListByPartyKind(ctx context.Context, kind PartyKind) ([]*Transaction, error) {
	if !isValidPartyKind(kind) {
		return nil, apperror.NewValidation("invalid party type").
			WithDetail("value", string(kind))
	}
	return s.repo.ListByPartyKind(ctx, kind)
}
