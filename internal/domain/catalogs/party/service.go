package party

import (
	"context"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/tx"
	"exportdoc/internal/domain"
)

// Service provides business logic for the Party catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Party]
	repo Repository
}

// NewService creates a new Party service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Party]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "party",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// ListByType returns non-deleted parties of one type.
func (s *Service) ListByType(ctx context.Context, partyType Type) ([]*Party, error) {
	if !isValidType(partyType) {
		return nil, apperror.NewValidation("invalid party type").
			WithDetail("value", string(partyType))
	}
	return s.repo.ListByType(ctx, partyType)
}

// GetAll returns the full non-deleted party table.
func (s *Service) GetAll(ctx context.Context) ([]*Party, error) {
	return s.repo.GetAll(ctx)
}

// FindByGSTIN returns the party registered under a GSTIN.
func (s *Service) FindByGSTIN(ctx context.Context, gstin string) (*Party, error) {
	return s.repo.FindByGSTIN(ctx, gstin)
}

// prepareForCreate handles uniqueness checks before create.
func (s *Service) prepareForCreate(ctx context.Context, p *Party) error {
	return s.checkGSTINUnique(ctx, p)
}

// prepareForUpdate handles uniqueness checks before update.
func (s *Service) prepareForUpdate(ctx context.Context, p *Party) error {
	return s.checkGSTINUnique(ctx, p)
}

// checkGSTINUnique checks if GSTIN is already used by another party.
func (s *Service) checkGSTINUnique(ctx context.Context, p *Party) error {
	if p.GSTIN == nil || *p.GSTIN == "" {
		return nil
	}
	existing, err := s.repo.FindByGSTIN(ctx, *p.GSTIN)
	if err != nil {
		// Not found is OK; other errors must be propagated (DB errors, timeouts, etc.).
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != p.ID {
		return apperror.NewConflict("party with this GSTIN already exists").
			WithDetail("gstin", *p.GSTIN)
	}
	return nil
}
