package product

import (
	"context"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/tx"
	"exportdoc/internal/domain"
	"exportdoc/internal/domain/catalogs/size"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo     Repository
	sizeRepo size.Repository
}

// NewService creates a new Product service.
func NewService(repo Repository, sizeRepo size.Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		sizeRepo:       sizeRepo,
	}

	base.Hooks().OnBeforeCreate(svc.checkSizeExists)
	base.Hooks().OnBeforeUpdate(svc.checkSizeExists)

	return svc
}

// GetAll returns the full non-deleted product table.
func (s *Service) GetAll(ctx context.Context) ([]*Product, error) {
	return s.repo.GetAll(ctx)
}

// ListBySize returns non-deleted products of one size.
func (s *Service) ListBySize(ctx context.Context, sizeID id.ID) ([]*Product, error) {
	return s.repo.ListBySize(ctx, sizeID)
}

// checkSizeExists rejects products referencing a missing size. Aggregation
// tolerates dangling references, but new data entry should not create them.
func (s *Service) checkSizeExists(ctx context.Context, p *Product) error {
	exists, err := s.sizeRepo.Exists(ctx, p.SizeID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewValidation("referenced size does not exist").
			WithDetail("field", "sizeId").
			WithDetail("value", p.SizeID.String())
	}
	return nil
}
