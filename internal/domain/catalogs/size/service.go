package size

import (
	"context"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/tx"
	"exportdoc/internal/domain"
)

// Service provides business logic for the Size catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Size]
	repo Repository
}

// NewService creates a new Size service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Size]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "size",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkCodeUnique)

	return svc
}

// GetAll returns the full non-deleted size table.
func (s *Service) GetAll(ctx context.Context) ([]*Size, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) checkCodeUnique(ctx context.Context, sz *Size) error {
	if sz.Code == "" {
		return nil
	}
	exists, err := s.repo.ExistsByCode(ctx, sz.Code)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("size", "code", sz.Code)
	}
	return nil
}
