package product

import (
	"context"

	"exportdoc/internal/core/id"
	"exportdoc/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// GetAll retrieves the full non-deleted product table for aggregation snapshots.
	GetAll(ctx context.Context) ([]*Product, error)

	// ListBySize retrieves non-deleted products of one size.
	ListBySize(ctx context.Context, sizeID id.ID) ([]*Product, error)
}
