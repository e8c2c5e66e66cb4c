package size

import (
	"context"

	"exportdoc/internal/domain"
)

// Repository defines the interface for Size persistence.
type Repository interface {
	domain.CatalogRepository[*Size]

	// GetAll retrieves the full non-deleted size table for aggregation snapshots.
	GetAll(ctx context.Context) ([]*Size, error)
}
