package party

import (
	"context"

	"exportdoc/internal/domain"
)

// Repository defines the interface for Party persistence.
type Repository interface {
	domain.CatalogRepository[*Party]

	// ListByType retrieves non-deleted parties of one type.
	ListByType(ctx context.Context, partyType Type) ([]*Party, error)

	// GetAll retrieves the full non-deleted party table for aggregation snapshots.
	GetAll(ctx context.Context) ([]*Party, error)

	// FindByGSTIN retrieves a party by GSTIN (unique when present).
	FindByGSTIN(ctx context.Context, gstin string) (*Party, error)
}
