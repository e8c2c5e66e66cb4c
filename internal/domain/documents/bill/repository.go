package bill

import (
	"context"

	"exportdoc/internal/core/id"
	"exportdoc/internal/domain"
)

// Repository defines the interface for Bill persistence.
type Repository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id id.ID) (*Bill, error)
	Update(ctx context.Context, b *Bill) error
	SetDeleted(ctx context.Context, id id.ID, deleted bool) error
	List(ctx context.Context, kind Kind, filter domain.ListFilter) (domain.ListResult[*Bill], error)

	// GetAllByKind retrieves every non-deleted bill of one kind with items,
	// for ledgers and the GST summary.
	GetAllByKind(ctx context.Context, kind Kind) ([]*Bill, error)

	// ListByParty retrieves non-deleted bills of one kind for one party.
	ListByParty(ctx context.Context, kind Kind, partyID id.ID) ([]*Bill, error)
}
