package payment

import (
	"context"

	"exportdoc/internal/core/id"
	"exportdoc/internal/domain"
)

// Repository defines the interface for Transaction persistence.
type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByID(ctx context.Context, id id.ID) (*Transaction, error)
	Update(ctx context.Context, t *Transaction) error
	SetDeleted(ctx context.Context, id id.ID, deleted bool) error
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Transaction], error)

	// ListByParty retrieves non-deleted transactions for one party reference,
	// sorted by date ascending.
	ListByParty(ctx context.Context, kind PartyKind, partyID id.ID) ([]*Transaction, error)

	// ListByPartyKind retrieves non-deleted transactions for one party kind
	// regardless of party reference. Government heads (gst, duty_drawback,
	// road_tp) carry no party reference and are fetched this way.
	ListByPartyKind(ctx context.Context, kind PartyKind) ([]*Transaction, error)
}
