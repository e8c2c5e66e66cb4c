package exportdoc

import (
	"context"

	"exportdoc/internal/core/id"
	"exportdoc/internal/domain"
)

// Repository defines the interface for ExportDocument persistence.
// Implementations must load and save the table parts (manufacturer
// details, containers, product/sample lines) together with the header.
type Repository interface {
	Create(ctx context.Context, doc *ExportDocument) error
	GetByID(ctx context.Context, id id.ID) (*ExportDocument, error)
	Update(ctx context.Context, doc *ExportDocument) error
	SetDeleted(ctx context.Context, id id.ID, deleted bool) error
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*ExportDocument], error)

	// GetAll retrieves every non-deleted export document with table parts,
	// for ledgers and aggregation snapshots.
	GetAll(ctx context.Context) ([]*ExportDocument, error)

	// ListInvoiceNumbers returns the invoice numbers of all non-deleted
	// documents (input to sequential numbering).
	ListInvoiceNumbers(ctx context.Context) ([]string, error)
}
