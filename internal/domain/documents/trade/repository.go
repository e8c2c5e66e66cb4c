package trade

import (
	"context"

	"exportdoc/internal/core/id"
	"exportdoc/internal/domain"
)

// PerformaInvoiceRepository defines the interface for PerformaInvoice
// persistence.
type PerformaInvoiceRepository interface {
	Create(ctx context.Context, pi *PerformaInvoice) error
	GetByID(ctx context.Context, id id.ID) (*PerformaInvoice, error)
	Update(ctx context.Context, pi *PerformaInvoice) error
	SetDeleted(ctx context.Context, id id.ID, deleted bool) error
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*PerformaInvoice], error)

	// GetAll retrieves every non-deleted performa invoice, for client
	// linkage resolution.
	GetAll(ctx context.Context) ([]*PerformaInvoice, error)

	// ListByClient retrieves non-deleted performa invoices for one client.
	ListByClient(ctx context.Context, clientID id.ID) ([]*PerformaInvoice, error)
}

// PurchaseOrderRepository defines the interface for PurchaseOrder
// persistence.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *PurchaseOrder) error
	GetByID(ctx context.Context, id id.ID) (*PurchaseOrder, error)
	Update(ctx context.Context, po *PurchaseOrder) error
	SetDeleted(ctx context.Context, id id.ID, deleted bool) error
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*PurchaseOrder], error)

	// GetAll retrieves every non-deleted purchase order, for client
	// linkage resolution.
	GetAll(ctx context.Context) ([]*PurchaseOrder, error)
}
