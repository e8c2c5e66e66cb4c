package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain"
	"exportdoc/internal/domain/documents/trade"
	"exportdoc/internal/infrastructure/storage/postgres"
)

const (
	performaInvoiceTable     = "doc_performa_invoices"
	performaInvoiceItemTable = "doc_performa_invoice_items"
	purchaseOrderTable       = "doc_purchase_orders"
	purchaseOrderItemTable   = "doc_purchase_order_items"
)

type tradeItemRow struct {
	LineID      id.ID       `db:"line_id"`
	DocumentID  id.ID       `db:"document_id"`
	Position    int         `db:"position"`
	ProductID   *id.ID      `db:"product_id"`
	SizeID      *id.ID      `db:"size_id"`
	Description string      `db:"description"`
	Boxes       float64     `db:"boxes"`
	Rate        types.Money `db:"rate"`
}

func (row tradeItemRow) toModel() trade.Item {
	return trade.Item{
		LineID:      row.LineID,
		ProductID:   row.ProductID,
		SizeID:      row.SizeID,
		Description: row.Description,
		Boxes:       row.Boxes,
		Rate:        row.Rate,
	}
}

// tradeItems handles the shared item table shape of both trade documents.
type tradeItems struct {
	builder   squirrel.StatementBuilderType
	txManager *postgres.TxManager
	tableName string
}

func (ti tradeItems) insert(ctx context.Context, docID id.ID, items []trade.Item) error {
	querier := ti.txManager.GetQuerier(ctx)

	for i, item := range items {
		q := ti.builder.Insert(ti.tableName).SetMap(map[string]any{
			"line_id":     item.LineID,
			"document_id": docID,
			"position":    i + 1,
			"product_id":  item.ProductID,
			"size_id":     item.SizeID,
			"description": item.Description,
			"boxes":       item.Boxes,
			"rate":        item.Rate,
		})
		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build %s insert: %w", ti.tableName, err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert %s: %w", ti.tableName, err)
		}
	}
	return nil
}

func (ti tradeItems) deleteFor(ctx context.Context, docID id.ID) error {
	q := ti.builder.Delete(ti.tableName).Where(squirrel.Eq{"document_id": docID})
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", ti.tableName, err)
	}
	if _, err := ti.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete %s: %w", ti.tableName, err)
	}
	return nil
}

func (ti tradeItems) load(ctx context.Context, docIDs []id.ID) (map[id.ID][]trade.Item, error) {
	if len(docIDs) == 0 {
		return nil, nil
	}

	q := ti.builder.
		Select("line_id", "document_id", "position", "product_id", "size_id", "description", "boxes", "rate").
		From(ti.tableName).
		Where(squirrel.Eq{"document_id": docIDs}).
		OrderBy("document_id", "position")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", ti.tableName, err)
	}

	var rows []tradeItemRow
	if err := pgxscan.Select(ctx, ti.txManager.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("load %s: %w", ti.tableName, err)
	}

	grouped := make(map[id.ID][]trade.Item, len(docIDs))
	for _, row := range rows {
		grouped[row.DocumentID] = append(grouped[row.DocumentID], row.toModel())
	}
	return grouped, nil
}

// PerformaInvoiceRepo implements trade.PerformaInvoiceRepository.
type PerformaInvoiceRepo struct {
	*BaseDocumentRepo[*trade.PerformaInvoice]
	items tradeItems
}

// NewPerformaInvoiceRepo creates a new performa invoice repository.
func NewPerformaInvoiceRepo(txManager *postgres.TxManager) *PerformaInvoiceRepo {
	base := NewBaseDocumentRepo(
		txManager,
		performaInvoiceTable,
		postgres.ExtractDBColumns[trade.PerformaInvoice](),
		func() *trade.PerformaInvoice { return &trade.PerformaInvoice{} },
	)
	return &PerformaInvoiceRepo{
		BaseDocumentRepo: base,
		items: tradeItems{
			builder:   base.Builder(),
			txManager: txManager,
			tableName: performaInvoiceItemTable,
		},
	}
}

// Create inserts the performa invoice and its items.
func (r *PerformaInvoiceRepo) Create(ctx context.Context, pi *trade.PerformaInvoice) error {
	if err := r.CreateRow(ctx, pi, nil); err != nil {
		return err
	}
	return r.items.insert(ctx, pi.ID, pi.Items)
}

// Update rewrites the performa invoice and replaces its items.
func (r *PerformaInvoiceRepo) Update(ctx context.Context, pi *trade.PerformaInvoice) error {
	if err := r.UpdateRow(ctx, pi, nil); err != nil {
		return err
	}
	if err := r.items.deleteFor(ctx, pi.ID); err != nil {
		return err
	}
	return r.items.insert(ctx, pi.ID, pi.Items)
}

// GetByID retrieves a performa invoice with items.
func (r *PerformaInvoiceRepo) GetByID(ctx context.Context, piID id.ID) (*trade.PerformaInvoice, error) {
	pi, err := r.GetRow(ctx, piID)
	if err != nil {
		return nil, err
	}
	items, err := r.items.load(ctx, []id.ID{pi.ID})
	if err != nil {
		return nil, err
	}
	pi.Items = items[pi.ID]
	return pi, nil
}

// List retrieves performa invoices with filtering and pagination.
func (r *PerformaInvoiceRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*trade.PerformaInvoice], error) {
	result, err := r.ListRows(ctx, filter)
	if err != nil {
		return result, err
	}
	if err := r.attachItems(ctx, result.Items); err != nil {
		return domain.ListResult[*trade.PerformaInvoice]{}, err
	}
	return result, nil
}

// GetAll retrieves every non-deleted performa invoice with items.
func (r *PerformaInvoiceRepo) GetAll(ctx context.Context) ([]*trade.PerformaInvoice, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("date DESC")

	invoices, err := r.FindAllRows(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListByClient retrieves non-deleted performa invoices for one client.
func (r *PerformaInvoiceRepo) ListByClient(ctx context.Context, clientID id.ID) ([]*trade.PerformaInvoice, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"client_id": clientID}).
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("date DESC")

	invoices, err := r.FindAllRows(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *PerformaInvoiceRepo) attachItems(ctx context.Context, invoices []*trade.PerformaInvoice) error {
	if len(invoices) == 0 {
		return nil
	}
	ids := make([]id.ID, 0, len(invoices))
	for _, pi := range invoices {
		ids = append(ids, pi.ID)
	}
	items, err := r.items.load(ctx, ids)
	if err != nil {
		return err
	}
	for _, pi := range invoices {
		pi.Items = items[pi.ID]
	}
	return nil
}

// PurchaseOrderRepo implements trade.PurchaseOrderRepository.
type PurchaseOrderRepo struct {
	*BaseDocumentRepo[*trade.PurchaseOrder]
	items tradeItems
}

// NewPurchaseOrderRepo creates a new purchase order repository.
func NewPurchaseOrderRepo(txManager *postgres.TxManager) *PurchaseOrderRepo {
	base := NewBaseDocumentRepo(
		txManager,
		purchaseOrderTable,
		postgres.ExtractDBColumns[trade.PurchaseOrder](),
		func() *trade.PurchaseOrder { return &trade.PurchaseOrder{} },
	)
	return &PurchaseOrderRepo{
		BaseDocumentRepo: base,
		items: tradeItems{
			builder:   base.Builder(),
			txManager: txManager,
			tableName: purchaseOrderItemTable,
		},
	}
}

// Create inserts the purchase order and its items.
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *trade.PurchaseOrder) error {
	if err := r.CreateRow(ctx, po, nil); err != nil {
		return err
	}
	return r.items.insert(ctx, po.ID, po.Items)
}

// Update rewrites the purchase order and replaces its items.
func (r *PurchaseOrderRepo) Update(ctx context.Context, po *trade.PurchaseOrder) error {
	if err := r.UpdateRow(ctx, po, nil); err != nil {
		return err
	}
	if err := r.items.deleteFor(ctx, po.ID); err != nil {
		return err
	}
	return r.items.insert(ctx, po.ID, po.Items)
}

// GetByID retrieves a purchase order with items.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, poID id.ID) (*trade.PurchaseOrder, error) {
	po, err := r.GetRow(ctx, poID)
	if err != nil {
		return nil, err
	}
	items, err := r.items.load(ctx, []id.ID{po.ID})
	if err != nil {
		return nil, err
	}
	po.Items = items[po.ID]
	return po, nil
}

// List retrieves purchase orders with filtering and pagination.
func (r *PurchaseOrderRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*trade.PurchaseOrder], error) {
	result, err := r.ListRows(ctx, filter)
	if err != nil {
		return result, err
	}
	if err := r.attachItems(ctx, result.Items); err != nil {
		return domain.ListResult[*trade.PurchaseOrder]{}, err
	}
	return result, nil
}

// GetAll retrieves every non-deleted purchase order with items.
func (r *PurchaseOrderRepo) GetAll(ctx context.Context) ([]*trade.PurchaseOrder, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("date DESC")

	orders, err := r.FindAllRows(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PurchaseOrderRepo) attachItems(ctx context.Context, orders []*trade.PurchaseOrder) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]id.ID, 0, len(orders))
	for _, po := range orders {
		ids = append(ids, po.ID)
	}
	items, err := r.items.load(ctx, ids)
	if err != nil {
		return err
	}
	for _, po := range orders {
		po.Items = items[po.ID]
	}
	return nil
}
