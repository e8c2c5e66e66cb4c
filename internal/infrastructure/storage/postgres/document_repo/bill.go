package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain"
	"exportdoc/internal/domain/documents/bill"
	"exportdoc/internal/infrastructure/storage/postgres"
)

const (
	billTable     = "doc_bills"
	billItemTable = "doc_bill_items"
)

type billItemRow struct {
	BillID             id.ID       `db:"bill_id"`
	Position           int         `db:"position"`
	Description        string      `db:"description"`
	Quantity           float64     `db:"quantity"`
	Rate               types.Money `db:"rate"`
	DiscountPercentage *float64    `db:"discount_percentage"`
	GSTRate            *float64    `db:"gst_rate"`
}

// BillRepo implements bill.Repository. All three bill kinds share one
// table discriminated by the kind column.
type BillRepo struct {
	*BaseDocumentRepo[*bill.Bill]
}

// NewBillRepo creates a new bill repository.
func NewBillRepo(txManager *postgres.TxManager) *BillRepo {
	return &BillRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			billTable,
			postgres.ExtractDBColumns[bill.Bill](),
			func() *bill.Bill { return &bill.Bill{} },
		),
	}
}

// Create inserts the bill header and its items.
func (r *BillRepo) Create(ctx context.Context, b *bill.Bill) error {
	if err := r.CreateRow(ctx, b, nil); err != nil {
		return err
	}
	return r.insertItems(ctx, b)
}

// Update rewrites the header and replaces the items.
func (r *BillRepo) Update(ctx context.Context, b *bill.Bill) error {
	if err := r.UpdateRow(ctx, b, nil); err != nil {
		return err
	}
	if err := r.deleteItems(ctx, b.ID); err != nil {
		return err
	}
	return r.insertItems(ctx, b)
}

// GetByID retrieves a bill with items.
func (r *BillRepo) GetByID(ctx context.Context, billID id.ID) (*bill.Bill, error) {
	b, err := r.GetRow(ctx, billID)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, []*bill.Bill{b}); err != nil {
		return nil, err
	}
	return b, nil
}

// List retrieves bills of one kind with filtering and pagination.
func (r *BillRepo) List(ctx context.Context, kind bill.Kind, filter domain.ListFilter) (domain.ListResult[*bill.Bill], error) {
	result, err := r.ListRows(ctx, filter, squirrel.Eq{"kind": kind})
	if err != nil {
		return result, err
	}
	if err := r.loadItems(ctx, result.Items); err != nil {
		return domain.ListResult[*bill.Bill]{}, err
	}
	return result, nil
}

// GetAllByKind retrieves every non-deleted bill of one kind with items.
func (r *BillRepo) GetAllByKind(ctx context.Context, kind bill.Kind) ([]*bill.Bill, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"kind": kind}).
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("date DESC")

	bills, err := r.FindAllRows(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// ListByParty retrieves non-deleted bills of one kind for one party.
func (r *BillRepo) ListByParty(ctx context.Context, kind bill.Kind, partyID id.ID) ([]*bill.Bill, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"kind": kind}).
		Where(squirrel.Eq{"party_id": partyID}).
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("date DESC")

	bills, err := r.FindAllRows(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *BillRepo) insertItems(ctx context.Context, b *bill.Bill) error {
	querier := r.Querier(ctx)

	for i, item := range b.Items {
		q := r.Builder().Insert(billItemTable).SetMap(map[string]any{
			"bill_id":             b.ID,
			"position":            i + 1,
			"description":         item.Description,
			"quantity":            item.Quantity,
			"rate":                item.Rate,
			"discount_percentage": item.DiscountPercentage,
			"gst_rate":            item.GSTRate,
		})
		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build bill item insert: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert bill item: %w", err)
		}
	}
	return nil
}

func (r *BillRepo) deleteItems(ctx context.Context, billID id.ID) error {
	q := r.Builder().Delete(billItemTable).Where(squirrel.Eq{"bill_id": billID})
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build bill items delete: %w", err)
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete bill items: %w", err)
	}
	return nil
}

func (r *BillRepo) loadItems(ctx context.Context, bills []*bill.Bill) error {
	if len(bills) == 0 {
		return nil
	}

	billIDs := make([]id.ID, 0, len(bills))
	byID := make(map[id.ID]*bill.Bill, len(bills))
	for _, b := range bills {
		billIDs = append(billIDs, b.ID)
		byID[b.ID] = b
	}

	q := r.Builder().
		Select("bill_id", "position", "description", "quantity", "rate", "discount_percentage", "gst_rate").
		From(billItemTable).
		Where(squirrel.Eq{"bill_id": billIDs}).
		OrderBy("bill_id", "position")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build bill items query: %w", err)
	}

	var rows []billItemRow
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return fmt.Errorf("load bill items: %w", err)
	}

	for _, row := range rows {
		b := byID[row.BillID]
		b.Items = append(b.Items, bill.Item{
			Description:        row.Description,
			Quantity:           row.Quantity,
			Rate:               row.Rate,
			DiscountPercentage: row.DiscountPercentage,
			GSTRate:            row.GSTRate,
		})
	}
	return nil
}
