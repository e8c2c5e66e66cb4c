package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"exportdoc/internal/core/id"
	"exportdoc/internal/domain"
	"exportdoc/internal/domain/documents/payment"
	"exportdoc/internal/infrastructure/storage/postgres"
)

const (
	transactionTable        = "doc_transactions"
	transactionInvoiceTable = "doc_transaction_invoices"
)

type invoiceRefRow struct {
	TransactionID id.ID  `db:"transaction_id"`
	Position      int    `db:"position"`
	RefType       string `db:"ref_type"`
	RefID         id.ID  `db:"ref_id"`
}

// TransactionRepo implements payment.Repository.
type TransactionRepo struct {
	*BaseDocumentRepo[*payment.Transaction]
}

// NewTransactionRepo creates a new transaction repository.
func NewTransactionRepo(txManager *postgres.TxManager) *TransactionRepo {
	return &TransactionRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			transactionTable,
			postgres.ExtractDBColumns[payment.Transaction](),
			func() *payment.Transaction { return &payment.Transaction{} },
		),
	}
}

// Create inserts the transaction and its invoice references.
func (r *TransactionRepo) Create(ctx context.Context, t *payment.Transaction) error {
	if err := r.CreateRow(ctx, t, nil); err != nil {
		return err
	}
	return r.insertInvoiceRefs(ctx, t)
}

// Update rewrites the transaction and replaces its invoice references.
func (r *TransactionRepo) Update(ctx context.Context, t *payment.Transaction) error {
	if err := r.UpdateRow(ctx, t, nil); err != nil {
		return err
	}
	if err := r.deleteInvoiceRefs(ctx, t.ID); err != nil {
		return err
	}
	return r.insertInvoiceRefs(ctx, t)
}

// GetByID retrieves a transaction with its invoice references.
func (r *TransactionRepo) GetByID(ctx context.Context, txID id.ID) (*payment.Transaction, error) {
	t, err := r.GetRow(ctx, txID)
	if err != nil {
		return nil, err
	}
	if err := r.loadInvoiceRefs(ctx, []*payment.Transaction{t}); err != nil {
		return nil, err
	}
	return t, nil
}

// List retrieves transactions with filtering and pagination.
func (r *TransactionRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*payment.Transaction], error) {
	result, err := r.ListRows(ctx, filter)
	if err != nil {
		return result, err
	}
	if err := r.loadInvoiceRefs(ctx, result.Items); err != nil {
		return domain.ListResult[*payment.Transaction]{}, err
	}
	return result, nil
}

// ListByParty retrieves non-deleted transactions for one party reference.
func (r *TransactionRepo) ListByParty(ctx context.Context, kind payment.PartyKind, partyID id.ID) ([]*payment.Transaction, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"party_type": kind}).
		Where(squirrel.Eq{"party_id": partyID}).
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("date ASC")

	items, err := r.FindAllRows(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.loadInvoiceRefs(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByPartyKind retrieves non-deleted transactions under one party kind.
func (r *TransactionRepo) ListByPartyKind(ctx context.Context, kind payment.PartyKind) ([]*payment.Transaction, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"party_type": kind}).
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("date ASC")

	items, err := r.FindAllRows(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.loadInvoiceRefs(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TransactionRepo) insertInvoiceRefs(ctx context.Context, t *payment.Transaction) error {
	querier := r.Querier(ctx)

	for i, ref := range t.RelatedInvoices {
		q := r.Builder().Insert(transactionInvoiceTable).SetMap(map[string]any{
			"transaction_id": t.ID,
			"position":       i + 1,
			"ref_type":       ref.Type,
			"ref_id":         ref.ID,
		})
		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build invoice ref insert: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert invoice ref: %w", err)
		}
	}
	return nil
}

func (r *TransactionRepo) deleteInvoiceRefs(ctx context.Context, txID id.ID) error {
	q := r.Builder().Delete(transactionInvoiceTable).Where(squirrel.Eq{"transaction_id": txID})
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build invoice refs delete: %w", err)
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete invoice refs: %w", err)
	}
	return nil
}

func (r *TransactionRepo) loadInvoiceRefs(ctx context.Context, items []*payment.Transaction) error {
	if len(items) == 0 {
		return nil
	}

	txIDs := make([]id.ID, 0, len(items))
	byID := make(map[id.ID]*payment.Transaction, len(items))
	for _, t := range items {
		txIDs = append(txIDs, t.ID)
		byID[t.ID] = t
	}

	q := r.Builder().
		Select("transaction_id", "position", "ref_type", "ref_id").
		From(transactionInvoiceTable).
		Where(squirrel.Eq{"transaction_id": txIDs}).
		OrderBy("transaction_id", "position")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build invoice refs query: %w", err)
	}

	var rows []invoiceRefRow
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return fmt.Errorf("load invoice refs: %w", err)
	}

	for _, row := range rows {
		t := byID[row.TransactionID]
		t.RelatedInvoices = append(t.RelatedInvoices, payment.InvoiceRef{
			Type: row.RefType,
			ID:   row.RefID,
		})
	}
	return nil
}
