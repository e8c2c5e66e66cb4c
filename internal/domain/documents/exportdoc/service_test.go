package exportdoc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exportdoc/internal/core/id"
	"exportdoc/internal/domain"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	numbers []string
	created []*ExportDocument
}

func (r *fakeRepo) Create(ctx context.Context, doc *ExportDocument) error {
	r.created = append(r.created, doc)
	r.numbers = append(r.numbers, doc.Number)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, docID id.ID) (*ExportDocument, error) {
	return nil, nil
}

func (r *fakeRepo) Update(ctx context.Context, doc *ExportDocument) error { return nil }

func (r *fakeRepo) SetDeleted(ctx context.Context, docID id.ID, deleted bool) error { return nil }

func (r *fakeRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*ExportDocument], error) {
	return domain.ListResult[*ExportDocument]{}, nil
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]*ExportDocument, error) { return nil, nil }

func (r *fakeRepo) ListInvoiceNumbers(ctx context.Context) ([]string, error) {
	return r.numbers, nil
}

func validDocument(date time.Time) *ExportDocument {
	doc := New(id.New(), id.New(), id.New())
	doc.Date = date
	doc.ManufacturerDetails = []ManufacturerDetail{{ManufacturerID: id.New()}}
	return doc
}

func TestCreateAssignsSequentialNumber(t *testing.T) {
	repo := &fakeRepo{numbers: []string{"EXP/HEM/001/25-26", "EXP/HEM/002/25-26"}}
	svc := NewService(repo, fakeTxManager{})

	doc := validDocument(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, svc.Create(context.Background(), doc))
	assert.Equal(t, "EXP/HEM/003/25-26", doc.Number)
}

func TestCreateStartsFreshFiscalYear(t *testing.T) {
	repo := &fakeRepo{numbers: []string{"EXP/HEM/017/24-25"}}
	svc := NewService(repo, fakeTxManager{})

	// April rolls the fiscal year over; numbering restarts at 001.
	doc := validDocument(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, svc.Create(context.Background(), doc))
	assert.Equal(t, "EXP/HEM/001/25-26", doc.Number)
}

func TestCreateKeepsExplicitNumber(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, fakeTxManager{})

	doc := validDocument(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	doc.Number = "EXP/HEM/099/25-26"
	require.NoError(t, svc.Create(context.Background(), doc))
	assert.Equal(t, "EXP/HEM/099/25-26", doc.Number)
}

func TestCreateRejectsInvalidDocument(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, fakeTxManager{})

	doc := validDocument(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	doc.ManufacturerDetails = nil
	assert.Error(t, svc.Create(context.Background(), doc))
	assert.Empty(t, repo.created)
}

func TestUpdateRequiresNumber(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, fakeTxManager{})

	doc := validDocument(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	assert.Error(t, svc.Update(context.Background(), doc))
}

func TestNextInvoiceNumberIgnoresForeignShapes(t *testing.T) {
	repo := &fakeRepo{numbers: []string{
		"EXP/HEM/004/25-26",
		"EXP/HEM/030/24-25",
		"PI/12/25-26",
		"not-a-number",
	}}
	svc := NewService(repo, fakeTxManager{})

	number, err := svc.NextInvoiceNumber(context.Background(), "25-26")
	require.NoError(t, err)
	assert.Equal(t, "EXP/HEM/005/25-26", number)
}
