package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"exportdoc/internal/domain/catalogs/size"
	"exportdoc/internal/domain/documents/payment"
)

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[size.Size]()

	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "is_deleted")
	assert.Contains(t, cols, "version")
	assert.Contains(t, cols, "code")
	assert.Contains(t, cols, "name")
}

func TestExtractDBColumns_SkipsUnmapped(t *testing.T) {
	cols := ExtractDBColumns[payment.Transaction]()

	assert.Contains(t, cols, "type")
	assert.Contains(t, cols, "party_type")
	assert.Contains(t, cols, "amount")
	// RelatedInvoices is a table part, stored separately.
	assert.NotContains(t, cols, "related_invoices")
}

func TestStructToMap(t *testing.T) {
	sz := size.New("600x600", "600 x 600 mm", 1.44, 27.5)

	m := StructToMap(sz)

	assert.Equal(t, sz.ID, m["id"])
	assert.Equal(t, "600x600", m["code"])
	assert.Equal(t, "600 x 600 mm", m["name"])
	assert.Equal(t, 1.44, m["sqm_per_box"])
	assert.Equal(t, 1, m["version"])
}
