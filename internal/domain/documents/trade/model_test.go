package trade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
)

func TestPerformaInvoiceNormalize(t *testing.T) {
	pi := NewPerformaInvoice(id.New())
	pi.Items = []Item{
		{Description: "GVT 600x600", Boxes: 1000, Rate: types.MustMoney("4.2")},
		{Description: "PGVT 600x1200", Boxes: 500, Rate: types.MustMoney("6.5")},
	}

	pi.Normalize()

	assert.False(t, id.IsNil(pi.Items[0].LineID))
	assert.False(t, id.IsNil(pi.Items[1].LineID))
	assert.NotEqual(t, pi.Items[0].LineID, pi.Items[1].LineID)

	// Normalize is idempotent: existing line IDs are kept.
	keep := pi.Items[0].LineID
	pi.Normalize()
	assert.Equal(t, keep, pi.Items[0].LineID)
}

func TestPerformaInvoiceValidate(t *testing.T) {
	pi := NewPerformaInvoice(id.New())
	pi.Items = []Item{{Description: "GVT 600x600", Boxes: 100, Rate: types.MustMoney("4")}}
	pi.Normalize()
	require.NoError(t, pi.Validate(context.Background()))

	pi.Items[0].Boxes = -1
	assert.Error(t, pi.Validate(context.Background()))

	pi.Items[0].Boxes = 100
	pi.Items[0].Rate = types.MustMoney("-4")
	assert.Error(t, pi.Validate(context.Background()))
}

func TestPerformaInvoiceValidate_RequiresClient(t *testing.T) {
	pi := NewPerformaInvoice(id.Nil())
	assert.Error(t, pi.Validate(context.Background()))
}

func TestPurchaseOrderValidate(t *testing.T) {
	po := NewPurchaseOrder(id.New(), id.New())
	po.Items = []Item{{Description: "GVT 600x600", Boxes: 200, Rate: types.MustMoney("3.8")}}
	po.Normalize()
	require.NoError(t, po.Validate(context.Background()))

	po.PerformaInvoiceID = id.Nil()
	assert.Error(t, po.Validate(context.Background()))
}
