package bill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
)

func assertMoney(t *testing.T, want string, got types.Money) {
	t.Helper()
	if !got.Equal(types.MustMoney(want)) {
		t.Errorf("expected %s, got %s", want, got.String())
	}
}

func fptr(f float64) *float64 { return &f }

func TestItemTaxableAmount(t *testing.T) {
	item := Item{Quantity: 10, Rate: types.MustMoney("250")}
	assertMoney(t, "2500", item.TaxableAmount())

	item.DiscountPercentage = fptr(10)
	assertMoney(t, "2250", item.TaxableAmount())
}

func TestRecalculateTotals_Manu(t *testing.T) {
	b := New(KindManu, id.New(), id.New())
	b.Items = []Item{
		{Description: "PGVT 600x1200", Quantity: 100, Rate: types.MustMoney("100")},
	}
	b.CentralTaxRate = fptr(9)
	b.StateTaxRate = fptr(9)

	b.RecalculateTotals()

	assertMoney(t, "10000", b.SubTotal)
	require.NotNil(t, b.CentralTaxAmount)
	require.NotNil(t, b.StateTaxAmount)
	assertMoney(t, "900", *b.CentralTaxAmount)
	assertMoney(t, "900", *b.StateTaxAmount)
	require.NotNil(t, b.GrandTotal)
	assertMoney(t, "11800", *b.GrandTotal)
	assert.Nil(t, b.TotalPayable)
}

func TestRecalculateTotals_Trans(t *testing.T) {
	b := New(KindTrans, id.New(), id.New())
	b.Items = []Item{
		{Description: "Morbi to Mundra", Quantity: 2, Rate: types.MustMoney("9000"), GSTRate: fptr(5)},
	}

	b.RecalculateTotals()

	assertMoney(t, "18000", b.SubTotal)
	require.NotNil(t, b.TotalTax)
	assertMoney(t, "900", *b.TotalTax)
	require.NotNil(t, b.TotalPayable)
	assertMoney(t, "18900", *b.TotalPayable)
	assert.Nil(t, b.GrandTotal)
}

func TestPayableAmount_FallbackChain(t *testing.T) {
	b := New(KindManu, id.New(), id.New())
	assertMoney(t, "0", b.PayableAmount())

	tp := types.MustMoney("500")
	b.TotalPayable = &tp
	assertMoney(t, "500", b.PayableAmount())

	gt := types.MustMoney("700")
	b.GrandTotal = &gt
	assertMoney(t, "700", b.PayableAmount())
}

func TestTaxTotal(t *testing.T) {
	manu := New(KindManu, id.New(), id.New())
	c, s := types.MustMoney("450"), types.MustMoney("450")
	manu.CentralTaxAmount = &c
	manu.StateTaxAmount = &s
	assertMoney(t, "900", manu.TaxTotal())

	trans := New(KindTrans, id.New(), id.New())
	tt := types.MustMoney("250")
	trans.TotalTax = &tt
	assertMoney(t, "250", trans.TaxTotal())

	// transporter bills never read the split fields
	trans.CentralTaxAmount = &c
	assertMoney(t, "250", trans.TaxTotal())
}

func TestValidate(t *testing.T) {
	b := New(KindManu, id.New(), id.New())
	b.Items = []Item{{Description: "tiles", Quantity: 1, Rate: types.MustMoney("10")}}
	assert.NoError(t, b.Validate(context.Background()))

	b.Kind = Kind("weird")
	assert.Error(t, b.Validate(context.Background()))
}
