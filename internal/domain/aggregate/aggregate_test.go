package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/catalogs/product"
	"exportdoc/internal/domain/catalogs/size"
	"exportdoc/internal/domain/documents/exportdoc"
)

func assertMoney(t *testing.T, want string, got types.Money) {
	t.Helper()
	if !got.Equal(types.MustMoney(want)) {
		t.Errorf("expected %s, got %s", want, got.String())
	}
}

func ratePtr(s string) *types.Money {
	m := types.MustMoney(s)
	return &m
}

// fixture: one PGVT size (1.44 sqm/box, 30 kg/box) and one plain size,
// with one product on each.
type fixture struct {
	snap      *Snapshot
	pgvt      *product.Product
	plain     *product.Product
	pgvtSize  *size.Size
	plainSize *size.Size
}

func newFixture() fixture {
	pgvtSize := size.New("600X1200", "600x1200", 1.44, 30)
	pgvtSize.HSNCode = "69072100"

	plainSize := size.New("600X600", "600x600", 1.08, 25)
	plainSize.HSNCode = "69072200"

	pgvt := product.New("GLACIER", "Glacier White", pgvtSize.ID)
	plain := product.New("ONYX", "Onyx Grey", plainSize.ID)

	return fixture{
		snap:      NewSnapshot([]*product.Product{pgvt, plain}, []*size.Size{pgvtSize, plainSize}),
		pgvt:      pgvt,
		plain:     plain,
		pgvtSize:  pgvtSize,
		plainSize: plainSize,
	}
}

func TestComputeLine(t *testing.T) {
	f := newFixture()

	line, ok := ComputeLine(exportdoc.ProductItem{
		LineID:    id.New(),
		ProductID: f.pgvt.ID,
		Boxes:     100,
		Rate:      ratePtr("10"),
	}, f.snap)

	require.True(t, ok)
	assertMoney(t, "144.00", line.SQM)
	assertMoney(t, "1440.00", line.Amount)
	assert.Equal(t, float64(3000), line.NetWeight)
	assert.Equal(t, DescriptionPGVT, line.Description)
}

func TestComputeLine_MissingRateDefaultsToZero(t *testing.T) {
	f := newFixture()

	line, ok := ComputeLine(exportdoc.ProductItem{ProductID: f.pgvt.ID, Boxes: 50}, f.snap)

	require.True(t, ok)
	assertMoney(t, "72.00", line.SQM)
	assertMoney(t, "0", line.Amount)
}

func TestComputeLine_DanglingProductSkipped(t *testing.T) {
	f := newFixture()

	_, ok := ComputeLine(exportdoc.ProductItem{ProductID: id.New(), Boxes: 100, Rate: ratePtr("10")}, f.snap)

	assert.False(t, ok)
}

func TestComputeLine_ProductBoxWeightOverride(t *testing.T) {
	f := newFixture()
	bw := 28.5
	f.pgvt.BoxWeight = &bw

	line, ok := ComputeLine(exportdoc.ProductItem{ProductID: f.pgvt.ID, Boxes: 10}, f.snap)

	require.True(t, ok)
	assert.Equal(t, 285.0, line.NetWeight)
}

func TestComputeLine_SuppliedWeightWins(t *testing.T) {
	f := newFixture()
	nw, gw := 2950.0, 3100.0

	line, ok := ComputeLine(exportdoc.ProductItem{
		ProductID:   f.pgvt.ID,
		Boxes:       100,
		NetWeight:   &nw,
		GrossWeight: &gw,
	}, f.snap)

	require.True(t, ok)
	assert.Equal(t, 2950.0, line.NetWeight)
	assert.Equal(t, 3100.0, line.GrossWeight)
}

func TestGroupBySizeAndRate_SeparatesRates(t *testing.T) {
	f := newFixture()

	items := []exportdoc.ProductItem{
		{ProductID: f.pgvt.ID, Boxes: 100, Rate: ratePtr("10")},
		{ProductID: f.pgvt.ID, Boxes: 50, Rate: ratePtr("12")},
		{ProductID: f.pgvt.ID, Boxes: 20, Rate: ratePtr("10")},
	}

	groups := GroupBySizeAndRate(items, f.snap, false)

	require.Len(t, groups, 2)

	assert.Equal(t, float64(120), groups[0].Boxes)
	assertMoney(t, "10", groups[0].Rate)
	assertMoney(t, "172.80", groups[0].SQM)
	assertMoney(t, "1728.00", groups[0].Total)

	assert.Equal(t, float64(50), groups[1].Boxes)
	assertMoney(t, "12", groups[1].Rate)
	assertMoney(t, "864.00", groups[1].Total)
}

func TestGroupBySizeAndRate_SqmConserved(t *testing.T) {
	f := newFixture()

	items := []exportdoc.ProductItem{
		{ProductID: f.pgvt.ID, Boxes: 100, Rate: ratePtr("10")},
		{ProductID: f.pgvt.ID, Boxes: 35, Rate: ratePtr("11.5")},
		{ProductID: f.plain.ID, Boxes: 60, Rate: ratePtr("8")},
	}

	groups := GroupBySizeAndRate(items, f.snap, false)

	sum := types.Zero()
	for _, g := range groups {
		sum = sum.Add(g.SQM)
	}
	// 100*1.44 + 35*1.44 + 60*1.08 = 144 + 50.4 + 64.8
	assertMoney(t, "259.20", sum)
}

func TestGroupBySizeAndRate_SamplesZeroValued(t *testing.T) {
	f := newFixture()

	items := []exportdoc.ProductItem{
		{ProductID: f.pgvt.ID, Boxes: 10, Rate: ratePtr("10")},
	}

	groups := GroupBySizeAndRate(items, f.snap, true)

	require.Len(t, groups, 1)
	assert.Equal(t, float64(10), groups[0].Boxes)
	assertMoney(t, "14.40", groups[0].SQM)
	assertMoney(t, "0", groups[0].Rate)
	assertMoney(t, "0", groups[0].Total)
}

func TestGroupBySizeAndRate_DescriptionFromHSN(t *testing.T) {
	f := newFixture()

	items := []exportdoc.ProductItem{
		{ProductID: f.pgvt.ID, Boxes: 1, Rate: ratePtr("10")},
		{ProductID: f.plain.ID, Boxes: 1, Rate: ratePtr("10")},
	}

	groups := GroupBySizeAndRate(items, f.snap, false)

	require.Len(t, groups, 2)
	assert.Equal(t, DescriptionPGVT, groups[0].Description)
	assert.Equal(t, DescriptionVitrified, groups[1].Description)
}

func testDocument(f fixture) *exportdoc.ExportDocument {
	doc := exportdoc.New(id.New(), id.New(), id.New())
	doc.GST = "18%"
	doc.ConversionRate = types.MustMoney("83")
	doc.AddContainer(exportdoc.ContainerItem{
		ContainerNo: "MSKU1234567",
		ProductItems: []exportdoc.ProductItem{
			{ProductID: f.pgvt.ID, Boxes: 100, Rate: ratePtr("10")},
		},
		SampleItems: []exportdoc.ProductItem{
			{ProductID: f.pgvt.ID, Boxes: 5, Rate: ratePtr("10")},
		},
	})
	return doc
}

func TestDocumentTotal(t *testing.T) {
	f := newFixture()
	doc := testDocument(f)

	totals := DocumentTotal(doc, f.snap)

	assertMoney(t, "1440.00", totals.Amount)
	assertMoney(t, "259.20", totals.GSTAmount)
	assertMoney(t, "1699.20", totals.TotalAmount)
	assertMoney(t, "119520.00", totals.AmountInLocalCurrency)
	assert.True(t, totals.TotalAmount.Equal(totals.Amount.Add(totals.GSTAmount)))
}

func TestDocumentTotal_MalformedGSTCoercedToZero(t *testing.T) {
	f := newFixture()
	doc := testDocument(f)
	doc.GST = "n/a"

	totals := DocumentTotal(doc, f.snap)

	assertMoney(t, "0", totals.GSTAmount)
	assert.True(t, totals.TotalAmount.Equal(totals.Amount))
}

func TestAggregateContainerItems(t *testing.T) {
	f := newFixture()
	doc := testDocument(f)

	res := AggregateContainerItems(doc, f.snap)

	require.Len(t, res.GroupedProducts, 1)
	require.Len(t, res.GroupedSamples, 1)

	// samples count toward boxes/sqm, never toward amount
	assert.Equal(t, float64(105), res.GrandTotals.Boxes)
	assertMoney(t, "151.20", res.GrandTotals.SQM)
	assertMoney(t, "1440.00", res.GrandTotals.Amount)
	assert.Equal(t, float64(3150), res.GrandTotals.NetWeight)
}

func TestAggregateContainerItems_Idempotent(t *testing.T) {
	f := newFixture()
	doc := testDocument(f)

	first := AggregateContainerItems(doc, f.snap)
	second := AggregateContainerItems(doc, f.snap)

	assert.Equal(t, first, second)
}

func TestAggregateContainerItems_WeightWarning(t *testing.T) {
	f := newFixture()
	doc := exportdoc.New(id.New(), id.New(), id.New())
	doc.GST = "18%"
	doc.AddContainer(exportdoc.ContainerItem{
		ContainerNo: "MSKU1234567",
		ProductItems: []exportdoc.ProductItem{
			{ProductID: f.pgvt.ID, Boxes: 1000, Rate: ratePtr("10")}, // 30000 kg
		},
	})

	res := AggregateContainerItems(doc, f.snap)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "MSKU1234567", res.Warnings[0].ContainerNo)
	assert.Equal(t, float64(30000), res.Warnings[0].WeightKg)
}

func TestSnapshot_ExcludesDeleted(t *testing.T) {
	f := newFixture()
	f.pgvt.IsDeleted = true

	snap := NewSnapshot([]*product.Product{f.pgvt, f.plain}, []*size.Size{f.pgvtSize, f.plainSize})

	_, ok := ComputeLine(exportdoc.ProductItem{ProductID: f.pgvt.ID, Boxes: 10}, snap)
	assert.False(t, ok)
}
