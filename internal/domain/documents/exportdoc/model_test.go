package exportdoc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exportdoc/internal/core/id"
)

func TestRecomputePallets(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"simple range", "1", "22", "22"},
		{"offset range", "23", "44", "22"},
		{"single pallet", "5", "5", "1"},
		{"whitespace tolerated", " 1 ", " 10 ", "10"},
		{"end before start", "10", "5", ""},
		{"zero start", "0", "10", ""},
		{"negative start", "-3", "10", ""},
		{"non-numeric start", "A1", "10", ""},
		{"empty", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := ContainerItem{StartPalletNo: tc.start, EndPalletNo: tc.end}
			c.RecomputePallets()
			assert.Equal(t, tc.want, c.TotalPallets)
		})
	}
}

func TestRecomputePallets_OverwritesHandEnteredValue(t *testing.T) {
	c := ContainerItem{StartPalletNo: "1", EndPalletNo: "20", TotalPallets: "99"}
	c.RecomputePallets()
	assert.Equal(t, "20", c.TotalPallets)

	c = ContainerItem{StartPalletNo: "x", EndPalletNo: "20", TotalPallets: "99"}
	c.RecomputePallets()
	assert.Equal(t, "", c.TotalPallets)
}

func TestNormalize(t *testing.T) {
	doc := New(id.New(), id.New(), id.New())
	doc.ManufacturerDetails = []ManufacturerDetail{{ManufacturerID: id.New()}}
	doc.ContainerItems = []ContainerItem{
		{
			StartPalletNo: "1",
			EndPalletNo:   "22",
			TotalPallets:  "7", // stale, must be recomputed
			ProductItems:  []ProductItem{{ProductID: id.New(), Boxes: 100}},
			SampleItems:   []ProductItem{{ProductID: id.New(), Boxes: 2}},
		},
	}

	doc.Normalize()

	c := doc.ContainerItems[0]
	assert.False(t, id.IsNil(c.LineID))
	assert.False(t, id.IsNil(c.ProductItems[0].LineID))
	assert.False(t, id.IsNil(c.SampleItems[0].LineID))
	assert.False(t, id.IsNil(doc.ManufacturerDetails[0].LineID))
	assert.Equal(t, "22", c.TotalPallets)
}

func TestNormalize_KeepsExistingLineIDs(t *testing.T) {
	doc := New(id.New(), id.New(), id.New())
	lineID := id.New()
	doc.ContainerItems = []ContainerItem{{LineID: lineID}}

	doc.Normalize()

	assert.Equal(t, lineID, doc.ContainerItems[0].LineID)
}

func TestValidate(t *testing.T) {
	doc := New(id.New(), id.New(), id.New())
	doc.ManufacturerDetails = []ManufacturerDetail{{LineID: id.New(), ManufacturerID: id.New()}}

	require.NoError(t, doc.Validate(context.Background()))

	missing := New(id.Nil(), id.New(), id.New())
	missing.ManufacturerDetails = doc.ManufacturerDetails
	assert.Error(t, missing.Validate(context.Background()))

	bare := New(id.New(), id.New(), id.New())
	assert.Error(t, bare.Validate(context.Background()), "at least one manufacturer detail required")
}
