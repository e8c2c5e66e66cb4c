package aggregate

import (
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/catalogs/product"
	"exportdoc/internal/domain/documents/exportdoc"
)

// HSN code whose goods are declared as PGVT on customs documents.
const hsnPGVT = "69072100"

// Customs description lines.
const (
	DescriptionPGVT      = "Polished Glazed Vitrified Tiles (PGVT)"
	DescriptionVitrified = "Vitrified Tiles"
	SampleSectionTitle   = "Free of Cost Samples"
)

// describeHSN derives the customs goods description from the HSN code.
func describeHSN(hsnCode string) string {
	if hsnCode == hsnPGVT {
		return DescriptionPGVT
	}
	return DescriptionVitrified
}

// Line is one computed product or sample line.
type Line struct {
	SizeID      string
	HSNCode     string
	Description string
	Boxes       float64
	SQM         types.Money
	Rate        types.Money
	Amount      types.Money
	NetWeight   float64
	GrossWeight float64
}

// ComputeLine derives SQM, amount and weights for one item. The second
// return is false when the product or size reference does not resolve; such
// lines contribute nothing anywhere.
func ComputeLine(item exportdoc.ProductItem, snap *Snapshot) (Line, bool) {
	p, sz := snap.Resolve(item.ProductID)
	if p == nil || sz == nil {
		return Line{}, false
	}

	rate := types.Zero()
	if item.Rate != nil {
		rate = *item.Rate
	}

	sqm := types.NewMoney(item.Boxes).Mul(types.NewMoney(sz.SqmPerBox))
	amount := sqm.Mul(rate)

	netWeight := item.Boxes * product.ResolveBoxWeight(p, sz)
	if item.NetWeight != nil {
		netWeight = *item.NetWeight
	}
	grossWeight := netWeight
	if item.GrossWeight != nil {
		grossWeight = *item.GrossWeight
	}

	return Line{
		SizeID:      p.SizeID.String(),
		HSNCode:     sz.HSNCode,
		Description: describeHSN(sz.HSNCode),
		Boxes:       item.Boxes,
		SQM:         sqm,
		Rate:        rate,
		Amount:      amount,
		NetWeight:   netWeight,
		GrossWeight: grossWeight,
	}, true
}

// Group is one accumulated (size, rate) bucket.
type Group struct {
	Key         string      `json:"-"`
	HSNCode     string      `json:"hsnCode"`
	Description string      `json:"description"`
	Boxes       float64     `json:"boxes"`
	SQM         types.Money `json:"sqm"`
	Rate        types.Money `json:"rate"`
	Total       types.Money `json:"total"`
}

// GroupBySizeAndRate partitions resolved lines into buckets keyed by
// size and negotiated rate. Two lines of the same size at different rates
// stay separate. Groups keep first-appearance order so repeated runs over
// the same document produce identical output.
//
// With zeroValue set (sample sections) the grouping key still includes the
// rate, but each group's rate and total are forced to zero on output:
// samples count toward the box and SQM manifest while the declared value
// excludes them.
func GroupBySizeAndRate(items []exportdoc.ProductItem, snap *Snapshot, zeroValue bool) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, item := range items {
		line, ok := ComputeLine(item, snap)
		if !ok {
			continue
		}

		key := line.SizeID + "-" + line.Rate.String()
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{
				Key:         key,
				HSNCode:     line.HSNCode,
				Description: line.Description,
				SQM:         types.Zero(),
				Rate:        line.Rate,
				Total:       types.Zero(),
			})
		}

		groups[i].Boxes += line.Boxes
		groups[i].SQM = groups[i].SQM.Add(line.SQM)
		groups[i].Total = groups[i].Total.Add(line.Amount)
	}

	if zeroValue {
		for i := range groups {
			groups[i].Rate = types.Zero()
			groups[i].Total = types.Zero()
		}
	}

	for i := range groups {
		groups[i].SQM = types.Round2(groups[i].SQM)
		groups[i].Total = types.Round2(groups[i].Total)
	}

	return groups
}

// GrandTotals is the document-level rollup. Boxes, SQM and weights include
// sample lines; Amount never does.
type GrandTotals struct {
	Boxes       float64     `json:"boxes"`
	SQM         types.Money `json:"sqm"`
	NetWeight   float64     `json:"netWeight"`
	GrossWeight float64     `json:"grossWeight"`
	Amount      types.Money `json:"amount"`
}

// WeightWarning flags a line over the advisory per-line weight limit.
// Advisory only; the aggregation result is unaffected.
type WeightWarning struct {
	ContainerNo string  `json:"containerNo"`
	LineID      string  `json:"lineId"`
	WeightKg    float64 `json:"weightKg"`
}

// Result is the full aggregation of one export document.
type Result struct {
	GroupedProducts []Group         `json:"groupedProducts"`
	GroupedSamples  []Group         `json:"groupedSamples"`
	GrandTotals     GrandTotals     `json:"grandTotals"`
	Warnings        []WeightWarning `json:"warnings,omitempty"`
}

// AggregateContainerItems flattens every container's product and sample
// lines, groups both sections and computes grand totals.
func AggregateContainerItems(doc *exportdoc.ExportDocument, snap *Snapshot) Result {
	var productItems, sampleItems []exportdoc.ProductItem
	var warnings []WeightWarning

	totals := GrandTotals{
		SQM:    types.Zero(),
		Amount: types.Zero(),
	}

	accumulate := func(containerNo string, item exportdoc.ProductItem, sample bool) {
		line, ok := ComputeLine(item, snap)
		if !ok {
			return
		}
		totals.Boxes += line.Boxes
		totals.SQM = totals.SQM.Add(line.SQM)
		totals.NetWeight += line.NetWeight
		totals.GrossWeight += line.GrossWeight
		if !sample {
			totals.Amount = totals.Amount.Add(line.Amount)
		}
		if line.NetWeight > exportdoc.WeightAdvisoryLimitKg || line.GrossWeight > exportdoc.WeightAdvisoryLimitKg {
			warnings = append(warnings, WeightWarning{
				ContainerNo: containerNo,
				LineID:      item.LineID.String(),
				WeightKg:    max(line.NetWeight, line.GrossWeight),
			})
		}
	}

	for _, c := range doc.ContainerItems {
		for _, item := range c.ProductItems {
			productItems = append(productItems, item)
			accumulate(c.ContainerNo, item, false)
		}
		for _, item := range c.SampleItems {
			sampleItems = append(sampleItems, item)
			accumulate(c.ContainerNo, item, true)
		}
	}

	totals.SQM = types.Round2(totals.SQM)
	totals.Amount = types.Round2(totals.Amount)

	return Result{
		GroupedProducts: GroupBySizeAndRate(productItems, snap, false),
		GroupedSamples:  GroupBySizeAndRate(sampleItems, snap, true),
		GrandTotals:     totals,
		Warnings:        warnings,
	}
}
