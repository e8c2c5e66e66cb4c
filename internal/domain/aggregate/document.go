package aggregate

import (
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/documents/exportdoc"
)

// Totals is the invoice-level money rollup of one export document.
type Totals struct {
	// Amount is the pre-tax sum of all product lines
	Amount types.Money `json:"amount"`

	// GSTAmount is Amount at the document's GST percentage
	GSTAmount types.Money `json:"gstAmount"`

	// TotalAmount is exactly Amount + GSTAmount
	TotalAmount types.Money `json:"totalAmount"`

	// AmountInLocalCurrency is Amount converted at the document's fixed
	// rate
	AmountInLocalCurrency types.Money `json:"amountInLocalCurrency"`
}

// DocumentTotal sums every product line pre-tax, applies the document's GST
// percentage and fixed conversion rate. Sample lines carry zero value and
// dangling references contribute nothing, so the sum is over resolved
// product lines only.
func DocumentTotal(doc *exportdoc.ExportDocument, snap *Snapshot) Totals {
	amount := types.Zero()
	for _, c := range doc.ContainerItems {
		for _, item := range c.ProductItems {
			line, ok := ComputeLine(item, snap)
			if !ok {
				continue
			}
			amount = amount.Add(line.Amount)
		}
	}

	amount = types.Round2(amount)
	gstAmount := types.Round2(amount.Mul(types.ParsePercent(doc.GST)))

	return Totals{
		Amount:                amount,
		GSTAmount:             gstAmount,
		TotalAmount:           amount.Add(gstAmount),
		AmountInLocalCurrency: types.Round2(amount.Mul(doc.ConversionRate)),
	}
}
