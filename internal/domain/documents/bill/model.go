// Package bill provides vendor bills: manufacturer, transporter and
// supplier bills share one record shape, distinguished by Kind. Field
// usage differs per kind (central/state tax vs a single transport tax,
// grand total vs total payable), so the uniform accessors PayableAmount
// and TaxTotal are the only supported way to read amounts across kinds.
package bill

import (
	"context"

	"github.com/shopspring/decimal"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/entity"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
)

// Kind discriminates the bill variants.
type Kind string

const (
	KindManu   Kind = "manu"
	KindTrans  Kind = "trans"
	KindSupply Kind = "supply"
)

// Item is one line of a vendor bill.
type Item struct {
	LineID      id.ID       `db:"line_id" json:"id"`
	Description string      `db:"description" json:"description"`
	Quantity    float64     `db:"quantity" json:"quantity"`
	Rate        types.Money `db:"rate" json:"rate"`

	// DiscountPercentage applies on manufacturer/supplier bills
	DiscountPercentage *float64 `db:"discount_percentage" json:"discountPercentage,omitempty"`

	// GSTRate is informational on transporter bill lines
	GSTRate *float64 `db:"gst_rate" json:"gstRate,omitempty"`
}

// TaxableAmount is quantity × rate less line discount.
func (i Item) TaxableAmount() types.Money {
	amount := decimal.NewFromFloat(i.Quantity).Mul(i.Rate)
	if i.DiscountPercentage != nil && *i.DiscountPercentage != 0 {
		factor := decimal.NewFromInt(1).Sub(
			decimal.NewFromFloat(*i.DiscountPercentage).Div(decimal.NewFromInt(100)))
		amount = amount.Mul(factor)
	}
	return amount
}

// Bill is one vendor bill. Document.Number holds the vendor's invoice
// number, Document.Date the invoice date.
type Bill struct {
	entity.Document

	Kind Kind `db:"kind" json:"kind"`

	// ExportDocumentID links the bill to the shipment it served
	ExportDocumentID id.ID `db:"export_document_id" json:"exportDocumentId"`

	// PartyID is the manufacturer/transporter/supplier being billed from
	PartyID id.ID `db:"party_id" json:"partyId"`

	Items []Item `db:"-" json:"items"`

	SubTotal types.Money `db:"sub_total" json:"subTotal"`

	// Manufacturer/supplier bills carry split central+state GST
	CentralTaxRate   *float64     `db:"central_tax_rate" json:"centralTaxRate,omitempty"`
	CentralTaxAmount *types.Money `db:"central_tax_amount" json:"centralTaxAmount,omitempty"`
	StateTaxRate     *float64     `db:"state_tax_rate" json:"stateTaxRate,omitempty"`
	StateTaxAmount   *types.Money `db:"state_tax_amount" json:"stateTaxAmount,omitempty"`

	// Transporter bills carry a single tax figure
	TotalTax *types.Money `db:"total_tax" json:"totalTax,omitempty"`

	// GrandTotal on manufacturer/supplier bills, TotalPayable on
	// transporter bills; PayableAmount resolves whichever is present
	GrandTotal   *types.Money `db:"grand_total" json:"grandTotal,omitempty"`
	TotalPayable *types.Money `db:"total_payable" json:"totalPayable,omitempty"`
}

// New creates a new bill of the given kind.
func New(kind Kind, exportDocumentID, partyID id.ID) *Bill {
	return &Bill{
		Document:         entity.NewDocument(),
		Kind:             kind,
		ExportDocumentID: exportDocumentID,
		PartyID:          partyID,
		SubTotal:         types.Zero(),
	}
}

// PayableAmount resolves the bill's payable total across variants:
// grandTotal, else totalPayable, else zero.
func (b *Bill) PayableAmount() types.Money {
	if b.GrandTotal != nil {
		return *b.GrandTotal
	}
	if b.TotalPayable != nil {
		return *b.TotalPayable
	}
	return types.Zero()
}

// TaxTotal resolves the bill's total tax across variants: central+state
// for manufacturer/supplier bills, the single total for transporter bills.
func (b *Bill) TaxTotal() types.Money {
	if b.Kind == KindTrans {
		if b.TotalTax != nil {
			return *b.TotalTax
		}
		return types.Zero()
	}
	total := types.Zero()
	if b.CentralTaxAmount != nil {
		total = total.Add(*b.CentralTaxAmount)
	}
	if b.StateTaxAmount != nil {
		total = total.Add(*b.StateTaxAmount)
	}
	return total
}

// RecalculateTotals rebuilds sub total, tax amounts and the payable total
// from the line items and tax rates.
func (b *Bill) RecalculateTotals() {
	subTotal := types.Zero()
	for _, item := range b.Items {
		subTotal = subTotal.Add(item.TaxableAmount())
	}
	b.SubTotal = subTotal

	switch b.Kind {
	case KindTrans:
		tax := types.Zero()
		for _, item := range b.Items {
			if item.GSTRate != nil && *item.GSTRate != 0 {
				rate := decimal.NewFromFloat(*item.GSTRate).Div(decimal.NewFromInt(100))
				tax = tax.Add(item.TaxableAmount().Mul(rate))
			}
		}
		b.TotalTax = &tax
		payable := subTotal.Add(tax)
		b.TotalPayable = &payable
		b.GrandTotal = nil
	default:
		central := types.Zero()
		if b.CentralTaxRate != nil {
			central = subTotal.Mul(decimal.NewFromFloat(*b.CentralTaxRate).Div(decimal.NewFromInt(100)))
		}
		state := types.Zero()
		if b.StateTaxRate != nil {
			state = subTotal.Mul(decimal.NewFromFloat(*b.StateTaxRate).Div(decimal.NewFromInt(100)))
		}
		b.CentralTaxAmount = &central
		b.StateTaxAmount = &state
		grand := subTotal.Add(central).Add(state)
		b.GrandTotal = &grand
		b.TotalPayable = nil
		b.TotalTax = nil
	}
}

// Validate implements entity.Validatable.
func (b *Bill) Validate(ctx context.Context) error {
	if err := b.Document.Validate(ctx); err != nil {
		return err
	}

	if !isValidKind(b.Kind) {
		return apperror.NewValidation("invalid bill kind").
			WithDetail("field", "kind").
			WithDetail("value", string(b.Kind))
	}

	if id.IsNil(b.PartyID) {
		return apperror.NewValidation("party is required").
			WithDetail("field", "partyId")
	}

	if len(b.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, item := range b.Items {
		if item.Quantity < 0 {
			return apperror.NewValidation("quantity cannot be negative").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.DiscountPercentage != nil && (*item.DiscountPercentage < 0 || *item.DiscountPercentage > 100) {
			return apperror.NewValidation("discount must be between 0 and 100").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

func isValidKind(k Kind) bool {
	switch k {
	case KindManu, KindTrans, KindSupply:
		return true
	}
	return false
}
