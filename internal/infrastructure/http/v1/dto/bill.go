package dto

import (
	"time"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/documents/bill"
)

// BillPayload is the shared request body for creating and updating a
// vendor bill. Totals are recomputed server-side from the items; any
// client-sent figures are ignored.
type BillPayload struct {
	Number  string    `json:"number" binding:"required"`
	Date    time.Time `json:"date" binding:"required"`
	Comment string    `json:"comment"`

	ExportDocumentID id.ID `json:"exportDocumentId" binding:"required"`
	PartyID          id.ID `json:"partyId" binding:"required"`

	Items []bill.Item `json:"items"`

	CentralTaxRate *float64     `json:"centralTaxRate"`
	StateTaxRate   *float64     `json:"stateTaxRate"`
	TotalTax       *types.Money `json:"totalTax"`
}

// ToEntity converts the payload to a new bill of the given kind.
func (r *BillPayload) ToEntity(kind bill.Kind) *bill.Bill {
	b := bill.New(kind, r.ExportDocumentID, r.PartyID)
	r.ApplyTo(b)
	return b
}

// ApplyTo copies the payload onto an existing bill.
func (r *BillPayload) ApplyTo(b *bill.Bill) {
	b.Number = r.Number
	b.Date = r.Date
	b.Comment = r.Comment
	b.ExportDocumentID = r.ExportDocumentID
	b.PartyID = r.PartyID
	b.Items = r.Items
	b.CentralTaxRate = r.CentralTaxRate
	b.StateTaxRate = r.StateTaxRate
	b.TotalTax = r.TotalTax
}

// UpdateBillRequest adds the version check to the payload.
type UpdateBillRequest struct {
	BillPayload
	Version int `json:"version" binding:"required"`
}
