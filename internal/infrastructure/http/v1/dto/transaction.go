package dto

import (
	"time"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/documents/payment"
)

// TransactionPayload is the shared request body for creating and updating
// a payment transaction.
type TransactionPayload struct {
	Number  string    `json:"number"`
	Date    time.Time `json:"date" binding:"required"`
	Comment string    `json:"comment"`

	Type      payment.Direction `json:"type" binding:"required"`
	PartyType payment.PartyKind `json:"partyType" binding:"required"`
	PartyID   *id.ID            `json:"partyId"`

	Amount   types.Money `json:"amount"`
	Currency string      `json:"currency"`

	RelatedInvoices []payment.InvoiceRef `json:"relatedInvoices"`
}

// ToEntity converts the payload to a new transaction.
func (r *TransactionPayload) ToEntity() *payment.Transaction {
	t := payment.New(r.Type, r.PartyType, r.Amount)
	r.ApplyTo(t)
	return t
}

// ApplyTo copies the payload onto an existing transaction.
func (r *TransactionPayload) ApplyTo(t *payment.Transaction) {
	t.Number = r.Number
	t.Date = r.Date
	t.Comment = r.Comment
	t.Type = r.Type
	t.PartyType = r.PartyType
	t.PartyID = r.PartyID
	t.Amount = r.Amount
	if r.Currency != "" {
		t.Currency = r.Currency
	}
	t.RelatedInvoices = r.RelatedInvoices
}

// UpdateTransactionRequest adds the version check to the payload.
type UpdateTransactionRequest struct {
	TransactionPayload
	Version int `json:"version" binding:"required"`
}
