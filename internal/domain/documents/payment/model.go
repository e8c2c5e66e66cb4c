// Package payment provides the Transaction document: money moving between
// the business and a counterparty or government head.
package payment

import (
	"context"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/entity"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
)

// Direction is the payment polarity. The convention is fixed:
// credit = payment made by the business to a vendor;
// debit = payment received by the business from a client or government.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// PartyKind identifies which ledger a transaction belongs to. Beyond the
// party catalog types it includes the government heads money is recovered
// from.
type PartyKind string

const (
	PartyClient       PartyKind = "client"
	PartyManufacturer PartyKind = "manufacturer"
	PartyTransporter  PartyKind = "transporter"
	PartySupplier     PartyKind = "supplier"
	PartyPallet       PartyKind = "pallet"
	PartyGST          PartyKind = "gst"
	PartyDutyDrawback PartyKind = "duty_drawback"
	PartyRoadTP       PartyKind = "road_tp"
)

// InvoiceRef points a payment at the invoice(s) it settles.
// Settlement is a simple selection-sum; no per-line reconciliation.
type InvoiceRef struct {
	Type string `json:"type"`
	ID   id.ID  `json:"id"`
}

// Transaction is one payment record. Document.Date is the payment date,
// Document.Comment the free-form description shown on ledgers.
type Transaction struct {
	entity.Document

	Type      Direction `db:"type" json:"type"`
	PartyType PartyKind `db:"party_type" json:"partyType"`

	// PartyID references the Party catalog; nil for government heads
	PartyID *id.ID `db:"party_id" json:"partyId,omitempty"`

	Amount   types.Money `db:"amount" json:"amount"`
	Currency string      `db:"currency" json:"currency"`

	RelatedInvoices []InvoiceRef `db:"-" json:"relatedInvoices,omitempty"`
}

// New creates a new transaction.
func New(direction Direction, partyType PartyKind, amount types.Money) *Transaction {
	return &Transaction{
		Document:  entity.NewDocument(),
		Type:      direction,
		PartyType: partyType,
		Amount:    amount,
		Currency:  "INR",
	}
}

// Validate implements entity.Validatable.
func (t *Transaction) Validate(ctx context.Context) error {
	if err := t.Document.Validate(ctx); err != nil {
		return err
	}

	if t.Type != DirectionCredit && t.Type != DirectionDebit {
		return apperror.NewValidation("invalid transaction type").
			WithDetail("field", "type").
			WithDetail("value", string(t.Type))
	}

	if !isValidPartyKind(t.PartyType) {
		return apperror.NewValidation("invalid party type").
			WithDetail("field", "partyType").
			WithDetail("value", string(t.PartyType))
	}

	if t.Amount.IsNegative() {
		return apperror.NewValidation("amount cannot be negative").
			WithDetail("field", "amount")
	}

	return nil
}

func isValidPartyKind(k PartyKind) bool {
	switch k {
	case PartyClient, PartyManufacturer, PartyTransporter, PartySupplier,
		PartyPallet, PartyGST, PartyDutyDrawback, PartyRoadTP:
		return true
	}
	return false
}
