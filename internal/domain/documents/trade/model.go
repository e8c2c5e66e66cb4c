// Package trade provides the pre-shipment documents: the performa invoice
// sent to a client and the purchase order placed with a manufacturer
// against it. A purchase order carries no client reference of its own; the
// client is reached transitively through its performa invoice.
package trade

import (
	"context"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/entity"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
)

// Item is one quoted line on a performa invoice or purchase order.
type Item struct {
	LineID      id.ID       `db:"line_id" json:"lineId"`
	ProductID   *id.ID      `db:"product_id" json:"productId,omitempty"`
	SizeID      *id.ID      `db:"size_id" json:"sizeId,omitempty"`
	Description string      `db:"description" json:"description"`
	Boxes       float64     `db:"boxes" json:"boxes"`
	Rate        types.Money `db:"rate" json:"rate"`
}

// PerformaInvoice is the quotation document sent to a client before an
// export shipment is arranged.
type PerformaInvoice struct {
	entity.Document

	ClientID id.ID  `db:"client_id" json:"clientId"`
	Items    []Item `db:"-" json:"items,omitempty"`

	Currency string `db:"currency" json:"currency,omitempty"`

	TermsOfDeliveryAndPayment string `db:"terms_of_delivery_and_payment" json:"termsOfDeliveryAndPayment,omitempty"`
	PortOfLoading             string `db:"port_of_loading" json:"portOfLoading,omitempty"`
	PortOfDischarge           string `db:"port_of_discharge" json:"portOfDischarge,omitempty"`
}

// NewPerformaInvoice creates a new performa invoice for a client.
func NewPerformaInvoice(clientID id.ID) *PerformaInvoice {
	return &PerformaInvoice{
		Document: entity.NewDocument(),
		ClientID: clientID,
	}
}

// Normalize assigns line IDs to new items.
func (pi *PerformaInvoice) Normalize() {
	normalizeItems(pi.Items)
}

func normalizeItems(items []Item) {
	for i := range items {
		if id.IsNil(items[i].LineID) {
			items[i].LineID = id.New()
		}
	}
}

// Validate implements entity.Validatable.
func (pi *PerformaInvoice) Validate(ctx context.Context) error {
	if err := pi.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(pi.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	for _, it := range pi.Items {
		if it.Boxes < 0 {
			return apperror.NewValidation("boxes cannot be negative").
				WithDetail("lineId", it.LineID)
		}
		if it.Rate.IsNegative() {
			return apperror.NewValidation("rate cannot be negative").
				WithDetail("lineId", it.LineID)
		}
	}

	return nil
}

// PurchaseOrder is the order placed with a manufacturer against a performa
// invoice.
type PurchaseOrder struct {
	entity.Document

	PerformaInvoiceID id.ID  `db:"performa_invoice_id" json:"performaInvoiceId"`
	ManufacturerID    id.ID  `db:"manufacturer_id" json:"manufacturerId"`
	Items             []Item `db:"-" json:"items,omitempty"`

	DeliveryTerms string `db:"delivery_terms" json:"deliveryTerms,omitempty"`
}

// NewPurchaseOrder creates a new purchase order against a performa invoice.
func NewPurchaseOrder(performaInvoiceID, manufacturerID id.ID) *PurchaseOrder {
	return &PurchaseOrder{
		Document:          entity.NewDocument(),
		PerformaInvoiceID: performaInvoiceID,
		ManufacturerID:    manufacturerID,
	}
}

// Normalize assigns line IDs to new items.
func (po *PurchaseOrder) Normalize() {
	normalizeItems(po.Items)
}

// Validate implements entity.Validatable.
func (po *PurchaseOrder) Validate(ctx context.Context) error {
	if err := po.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(po.PerformaInvoiceID) {
		return apperror.NewValidation("performa invoice is required").
			WithDetail("field", "performaInvoiceId")
	}

	if id.IsNil(po.ManufacturerID) {
		return apperror.NewValidation("manufacturer is required").
			WithDetail("field", "manufacturerId")
	}

	return nil
}
