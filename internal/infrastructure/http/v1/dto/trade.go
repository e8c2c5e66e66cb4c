package dto

import (
	"time"

	"exportdoc/internal/core/id"
	"exportdoc/internal/domain/documents/trade"
)

// --- Performa Invoice ---

// PerformaInvoicePayload is the shared request body for creating and
// updating a performa invoice.
type PerformaInvoicePayload struct {
	Number  string    `json:"number"`
	Date    time.Time `json:"date" binding:"required"`
	Comment string    `json:"comment"`

	ClientID id.ID        `json:"clientId" binding:"required"`
	Items    []trade.Item `json:"items"`
	Currency string       `json:"currency"`

	TermsOfDeliveryAndPayment string `json:"termsOfDeliveryAndPayment"`
	PortOfLoading             string `json:"portOfLoading"`
	PortOfDischarge           string `json:"portOfDischarge"`
}

// ToEntity converts the payload to a new performa invoice.
func (r *PerformaInvoicePayload) ToEntity() *trade.PerformaInvoice {
	pi := trade.NewPerformaInvoice(r.ClientID)
	r.ApplyTo(pi)
	return pi
}

// ApplyTo copies the payload onto an existing performa invoice.
func (r *PerformaInvoicePayload) ApplyTo(pi *trade.PerformaInvoice) {
	pi.Number = r.Number
	pi.Date = r.Date
	pi.Comment = r.Comment
	pi.ClientID = r.ClientID
	pi.Items = r.Items
	pi.Currency = r.Currency
	pi.TermsOfDeliveryAndPayment = r.TermsOfDeliveryAndPayment
	pi.PortOfLoading = r.PortOfLoading
	pi.PortOfDischarge = r.PortOfDischarge
}

// UpdatePerformaInvoiceRequest adds the version check to the payload.
type UpdatePerformaInvoiceRequest struct {
	PerformaInvoicePayload
	Version int `json:"version" binding:"required"`
}

// --- Purchase Order ---

// PurchaseOrderPayload is the shared request body for creating and
// updating a purchase order.
type PurchaseOrderPayload struct {
	Number  string    `json:"number"`
	Date    time.Time `json:"date" binding:"required"`
	Comment string    `json:"comment"`

	PerformaInvoiceID id.ID        `json:"performaInvoiceId" binding:"required"`
	ManufacturerID    id.ID        `json:"manufacturerId" binding:"required"`
	Items             []trade.Item `json:"items"`
	DeliveryTerms     string       `json:"deliveryTerms"`
}

// ToEntity converts the payload to a new purchase order.
func (r *PurchaseOrderPayload) ToEntity() *trade.PurchaseOrder {
	po := trade.NewPurchaseOrder(r.PerformaInvoiceID, r.ManufacturerID)
	r.ApplyTo(po)
	return po
}

// ApplyTo copies the payload onto an existing purchase order.
func (r *PurchaseOrderPayload) ApplyTo(po *trade.PurchaseOrder) {
	po.Number = r.Number
	po.Date = r.Date
	po.Comment = r.Comment
	po.PerformaInvoiceID = r.PerformaInvoiceID
	po.ManufacturerID = r.ManufacturerID
	po.Items = r.Items
	po.DeliveryTerms = r.DeliveryTerms
}

// UpdatePurchaseOrderRequest adds the version check to the payload.
type UpdatePurchaseOrderRequest struct {
	PurchaseOrderPayload
	Version int `json:"version" binding:"required"`
}
