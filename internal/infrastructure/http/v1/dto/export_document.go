package dto

import (
	"time"

	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/documents/exportdoc"
)

// ExportDocumentPayload is the shared request body for creating and
// updating an export document. Number is optional on create: when empty
// the next sequential invoice number is assigned.
type ExportDocumentPayload struct {
	Number  string    `json:"number"`
	Date    time.Time `json:"date" binding:"required"`
	Comment string    `json:"comment"`

	ExporterID        id.ID  `json:"exporterId" binding:"required"`
	ClientID          id.ID  `json:"clientId" binding:"required"`
	TransporterID     id.ID  `json:"transporterId"`
	PerformaInvoiceID *id.ID `json:"performaInvoiceId"`
	PurchaseOrderID   *id.ID `json:"purchaseOrderId"`

	ConversionRate types.Money  `json:"conversationRate"`
	GST            string       `json:"gst"`
	Freight        types.Money  `json:"freight"`
	Discount       *types.Money `json:"discount"`

	CountryOfFinalDestination string `json:"countryOfFinalDestination"`
	PortOfLoading             string `json:"portOfLoading"`
	PortOfDischarge           string `json:"portOfDischarge"`
	FinalDestination          string `json:"finalDestination"`
	TermsOfDeliveryAndPayment string `json:"termsOfDeliveryAndPayment"`

	ExchangeNotification string     `json:"exchangeNotification"`
	ExchangeDate         *time.Time `json:"exchangeDate"`

	EwayBill     exportdoc.ShippingRef `json:"ewayBill"`
	ShippingBill exportdoc.ShippingRef `json:"shippingBill"`
	BL           exportdoc.ShippingRef `json:"bl"`

	ManufacturerDetails []exportdoc.ManufacturerDetail `json:"manufacturerDetails"`
	ContainerItems      []exportdoc.ContainerItem      `json:"containerItems"`
}

// ApplyTo copies the payload onto a document. The document keeps its
// identity and audit fields; everything the client may edit is replaced.
func (r *ExportDocumentPayload) ApplyTo(doc *exportdoc.ExportDocument) {
	if r.Number != "" {
		doc.Number = r.Number
	}
	doc.Date = r.Date
	doc.Comment = r.Comment
	doc.ExporterID = r.ExporterID
	doc.ClientID = r.ClientID
	doc.TransporterID = r.TransporterID
	doc.PerformaInvoiceID = r.PerformaInvoiceID
	doc.PurchaseOrderID = r.PurchaseOrderID
	doc.ConversionRate = r.ConversionRate
	doc.GST = r.GST
	doc.Freight = r.Freight
	doc.Discount = r.Discount
	doc.CountryOfFinalDestination = r.CountryOfFinalDestination
	doc.PortOfLoading = r.PortOfLoading
	doc.PortOfDischarge = r.PortOfDischarge
	doc.FinalDestination = r.FinalDestination
	doc.TermsOfDeliveryAndPayment = r.TermsOfDeliveryAndPayment
	doc.ExchangeNotification = r.ExchangeNotification
	doc.ExchangeDate = r.ExchangeDate
	doc.EwayBill = r.EwayBill
	doc.ShippingBill = r.ShippingBill
	doc.BL = r.BL
	doc.ManufacturerDetails = r.ManufacturerDetails
	doc.ContainerItems = r.ContainerItems
}

// ToEntity converts the payload to a new document.
func (r *ExportDocumentPayload) ToEntity() *exportdoc.ExportDocument {
	doc := exportdoc.New(r.ExporterID, r.ClientID, r.TransporterID)
	r.ApplyTo(doc)
	return doc
}

// UpdateExportDocumentRequest adds the version check to the payload.
type UpdateExportDocumentRequest struct {
	ExportDocumentPayload
	Version int `json:"version" binding:"required"`
}

// NextNumberResponse returns the next free sequential invoice number.
type NextNumberResponse struct {
	Number string `json:"number"`
}
