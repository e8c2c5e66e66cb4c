// Package exportdoc provides the ExportDocument aggregate: one export
// invoice with its manufacturers, containers and product/sample line items.
package exportdoc

import (
	"context"
	"strconv"
	"strings"
	"time"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/entity"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
)

// WeightAdvisoryLimitKg is the soft per-line weight threshold. Lines over
// this weight are flagged in aggregation warnings but never rejected.
const WeightAdvisoryLimitKg = 27000

// ProductItem is one product or sample line inside a container.
// Sample lines share the shape; their value is zeroed at aggregation time.
type ProductItem struct {
	LineID id.ID `db:"line_id" json:"id"`

	// ProductID references the Product catalog. Lines with dangling
	// references contribute nothing to any total.
	ProductID id.ID `db:"product_id" json:"productId"`

	// Boxes shipped on this line
	Boxes float64 `db:"boxes" json:"boxes"`

	// NetWeight/GrossWeight in kg; when absent, net weight is derived
	// from boxes × box weight
	NetWeight   *float64 `db:"net_weight" json:"netWeight,omitempty"`
	GrossWeight *float64 `db:"gross_weight" json:"grossWeight,omitempty"`

	// Rate is the negotiated price per SQM; absent means zero
	Rate *types.Money `db:"rate" json:"rate,omitempty"`
}

// ContainerItem is one physical container within an export document.
type ContainerItem struct {
	LineID id.ID `db:"line_id" json:"id"`

	ContainerNo      string `db:"container_no" json:"containerNo"`
	TruckNumber      string `db:"truck_number" json:"truckNumber"`
	BuiltyNo         string `db:"builty_no" json:"builtyNo"`
	RFIDSeal         string `db:"rfid_seal" json:"rfidSeal"`
	LineSeal         string `db:"line_seal" json:"lineSeal"`
	TareWeight       string `db:"tare_weight" json:"tareWeight"`
	StartPalletNo    string `db:"start_pallet_no" json:"startPalletNo"`
	EndPalletNo      string `db:"end_pallet_no" json:"endPalletNo"`
	TotalPallets     string `db:"total_pallets" json:"totalPallets"`
	WeighingSlipNo   string `db:"weighing_slip_no" json:"weighingSlipNo"`
	WeighingDateTime string `db:"weighing_date_time" json:"weighingDateTime"`

	ProductItems []ProductItem `db:"-" json:"productItems"`
	SampleItems  []ProductItem `db:"-" json:"sampleItems"`
}

// RecomputePallets derives TotalPallets from the start/end pallet numbers.
// Always recomputed, never hand-entered: (end - start + 1) when both are
// numeric and end >= start > 0, else empty.
func (c *ContainerItem) RecomputePallets() {
	start, err1 := strconv.Atoi(strings.TrimSpace(c.StartPalletNo))
	end, err2 := strconv.Atoi(strings.TrimSpace(c.EndPalletNo))
	if err1 != nil || err2 != nil || start <= 0 || end < start {
		c.TotalPallets = ""
		return
	}
	c.TotalPallets = strconv.Itoa(end - start + 1)
}

// ManufacturerDetail links one manufacturer's tax invoice to the shipment.
// An export document has 1..N of these (multi-manufacturer shipments).
type ManufacturerDetail struct {
	LineID           id.ID      `db:"line_id" json:"id"`
	ManufacturerID   id.ID      `db:"manufacturer_id" json:"manufacturerId"`
	InvoiceNumber    string     `db:"invoice_number" json:"invoiceNumber"`
	InvoiceDate      *time.Time `db:"invoice_date" json:"invoiceDate,omitempty"`
	PermissionNumber string     `db:"permission_number" json:"permissionNumber"`
}

// ShippingRef is a numbered shipping document reference (e-way bill,
// shipping bill, bill of lading) with optional scanned file path.
type ShippingRef struct {
	Number   string     `json:"number,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Document string     `json:"document,omitempty"`
}

// ExportDocument is the root aggregate for one export shipment.
// Document.Number holds the export invoice number, Document.Date the
// export invoice date.
type ExportDocument struct {
	entity.Document

	ExporterID        id.ID  `db:"exporter_id" json:"exporterId"`
	ClientID          id.ID  `db:"client_id" json:"clientId"`
	TransporterID     id.ID  `db:"transporter_id" json:"transporterId"`
	PerformaInvoiceID *id.ID `db:"performa_invoice_id" json:"performaInvoiceId,omitempty"`
	PurchaseOrderID   *id.ID `db:"purchase_order_id" json:"purchaseOrderId,omitempty"`

	// ConversionRate is the single fixed exchange rate stored per
	// document (wire name kept as conversationRate to match legacy data)
	ConversionRate types.Money `db:"conversion_rate" json:"conversationRate"`

	// GST is the tax percentage string, e.g. "18%"
	GST string `db:"gst" json:"gst"`

	// Freight in document currency
	Freight types.Money `db:"freight" json:"freight"`

	// Discount in document currency (optional)
	Discount *types.Money `db:"discount" json:"discount,omitempty"`

	CountryOfFinalDestination string `db:"country_of_final_destination" json:"countryOfFinalDestination"`
	PortOfLoading             string `db:"port_of_loading" json:"portOfLoading"`
	PortOfDischarge           string `db:"port_of_discharge" json:"portOfDischarge"`
	FinalDestination          string `db:"final_destination" json:"finalDestination"`

	TermsOfDeliveryAndPayment string `db:"terms_of_delivery_and_payment" json:"termsOfDeliveryAndPayment"`

	ExchangeNotification string     `db:"exchange_notification" json:"exchangeNotification"`
	ExchangeDate         *time.Time `db:"exchange_date" json:"exchangeDate,omitempty"`

	EwayBill     ShippingRef `db:"-" json:"ewayBill"`
	ShippingBill ShippingRef `db:"-" json:"shippingBill"`
	BL           ShippingRef `db:"-" json:"bl"`

	ManufacturerDetails []ManufacturerDetail `db:"-" json:"manufacturerDetails"`
	ContainerItems      []ContainerItem      `db:"-" json:"containerItems"`
}

// New creates a new export document.
func New(exporterID, clientID, transporterID id.ID) *ExportDocument {
	return &ExportDocument{
		Document:       entity.NewDocument(),
		ExporterID:     exporterID,
		ClientID:       clientID,
		TransporterID:  transporterID,
		ConversionRate: types.Zero(),
		Freight:        types.Zero(),
	}
}

// AddContainer appends a container and recomputes its pallet count.
func (d *ExportDocument) AddContainer(c ContainerItem) {
	if id.IsNil(c.LineID) {
		c.LineID = id.New()
	}
	c.RecomputePallets()
	d.ContainerItems = append(d.ContainerItems, c)
}

// Normalize re-derives every computed field on the document. Called by the
// service before each save so hand-entered pallet counts never survive.
func (d *ExportDocument) Normalize() {
	for i := range d.ContainerItems {
		if id.IsNil(d.ContainerItems[i].LineID) {
			d.ContainerItems[i].LineID = id.New()
		}
		d.ContainerItems[i].RecomputePallets()
		for j := range d.ContainerItems[i].ProductItems {
			if id.IsNil(d.ContainerItems[i].ProductItems[j].LineID) {
				d.ContainerItems[i].ProductItems[j].LineID = id.New()
			}
		}
		for j := range d.ContainerItems[i].SampleItems {
			if id.IsNil(d.ContainerItems[i].SampleItems[j].LineID) {
				d.ContainerItems[i].SampleItems[j].LineID = id.New()
			}
		}
	}
	for i := range d.ManufacturerDetails {
		if id.IsNil(d.ManufacturerDetails[i].LineID) {
			d.ManufacturerDetails[i].LineID = id.New()
		}
	}
}

// Validate implements entity.Validatable.
func (d *ExportDocument) Validate(ctx context.Context) error {
	if err := d.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(d.ExporterID) {
		return apperror.NewValidation("exporter is required").
			WithDetail("field", "exporterId")
	}

	if id.IsNil(d.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	if len(d.ManufacturerDetails) == 0 {
		return apperror.NewValidation("at least one manufacturer detail is required").
			WithDetail("field", "manufacturerDetails")
	}

	for i, md := range d.ManufacturerDetails {
		if id.IsNil(md.ManufacturerID) {
			return apperror.NewValidation("manufacturer is required").
				WithDetail("field", "manufacturerDetails").
				WithDetail("lineNo", i+1)
		}
	}

	for i, c := range d.ContainerItems {
		for j, item := range append(append([]ProductItem{}, c.ProductItems...), c.SampleItems...) {
			if id.IsNil(item.ProductID) {
				return apperror.NewValidation("product is required").
					WithDetail("field", "containerItems").
					WithDetail("containerNo", i+1).
					WithDetail("lineNo", j+1)
			}
			if item.Boxes < 0 {
				return apperror.NewValidation("boxes cannot be negative").
					WithDetail("field", "containerItems").
					WithDetail("containerNo", i+1).
					WithDetail("lineNo", j+1)
			}
		}
	}

	return nil
}
