// Package party provides the Party catalog.
// Parties are every counterparty the business deals with: the exporter
// company itself, overseas clients, manufacturers, transporters, suppliers
// and pallet vendors.
package party

import (
	"context"
	"regexp"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/entity"
)

// Pre-compiled regex patterns for validation (performance optimization)
var (
	gstinRE = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z]{1}[A-Z\d]{1}[Z]{1}[A-Z\d]{1}$`)
	iecRE   = regexp.MustCompile(`^[A-Z0-9]{10}$`)
	emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Type defines the role of a party.
type Type string

const (
	TypeExporter     Type = "exporter"
	TypeClient       Type = "client"
	TypeManufacturer Type = "manufacturer"
	TypeTransporter  Type = "transporter"
	TypeSupplier     Type = "supplier"
	TypePallet       Type = "pallet"
)

// All enumerates every valid party type.
var All = []Type{
	TypeExporter, TypeClient, TypeManufacturer,
	TypeTransporter, TypeSupplier, TypePallet,
}

// Party represents a business counterparty.
type Party struct {
	entity.Catalog

	// Type defines the role this party plays
	Type Type `db:"type" json:"type"`

	// GSTIN - Goods and Services Tax Identification Number (domestic parties)
	GSTIN *string `db:"gstin" json:"gstin,omitempty"`

	// IEC - Importer Exporter Code (exporter only)
	IEC *string `db:"iec" json:"iec,omitempty"`

	// Address is the registered address
	Address *string `db:"address" json:"address,omitempty"`

	// Country for overseas clients
	Country *string `db:"country" json:"country,omitempty"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Email is the primary contact email
	Email *string `db:"email" json:"email,omitempty"`

	// ContactPerson is the primary contact name
	ContactPerson *string `db:"contact_person" json:"contactPerson,omitempty"`

	// Comment is a free-form note
	Comment *string `db:"comment" json:"comment,omitempty"`
}

// New creates a new Party with required fields.
func New(code, name string, partyType Type) *Party {
	return &Party{
		Catalog: entity.NewCatalog(code, name),
		Type:    partyType,
	}
}

// Validate implements entity.Validatable interface.
func (p *Party) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidType(p.Type) {
		return apperror.NewValidation("invalid party type").
			WithDetail("field", "type").
			WithDetail("value", string(p.Type))
	}

	if p.GSTIN != nil && *p.GSTIN != "" && !gstinRE.MatchString(*p.GSTIN) {
		return apperror.NewValidation("invalid GSTIN format").
			WithDetail("field", "gstin")
	}

	if p.IEC != nil && *p.IEC != "" && !iecRE.MatchString(*p.IEC) {
		return apperror.NewValidation("invalid IEC format (must be 10 characters)").
			WithDetail("field", "iec")
	}

	if p.Email != nil && *p.Email != "" && !emailRE.MatchString(*p.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}

// IsVendor returns true for parties the business pays (ledger debit side
// comes from bills).
func (p *Party) IsVendor() bool {
	switch p.Type {
	case TypeManufacturer, TypeTransporter, TypeSupplier, TypePallet:
		return true
	}
	return false
}

func isValidType(t Type) bool {
	for _, v := range All {
		if t == v {
			return true
		}
	}
	return false
}
