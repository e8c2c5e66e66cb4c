// Package size provides the Size catalog.
// Sizes hold the physical reference data shared by many products:
// square meters per box, box weight, prices and HSN classification.
package size

import (
	"context"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/entity"
	"exportdoc/internal/core/types"
)

// Size represents one tile size (e.g. "600x1200").
// Immutable reference data; aggregation reads it, never writes it.
type Size struct {
	entity.Catalog

	// SqmPerBox is the billing conversion factor: boxes × SqmPerBox = SQM
	SqmPerBox float64 `db:"sqm_per_box" json:"sqmPerBox"`

	// BoxWeight is the default weight of one box in kg
	BoxWeight float64 `db:"box_weight" json:"boxWeight"`

	// PurchasePrice is the default purchase rate per SQM
	PurchasePrice types.Money `db:"purchase_price" json:"purchasePrice"`

	// SalesPrice is the default sales rate per SQM
	SalesPrice types.Money `db:"sales_price" json:"salesPrice"`

	// HSNCode is the customs classification code
	HSNCode string `db:"hsn_code" json:"hsnCode"`

	// PalletDetails is a free-form packing note
	PalletDetails string `db:"pallet_details" json:"palletDetails,omitempty"`
}

// New creates a new Size with required fields.
func New(code, label string, sqmPerBox, boxWeight float64) *Size {
	return &Size{
		Catalog:   entity.NewCatalog(code, label),
		SqmPerBox: sqmPerBox,
		BoxWeight: boxWeight,
	}
}

// Validate implements entity.Validatable interface.
func (s *Size) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if s.SqmPerBox < 0 {
		return apperror.NewValidation("sqmPerBox cannot be negative").
			WithDetail("field", "sqmPerBox").
			WithDetail("value", s.SqmPerBox)
	}

	if s.BoxWeight < 0 {
		return apperror.NewValidation("boxWeight cannot be negative").
			WithDetail("field", "boxWeight").
			WithDetail("value", s.BoxWeight)
	}

	return nil
}
