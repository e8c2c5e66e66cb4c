// Package product provides the Product catalog.
// A product is one tile design belonging to a Size; its sales price and
// box weight override the Size defaults when present.
package product

import (
	"context"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/core/entity"
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/catalogs/size"
)

// Product represents one tile design. Catalog.Name holds the design name.
type Product struct {
	entity.Catalog

	// SizeID references the Size this design is produced in
	SizeID id.ID `db:"size_id" json:"sizeId"`

	// SalesPrice overrides Size.SalesPrice when set
	SalesPrice *types.Money `db:"sales_price" json:"salesPrice,omitempty"`

	// BoxWeight overrides Size.BoxWeight when set
	BoxWeight *float64 `db:"box_weight" json:"boxWeight,omitempty"`
}

// New creates a new Product with required fields.
func New(code, designName string, sizeID id.ID) *Product {
	return &Product{
		Catalog: entity.NewCatalog(code, designName),
		SizeID:  sizeID,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(p.SizeID) {
		return apperror.NewValidation("size is required").
			WithDetail("field", "sizeId")
	}

	if p.BoxWeight != nil && *p.BoxWeight < 0 {
		return apperror.NewValidation("boxWeight cannot be negative").
			WithDetail("field", "boxWeight")
	}

	return nil
}

// --- Ordered fallback resolution ---
// Every per-item figure resolves product value, else size value, else zero.

// ResolveBoxWeight returns the effective box weight for a product.
func ResolveBoxWeight(p *Product, s *size.Size) float64 {
	if p != nil && p.BoxWeight != nil {
		return *p.BoxWeight
	}
	if s != nil {
		return s.BoxWeight
	}
	return 0
}

// ResolveSalesPrice returns the effective sales rate per SQM.
func ResolveSalesPrice(p *Product, s *size.Size) types.Money {
	if p != nil && p.SalesPrice != nil {
		return *p.SalesPrice
	}
	if s != nil {
		return s.SalesPrice
	}
	return types.Zero()
}
