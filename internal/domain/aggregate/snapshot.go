// Package aggregate computes the financial rollups of an export document:
// per-line SQM and amounts, size/rate grouping, document totals with GST
// and currency conversion. Every function is pure over immutable snapshots
// and degrades dangling references to zero contribution instead of failing,
// because half-entered documents are the normal case during data entry.
package aggregate

import (
	"exportdoc/internal/core/id"
	"exportdoc/internal/domain/catalogs/product"
	"exportdoc/internal/domain/catalogs/size"
)

// Snapshot is an immutable indexed view of the product and size reference
// tables, taken once per computation. Soft-deleted entries are excluded at
// construction so no caller has to re-check the flag.
type Snapshot struct {
	products map[id.ID]*product.Product
	sizes    map[id.ID]*size.Size
}

// NewSnapshot indexes the reference tables by ID.
func NewSnapshot(products []*product.Product, sizes []*size.Size) *Snapshot {
	s := &Snapshot{
		products: make(map[id.ID]*product.Product, len(products)),
		sizes:    make(map[id.ID]*size.Size, len(sizes)),
	}
	for _, p := range products {
		if p == nil || p.IsDeleted {
			continue
		}
		s.products[p.ID] = p
	}
	for _, sz := range sizes {
		if sz == nil || sz.IsDeleted {
			continue
		}
		s.sizes[sz.ID] = sz
	}
	return s
}

// Product resolves a product by ID; nil when unknown.
func (s *Snapshot) Product(productID id.ID) *product.Product {
	return s.products[productID]
}

// Size resolves a size by ID; nil when unknown.
func (s *Snapshot) Size(sizeID id.ID) *size.Size {
	return s.sizes[sizeID]
}

// Resolve follows a product reference down to its size. Both must resolve
// for a line item to carry value; a nil in either position marks the line
// as unresolvable.
func (s *Snapshot) Resolve(productID id.ID) (*product.Product, *size.Size) {
	p := s.products[productID]
	if p == nil {
		return nil, nil
	}
	return p, s.sizes[p.SizeID]
}
