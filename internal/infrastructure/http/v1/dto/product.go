package dto

import (
	"exportdoc/internal/core/id"
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code       string       `json:"code"`
	Name       string       `json:"name" binding:"required"`
	SizeID     id.ID        `json:"sizeId" binding:"required"`
	SalesPrice *types.Money `json:"salesPrice"`
	BoxWeight  *float64     `json:"boxWeight"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.New(r.Code, r.Name, r.SizeID)
	p.SalesPrice = r.SalesPrice
	p.BoxWeight = r.BoxWeight
	return p
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code       string       `json:"code"`
	Name       string       `json:"name" binding:"required"`
	SizeID     id.ID        `json:"sizeId" binding:"required"`
	SalesPrice *types.Money `json:"salesPrice"`
	BoxWeight  *float64     `json:"boxWeight"`
	Version    int          `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.SizeID = r.SizeID
	p.SalesPrice = r.SalesPrice
	p.BoxWeight = r.BoxWeight
	p.Version = r.Version
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	CatalogResponse
	SizeID     string       `json:"sizeId"`
	SalesPrice *types.Money `json:"salesPrice,omitempty"`
	BoxWeight  *float64     `json:"boxWeight,omitempty"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		SizeID:          p.SizeID.String(),
		SalesPrice:      p.SalesPrice,
		BoxWeight:       p.BoxWeight,
	}
}
