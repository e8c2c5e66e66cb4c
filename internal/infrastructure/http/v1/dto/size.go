package dto

import (
	"exportdoc/internal/core/types"
	"exportdoc/internal/domain/catalogs/size"
)

// --- Request DTOs ---

// CreateSizeRequest is the request body for creating a size.
type CreateSizeRequest struct {
	Code          string      `json:"code"`
	Name          string      `json:"name" binding:"required"`
	SqmPerBox     float64     `json:"sqmPerBox"`
	BoxWeight     float64     `json:"boxWeight"`
	PurchasePrice types.Money `json:"purchasePrice"`
	SalesPrice    types.Money `json:"salesPrice"`
	HSNCode       string      `json:"hsnCode"`
	PalletDetails string      `json:"palletDetails"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSizeRequest) ToEntity() *size.Size {
	s := size.New(r.Code, r.Name, r.SqmPerBox, r.BoxWeight)
	s.PurchasePrice = r.PurchasePrice
	s.SalesPrice = r.SalesPrice
	s.HSNCode = r.HSNCode
	s.PalletDetails = r.PalletDetails
	return s
}

// UpdateSizeRequest is the request body for updating a size.
type UpdateSizeRequest struct {
	Code          string      `json:"code"`
	Name          string      `json:"name" binding:"required"`
	SqmPerBox     float64     `json:"sqmPerBox"`
	BoxWeight     float64     `json:"boxWeight"`
	PurchasePrice types.Money `json:"purchasePrice"`
	SalesPrice    types.Money `json:"salesPrice"`
	HSNCode       string      `json:"hsnCode"`
	PalletDetails string      `json:"palletDetails"`
	Version       int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateSizeRequest) ApplyTo(s *size.Size) {
	s.Code = r.Code
	s.Name = r.Name
	s.SqmPerBox = r.SqmPerBox
	s.BoxWeight = r.BoxWeight
	s.PurchasePrice = r.PurchasePrice
	s.SalesPrice = r.SalesPrice
	s.HSNCode = r.HSNCode
	s.PalletDetails = r.PalletDetails
	s.Version = r.Version
}

// --- Response DTOs ---

// SizeResponse is the response body for a size.
type SizeResponse struct {
	CatalogResponse
	SqmPerBox     float64     `json:"sqmPerBox"`
	BoxWeight     float64     `json:"boxWeight"`
	PurchasePrice types.Money `json:"purchasePrice"`
	SalesPrice    types.Money `json:"salesPrice"`
	HSNCode       string      `json:"hsnCode"`
	PalletDetails string      `json:"palletDetails,omitempty"`
}

// FromSize creates response DTO from domain entity.
func FromSize(s *size.Size) *SizeResponse {
	return &SizeResponse{
		CatalogResponse: FromCatalog(s.Catalog),
		SqmPerBox:       s.SqmPerBox,
		BoxWeight:       s.BoxWeight,
		PurchasePrice:   s.PurchasePrice,
		SalesPrice:      s.SalesPrice,
		HSNCode:         s.HSNCode,
		PalletDetails:   s.PalletDetails,
	}
}
