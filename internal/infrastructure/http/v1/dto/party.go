package dto

import (
	"exportdoc/internal/domain/catalogs/party"
)

// --- Request DTOs ---

// CreatePartyRequest is the request body for creating a party.
type CreatePartyRequest struct {
	Code          string     `json:"code"`
	Name          string     `json:"name" binding:"required"`
	Type          party.Type `json:"type" binding:"required"`
	GSTIN         *string    `json:"gstin"`
	IEC           *string    `json:"iec"`
	Address       *string    `json:"address"`
	Country       *string    `json:"country"`
	Phone         *string    `json:"phone"`
	Email         *string    `json:"email"`
	ContactPerson *string    `json:"contactPerson"`
	Comment       *string    `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePartyRequest) ToEntity() *party.Party {
	p := party.New(r.Code, r.Name, r.Type)
	p.GSTIN = r.GSTIN
	p.IEC = r.IEC
	p.Address = r.Address
	p.Country = r.Country
	p.Phone = r.Phone
	p.Email = r.Email
	p.ContactPerson = r.ContactPerson
	p.Comment = r.Comment
	return p
}

// UpdatePartyRequest is the request body for updating a party.
type UpdatePartyRequest struct {
	Code          string     `json:"code"`
	Name          string     `json:"name" binding:"required"`
	Type          party.Type `json:"type" binding:"required"`
	GSTIN         *string    `json:"gstin"`
	IEC           *string    `json:"iec"`
	Address       *string    `json:"address"`
	Country       *string    `json:"country"`
	Phone         *string    `json:"phone"`
	Email         *string    `json:"email"`
	ContactPerson *string    `json:"contactPerson"`
	Comment       *string    `json:"comment"`
	Version       int        `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdatePartyRequest) ApplyTo(p *party.Party) {
	p.Code = r.Code
	p.Name = r.Name
	p.Type = r.Type
	p.GSTIN = r.GSTIN
	p.IEC = r.IEC
	p.Address = r.Address
	p.Country = r.Country
	p.Phone = r.Phone
	p.Email = r.Email
	p.ContactPerson = r.ContactPerson
	p.Comment = r.Comment
	p.Version = r.Version
}

// --- Response DTOs ---

// PartyResponse is the response body for a party.
type PartyResponse struct {
	CatalogResponse
	Type          party.Type `json:"type"`
	GSTIN         *string    `json:"gstin,omitempty"`
	IEC           *string    `json:"iec,omitempty"`
	Address       *string    `json:"address,omitempty"`
	Country       *string    `json:"country,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Email         *string    `json:"email,omitempty"`
	ContactPerson *string    `json:"contactPerson,omitempty"`
	Comment       *string    `json:"comment,omitempty"`
}

// FromParty creates response DTO from domain entity.
func FromParty(p *party.Party) *PartyResponse {
	return &PartyResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		Type:            p.Type,
		GSTIN:           p.GSTIN,
		IEC:             p.IEC,
		Address:         p.Address,
		Country:         p.Country,
		Phone:           p.Phone,
		Email:           p.Email,
		ContactPerson:   p.ContactPerson,
		Comment:         p.Comment,
	}
}
