package handlers

import (
	"exportdoc/internal/domain/catalogs/size"
	"exportdoc/internal/infrastructure/http/v1/dto"
)

// SizeHTTPHandler is a type alias to shorten signatures.
type SizeHTTPHandler = CatalogHandler[
	*size.Size,
	dto.CreateSizeRequest,
	dto.UpdateSizeRequest,
]

// NewSizeHandler creates a configured generic handler for the Size catalog.
func NewSizeHandler(base *BaseHandler, service *size.Service) *SizeHTTPHandler {
	config := CatalogHandlerConfig[
		*size.Size,
		dto.CreateSizeRequest,
		dto.UpdateSizeRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "size",

		MapCreateDTO: func(req dto.CreateSizeRequest) *size.Size {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateSizeRequest, existing *size.Size) *size.Size {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *size.Size) any {
			return dto.FromSize(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
