package handlers

import (
	"github.com/gin-gonic/gin"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/domain/catalogs/party"
	"exportdoc/internal/infrastructure/http/v1/dto"
)

// PartyHandler extends the generic catalog handler with type-scoped
// listing.
type PartyHandler struct {
	*CatalogHandler[*party.Party, dto.CreatePartyRequest, dto.UpdatePartyRequest]
	service *party.Service
}

// NewPartyHandler creates a configured handler for the Party catalog.
func NewPartyHandler(base *BaseHandler, service *party.Service) *PartyHandler {
	config := CatalogHandlerConfig[
		*party.Party,
		dto.CreatePartyRequest,
		dto.UpdatePartyRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "party",

		MapCreateDTO: func(req dto.CreatePartyRequest) *party.Party {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdatePartyRequest, existing *party.Party) *party.Party {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *party.Party) any {
			return dto.FromParty(entity)
		},
	}

	return &PartyHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// ListByType handles GET /parties/by-type/:type - parties of one role.
func (h *PartyHandler) ListByType(c *gin.Context) {
	partyType := party.Type(c.Param("type"))

	parties, err := h.service.ListByType(c.Request.Context(), partyType)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(parties))
	for i, p := range parties {
		items[i] = dto.FromParty(p)
	}

	h.OK(c, gin.H{"items": items})
}

// FindByGSTIN handles GET /parties/by-gstin/:gstin.
func (h *PartyHandler) FindByGSTIN(c *gin.Context) {
	gstin := c.Param("gstin")
	if gstin == "" {
		h.Error(c, apperror.NewValidation("gstin is required"))
		return
	}

	p, err := h.service.FindByGSTIN(c.Request.Context(), gstin)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromParty(p))
}
