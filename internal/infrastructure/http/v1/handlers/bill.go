package handlers

import (
	"github.com/gin-gonic/gin"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/domain"
	"exportdoc/internal/domain/documents/bill"
	"exportdoc/internal/infrastructure/http/v1/dto"
)

// BillHandler serves all three vendor bill variants; the kind comes from
// the route.
type BillHandler struct {
	*BaseHandler
	service *bill.Service
	kind    bill.Kind
}

// NewBillHandler creates a bill handler bound to one kind.
func NewBillHandler(base *BaseHandler, service *bill.Service, kind bill.Kind) *BillHandler {
	return &BillHandler{
		BaseHandler: base,
		service:     service,
		kind:        kind,
	}
}

// List handles GET /documents/bills/{kind}.
func (h *BillHandler) List(c *gin.Context) {
	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	result, err := h.service.List(c.Request.Context(), h.kind, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      result.Items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /documents/bills/{kind}/:id.
func (h *BillHandler) Get(c *gin.Context) {
	billID, ok := h.ParseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), billID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if b.Kind != h.kind {
		h.Error(c, apperror.NewNotFound("bill", billID.String()))
		return
	}

	h.OK(c, b)
}

// Create handles POST /documents/bills/{kind}.
func (h *BillHandler) Create(c *gin.Context) {
	var req dto.BillPayload
	if !h.BindJSON(c, &req) {
		return
	}

	b := req.ToEntity(h.kind)

	if err := h.service.Create(c.Request.Context(), b); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, b)
}

// Update handles PUT /documents/bills/{kind}/:id.
func (h *BillHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	billID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateBillRequest
	if !h.BindJSON(c, &req) {
		return
	}

	b, err := h.service.GetByID(ctx, billID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if b.Kind != h.kind {
		h.Error(c, apperror.NewNotFound("bill", billID.String()))
		return
	}

	req.ApplyTo(b)
	b.Version = req.Version

	if err := h.service.Update(ctx, b); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, b)
}

// Delete handles DELETE /documents/bills/{kind}/:id.
func (h *BillHandler) Delete(c *gin.Context) {
	billID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), billID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
