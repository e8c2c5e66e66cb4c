package handlers

import (
	"github.com/gin-gonic/gin"

	"exportdoc/internal/domain"
	"exportdoc/internal/domain/documents/payment"
	"exportdoc/internal/infrastructure/http/v1/dto"
)

// TransactionHandler serves the payment transaction CRUD API.
type TransactionHandler struct {
	*BaseHandler
	service *payment.Service
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(base *BaseHandler, service *payment.Service) *TransactionHandler {
	return &TransactionHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /documents/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	result, err := h.service.List(c.Request.Context(), filter)
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

// Get handles GET /documents/transactions/:id.
func (h *TransactionHandler) Get(c *gin.Context) {
	txID, ok := h.ParseID(c)
	if !ok {
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), txID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, t)
}

// Create handles POST /documents/transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.TransactionPayload
	if !h.BindJSON(c, &req) {
		return
	}

	t := req.ToEntity()

	if err := h.service.Create(c.Request.Context(), t); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, t)
}

// Update handles PUT /documents/transactions/:id.
func (h *TransactionHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	txID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	t, err := h.service.GetByID(ctx, txID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(t)
	t.Version = req.Version

	if err := h.service.Update(ctx, t); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, t)
}

// Delete handles DELETE /documents/transactions/:id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	txID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), txID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
