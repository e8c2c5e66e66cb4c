package handlers

import (
	"github.com/gin-gonic/gin"

	"exportdoc/internal/domain"
	"exportdoc/internal/domain/documents/trade"
	"exportdoc/internal/infrastructure/http/v1/dto"
)

func listFilterFromQuery(h *BaseHandler, c *gin.Context) domain.ListFilter {
	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"
	return filter
}

// --- Performa Invoice ---

// PerformaInvoiceHandler serves the performa invoice CRUD API.
type PerformaInvoiceHandler struct {
	*BaseHandler
	service *trade.PerformaInvoiceService
}

// NewPerformaInvoiceHandler creates a new performa invoice handler.
func NewPerformaInvoiceHandler(base *BaseHandler, service *trade.PerformaInvoiceService) *PerformaInvoiceHandler {
	return &PerformaInvoiceHandler{BaseHandler: base, service: service}
}

// List handles GET /documents/performa-invoices.
func (h *PerformaInvoiceHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listFilterFromQuery(h.BaseHandler, c))
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

// Get handles GET /documents/performa-invoices/:id.
func (h *PerformaInvoiceHandler) Get(c *gin.Context) {
	piID, ok := h.ParseID(c)
	if !ok {
		return
	}

	pi, err := h.service.GetByID(c.Request.Context(), piID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, pi)
}

// Create handles POST /documents/performa-invoices.
func (h *PerformaInvoiceHandler) Create(c *gin.Context) {
	var req dto.PerformaInvoicePayload
	if !h.BindJSON(c, &req) {
		return
	}

	pi := req.ToEntity()

	if err := h.service.Create(c.Request.Context(), pi); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, pi)
}

// Update handles PUT /documents/performa-invoices/:id.
func (h *PerformaInvoiceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	piID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePerformaInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pi, err := h.service.GetByID(ctx, piID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(pi)
	pi.Version = req.Version

	if err := h.service.Update(ctx, pi); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, pi)
}

// Delete handles DELETE /documents/performa-invoices/:id.
func (h *PerformaInvoiceHandler) Delete(c *gin.Context) {
	piID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), piID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// ListByClient handles GET /documents/performa-invoices/by-client/:id.
func (h *PerformaInvoiceHandler) ListByClient(c *gin.Context) {
	clientID, ok := h.ParseID(c)
	if !ok {
		return
	}

	invoices, err := h.service.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"items": invoices})
}

// --- Purchase Order ---

// PurchaseOrderHandler serves the purchase order CRUD API.
type PurchaseOrderHandler struct {
	*BaseHandler
	service *trade.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler.
func NewPurchaseOrderHandler(base *BaseHandler, service *trade.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{BaseHandler: base, service: service}
}

// List handles GET /documents/purchase-orders.
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listFilterFromQuery(h.BaseHandler, c))
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

// Get handles GET /documents/purchase-orders/:id.
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	poID, ok := h.ParseID(c)
	if !ok {
		return
	}

	po, err := h.service.GetByID(c.Request.Context(), poID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, po)
}

// Create handles POST /documents/purchase-orders.
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req dto.PurchaseOrderPayload
	if !h.BindJSON(c, &req) {
		return
	}

	po := req.ToEntity()

	if err := h.service.Create(c.Request.Context(), po); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, po)
}

// Update handles PUT /documents/purchase-orders/:id.
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	poID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePurchaseOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	po, err := h.service.GetByID(ctx, poID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(po)
	po.Version = req.Version

	if err := h.service.Update(ctx, po); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, po)
}

// Delete handles DELETE /documents/purchase-orders/:id.
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	poID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), poID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
