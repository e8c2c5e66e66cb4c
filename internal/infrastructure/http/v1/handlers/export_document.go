package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"exportdoc/internal/domain"
	"exportdoc/internal/domain/documents/exportdoc"
	"exportdoc/internal/infrastructure/http/v1/dto"
	"exportdoc/pkg/numerator"
)

// ExportDocumentHandler serves the export document CRUD API.
type ExportDocumentHandler struct {
	*BaseHandler
	service *exportdoc.Service
}

// NewExportDocumentHandler creates a new export document handler.
func NewExportDocumentHandler(base *BaseHandler, service *exportdoc.Service) *ExportDocumentHandler {
	return &ExportDocumentHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /documents/export.
func (h *ExportDocumentHandler) List(c *gin.Context) {
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

// Get handles GET /documents/export/:id.
func (h *ExportDocumentHandler) Get(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, doc)
}

// Create handles POST /documents/export.
func (h *ExportDocumentHandler) Create(c *gin.Context) {
	var req dto.ExportDocumentPayload
	if !h.BindJSON(c, &req) {
		return
	}

	doc := req.ToEntity()

	if err := h.service.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, doc)
}

// Update handles PUT /documents/export/:id.
func (h *ExportDocumentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateExportDocumentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(doc)
	doc.Version = req.Version

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, doc)
}

// Delete handles DELETE /documents/export/:id.
func (h *ExportDocumentHandler) Delete(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// NextNumber handles GET /documents/export/next-number.
// Optional ?date=RFC3339 selects the fiscal year; defaults to today.
func (h *ExportDocumentHandler) NextNumber(c *gin.Context) {
	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err == nil {
			date = parsed
		}
	}

	number, err := h.service.NextInvoiceNumber(c.Request.Context(), numerator.FiscalYear(date))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NextNumberResponse{Number: number})
}
