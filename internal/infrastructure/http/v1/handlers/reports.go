package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"exportdoc/internal/core/apperror"
	"exportdoc/internal/domain/documents/payment"
	"exportdoc/internal/domain/gstreport"
	"exportdoc/internal/domain/ledger"
	"exportdoc/internal/domain/reports"
)

// DocumentRenderer renders an aggregated export document to PDF.
type DocumentRenderer interface {
	CustomsInvoice(ctx context.Context, report *reports.DocumentReport) ([]byte, error)
	PackingList(ctx context.Context, report *reports.DocumentReport) ([]byte, error)
}

// ReportsHandler serves the computed read models: document aggregation,
// ledgers, the GST summary and PDF rendering.
type ReportsHandler struct {
	*BaseHandler
	service  *reports.Service
	renderer DocumentRenderer
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service, renderer DocumentRenderer) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
		renderer:    renderer,
	}
}

func (h *ReportsHandler) ledgerQuery(c *gin.Context, side string) ledger.Query {
	return ledger.Query{
		Filter: c.Query(side + "Filter"),
		Page:   h.ParseIntQuery(c, side+"Page", 1),
	}
}

// Document handles GET /reports/documents/:id - grouped lines and totals.
func (h *ReportsHandler) Document(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	report, err := h.service.Document(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{
		"document": report.Document,
		"lines":    report.Lines,
		"totals":   report.Totals,
	})
}

// PartyLedger handles GET /reports/ledgers/:kind/:id.
func (h *ReportsHandler) PartyLedger(c *gin.Context) {
	kind := payment.PartyKind(c.Param("kind"))

	partyID, ok := h.ParseID(c)
	if !ok {
		return
	}

	result, err := h.service.PartyLedger(c.Request.Context(), kind, partyID,
		h.ledgerQuery(c, "debit"), h.ledgerQuery(c, "credit"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}

// ClientLedger handles GET /reports/ledgers/client/:id.
func (h *ReportsHandler) ClientLedger(c *gin.Context) {
	clientID, ok := h.ParseID(c)
	if !ok {
		return
	}

	result, err := h.service.ClientLedger(c.Request.Context(), clientID,
		h.ledgerQuery(c, "invoiced"), h.ledgerQuery(c, "payments"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}

// GSTSummary handles GET /reports/gst.
func (h *ReportsHandler) GSTSummary(c *gin.Context) {
	paidQ := gstreport.Query{
		Filter: c.Query("paidFilter"),
		Page:   h.ParseIntQuery(c, "paidPage", 1),
	}
	receivedQ := gstreport.Query{
		Filter: c.Query("receivedFilter"),
		Page:   h.ParseIntQuery(c, "receivedPage", 1),
	}

	result, err := h.service.GSTSummary(c.Request.Context(), paidQ, receivedQ)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}

// CustomsInvoicePDF handles GET /reports/documents/:id/pdf/invoice.
func (h *ReportsHandler) CustomsInvoicePDF(c *gin.Context) {
	h.renderPDF(c, h.renderer.CustomsInvoice, "customs-invoice.pdf")
}

// PackingListPDF handles GET /reports/documents/:id/pdf/packing-list.
func (h *ReportsHandler) PackingListPDF(c *gin.Context) {
	h.renderPDF(c, h.renderer.PackingList, "packing-list.pdf")
}

func (h *ReportsHandler) renderPDF(c *gin.Context, render func(context.Context, *reports.DocumentReport) ([]byte, error), filename string) {
	if h.renderer == nil {
		h.Error(c, apperror.NewConflict("pdf rendering is not configured"))
		return
	}

	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	report, err := h.service.Document(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	pdf, err := render(c.Request.Context(), report)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", pdf)
}
