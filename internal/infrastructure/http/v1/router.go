package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"exportdoc/internal/core/entity"
	"exportdoc/internal/core/id"
	"exportdoc/internal/domain"
	"exportdoc/internal/domain/catalogs/party"
	"exportdoc/internal/domain/catalogs/product"
	"exportdoc/internal/domain/catalogs/size"
	"exportdoc/internal/domain/documents/bill"
	"exportdoc/internal/domain/documents/exportdoc"
	"exportdoc/internal/domain/documents/payment"
	"exportdoc/internal/domain/documents/trade"
	"exportdoc/internal/domain/reports"
	"exportdoc/internal/infrastructure/http/v1/handlers"
	"exportdoc/internal/infrastructure/http/v1/middleware"
	"exportdoc/internal/infrastructure/storage/postgres"
	"exportdoc/internal/infrastructure/storage/postgres/catalog_repo"
	"exportdoc/internal/infrastructure/storage/postgres/document_repo"
	"exportdoc/pkg/logger"
)

// RouterConfig holds everything the router needs to wire the API.
type RouterConfig struct {
	// Pool is the database connection pool (health checks)
	Pool *postgres.Pool

	// TxManager drives every repository
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// Renderer produces PDFs; nil disables the PDF endpoints
	Renderer handlers.DocumentRenderer

	// Audit records entity changes; nil disables the audit trail
	Audit domain.AuditLogger
}

// registerAuditHooks wires audit logging into a catalog service lifecycle.
func registerAuditHooks[T interface {
	entity.Validatable
	GetID() id.ID
}](service *domain.CatalogService[T], audit domain.AuditLogger, entityType string) {
	if audit == nil {
		return
	}
	service.Hooks().OnAfterCreate(func(ctx context.Context, e T) error {
		return audit.LogChange(ctx, entityType, e.GetID(), domain.AuditActionCreate, nil)
	})
	service.Hooks().OnAfterUpdate(func(ctx context.Context, e T) error {
		return audit.LogChange(ctx, entityType, e.GetID(), domain.AuditActionUpdate, nil)
	})
	service.Hooks().OnAfterDelete(func(ctx context.Context, e T) error {
		return audit.LogChange(ctx, entityType, e.GetID(), domain.AuditActionDelete, nil)
	})
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		registerCatalogRoutes(apiV1, cfg)
		registerDocumentRoutes(apiV1, cfg)
		registerReportRoutes(apiV1, cfg)
	}

	return router
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	sizeRepo := catalog_repo.NewSizeRepo(cfg.TxManager)

	// --- SIZES ---
	{
		service := size.NewService(sizeRepo, cfg.TxManager)
		registerAuditHooks(service.CatalogService, cfg.Audit, "size")
		handler := handlers.NewSizeHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/sizes"), handler)
	}

	// --- PRODUCTS ---
	{
		repo := catalog_repo.NewProductRepo(cfg.TxManager)
		service := product.NewService(repo, sizeRepo, cfg.TxManager)
		registerAuditHooks(service.CatalogService, cfg.Audit, "product")
		handler := handlers.NewProductHandler(baseHandler, service)
		group := catalogs.Group("/products")
		group.GET("/by-size/:id", handler.ListBySize)
		RegisterCatalogRoutes(group, handler)
	}

	// --- PARTIES ---
	{
		repo := catalog_repo.NewPartyRepo(cfg.TxManager)
		service := party.NewService(repo, cfg.TxManager)
		registerAuditHooks(service.CatalogService, cfg.Audit, "party")
		handler := handlers.NewPartyHandler(baseHandler, service)
		group := catalogs.Group("/parties")
		group.GET("/by-type/:type", handler.ListByType)
		group.GET("/by-gstin/:gstin", handler.FindByGSTIN)
		RegisterCatalogRoutes(group, handler)
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler()

	performaRepo := document_repo.NewPerformaInvoiceRepo(cfg.TxManager)

	// --- EXPORT DOCUMENTS ---
	{
		repo := document_repo.NewExportDocumentRepo(cfg.TxManager)
		service := exportdoc.NewService(repo, cfg.TxManager)
		if cfg.Audit != nil {
			service.SetAuditLogger(cfg.Audit)
		}
		handler := handlers.NewExportDocumentHandler(baseHandler, service)
		group := docsGroup.Group("/export")
		group.GET("/next-number", handler.NextNumber)
		RegisterDocumentRoutes(group, handler)
	}

	// --- VENDOR BILLS (one service, three kinds) ---
	{
		repo := document_repo.NewBillRepo(cfg.TxManager)
		service := bill.NewService(repo, cfg.TxManager)
		if cfg.Audit != nil {
			service.SetAuditLogger(cfg.Audit)
		}
		bills := docsGroup.Group("/bills")
		RegisterDocumentRoutes(bills.Group("/manu"), handlers.NewBillHandler(baseHandler, service, bill.KindManu))
		RegisterDocumentRoutes(bills.Group("/trans"), handlers.NewBillHandler(baseHandler, service, bill.KindTrans))
		RegisterDocumentRoutes(bills.Group("/supply"), handlers.NewBillHandler(baseHandler, service, bill.KindSupply))
	}

	// --- TRANSACTIONS ---
	{
		repo := document_repo.NewTransactionRepo(cfg.TxManager)
		service := payment.NewService(repo, cfg.TxManager)
		if cfg.Audit != nil {
			service.SetAuditLogger(cfg.Audit)
		}
		handler := handlers.NewTransactionHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/transactions"), handler)
	}

	// --- PERFORMA INVOICES ---
	{
		service := trade.NewPerformaInvoiceService(performaRepo, cfg.TxManager)
		if cfg.Audit != nil {
			service.SetAuditLogger(cfg.Audit)
		}
		handler := handlers.NewPerformaInvoiceHandler(baseHandler, service)
		group := docsGroup.Group("/performa-invoices")
		group.GET("/by-client/:id", handler.ListByClient)
		RegisterDocumentRoutes(group, handler)
	}

	// --- PURCHASE ORDERS ---
	{
		repo := document_repo.NewPurchaseOrderRepo(cfg.TxManager)
		service := trade.NewPurchaseOrderService(repo, performaRepo, cfg.TxManager)
		if cfg.Audit != nil {
			service.SetAuditLogger(cfg.Audit)
		}
		handler := handlers.NewPurchaseOrderHandler(baseHandler, service)
		RegisterDocumentRoutes(docsGroup.Group("/purchase-orders"), handler)
	}
}

// registerReportRoutes registers computed read model endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	reportsGroup := rg.Group("/reports")
	baseHandler := handlers.NewBaseHandler()

	service := reports.NewService(
		cfg.TxManager,
		catalog_repo.NewSizeRepo(cfg.TxManager),
		catalog_repo.NewProductRepo(cfg.TxManager),
		catalog_repo.NewPartyRepo(cfg.TxManager),
		document_repo.NewExportDocumentRepo(cfg.TxManager),
		document_repo.NewBillRepo(cfg.TxManager),
		document_repo.NewTransactionRepo(cfg.TxManager),
		document_repo.NewPerformaInvoiceRepo(cfg.TxManager),
		document_repo.NewPurchaseOrderRepo(cfg.TxManager),
	)
	handler := handlers.NewReportsHandler(baseHandler, service, cfg.Renderer)

	reportsGroup.GET("/documents/:id", handler.Document)
	reportsGroup.GET("/documents/:id/pdf/invoice", handler.CustomsInvoicePDF)
	reportsGroup.GET("/documents/:id/pdf/packing-list", handler.PackingListPDF)
	reportsGroup.GET("/ledgers/client/:id", handler.ClientLedger)
	reportsGroup.GET("/ledgers/party/:kind/:id", handler.PartyLedger)
	reportsGroup.GET("/gst", handler.GSTSummary)
}
