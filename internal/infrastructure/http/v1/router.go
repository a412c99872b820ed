// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"stokado/internal/core/sequence"
	"stokado/internal/domain/catalogs/customer"
	"stokado/internal/domain/catalogs/item"
	"stokado/internal/domain/catalogs/vendor"
	"stokado/internal/domain/catalogs/warehouse"
	"stokado/internal/domain/documents/purchase"
	"stokado/internal/domain/documents/sales"
	"stokado/internal/infrastructure/http/v1/handlers"
	"stokado/internal/infrastructure/http/v1/middleware"
	"stokado/internal/infrastructure/storage/postgres"
	"stokado/internal/infrastructure/storage/postgres/catalog_repo"
	"stokado/internal/infrastructure/storage/postgres/document_repo"
	"stokado/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks).
	Pool *postgres.Pool

	// TxManager handles transaction lifecycle for repositories.
	TxManager *postgres.TxManager

	// Sequencer issues business identifiers.
	Sequencer *sequence.Manager

	// Audit records entity change history.
	Audit *postgres.AuditService

	// Logger for request logging
	Logger *logger.Logger
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
	healthHandler := handlers.NewHealthHandler(cfg.Pool, cfg.Sequencer)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/sequence", healthHandler.Sequence)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		registerCatalogRoutes(apiV1, cfg)
		registerDocumentRoutes(apiV1, cfg)
		registerSequenceRoutes(apiV1, cfg)
	}

	return router
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	// --- CUSTOMERS ---
	{
		repo := catalog_repo.NewCustomerRepo(cfg.TxManager)
		service := customer.NewService(repo, cfg.TxManager, cfg.Sequencer)
		handler := handlers.NewCustomerHandler(baseHandler, service)
		handler.RegisterRoutes(rg.Group("/customers"))
	}

	// --- VENDORS ---
	{
		repo := catalog_repo.NewVendorRepo(cfg.TxManager)
		service := vendor.NewService(repo, cfg.TxManager, cfg.Sequencer)
		handler := handlers.NewVendorHandler(baseHandler, service)
		handler.RegisterRoutes(rg.Group("/vendors"))
	}

	// --- WAREHOUSES ---
	{
		repo := catalog_repo.NewWarehouseRepo(cfg.TxManager)
		service := warehouse.NewService(repo, cfg.TxManager, cfg.Sequencer)
		handler := handlers.NewWarehouseHandler(baseHandler, service)
		handler.RegisterRoutes(rg.Group("/warehouses"))
	}

	// --- ITEMS ---
	{
		repo := catalog_repo.NewItemRepo(cfg.TxManager)
		service := item.NewService(repo, cfg.TxManager, cfg.Sequencer)
		handler := handlers.NewItemHandler(baseHandler, service)
		handler.RegisterRoutes(rg.Group("/items"))
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	// --- PURCHASE TRANSACTIONS ---
	{
		repo := document_repo.NewPurchaseRepo(cfg.TxManager)
		service := purchase.NewService(repo, cfg.TxManager, cfg.Sequencer, cfg.Audit)
		handler := handlers.NewPurchaseHandler(baseHandler, service)
		handler.RegisterRoutes(rg.Group("/purchases"))
	}

	// --- SALES TRANSACTIONS ---
	{
		repo := document_repo.NewSalesRepo(cfg.TxManager)
		service := sales.NewService(repo, cfg.TxManager, cfg.Sequencer, cfg.Audit)
		handler := handlers.NewSalesHandler(baseHandler, service)
		handler.RegisterRoutes(rg.Group("/sales"))
	}
}

// registerSequenceRoutes registers identifier sequence admin endpoints.
func registerSequenceRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	handler := handlers.NewSequenceHandler(baseHandler, cfg.Sequencer, cfg.Audit)
	handler.RegisterRoutes(rg.Group("/sequences"))
}
