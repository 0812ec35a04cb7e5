package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/storelinehq/storeline-api/internal/config"
	"github.com/storelinehq/storeline-api/internal/presentation/http/handler"
	"github.com/storelinehq/storeline-api/internal/presentation/http/middleware"
	"github.com/storelinehq/storeline-api/pkg/authz"
	"github.com/storelinehq/storeline-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Employee *handler.EmployeeHandler
	Product  *handler.ProductHandler
	SKU      *handler.SKUHandler
	Store    *handler.StoreHandler
	Stock    *handler.StockHandler
	Sale     *handler.SaleHandler
	Return   *handler.ReturnHandler
	Supplier *handler.SupplierHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Log        *logrus.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-employee rate limiter
		rateLimiter := middleware.NewEmployeeRateLimiter(rateLimiterConfig(deps.Cfg.RateLimit))
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	registerEmployeeRoutes(protected, h)
	registerCatalogRoutes(protected, h)
	registerStoreRoutes(protected, h)
	registerStockRoutes(protected, h)
	registerSaleRoutes(protected, h)
	registerReturnRoutes(protected, h)
	registerSupplierRoutes(protected, h)
}

func registerEmployeeRoutes(protected *gin.RouterGroup, h *Handlers) {
	employees := protected.Group("/employees")
	employees.Use(middleware.RequireCapability(authz.OpManageEmployees))
	{
		employees.POST("", h.Auth.Register)
		employees.GET("", h.Employee.List)
		employees.GET("/:id", h.Employee.Get)
		employees.PUT("/:id", h.Employee.Update)
		employees.PUT("/:id/password", h.Employee.ResetPassword)
		employees.DELETE("/:id", h.Employee.Delete)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Reads are open to any authenticated employee
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/search", h.Product.Search)
		products.GET("/:id", h.Product.Get)
	}

	productWrites := protected.Group("/products")
	productWrites.Use(middleware.RequireCapability(authz.OpManageCatalog))
	{
		productWrites.POST("", h.Product.Create)
		productWrites.PUT("/:id", h.Product.Update)
		productWrites.DELETE("/:id", h.Product.Delete)
	}

	skus := protected.Group("/skus")
	{
		skus.GET("", h.SKU.List)
		skus.GET("/:id", h.SKU.Get)
		skus.GET("/code/:code", h.SKU.GetByCode)
		skus.GET("/barcode/:barcode", h.SKU.GetByBarcode)
	}

	skuWrites := protected.Group("/skus")
	skuWrites.Use(middleware.RequireCapability(authz.OpManageCatalog))
	{
		skuWrites.POST("", h.SKU.Create)
		skuWrites.PUT("/:id", h.SKU.Update)
		skuWrites.DELETE("/:id", h.SKU.Delete)
	}
}

func registerStoreRoutes(protected *gin.RouterGroup, h *Handlers) {
	stores := protected.Group("/stores")
	{
		stores.GET("", h.Store.List)
		stores.GET("/:id", h.Store.Get)
	}

	storeWrites := protected.Group("/stores")
	storeWrites.Use(middleware.RequireCapability(authz.OpManageStores))
	{
		storeWrites.POST("", h.Store.Create)
		storeWrites.PUT("/:id", h.Store.Update)
		storeWrites.DELETE("/:id", h.Store.Delete)
	}

	registers := protected.Group("/registers")
	{
		registers.GET("", h.Store.ListRegisters)
		registers.GET("/:id", h.Store.GetRegister)
	}

	registerWrites := protected.Group("/registers")
	registerWrites.Use(middleware.RequireCapability(authz.OpManageStores))
	{
		registerWrites.POST("", h.Store.CreateRegister)
		registerWrites.PUT("/:id", h.Store.UpdateRegister)
		registerWrites.DELETE("/:id", h.Store.DeleteRegister)
	}
}

func registerStockRoutes(protected *gin.RouterGroup, h *Handlers) {
	stock := protected.Group("/stock")
	{
		stock.GET("/levels", h.Stock.ListLevels)
		stock.GET("/levels/:store_id/:sku_id", h.Stock.GetQuantity)
		stock.GET("/low", h.Stock.LowStock)
		stock.GET("/out", h.Stock.OutOfStock)
		stock.GET("/movements", h.Stock.ListMovements)
	}

	adjustments := protected.Group("/stock/adjustments")
	adjustments.Use(middleware.RequireCapability(authz.OpAdjustStock))
	{
		adjustments.POST("", h.Stock.Adjust)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/receipt", h.Sale.GetReceipt)
	}

	saleWrites := protected.Group("/sales")
	saleWrites.Use(middleware.RequireCapability(authz.OpCreateSale))
	{
		saleWrites.POST("", h.Sale.Create)
	}

	reports := protected.Group("/sales")
	reports.Use(middleware.RequireCapability(authz.OpViewReports))
	{
		reports.GET("", h.Sale.List)
		reports.GET("/today", h.Sale.Today)
		reports.GET("/summary", h.Sale.Summary)
	}
}

func registerReturnRoutes(protected *gin.RouterGroup, h *Handlers) {
	returns := protected.Group("/returns")
	{
		returns.GET("", h.Return.List)
		returns.GET("/:id", h.Return.Get)
		returns.GET("/:id/refund", h.Return.GetRefund)
	}

	returnWrites := protected.Group("/returns")
	returnWrites.Use(middleware.RequireCapability(authz.OpCreateReturn))
	{
		returnWrites.POST("", h.Return.Create)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	suppliers.Use(middleware.RequireCapability(authz.OpManagePurchaseOrders))
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}

	orders := protected.Group("/purchase-orders")
	orders.Use(middleware.RequireCapability(authz.OpManagePurchaseOrders))
	{
		orders.GET("", h.Supplier.ListPurchaseOrders)
		orders.POST("", h.Supplier.CreatePurchaseOrder)
		orders.GET("/:id", h.Supplier.GetPurchaseOrder)
		orders.POST("/:id/receive", h.Supplier.ReceivePurchaseOrder)
		orders.POST("/:id/cancel", h.Supplier.CancelPurchaseOrder)
	}
}

// rateLimiterConfig derives the per-employee limiter settings from the
// environment, keeping the middleware defaults when the configured window
// or request count is unusable.
func rateLimiterConfig(cfg config.RateLimitConfig) middleware.RateLimiterConfig {
	limiter := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		limiter.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		limiter.BurstSize = cfg.Requests
	}
	return limiter
}
