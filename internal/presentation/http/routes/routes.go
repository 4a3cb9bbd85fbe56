package routes

import (
	"time"

	"github.com/flowbit/analytics-api/internal/config"
	"github.com/flowbit/analytics-api/internal/presentation/http/handler"
	"github.com/flowbit/analytics-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Invoice   *handler.InvoiceHandler
	Document  *handler.DocumentHandler
	Chat      *handler.ChatHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Dashboard metrics
	router.GET("/stats", h.Dashboard.GetStats)
	router.GET("/invoice-trends", h.Dashboard.GetTrend)
	router.GET("/vendors/top10", h.Dashboard.GetTopVendors)
	router.GET("/category-spend", h.Dashboard.GetCategorySpend)
	router.GET("/cash-outflow", h.Dashboard.GetCashOutflow)
	router.GET("/overview", h.Dashboard.GetOverview)

	// Invoices
	router.GET("/invoices", h.Invoice.List)
	router.POST("/invoices", h.Invoice.Create)
	router.POST("/invoices/:id/payments", h.Invoice.AddPayment)

	// Documents
	router.POST("/documents", h.Document.Register)

	// Chat proxy
	router.POST("/chat-with-data", h.Chat.Ask)

	return router
}
