package handler

import (
	"github.com/flowbit/analytics-api/internal/application/service"
	domainRepo "github.com/flowbit/analytics-api/internal/domain/repository"
	"github.com/flowbit/analytics-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the aggregate metric endpoints
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles GET /stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.PresentStats(stats))
}

// GetTrend handles GET /invoice-trends
func (h *DashboardHandler) GetTrend(c *gin.Context) {
	trend, err := h.dashboardService.GetTrend(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.PresentTrend(trend))
}

// GetTopVendors handles GET /vendors/top10
func (h *DashboardHandler) GetTopVendors(c *gin.Context) {
	vendors, err := h.dashboardService.GetTopVendors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.PresentTopVendors(vendors))
}

// GetCategorySpend handles GET /category-spend
func (h *DashboardHandler) GetCategorySpend(c *gin.Context) {
	categories, err := h.dashboardService.GetCategorySpend(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.PresentCategorySpend(categories))
}

// GetCashOutflow handles GET /cash-outflow
func (h *DashboardHandler) GetCashOutflow(c *gin.Context) {
	from, err := domainRepo.ParseDateBound("from", c.Query("from"))
	if err != nil {
		response.Error(c, err)
		return
	}
	to, err := domainRepo.ParseDateBound("to", c.Query("to"))
	if err != nil {
		response.Error(c, err)
		return
	}

	buckets, err := h.dashboardService.GetCashOutflow(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.PresentCashOutflow(buckets))
}

// GetOverview handles GET /overview
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.dashboardService.GetOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.PresentOverview(overview))
}
