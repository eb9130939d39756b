package handler

import (
	"net/http"

	"github.com/classpoint/classpoint-backend/internal/middleware"
	"github.com/classpoint/classpoint-backend/internal/response"
	"github.com/classpoint/classpoint-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the principal dashboard.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// GET /api/v1/admin/dashboard
// Returns entity counts plus the cached school-wide attendance overview.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)

	data, err := h.dashboardService.GetDashboard(c.Request.Context(), claims.SchoolID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, data)
}
