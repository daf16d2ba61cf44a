package handler

import (
	"net/http"

	"github.com/booklyhq/support-be/service"
	"github.com/booklyhq/support-be/types"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) HandleDashboard(c *gin.Context) {
	data, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    data,
	})
}

func (h *AnalyticsHandler) HandleCustomers(c *gin.Context) {
	data, err := h.analyticsService.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    data,
	})
}
