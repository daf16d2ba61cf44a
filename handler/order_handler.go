package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/booklyhq/support-be/repository"
	"github.com/booklyhq/support-be/service"
	"github.com/booklyhq/support-be/types"
	"github.com/gin-gonic/gin"
)

const defaultListLimit = 50

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) HandleCreate(c *gin.Context) {
	var order types.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.orderService.CreateOrder(c.Request.Context(), &order); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.DataResponse{
		Success: true,
		Data:    order,
	})
}

func (h *OrderHandler) HandleList(c *gin.Context) {
	filter := repository.OrderFilter{
		OrderID:       c.Query("order_id"),
		CustomerEmail: c.Query("customer_email"),
		Status:        c.Query("status"),
		Limit:         parseInt(c.Query("limit"), defaultListLimit),
		Skip:          parseInt(c.Query("skip"), 0),
	}
	if from := c.Query("from_date"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.FromDate = t
		}
	}
	if to := c.Query("to_date"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.ToDate = t
		}
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListResponse{
		Success: true,
		Data:    orders,
		Pagination: &types.Pagination{
			Total:   total,
			Limit:   filter.Limit,
			Skip:    filter.Skip,
			HasMore: total > filter.Skip+int64(len(orders)),
		},
	})
}

func (h *OrderHandler) HandleGet(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    order,
	})
}

func (h *OrderHandler) HandleUpdate(c *gin.Context) {
	var update types.Order
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    order,
	})
}

// HandleCancel is the DELETE operation; it flips status instead of removing
// the document.
func (h *OrderHandler) HandleCancel(c *gin.Context) {
	order, err := h.orderService.CancelOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    order,
	})
}

func (h *OrderHandler) HandleStats(c *gin.Context) {
	stats, err := h.orderService.OrderStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    stats,
	})
}

func parseInt(s string, fallback int64) int64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
