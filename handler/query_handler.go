package handler

import (
	"context"
	"net/http"

	"github.com/booklyhq/support-be/types"
	"github.com/gin-gonic/gin"
)

type QueryProcessor interface {
	Process(ctx context.Context, query string) (*types.QueryResult, error)
	Feedback(ctx context.Context, req types.FeedbackRequest) error
}

type QueryHandler struct {
	query QueryProcessor
}

func NewQueryHandler(query QueryProcessor) *QueryHandler {
	return &QueryHandler{
		query: query,
	}
}

func (h *QueryHandler) HandleQuery(c *gin.Context) {
	var req types.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "Query is required",
		})
		return
	}

	result, err := h.query.Process(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.QueryResponse{
		Success:   true,
		Response:  result.Answer,
		ToolsUsed: result.ToolsUsed,
		Intent:    result.Intent,
		Metadata: types.QueryMetadata{
			FoundOrders:    len(result.Orders),
			FoundKnowledge: len(result.Articles),
		},
	})
}

func (h *QueryHandler) HandleFeedback(c *gin.Context) {
	var req types.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.query.Feedback(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Message: "Feedback recorded",
	})
}
