package handler

import (
	"errors"
	"net/http"

	"github.com/booklyhq/support-be/service"
	"github.com/booklyhq/support-be/types"
	"github.com/gin-gonic/gin"
)

// respondError maps service error codes onto HTTP statuses and the failure
// payload shape. Anything that is not a typed service error is a plain 500.
func respondError(c *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Error:   "Internal server error",
			Details: err.Error(),
		})
		return
	}

	c.JSON(statusFor(svcErr.Code), types.ErrorResponse{
		Success: false,
		Error:   messageFor(svcErr.Code),
		Details: detailsFor(svcErr),
	})
}

func statusFor(code service.ErrorCode) int {
	switch code {
	case service.ErrorInvalidInput:
		return http.StatusBadRequest
	case service.ErrorNotFound:
		return http.StatusNotFound
	case service.ErrorConflict:
		return http.StatusConflict
	case service.ErrorTimeout:
		return http.StatusGatewayTimeout
	case service.ErrorUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(code service.ErrorCode) string {
	switch code {
	case service.ErrorInvalidInput:
		return "Invalid request"
	case service.ErrorConfiguration:
		return "Server configuration error"
	case service.ErrorNotFound:
		return "Not found"
	case service.ErrorConflict:
		return "Conflict"
	case service.ErrorTimeout:
		return "Upstream request timed out"
	case service.ErrorUpstream:
		return "Upstream service error"
	default:
		return "Internal server error"
	}
}

func detailsFor(err *service.Error) string {
	if err.Err != nil {
		return err.Reason + ": " + err.Err.Error()
	}
	return err.Reason
}
