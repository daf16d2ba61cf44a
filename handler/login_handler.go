package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/booklyhq/support-be/types"
	"github.com/booklyhq/support-be/utils"
	"github.com/gin-gonic/gin"
)

// LoginHandler issues admin tokens for the configured admin account. There is
// no user collection; the only principal is the operator.
type LoginHandler struct {
	adminUsername string
	adminPassword string
	jwtSecret     string
}

func NewLoginHandler(adminUsername, adminPassword, jwtSecret string) *LoginHandler {
	return &LoginHandler{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
	}
}

func (h *LoginHandler) HandleLogin(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if h.adminPassword == "" || !h.credentialsMatch(req) {
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{
			Success: false,
			Error:   "Invalid credentials",
		})
		return
	}

	token, err := utils.GenerateAdminToken(req.Username, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Error:   "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, types.LoginResponse{
		Success: true,
		Token:   token,
	})
}

func (h *LoginHandler) credentialsMatch(req types.LoginRequest) bool {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) == 1
	return userOK && passOK
}
