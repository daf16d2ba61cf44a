package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/booklyhq/support-be/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func authRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admin", AdminAuth(secret), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func doAuth(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminAuth(t *testing.T) {
	router := authRouter("secret")

	t.Run("valid token", func(t *testing.T) {
		token, err := utils.GenerateAdminToken("admin", "secret")
		require.NoError(t, err)
		rec := doAuth(router, "Bearer "+token)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := doAuth(router, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := doAuth(router, "Token abc")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := utils.GenerateAdminToken("admin", "other")
		require.NoError(t, err)
		rec := doAuth(router, "Bearer "+token)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
