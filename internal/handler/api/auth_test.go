//go:build unit

package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"neko-hotel/internal/handler/api"
	"neko-hotel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthCommands struct {
	result *commands.LoginResult
	err    error
}

func (s *stubAuthCommands) Login(_ context.Context, _, _ string) (*commands.LoginResult, error) {
	return s.result, s.err
}

func TestLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(stub *stubAuthCommands) *gin.Engine {
		router := gin.New()
		router.POST("/api/auth/login", api.NewAuthHandler(stub).Login)
		return router
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		router := newRouter(&stubAuthCommands{
			result: &commands.LoginResult{Token: "signed-token", Username: "frontdesk"},
		})

		body := `{"username":"frontdesk","password":"secret"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed-token")
		assert.Contains(t, w.Body.String(), "frontdesk")
	})

	t.Run("rejects bad credentials with 401", func(t *testing.T) {
		router := newRouter(&stubAuthCommands{err: commands.ErrInvalidCredentials})

		body := `{"username":"frontdesk","password":"wrong"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a missing field with 400", func(t *testing.T) {
		router := newRouter(&stubAuthCommands{})

		body := `{"username":"frontdesk"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
