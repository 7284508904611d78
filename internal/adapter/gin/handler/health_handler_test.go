package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ok := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	t.Run("Healthy", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", NewHealthHandler("svc", map[string]Pinger{"database": ok, "redis": nil}, zaptest.NewLogger(t)).Health)

		w := doJSON(r, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy","service":"svc","checks":{"database":"ok"}}`, w.Body.String())
	})

	t.Run("Degraded", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", NewHealthHandler("svc", map[string]Pinger{"database": ok, "redis": down}, zaptest.NewLogger(t)).Health)

		w := doJSON(r, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"redis":"unavailable"`)
		assert.NotContains(t, w.Body.String(), "refused")
	})
}
