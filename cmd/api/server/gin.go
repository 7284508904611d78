package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupGinServer wraps the Gin router in an http.Server with production timeouts
func SetupGinServer(router *gin.Engine, ginAddr string, l *zap.Logger) *http.Server {
	l.Info("Gin REST API configured", zap.String("address", ginAddr))

	return &http.Server{
		Addr:              ginAddr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
