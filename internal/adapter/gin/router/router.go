package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"land-marketplace-service/api/swagger"
	"land-marketplace-service/internal/adapter/gin/handler"
	"land-marketplace-service/internal/adapter/gin/middleware"
	"land-marketplace-service/pkg/metrics"
)

// Handlers groups the HTTP handlers mounted by SetupRouter.
type Handlers struct {
	User        *handler.UserHandler
	Land        *handler.LandHandler
	Transaction *handler.TransactionHandler
	Health      *handler.HealthHandler
}

// Options configures the cross-cutting middleware. Zero values disable metrics and rate limiting.
type Options struct {
	Metrics     *metrics.Metrics
	RateLimiter middleware.Limiter
	RateLimit   middleware.RateLimiterConfig
	Debug       bool
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(h Handlers, opts Options, log *zap.Logger) *gin.Engine {
	if opts.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Recovery runs innermost so the access log and metrics see the 500
	router.Use(middleware.Logger(log))
	router.Use(middleware.Metrics(opts.Metrics))
	router.Use(middleware.Recovery(log))

	// Operational endpoints are not rate limited
	router.GET("/health", h.Health.Health)
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	router.GET("/docs/land.swagger.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", swagger.Doc)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/docs/land.swagger.json"),
	)))

	limited := router.Group("", middleware.RateLimiter(opts.RateLimiter, opts.RateLimit, log))

	api := limited.Group("/api")
	{
		users := api.Group("/user")
		{
			users.POST("/", h.User.SignUp)
			users.POST("/login", h.User.Login)
			users.GET("/:id", h.User.GetUser)
		}

		lands := api.Group("/lands")
		{
			lands.POST("", h.Land.CreateLand)
			lands.GET("", h.Land.ListLands)
			lands.GET("/:id", h.Land.GetLand)
			lands.PUT("/:id", h.Land.UpdateLand)
			lands.DELETE("/:id", h.Land.DeleteLand)
		}

		api.GET("/manageland", h.Land.ManageLand)

		transactions := api.Group("/transactions")
		{
			transactions.POST("", h.Transaction.CreateTransaction)
			transactions.GET("", h.Transaction.ListTransactions)
			transactions.GET("/getTransactionsByIds", h.Transaction.GetTransactionsByIDs)
			transactions.GET("/:id", h.Transaction.GetTransaction)
			transactions.PUT("/:id", h.Transaction.UpdateTransaction)
			transactions.DELETE("/:id", h.Transaction.DeleteTransaction)
		}
	}

	// The manage-land screen calls this path without the /api prefix
	limited.PUT("/lands/:id/updateAvailability", h.Land.UpdateAvailability)

	return router
}
