package handler

import (
	"vcard-payments/internal/adapter/http/middleware"
	redisStore "vcard-payments/internal/adapter/storage/redis"
	"vcard-payments/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TxnSvc         ports.TransactionService
	QuerySvc       ports.QueryService
	TokenVerifier  ports.TokenVerifier
	ProfileRepo    ports.ProfileRepository
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenVerifier, deps.Logger)
	adminOnly := middleware.RequireAdmin(deps.ProfileRepo, deps.Logger)

	chargeHandler := NewChargeHandler(deps.TxnSvc)
	refundHandler := NewRefundHandler(deps.TxnSvc, deps.QuerySvc)
	txnHandler := NewTransactionsHandler(deps.QuerySvc)

	// API v1 routes (all require authentication)
	v1 := r.Group("/api/v1", jwtAuth)

	cards := v1.Group("/cards")
	{
		cards.POST("/charge", rl("cards_charge"), chargeHandler.Charge)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", rl("queries"), txnHandler.List)
	}

	refundRequests := v1.Group("/refund-requests")
	{
		// Any authenticated user may file a refund ask.
		refundRequests.POST("", rl("refund_requests"), refundHandler.CreateRequest)

		// The queue and its resolution are admin-only.
		refundRequests.GET("", rl("queries"), adminOnly, refundHandler.List)
		refundRequests.POST("/:id/reject", rl("refund_requests"), adminOnly, refundHandler.Reject)
	}

	refunds := v1.Group("/refunds", adminOnly)
	{
		refunds.POST("", rl("refunds"), refundHandler.Execute)
	}

	return r
}
