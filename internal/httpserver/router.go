package httpserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"boutique-api/internal/metrics"
	accountsvc "boutique-api/internal/service/account"
	authsvc "boutique-api/internal/service/auth"
	cartsvc "boutique-api/internal/service/cart"
	catalogsvc "boutique-api/internal/service/catalog"
	ordersvc "boutique-api/internal/service/order"
)

// Deps carries the services the router exposes.
type Deps struct {
	CatalogSvc *catalogsvc.Service
	AccountSvc *accountsvc.Service
	AuthSvc    *authsvc.Service
	CartSvc    *cartsvc.Service
	OrderSvc   *ordersvc.Service
}

// buildRouter wires routes for the API.
func buildRouter(logger zerolog.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), observeRequests(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	articles := &articleHandler{svc: deps.CatalogSvc, logger: logger}
	api.GET("/articles", articles.list)
	api.GET("/articles/:id", articles.get)
	api.POST("/articles", articles.create)
	api.PUT("/articles/:id", articles.update)
	api.DELETE("/articles/:id", articles.delete)

	auth := &authHandler{svc: deps.AuthSvc, logger: logger}
	api.POST("/auth/register", auth.register)
	api.POST("/auth/login", auth.login)

	users := &userHandler{svc: deps.AccountSvc, logger: logger}
	api.GET("/users", users.list)
	api.GET("/users/:id", users.get)
	api.POST("/users", users.create)
	api.PUT("/users/:id", users.update)
	api.DELETE("/users/:id", users.delete)

	carts := &cartHandler{svc: deps.CartSvc, logger: logger}
	api.GET("/carts/:userId", carts.get)
	api.POST("/carts/:userId/add", carts.add)
	api.PUT("/carts/:userId/update", carts.update)
	api.DELETE("/carts/:userId/remove", carts.remove)

	orders := &orderHandler{svc: deps.OrderSvc, logger: logger}
	api.POST("/orders", orders.create)
	api.GET("/orders/:userId", orders.listByUser)
	api.PUT("/orders/:orderId/validate", orders.validate)

	return router, nil
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func observeRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, statusLabel(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	default:
		return "2xx"
	}
}
