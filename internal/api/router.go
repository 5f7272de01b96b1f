package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boldserve-backend/internal/auth"
)

var mountedRoutes = []string{
	"/api/cart",
	"/api/products",
	"/api/users",
}

type Options struct {
	Logger         *zap.Logger
	Development    bool
	AllowedOrigins []string
	Tokens         auth.TokenValidator
	Carts          CartService
	Catalog        CatalogService
	Users          UserService
	DB             Pinger
}

func NewRouter(o Options) *gin.Engine {
	h := &Handlers{
		carts:   o.Carts,
		catalog: o.Catalog,
		users:   o.Users,
		db:      o.DB,
		log:     o.Logger,
		dev:     o.Development,
	}

	r := gin.New()
	r.Use(requestID(), requestLogger(o.Logger), recovery(o.Logger), securityHeaders())
	if len(o.AllowedOrigins) > 0 {
		r.Use(corsConfig(o.AllowedOrigins))
	}

	r.GET("/healthz", h.health)
	r.GET("/api/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is working"})
	})

	api := r.Group("/api")

	carts := api.Group("/cart", auth.RequireUser(o.Tokens))
	{
		carts.GET("/items", h.getCartItems)
		carts.POST("/add", h.addCartItem)
		carts.GET("/summary", h.getCartSummary)
		carts.PUT("/:itemId", h.updateCartItem)
		carts.DELETE("/:itemId", h.removeCartItem)
	}

	products := api.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/:category/:id", h.getProduct)
	}

	users := api.Group("/users")
	{
		users.GET("", auth.RequireAdmin(o.Tokens), h.listUsers)
		users.POST("/register", h.register)
		users.POST("/login", h.login)
		users.GET("/profile", auth.RequireUser(o.Tokens), h.getProfile)
		users.GET("/verify", auth.RequireUser(o.Tokens), h.verifyToken)
		users.GET("/count", auth.RequireAdmin(o.Tokens), h.countUsers)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Route not found",
			"details": gin.H{
				"requestedUrl":    c.Request.URL.Path,
				"method":          c.Request.Method,
				"availableRoutes": mountedRoutes,
			},
		})
	})
	return r
}

func (h *Handlers) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
