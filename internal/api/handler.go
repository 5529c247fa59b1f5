package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lazaroperez207/agro-en-casa/internal/auth"
	"github.com/lazaroperez207/agro-en-casa/internal/models"
	"github.com/lazaroperez207/agro-en-casa/internal/service"
	"github.com/lazaroperez207/agro-en-casa/internal/store"
)

// Handler contains HTTP handlers
type Handler struct {
	accounts      *service.AccountService
	catalog       *service.CatalogService
	carts         *service.CartService
	orders        *service.OrderService
	notifications *service.NotificationService
	settings      *service.SettingsService
	recipes       *service.RecipeClient
	tokens        *auth.TokenManager
}

// NewHandler creates a new HTTP handler
func NewHandler(
	accounts *service.AccountService,
	catalog *service.CatalogService,
	carts *service.CartService,
	orders *service.OrderService,
	notifications *service.NotificationService,
	settings *service.SettingsService,
	recipes *service.RecipeClient,
	tokens *auth.TokenManager,
) *Handler {
	return &Handler{
		accounts:      accounts,
		catalog:       catalog,
		carts:         carts,
		orders:        orders,
		notifications: notifications,
		settings:      settings,
		recipes:       recipes,
		tokens:        tokens,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", h.login)
		v1.POST("/auth/register", h.register)

		v1.GET("/products", h.listProducts)
		v1.GET("/delivery/quote", h.quoteDelivery)
		v1.GET("/settings", h.storefrontSettings)
		v1.POST("/recipes", h.generateRecipes)
	}

	authed := v1.Group("")
	authed.Use(authRequired(h.tokens, h.accounts))
	{
		authed.POST("/auth/password", h.changePassword)

		authed.GET("/cart", h.getCart)
		authed.POST("/cart", h.addToCart)
		authed.PATCH("/cart/:productId", h.updateCartItem)
		authed.DELETE("/cart/:productId", h.removeCartItem)

		authed.POST("/orders", h.placeOrder)
		authed.GET("/orders", h.listOrders)
		authed.GET("/orders/:id", h.getOrder)

		authed.GET("/notifications", h.listNotifications)
		authed.POST("/notifications/:id/read", h.markNotificationRead)
		authed.DELETE("/notifications", h.clearNotifications)
	}

	dispatch := v1.Group("")
	dispatch.Use(authRequired(h.tokens, h.accounts), roleRequired(models.RoleAdmin, models.RoleMessenger))
	{
		dispatch.PATCH("/orders/:id/status", h.updateOrderStatus)
	}

	admin := v1.Group("/admin")
	admin.Use(authRequired(h.tokens, h.accounts), roleRequired(models.RoleAdmin))
	{
		admin.PATCH("/products/:id/price", h.updateProductPrice)
		admin.PATCH("/products/:id/stock", h.updateProductStock)

		admin.GET("/users", h.listUsers)
		admin.POST("/users", h.createUser)
		admin.DELETE("/users/:id", h.deleteUser)

		admin.GET("/zones", h.listDeliveryZones)
		admin.POST("/zones", h.createDeliveryZone)
		admin.PUT("/zones/:id", h.updateDeliveryZone)
		admin.DELETE("/zones/:id", h.deleteDeliveryZone)

		admin.GET("/payment-methods", h.listPaymentMethods)
		admin.PUT("/payment-methods", h.updatePaymentMethods)
		admin.PUT("/payment-details", h.updatePaymentDetails)
		admin.PUT("/social-links", h.updateSocialLinks)
		admin.POST("/logo", h.uploadLogo)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// respondError maps domain errors to HTTP statuses with the inline
// user-facing message
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, service.ErrTransitionNotAllowed):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrRecipeUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
