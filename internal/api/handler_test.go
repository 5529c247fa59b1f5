package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazaroperez207/agro-en-casa/internal/auth"
	"github.com/lazaroperez207/agro-en-casa/internal/models"
	"github.com/lazaroperez207/agro-en-casa/internal/service"
	"github.com/lazaroperez207/agro-en-casa/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := store.NewStore()
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	handler := NewHandler(
		service.NewAccountService(db, tokens),
		service.NewCatalogService(db),
		service.NewCartService(db),
		service.NewOrderService(db, nil),
		service.NewNotificationService(db),
		service.NewSettingsService(db, nil),
		service.NewRecipeClient("", "gemini-2.5-flash"),
		tokens,
	)

	router := gin.New()
	handler.SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var session service.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	token := loginAs(t, router, "admin", "admin123")
	assert.NotEmpty(t, token)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Credenciales incorrectas.")
}

func TestAuthRequired(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGating(t *testing.T) {
	router := newTestRouter(t)

	customer := loginAs(t, router, "cliente@test.com", "")
	courier := loginAs(t, router, "juan.perez", "password123")

	// customers may not touch order statuses or the admin surface
	w := doJSON(t, router, http.MethodPatch, "/api/v1/orders/3/status", customer, gin.H{"status": models.StatusOnTheWay})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/users", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// couriers may dispatch but not administer
	w = doJSON(t, router, http.MethodPatch, "/api/v1/orders/3/status", courier, gin.H{"status": models.StatusOnTheWay})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/users", courier, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Pedro Lopez",
		"email":    "pedro@test.com",
		"password": "secreto",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var session service.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	token := session.Token

	w = doJSON(t, router, http.MethodPost, "/api/v1/cart", token, gin.H{"product_id": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var cart service.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)

	w = doJSON(t, router, http.MethodPost, "/api/v1/orders", token, gin.H{
		"name":              "Pedro Lopez",
		"address":           "Calle 23 #456, Vedado",
		"phone":             "555-0000",
		"payment_method_id": "transferencia",
		"distance_km":       3,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 600.0, order.Total)
	assert.Regexp(t, `^AEC-\d+$`, order.OrderNumber)

	// the cart was consumed by checkout
	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)

	// one unread notification for the new order
	w = doJSON(t, router, http.MethodGet, "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feed service.Feed
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, 1, feed.UnreadCount)

	w = doJSON(t, router, http.MethodPost, "/api/v1/notifications/"+
		jsonID(feed.Notifications[0].ID)+"/read", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Equal(t, 0, feed.UnreadCount)
}

func jsonID(id int64) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}

func TestPlaceOrderEmptyCartEndpoint(t *testing.T) {
	router := newTestRouter(t)

	token := loginAs(t, router, "cliente@test.com", "")

	w := doJSON(t, router, http.MethodPost, "/api/v1/orders", token, gin.H{
		"name":              "Ana Garcia",
		"address":           "Calle 23 #456, Vedado",
		"phone":             "555-0000",
		"payment_method_id": "transferencia",
		"distance_km":       3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El carrito está vacío.")
}

func TestPlaceOrderZeroDistanceEndpoint(t *testing.T) {
	router := newTestRouter(t)

	token := loginAs(t, router, "cliente@test.com", "")

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart", token, gin.H{"product_id": 1})
	require.Equal(t, http.StatusOK, w.Code)

	// an explicit zero distance reaches the resolver instead of dying in
	// request binding
	w = doJSON(t, router, http.MethodPost, "/api/v1/orders", token, gin.H{
		"name":              "Ana Garcia",
		"address":           "Calle 23 #456, Vedado",
		"phone":             "555-0000",
		"payment_method_id": "transferencia",
		"distance_km":       0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "zona de entrega")
	assert.NotContains(t, w.Body.String(), "Invalid request body")
}

func TestQuoteDeliveryEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/delivery/quote?distance=7", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"delivery_cost":300`)

	w = doJSON(t, router, http.MethodGet, "/api/v1/delivery/quote?distance=25", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Fuera de la zona de entrega.")
}

func TestAdminUserEndpoints(t *testing.T) {
	router := newTestRouter(t)

	admin := loginAs(t, router, "admin", "admin123")

	w := doJSON(t, router, http.MethodGet, "/api/v1/admin/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/users", admin, gin.H{
		"name":     "Maria Diaz",
		"email":    "maria.diaz",
		"password": "clave",
		"role":     models.RoleMessenger,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/users", admin, gin.H{
		"name":     "Duplicada",
		"email":    "MARIA.DIAZ",
		"password": "clave",
		"role":     models.RoleCustomer,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// the acting admin cannot delete itself
	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/users/1", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No puedes eliminar tu propia cuenta.")

	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/users/5", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletedAccountTokenRejected(t *testing.T) {
	router := newTestRouter(t)

	admin := loginAs(t, router, "admin", "admin123")
	beatriz := loginAs(t, router, "beatriz@test.com", "")

	w := doJSON(t, router, http.MethodDelete, "/api/v1/admin/users/5", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", beatriz, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminZoneEndpoints(t *testing.T) {
	router := newTestRouter(t)

	admin := loginAs(t, router, "admin", "admin123")

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/zones", admin, gin.H{
		"name":            "Zona 4 (Extrema)",
		"max_distance_km": 35,
		"cost":            800,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var zone models.DeliveryZone
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &zone))
	assert.NotZero(t, zone.ID)

	// the new zone is live in the quote resolver
	w = doJSON(t, router, http.MethodGet, "/api/v1/delivery/quote?distance=25", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"delivery_cost":800`)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/zones/"+jsonID(zone.ID), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/zones/999", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProductPriceEndpoint(t *testing.T) {
	router := newTestRouter(t)

	admin := loginAs(t, router, "admin", "admin123")

	w := doJSON(t, router, http.MethodPatch, "/api/v1/admin/products/1/price", admin, gin.H{"price": 475})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/api/v1/admin/products/999/price", admin, gin.H{"price": 475})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStorefrontSettingsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view service.StorefrontSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Len(t, view.PaymentMethods, 3)
	assert.NotEmpty(t, view.LogoURL)
}
