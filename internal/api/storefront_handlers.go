package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// listProducts returns the catalog
func (h *Handler) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.catalog.ListProducts()})
}

// quoteDelivery resolves the delivery cost for a distance
func (h *Handler) quoteDelivery(c *gin.Context) {
	distance, err := strconv.ParseFloat(c.Query("distance"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distance"})
		return
	}

	cost, err := h.orders.QuoteDelivery(distance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"distance_km": distance, "delivery_cost": cost})
}

// storefrontSettings returns the public settings view
func (h *Handler) storefrontSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Storefront())
}

type recipeRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
}

// generateRecipes suggests recipes for a list of ingredient names
func (h *Handler) generateRecipes(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	markdown, err := h.recipes.GenerateRecipes(c.Request.Context(), req.Ingredients)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": markdown})
}

// getCart returns the caller's cart with derived totals
func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.carts.Get(currentUser(c).ID))
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// addToCart puts one unit of a product in the caller's cart
func (h *Handler) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	view, err := h.carts.Add(currentUser(c).ID, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

// updateCartItem sets a line's quantity; zero or less removes the line
func (h *Handler) updateCartItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.carts.UpdateQuantity(currentUser(c).ID, productID, req.Quantity))
}

// removeCartItem deletes a line from the caller's cart
func (h *Handler) removeCartItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	c.JSON(http.StatusOK, h.carts.Remove(currentUser(c).ID, productID))
}
