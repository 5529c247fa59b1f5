package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lazaroperez207/agro-en-casa/internal/models"
)

type updatePriceRequest struct {
	Price float64 `json:"price"`
}

// updateProductPrice sets a product's price
func (h *Handler) updateProductPrice(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req updatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.catalog.UpdatePrice(productID, req.Price); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Precio actualizado."})
}

type updateStockRequest struct {
	Stock int `json:"stock"`
}

// updateProductStock sets a product's stock level
func (h *Handler) updateProductStock(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req updateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.catalog.UpdateStock(productID, req.Stock); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock actualizado."})
}

// listDeliveryZones returns the configured zones
func (h *Handler) listDeliveryZones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"zones": h.settings.DeliveryZones()})
}

type zoneRequest struct {
	Name          string  `json:"name" binding:"required"`
	MaxDistanceKm float64 `json:"max_distance_km" binding:"required,gt=0"`
	Cost          float64 `json:"cost" binding:"required,gte=0"`
}

// createDeliveryZone adds a zone
func (h *Handler) createDeliveryZone(c *gin.Context) {
	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	zone := models.DeliveryZone{Name: req.Name, MaxDistanceKm: req.MaxDistanceKm, Cost: req.Cost}
	h.settings.CreateDeliveryZone(&zone)
	c.JSON(http.StatusCreated, zone)
}

// updateDeliveryZone replaces a zone's fields
func (h *Handler) updateDeliveryZone(c *gin.Context) {
	zoneID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone ID"})
		return
	}

	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	zone := models.DeliveryZone{ID: zoneID, Name: req.Name, MaxDistanceKm: req.MaxDistanceKm, Cost: req.Cost}
	if err := h.settings.UpdateDeliveryZone(zone); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, zone)
}

// deleteDeliveryZone removes a zone
func (h *Handler) deleteDeliveryZone(c *gin.Context) {
	zoneID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone ID"})
		return
	}

	if err := h.settings.DeleteDeliveryZone(zoneID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Zona eliminada."})
}

// listPaymentMethods returns every method, including disabled ones
func (h *Handler) listPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"payment_methods": h.settings.PaymentMethods()})
}

type updatePaymentMethodsRequest struct {
	PaymentMethods []models.PaymentMethod `json:"payment_methods" binding:"required"`
}

// updatePaymentMethods replaces the payment method toggles
func (h *Handler) updatePaymentMethods(c *gin.Context) {
	var req updatePaymentMethodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	h.settings.UpdatePaymentMethods(req.PaymentMethods)
	c.JSON(http.StatusOK, gin.H{"payment_methods": h.settings.PaymentMethods()})
}

// updatePaymentDetails replaces the payment account blob
func (h *Handler) updatePaymentDetails(c *gin.Context) {
	var details models.PaymentDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	h.settings.UpdatePaymentDetails(details)
	c.JSON(http.StatusOK, details)
}

// updateSocialLinks replaces and persists the footer links
func (h *Handler) updateSocialLinks(c *gin.Context) {
	var links models.SocialLinks
	if err := c.ShouldBindJSON(&links); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	h.settings.UpdateSocialLinks(c.Request.Context(), links)
	c.JSON(http.StatusOK, links)
}

// uploadLogo accepts a multipart image upload and stores it as a data URL
func (h *Handler) uploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing logo file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable logo file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable logo file"})
		return
	}

	contentType := http.DetectContentType(data)
	if err := h.settings.UpdateLogo(c.Request.Context(), data, contentType); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logo actualizado con éxito."})
}
