package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lazaroperez207/agro-en-casa/internal/service"
)

// placeOrder handles checkout submission
func (h *Handler) placeOrder(c *gin.Context) {
	var req service.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// listOrders returns the slice of the ledger the caller's role may see
func (h *Handler) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.orders.ListOrders(currentUser(c))})
}

// getOrder returns one order if visible to the caller
func (h *Handler) getOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := h.orders.GetOrder(currentUser(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// updateOrderStatus transitions an order (admin or courier)
func (h *Handler) updateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), currentUser(c), orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// listNotifications returns the caller's feed with the unread count
func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.notifications.List(currentUser(c).ID))
}

// markNotificationRead marks one notification read (idempotent)
func (h *Handler) markNotificationRead(c *gin.Context) {
	notificationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	if err := h.notifications.MarkRead(currentUser(c).ID, notificationID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.notifications.List(currentUser(c).ID))
}

// clearNotifications wipes the caller's feed
func (h *Handler) clearNotifications(c *gin.Context) {
	h.notifications.ClearAll(currentUser(c).ID)
	c.JSON(http.StatusOK, gin.H{"message": "Notificaciones eliminadas."})
}
