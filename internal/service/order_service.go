package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lazaroperez207/agro-en-casa/internal/broker"
	"github.com/lazaroperez207/agro-en-casa/internal/models"
	"github.com/lazaroperez207/agro-en-casa/internal/store"
	"github.com/lazaroperez207/agro-en-casa/internal/util"
)

var (
	// ErrEmptyCart rejects checkout with nothing in the cart
	ErrEmptyCart = errors.New("El carrito está vacío.")
	// ErrIncompleteCheckout rejects checkout with a missing required field
	ErrIncompleteCheckout = errors.New("Por favor, completa todos los campos y asegúrate de que la distancia esté dentro de nuestra zona de entrega.")
	// ErrPaymentMethodDisabled rejects checkout with a disabled or unknown method
	ErrPaymentMethodDisabled = errors.New("El método de pago seleccionado no está disponible.")
	// ErrInvalidStatus rejects an unknown status value
	ErrInvalidStatus = errors.New("estado de pedido no válido")
	// ErrTransitionNotAllowed rejects a transition outside the caller's role
	ErrTransitionNotAllowed = errors.New("transición de estado no permitida para este rol")
)

// OrderService handles checkout, the order ledger and status transitions
type OrderService struct {
	store  *store.Store
	events *broker.EventPublisher
	logger *zap.Logger

	numberMu   sync.Mutex
	lastNumber int64
}

// NewOrderService creates a new order service
func NewOrderService(store *store.Store, events *broker.EventPublisher) *OrderService {
	return &OrderService{
		store:  store,
		events: events,
		logger: util.GetLogger(),
	}
}

// PlaceOrderRequest carries the checkout form. DistanceKm deliberately
// has no required binding: a missing or zero distance binds to 0 and is
// rejected by the resolver with the same message as any other
// unresolved distance.
type PlaceOrderRequest struct {
	Name            string  `json:"name" binding:"required"`
	Address         string  `json:"address" binding:"required"`
	Phone           string  `json:"phone" binding:"required"`
	PaymentMethodID string  `json:"payment_method_id" binding:"required"`
	DistanceKm      float64 `json:"distance_km"`
}

// QuoteDelivery resolves the delivery cost for a distance against the
// current zone list
func (s *OrderService) QuoteDelivery(distanceKm float64) (float64, error) {
	cost, err := ResolveDeliveryCost(distanceKm, s.store.GetDeliveryZones())
	if err != nil {
		util.DeliveryQuotesTotal.WithLabelValues("out_of_zone").Inc()
		return 0, err
	}
	util.DeliveryQuotesTotal.WithLabelValues("ok").Inc()
	return cost, nil
}

// PlaceOrder builds an order from the customer's cart and the checkout
// form. On success the order is prepended to the ledger, one
// pending-approval notification is emitted, and the cart is cleared.
// Any validation failure leaves every store untouched.
func (s *OrderService) PlaceOrder(ctx context.Context, customer models.User, req *PlaceOrderRequest) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.PlaceOrder")
	defer span.End()

	items := s.store.GetCart(customer.ID)
	if len(items) == 0 {
		util.OrdersRejectedTotal.WithLabelValues("empty_cart").Inc()
		return nil, ErrEmptyCart
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Address) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.PaymentMethodID) == "" {
		util.OrdersRejectedTotal.WithLabelValues("missing_field").Inc()
		return nil, ErrIncompleteCheckout
	}

	method, err := s.enabledPaymentMethod(req.PaymentMethodID)
	if err != nil {
		util.OrdersRejectedTotal.WithLabelValues("payment_method").Inc()
		return nil, err
	}

	deliveryCost, err := ResolveDeliveryCost(req.DistanceKm, s.store.GetDeliveryZones())
	if err != nil {
		util.OrdersRejectedTotal.WithLabelValues("out_of_zone").Inc()
		return nil, ErrIncompleteCheckout
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	order := &models.Order{
		OrderNumber:   s.nextOrderNumber(),
		CustomerID:    customer.ID,
		CustomerName:  req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		Date:          time.Now().UTC(),
		Status:        models.StatusPending,
		Items:         items,
		DeliveryCost:  deliveryCost,
		Total:         Round2(subtotal + deliveryCost),
		PaymentMethod: method.Name,
	}

	s.store.CreateOrder(order)
	s.store.AddNotification(&models.Notification{
		CustomerID:  customer.ID,
		Message:     "Tu pedido ha sido recibido y está pendiente de aprobación.",
		OrderNumber: order.OrderNumber,
		Date:        time.Now().UTC(),
	})
	s.store.ClearCart(customer.ID)

	util.OrdersPlacedTotal.Inc()
	util.NotificationsEmittedTotal.Inc()
	s.logger.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", order.Total))

	event := &models.OrderPlacedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderPlaced,
			Timestamp: time.Now(),
		},
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Total:       order.Total,
		ItemCount:   len(order.Items),
	}
	if err := s.events.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderPlaced event", zap.Error(err))
	}

	return order, nil
}

// UpdateStatus sets an order's status on behalf of an admin or courier.
// Admins may set any status from any state; the unconstrained transition
// graph is inherited behavior, kept on purpose. Couriers only advance
// orders already handed to them. Statuses with a mapped customer-facing
// message emit exactly one unread notification.
func (s *OrderService) UpdateStatus(ctx context.Context, actor models.User, orderID int64, status string) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.UpdateStatus")
	defer span.End()

	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	current, err := s.store.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if actor.Role == models.RoleMessenger {
		if !courierCanHandle(current.Status) || !courierCanSet(status) {
			return nil, ErrTransitionNotAllowed
		}
	} else if actor.Role != models.RoleAdmin {
		return nil, ErrTransitionNotAllowed
	}

	updated, err := s.store.SetOrderStatus(orderID, status)
	if err != nil {
		return nil, err
	}

	util.OrderStatusChangesTotal.WithLabelValues(status).Inc()
	s.logger.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("from", current.Status),
		zap.String("to", status),
		zap.String("actor_role", string(actor.Role)))

	if message, ok := models.StatusMessages[status]; ok {
		s.store.AddNotification(&models.Notification{
			CustomerID:  updated.CustomerID,
			Message:     message,
			OrderNumber: updated.OrderNumber,
			Date:        time.Now().UTC(),
		})
		util.NotificationsEmittedTotal.Inc()
	}

	event := &models.OrderStatusChangedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderStatusChanged,
			Timestamp: time.Now(),
		},
		OrderID:     updated.ID,
		OrderNumber: updated.OrderNumber,
		OldStatus:   current.Status,
		NewStatus:   status,
	}
	if err := s.events.PublishOrderStatusChanged(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderStatusChanged event", zap.Error(err))
	}

	return &updated, nil
}

// GetOrder retrieves an order visible to the actor: admins see
// everything, couriers their delivery window, customers their own orders
func (s *OrderService) GetOrder(actor models.User, orderID int64) (*models.Order, error) {
	order, err := s.store.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleMessenger:
		if !courierCanHandle(order.Status) {
			return nil, notVisibleErr(orderID)
		}
	default:
		if order.CustomerID != actor.ID {
			return nil, notVisibleErr(orderID)
		}
	}
	return &order, nil
}

// ListOrders returns the ledger slice the actor's dashboard shows,
// newest first
func (s *OrderService) ListOrders(actor models.User) []models.Order {
	switch actor.Role {
	case models.RoleAdmin:
		return s.store.GetOrders()
	case models.RoleMessenger:
		return s.store.GetOrdersByStatus(models.StatusReadyForCourier, models.StatusOnTheWay)
	default:
		return s.store.GetOrdersByCustomer(actor.ID)
	}
}

// nextOrderNumber derives the order number from the current time in
// milliseconds. Checkouts landing in the same millisecond bump past the
// last issued number so every order number stays unique.
func (s *OrderService) nextOrderNumber() string {
	s.numberMu.Lock()
	defer s.numberMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= s.lastNumber {
		now = s.lastNumber + 1
	}
	s.lastNumber = now
	return fmt.Sprintf("AEC-%d", now)
}

func (s *OrderService) enabledPaymentMethod(id string) (models.PaymentMethod, error) {
	for _, m := range s.store.GetPaymentMethods() {
		if m.ID == id && m.Enabled {
			return m, nil
		}
	}
	return models.PaymentMethod{}, ErrPaymentMethodDisabled
}

func validStatus(status string) bool {
	for _, st := range models.OrderStatuses {
		if st == status {
			return true
		}
	}
	return false
}

// courierCanHandle reports whether an order is in the courier window
func courierCanHandle(status string) bool {
	return status == models.StatusReadyForCourier || status == models.StatusOnTheWay
}

// courierCanSet reports whether a courier may set the target status
func courierCanSet(status string) bool {
	return status == models.StatusOnTheWay || status == models.StatusDelivered
}

func notVisibleErr(orderID int64) error {
	return fmt.Errorf("order %d: %w", orderID, store.ErrNotFound)
}
