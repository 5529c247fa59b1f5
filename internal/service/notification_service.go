package service

import (
	"github.com/lazaroperez207/agro-en-casa/internal/models"
	"github.com/lazaroperez207/agro-en-casa/internal/store"
)

// NotificationService surfaces the per-customer notification feed
type NotificationService struct {
	store *store.Store
}

// NewNotificationService creates a new notification service
func NewNotificationService(store *store.Store) *NotificationService {
	return &NotificationService{store: store}
}

// Feed is a customer's notifications plus the derived unread count
type Feed struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

// List returns the customer's feed, newest first
func (s *NotificationService) List(customerID int64) Feed {
	return Feed{
		Notifications: s.store.GetNotifications(customerID),
		UnreadCount:   s.store.UnreadNotificationCount(customerID),
	}
}

// MarkRead marks one notification read; repeating it is a no-op
func (s *NotificationService) MarkRead(customerID, notificationID int64) error {
	return s.store.MarkNotificationRead(customerID, notificationID)
}

// ClearAll wipes the customer's feed
func (s *NotificationService) ClearAll(customerID int64) {
	s.store.ClearNotifications(customerID)
}
