package store

import "github.com/lazaroperez207/agro-en-casa/internal/models"

// AddNotification assigns an ID and prepends the notification to the
// customer's feed (newest first)
func (s *Store) AddNotification(n *models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.allocNotificationID()
	s.notifications = append([]models.Notification{*n}, s.notifications...)
}

// GetNotifications returns a customer's feed, newest first
func (s *Store) GetNotifications(customerID int64) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Notification
	for _, n := range s.notifications {
		if n.CustomerID == customerID {
			out = append(out, n)
		}
	}
	return out
}

// UnreadNotificationCount counts a customer's unread notifications
func (s *Store) UnreadNotificationCount(customerID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if n.CustomerID == customerID && !n.Read {
			count++
		}
	}
	return count
}

// MarkNotificationRead marks a notification read. Marking an already-read
// notification is a no-op.
func (s *Store) MarkNotificationRead(customerID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id && s.notifications[i].CustomerID == customerID {
			s.notifications[i].Read = true
			return nil
		}
	}
	return notFound("notification", id)
}

// ClearNotifications wipes a customer's feed
func (s *Store) ClearNotifications(customerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.CustomerID != customerID {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}
