package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lazaroperez207/agro-en-casa/internal/models"
)

// ErrNotFound reports a lookup that matched nothing. Wrapped by every
// store lookup failure so callers can match with errors.Is.
var ErrNotFound = errors.New("not found")

// Store holds every canonical collection in memory. The catalog, users,
// orders and notifications reset on restart; only the settings blobs are
// persisted externally (see redisclient).
type Store struct {
	mu sync.RWMutex

	products      []models.Product
	users         []models.User
	orders        []models.Order
	notifications []models.Notification
	carts         map[int64][]models.CartItem

	zones          []models.DeliveryZone
	paymentMethods []models.PaymentMethod
	paymentDetails models.PaymentDetails
	socialLinks    models.SocialLinks
	logoURL        string

	nextUserID         int64
	nextOrderID        int64
	nextZoneID         int64
	nextNotificationID int64
}

// NewStore creates a store pre-loaded with the demo data set
func NewStore() *Store {
	s := &Store{
		carts: make(map[int64][]models.CartItem),
	}
	s.seed()
	return s
}

func (s *Store) allocUserID() int64 {
	s.nextUserID++
	return s.nextUserID
}

func (s *Store) allocOrderID() int64 {
	s.nextOrderID++
	return s.nextOrderID
}

func (s *Store) allocZoneID() int64 {
	s.nextZoneID++
	return s.nextZoneID
}

func (s *Store) allocNotificationID() int64 {
	s.nextNotificationID++
	return s.nextNotificationID
}

func notFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}
