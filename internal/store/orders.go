package store

import "github.com/lazaroperez207/agro-en-casa/internal/models"

// CreateOrder assigns an ID and prepends the order to the ledger
// (newest first)
func (s *Store) CreateOrder(order *models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.allocOrderID()
	s.orders = append([]models.Order{*order}, s.orders...)
}

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(id int64) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, notFound("order", id)
}

// GetOrders returns the full ledger, newest first
func (s *Store) GetOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// GetOrdersByCustomer returns a customer's orders, newest first
func (s *Store) GetOrdersByCustomer(customerID int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

// GetOrdersByStatus returns orders whose status is in the given set,
// newest first
func (s *Store) GetOrdersByStatus(statuses ...string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		for _, st := range statuses {
			if o.Status == st {
				out = append(out, o)
				break
			}
		}
	}
	return out
}

// SetOrderStatus updates an order's status and returns the updated order
func (s *Store) SetOrderStatus(id int64, status string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return s.orders[i], nil
		}
	}
	return models.Order{}, notFound("order", id)
}
