package store

import "github.com/lazaroperez207/agro-en-casa/internal/models"

// GetCart returns the customer's cart lines
func (s *Store) GetCart(customerID int64) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[customerID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// AddToCart increments the line for the product, inserting it with
// quantity 1 on first add
func (s *Store) AddToCart(customerID int64, product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[customerID]
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity++
			return
		}
	}
	s.carts[customerID] = append(items, models.CartItem{Product: product, Quantity: 1})
}

// SetCartQuantity sets a line's quantity; quantity <= 0 removes the line
func (s *Store) SetCartQuantity(customerID, productID int64, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(customerID, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[customerID]
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			return
		}
	}
}

// RemoveFromCart deletes a line
func (s *Store) RemoveFromCart(customerID, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[customerID]
	for i := range items {
		if items[i].ID == productID {
			s.carts[customerID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// ClearCart empties the customer's cart
func (s *Store) ClearCart(customerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, customerID)
}
