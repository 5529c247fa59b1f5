package store

import (
	"fmt"

	"github.com/lazaroperez207/agro-en-casa/internal/models"
)

// GetProducts returns the full catalog
func (s *Store) GetProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetProductByID retrieves a product by ID
func (s *Store) GetProductByID(id int64) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, notFound("product", id)
}

// UpdateProductPrice sets a product's price
func (s *Store) UpdateProductPrice(id int64, price float64) error {
	if price < 0 {
		return fmt.Errorf("price must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Price = price
			return nil
		}
	}
	return notFound("product", id)
}

// UpdateProductStock sets a product's stock level
func (s *Store) UpdateProductStock(id int64, stock int) error {
	if stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock = stock
			return nil
		}
	}
	return notFound("product", id)
}
