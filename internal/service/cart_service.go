package service

import (
	"github.com/lazaroperez207/agro-en-casa/internal/models"
	"github.com/lazaroperez207/agro-en-casa/internal/store"
)

// CartService handles per-customer cart mutations and derived totals
type CartService struct {
	store *store.Store
}

// NewCartService creates a new cart service
func NewCartService(store *store.Store) *CartService {
	return &CartService{store: store}
}

// CartView is the cart plus its derived totals
type CartView struct {
	Items     []models.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  float64           `json:"subtotal"`
}

// Get returns the customer's cart with item count and subtotal
func (s *CartService) Get(customerID int64) CartView {
	items := s.store.GetCart(customerID)

	view := CartView{Items: items}
	for _, item := range items {
		view.ItemCount += item.Quantity
		view.Subtotal += item.Price * float64(item.Quantity)
	}
	view.Subtotal = Round2(view.Subtotal)
	return view
}

// Add puts one unit of the product in the cart, incrementing the line if
// it already exists
func (s *CartService) Add(customerID, productID int64) (CartView, error) {
	product, err := s.store.GetProductByID(productID)
	if err != nil {
		return CartView{}, err
	}
	s.store.AddToCart(customerID, product)
	return s.Get(customerID), nil
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line
func (s *CartService) UpdateQuantity(customerID, productID int64, quantity int) CartView {
	s.store.SetCartQuantity(customerID, productID, quantity)
	return s.Get(customerID)
}

// Remove deletes a line
func (s *CartService) Remove(customerID, productID int64) CartView {
	s.store.RemoveFromCart(customerID, productID)
	return s.Get(customerID)
}
