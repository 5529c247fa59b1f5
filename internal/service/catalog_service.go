package service

import (
	"go.uber.org/zap"

	"github.com/lazaroperez207/agro-en-casa/internal/models"
	"github.com/lazaroperez207/agro-en-casa/internal/store"
	"github.com/lazaroperez207/agro-en-casa/internal/util"
)

// CatalogService exposes the product catalog and the admin-only price
// and stock mutations
type CatalogService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store *store.Store) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// ListProducts returns the full catalog
func (s *CatalogService) ListProducts() []models.Product {
	return s.store.GetProducts()
}

// UpdatePrice sets a product's price; negative prices are rejected
func (s *CatalogService) UpdatePrice(productID int64, price float64) error {
	if err := s.store.UpdateProductPrice(productID, price); err != nil {
		return err
	}
	s.logger.Info("Product price updated",
		zap.Int64("product_id", productID),
		zap.Float64("price", price))
	return nil
}

// UpdateStock sets a product's stock; negative stock is rejected
func (s *CatalogService) UpdateStock(productID int64, stock int) error {
	if err := s.store.UpdateProductStock(productID, stock); err != nil {
		return err
	}
	s.logger.Info("Product stock updated",
		zap.Int64("product_id", productID),
		zap.Int("stock", stock))
	return nil
}
