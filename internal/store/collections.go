package store

import (
	"context"

	"sales-core/internal/models"
)

// Collection file names. Each is an independent JSON mapping from an
// opaque string id to a record object.
const (
	ProductsFile = "products.json"
	OutletsFile  = "outlets.json"
	OrdersFile   = "orders.json"
)

// LoadProducts loads the product catalog keyed by product id.
func (s *Store) LoadProducts(ctx context.Context) (map[string]models.Product, error) {
	products := map[string]models.Product{}
	if err := s.load(ctx, ProductsFile, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SaveProducts writes the full product catalog back to disk.
func (s *Store) SaveProducts(ctx context.Context, products map[string]models.Product) error {
	return s.save(ctx, ProductsFile, products)
}

// LoadOutlets loads outlets keyed by outlet id.
func (s *Store) LoadOutlets(ctx context.Context) (map[string]models.Outlet, error) {
	outlets := map[string]models.Outlet{}
	if err := s.load(ctx, OutletsFile, &outlets); err != nil {
		return nil, err
	}
	return outlets, nil
}

// SaveOutlets writes the full outlet collection back to disk.
func (s *Store) SaveOutlets(ctx context.Context, outlets map[string]models.Outlet) error {
	return s.save(ctx, OutletsFile, outlets)
}

// LoadOrders loads orders keyed by order id, items nested per order.
func (s *Store) LoadOrders(ctx context.Context) (map[string]models.Order, error) {
	orders := map[string]models.Order{}
	if err := s.load(ctx, OrdersFile, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SaveOrders writes the full order collection back to disk.
func (s *Store) SaveOrders(ctx context.Context, orders map[string]models.Order) error {
	return s.save(ctx, OrdersFile, orders)
}
