package service

import (
	"testing"

	"sales-core/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id, outletName, createdDate string, total float64, items ...models.OrderItem) models.Order {
	return models.Order{
		OrderID:     id,
		OutletName:  outletName,
		Items:       items,
		TotalAmount: total,
		Status:      models.OrderStatusConfirmed,
		CreatedDate: createdDate,
	}
}

func item(name string, qty int, totalPrice float64) models.OrderItem {
	return models.OrderItem{ProductName: name, Quantity: qty, TotalPrice: totalPrice}
}

func TestSalesAnalyticsEmpty(t *testing.T) {
	summary := SalesAnalytics(map[string]models.Order{}, nil)

	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.AvgOrderValue) // no division by zero
	assert.Empty(t, summary.ProductSales)
	assert.Empty(t, summary.OutletSales)
}

func TestSalesAnalyticsRollups(t *testing.T) {
	orders := map[string]models.Order{
		"a": order("a", "Karachi Mart", "2025-06-01T10:00:00", 1000,
			item("Cola 500ml", 10, 1000)),
		"b": order("b", "Karachi Mart", "2025-06-02T11:00:00", 500,
			item("Cola 500ml", 3, 300), item("Lemon Soda", 2, 200)),
		"c": order("c", "Hyderabad Store", "2025-06-03T12:00:00", 300,
			item("Lemon Soda", 3, 300)),
	}

	summary := SalesAnalytics(orders, nil)

	assert.Equal(t, 3, summary.TotalOrders)
	assert.Equal(t, 1800.0, summary.TotalRevenue)
	assert.Equal(t, 600.0, summary.AvgOrderValue)

	assert.Equal(t, ProductSales{Quantity: 13, Revenue: 1300}, summary.ProductSales["Cola 500ml"])
	assert.Equal(t, ProductSales{Quantity: 5, Revenue: 500}, summary.ProductSales["Lemon Soda"])

	assert.Equal(t, OutletSales{Orders: 2, Revenue: 1500}, summary.OutletSales["Karachi Mart"])
	assert.Equal(t, OutletSales{Orders: 1, Revenue: 300}, summary.OutletSales["Hyderabad Store"])
}

func TestSalesAnalyticsDateFilterInclusive(t *testing.T) {
	orders := map[string]models.Order{
		"a": order("a", "Karachi Mart", "2025-06-01T23:59:59", 100),
		"b": order("b", "Karachi Mart", "2025-06-02T00:00:00", 200),
		"c": order("c", "Karachi Mart", "2025-06-03T12:00:00", 400),
	}

	summary := SalesAnalytics(orders, &DateRange{Start: "2025-06-01", End: "2025-06-02"})

	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 300.0, summary.TotalRevenue)
}

func TestSalesAnalyticsGroupsByDenormalizedName(t *testing.T) {
	// The same product id sold under two historical names stays split.
	orders := map[string]models.Order{
		"a": order("a", "Karachi Mart", "2025-06-01T10:00:00", 100,
			models.OrderItem{ProductID: "P1", ProductName: "Cola 500ml", Quantity: 1, TotalPrice: 100}),
		"b": order("b", "Karachi Mart", "2025-06-02T10:00:00", 110,
			models.OrderItem{ProductID: "P1", ProductName: "Cola Classic 500ml", Quantity: 1, TotalPrice: 110}),
	}

	summary := SalesAnalytics(orders, nil)
	assert.Len(t, summary.ProductSales, 2)
}

func TestStatusCounts(t *testing.T) {
	orders := map[string]models.Order{
		"a": {Status: models.OrderStatusConfirmed},
		"b": {Status: models.OrderStatusConfirmed},
		"c": {Status: models.OrderStatusDraft},
	}

	counts := StatusCounts(orders)
	assert.Equal(t, 2, counts[models.OrderStatusConfirmed])
	assert.Equal(t, 1, counts[models.OrderStatusDraft])
}

func catalog() map[string]models.Product {
	return map[string]models.Product{
		"P1": {ProductID: "P1", Name: "Cola 500ml", Brand: "Sukkur", Category: "Beverages", Stock: 50, IsActive: true},
		"P2": {ProductID: "P2", Name: "Cola 1L", Brand: "Sukkur", Category: "Beverages", Stock: 5, IsActive: true},
		"P3": {ProductID: "P3", Name: "Cola", Brand: "Sukkur", Category: "Beverages", Stock: 8, IsActive: true},
		"P4": {ProductID: "P4", Name: "Crisps", Brand: "Salty", Category: "Snacks", Description: "cola flavour", Stock: 2, IsActive: false},
	}
}

func TestSearchProductsRelevanceOrder(t *testing.T) {
	results := SearchProducts(catalog(), "cola")

	require.Len(t, results, 4) // P4 matches on description
	assert.Equal(t, "Cola", results[0].Name)
	assert.Equal(t, "Cola 1L", results[1].Name)
	assert.Equal(t, "Cola 500ml", results[2].Name)
	assert.Equal(t, "Crisps", results[3].Name)
}

func TestLowStockProducts(t *testing.T) {
	results := LowStockProducts(catalog(), 10)

	// Inactive P4 is excluded; remaining sorted by stock ascending.
	require.Len(t, results, 2)
	assert.Equal(t, "Cola 1L", results[0].Name)
	assert.Equal(t, "Cola", results[1].Name)
}

func TestFilterProducts(t *testing.T) {
	filtered := FilterProducts(catalog(), FilterCriteria{Category: "snacks"})
	assert.Len(t, filtered, 1)

	filtered = FilterProducts(catalog(), FilterCriteria{Category: "snacks", ActiveOnly: true})
	assert.Empty(t, filtered)

	filtered = FilterProducts(catalog(), FilterCriteria{Brand: "Sukkur", ActiveOnly: true})
	assert.Len(t, filtered, 3)

	filtered = FilterProducts(catalog(), FilterCriteria{})
	assert.Len(t, filtered, 4)
}

func TestSearchOrders(t *testing.T) {
	orders := map[string]models.Order{
		"ord-1": order("ord-1", "Karachi Mart", "2025-06-01T10:00:00", 100, item("Cola 500ml", 1, 100)),
		"ord-2": order("ord-2", "Hyderabad Store", "2025-06-02T10:00:00", 200, item("Lemon Soda", 2, 200)),
	}

	byOutlet := SearchOrders(orders, "karachi")
	require.Len(t, byOutlet, 1)
	assert.Equal(t, "ord-1", byOutlet[0].OrderID)

	byProduct := SearchOrders(orders, "soda")
	require.Len(t, byProduct, 1)
	assert.Equal(t, "ord-2", byProduct[0].OrderID)

	byID := SearchOrders(orders, "ord")
	require.Len(t, byID, 2)
	assert.Equal(t, "ord-2", byID[0].OrderID) // newest first
}
