package service

import (
	"context"
	"sort"
	"strings"

	"sales-core/internal/errs"
	"sales-core/internal/models"
	"sales-core/internal/validate"
)

// DateRange bounds an analytics query, inclusive on both ends, dates
// in YYYY-MM-DD form.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ProductSales is the per-product rollup of an analytics fold.
type ProductSales struct {
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// OutletSales is the per-outlet rollup of an analytics fold.
type OutletSales struct {
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// SalesSummary is the read-only aggregation over an order collection.
type SalesSummary struct {
	TotalOrders   int                     `json:"total_orders"`
	TotalRevenue  float64                 `json:"total_revenue"`
	AvgOrderValue float64                 `json:"avg_order_value"`
	ProductSales  map[string]ProductSales `json:"product_sales"`
	OutletSales   map[string]OutletSales  `json:"outlet_sales"`
	DateRange     *DateRange              `json:"date_range,omitempty"`
}

// SalesAnalytics folds an order collection into revenue and quantity
// rollups, optionally restricted to a date range. Grouping keys are the
// denormalized name strings captured on each order, not ids: two
// differently named historical snapshots of the same product are
// tracked separately on purpose.
//
// The date comparison is a lexical prefix compare on created_date,
// which is safe only because ISO-8601 dates sort lexically.
func SalesAnalytics(orders map[string]models.Order, dateRange *DateRange) SalesSummary {
	filtered := orders
	if dateRange != nil {
		filtered = map[string]models.Order{}
		for id, order := range orders {
			if len(order.CreatedDate) < 10 {
				continue
			}
			orderDate := order.CreatedDate[:10]
			if dateRange.Start <= orderDate && orderDate <= dateRange.End {
				filtered[id] = order
			}
		}
	}

	summary := SalesSummary{
		TotalOrders:  len(filtered),
		ProductSales: map[string]ProductSales{},
		OutletSales:  map[string]OutletSales{},
		DateRange:    dateRange,
	}

	for _, order := range filtered {
		summary.TotalRevenue += order.TotalAmount

		for _, item := range order.Items {
			sales := summary.ProductSales[item.ProductName]
			sales.Quantity += item.Quantity
			sales.Revenue += item.TotalPrice
			summary.ProductSales[item.ProductName] = sales
		}

		outletSales := summary.OutletSales[order.OutletName]
		outletSales.Orders++
		outletSales.Revenue += order.TotalAmount
		summary.OutletSales[order.OutletName] = outletSales
	}

	if summary.TotalOrders > 0 {
		summary.AvgOrderValue = summary.TotalRevenue / float64(summary.TotalOrders)
	}
	return summary
}

// StatusCounts tallies orders by status.
func StatusCounts(orders map[string]models.Order) map[string]int {
	counts := map[string]int{}
	for _, order := range orders {
		counts[order.Status]++
	}
	return counts
}

// SearchProducts matches a query against product name, description,
// category and brand, case-insensitively. Exact name matches sort
// first, then name substring matches, then the rest alphabetically.
func SearchProducts(products map[string]models.Product, query string) []models.Product {
	queryLower := strings.ToLower(query)
	var results []models.Product

	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Name), queryLower) ||
			strings.Contains(strings.ToLower(product.Description), queryLower) ||
			strings.Contains(strings.ToLower(product.Category), queryLower) ||
			strings.Contains(strings.ToLower(product.Brand), queryLower) {
			results = append(results, product)
		}
	}

	rank := func(p models.Product) int {
		nameLower := strings.ToLower(p.Name)
		switch {
		case nameLower == queryLower:
			return 0
		case strings.Contains(nameLower, queryLower):
			return 1
		default:
			return 2
		}
	}
	sort.Slice(results, func(i, j int) bool {
		ri, rj := rank(results[i]), rank(results[j])
		if ri != rj {
			return ri < rj
		}
		return results[i].Name < results[j].Name
	})

	return results
}

// SearchOrders matches a query against order id, outlet name and item
// product names.
func SearchOrders(orders map[string]models.Order, query string) []models.Order {
	queryLower := strings.ToLower(query)
	var results []models.Order

	for _, order := range orders {
		if strings.Contains(strings.ToLower(order.OrderID), queryLower) ||
			strings.Contains(strings.ToLower(order.OutletName), queryLower) {
			results = append(results, order)
			continue
		}
		for _, item := range order.Items {
			if strings.Contains(strings.ToLower(item.ProductName), queryLower) {
				results = append(results, order)
				break
			}
		}
	}

	// Newest first, matching how order history is browsed.
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedDate > results[j].CreatedDate
	})
	return results
}

// LowStockProducts returns active products at or below the threshold,
// lowest stock first.
func LowStockProducts(products map[string]models.Product, threshold int) []models.Product {
	var lowStock []models.Product
	for _, product := range products {
		if product.IsActive && product.Stock <= threshold {
			lowStock = append(lowStock, product)
		}
	}
	sort.Slice(lowStock, func(i, j int) bool {
		if lowStock[i].Stock != lowStock[j].Stock {
			return lowStock[i].Stock < lowStock[j].Stock
		}
		return lowStock[i].Name < lowStock[j].Name
	})
	return lowStock
}

// FilterCriteria is the enumerated product filter. Fields left zero
// are not applied.
type FilterCriteria struct {
	Category   string `form:"category" json:"category"`
	Brand      string `form:"brand" json:"brand"`
	ActiveOnly bool   `form:"active_only" json:"active_only"`
}

// FilterProducts applies explicit filter criteria to the catalog.
// String criteria match as case-insensitive substrings.
func FilterProducts(products map[string]models.Product, criteria FilterCriteria) map[string]models.Product {
	filtered := map[string]models.Product{}
	for id, product := range products {
		if criteria.Category != "" &&
			!strings.Contains(strings.ToLower(product.Category), strings.ToLower(criteria.Category)) {
			continue
		}
		if criteria.Brand != "" &&
			!strings.Contains(strings.ToLower(product.Brand), strings.ToLower(criteria.Brand)) {
			continue
		}
		if criteria.ActiveOnly && !product.IsActive {
			continue
		}
		filtered[id] = product
	}
	return filtered
}

// GetSalesAnalytics loads the order collection and folds it, after
// validating any supplied date range.
func (s *OrderService) GetSalesAnalytics(ctx context.Context, dateRange *DateRange) (*SalesSummary, error) {
	if dateRange != nil {
		if result := validate.DateRange(dateRange.Start, dateRange.End); !result.OK {
			return nil, &errs.ValidationError{Message: result.Message}
		}
	}

	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}

	summary := SalesAnalytics(orders, dateRange)
	return &summary, nil
}
