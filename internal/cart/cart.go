// Package cart holds the mutable in-progress order state for a single
// session. A Cart is an explicit value passed into core operations,
// never ambient global state, which keeps concurrent sessions safe by
// construction.
package cart

import (
	"sales-core/internal/errs"
	"sales-core/internal/models"
	"sales-core/internal/validate"
)

// Limits bound what a single cart line may hold.
type Limits struct {
	MinQuantity        int
	MaxQuantity        int
	MaxDiscountPercent float64
}

// DefaultLimits mirrors the configuration defaults.
var DefaultLimits = Limits{
	MinQuantity:        1,
	MaxQuantity:        10000,
	MaxDiscountPercent: 50,
}

// Cart accumulates line items for one session until confirmation or an
// explicit clear. Line items are kept in insertion order, keyed by
// product id for merging.
type Cart struct {
	Items           []models.OrderItem
	OutletID        string
	Notes           string
	DiscountPercent float64

	limits Limits
}

// New creates an empty cart with the given limits.
func New(limits Limits) *Cart {
	if limits.MaxQuantity <= 0 {
		limits = DefaultLimits
	}
	return &Cart{limits: limits}
}

// AddItem resolves quantity and stock rules for a product and merges
// the line into the cart. The stock check is advisory: it reflects the
// product record at the moment of the call, with no reservation.
func (c *Cart) AddItem(product models.Product, quantity int) error {
	if !product.IsActive {
		return errs.NewProcessing(errs.KindInvalidProduct,
			"Product '%s' is not active", product.Name)
	}

	if result := validate.QuantityInRange(quantity, c.limits.MinQuantity, c.limits.MaxQuantity); !result.OK {
		return &errs.ValidationError{Message: result.Message}
	}

	if quantity > product.Stock {
		return errs.NewProcessing(errs.KindInsufficientStock,
			"Insufficient stock for %s. Available: %d", product.Name, product.Stock)
	}

	totalPrice := product.Price * float64(quantity)

	// Quantities accumulate on an existing line for the same product.
	for i := range c.Items {
		if c.Items[i].ProductID == product.ProductID {
			c.Items[i].Quantity += quantity
			c.Items[i].TotalPrice += totalPrice
			return nil
		}
	}

	c.Items = append(c.Items, models.OrderItem{
		ProductID:   product.ProductID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		TotalPrice:  totalPrice,
		Size:        product.Size,
		Category:    product.Category,
	})
	return nil
}

// RemoveItem removes a line by position.
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.Items) {
		return &errs.ValidationError{Message: "Item index out of range"}
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return nil
}

// SetDiscount sets the cart-wide discount percentage.
func (c *Cart) SetDiscount(percent float64) error {
	if percent < 0 || percent > c.limits.MaxDiscountPercent {
		return &errs.ValidationError{Message: "Discount percent out of range"}
	}
	c.DiscountPercent = percent
	return nil
}

// Clear resets the cart to its initial empty state. Used both after a
// successful confirmation and on explicit cancel.
func (c *Cart) Clear() {
	c.Items = nil
	c.OutletID = ""
	c.Notes = ""
	c.DiscountPercent = 0
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Totals returns subtotal, discount, tax and final total. Tax is fixed
// at zero; the field exists as an extension point.
func (c *Cart) Totals() (subtotal, discount, tax, total float64) {
	for _, item := range c.Items {
		subtotal += item.TotalPrice
	}
	discount = subtotal * c.DiscountPercent / 100
	tax = 0
	total = subtotal - discount + tax
	return subtotal, discount, tax, total
}

// FinalTotal returns the amount a confirmation would charge.
func (c *Cart) FinalTotal() float64 {
	_, _, _, total := c.Totals()
	return total
}

// SnapshotItems returns an immutable copy of the line items, ready to
// become OrderItems of a confirmed order.
func (c *Cart) SnapshotItems() []models.OrderItem {
	items := make([]models.OrderItem, len(c.Items))
	copy(items, c.Items)
	return items
}
