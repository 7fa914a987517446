package cart

import (
	"errors"
	"testing"

	"sales-core/internal/errs"
	"sales-core/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cola() models.Product {
	return models.Product{
		ProductID: "P1",
		Name:      "Cola 500ml",
		Price:     100,
		Category:  "Beverages",
		Size:      "500ml",
		Stock:     50,
		IsActive:  true,
	}
}

func TestAddItemSnapshotsProductFields(t *testing.T) {
	c := New(DefaultLimits)

	require.NoError(t, c.AddItem(cola(), 20))

	require.Len(t, c.Items, 1)
	item := c.Items[0]
	assert.Equal(t, "P1", item.ProductID)
	assert.Equal(t, "Cola 500ml", item.ProductName)
	assert.Equal(t, 20, item.Quantity)
	assert.Equal(t, 100.0, item.UnitPrice)
	assert.Equal(t, 2000.0, item.TotalPrice)
	assert.Equal(t, "500ml", item.Size)
	assert.Equal(t, "Beverages", item.Category)
}

func TestAddItemMergesSameProduct(t *testing.T) {
	c := New(DefaultLimits)
	product := cola()

	require.NoError(t, c.AddItem(product, 10))
	require.NoError(t, c.AddItem(product, 10))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 20, c.Items[0].Quantity)
	assert.Equal(t, 2000.0, c.Items[0].TotalPrice)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := New(DefaultLimits)
	soda := cola()
	soda.ProductID = "P2"
	soda.Name = "Lemon Soda"

	require.NoError(t, c.AddItem(cola(), 1))
	require.NoError(t, c.AddItem(soda, 1))
	require.NoError(t, c.AddItem(cola(), 1))

	require.Len(t, c.Items, 2)
	assert.Equal(t, "P1", c.Items[0].ProductID)
	assert.Equal(t, "P2", c.Items[1].ProductID)
}

func TestAddItemRejectsInactiveProduct(t *testing.T) {
	c := New(DefaultLimits)
	inactive := cola()
	inactive.IsActive = false

	err := c.AddItem(inactive, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &errs.OrderProcessingError{Kind: errs.KindInvalidProduct}))
}

func TestAddItemRejectsInsufficientStock(t *testing.T) {
	c := New(DefaultLimits)

	err := c.AddItem(cola(), 51)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &errs.OrderProcessingError{Kind: errs.KindInsufficientStock}))
	assert.Contains(t, err.Error(), "Available: 50")
}

func TestAddItemRejectsOutOfBoundsQuantity(t *testing.T) {
	c := New(Limits{MinQuantity: 1, MaxQuantity: 10, MaxDiscountPercent: 50})
	err := c.AddItem(cola(), 0)
	require.Error(t, err)

	var verr *errs.ValidationError
	assert.True(t, errors.As(err, &verr))

	assert.Error(t, c.AddItem(cola(), 11))
}

func TestRemoveItem(t *testing.T) {
	c := New(DefaultLimits)
	require.NoError(t, c.AddItem(cola(), 1))

	assert.Error(t, c.RemoveItem(1))
	assert.Error(t, c.RemoveItem(-1))
	require.NoError(t, c.RemoveItem(0))
	assert.True(t, c.IsEmpty())
}

func TestTotalsIdentity(t *testing.T) {
	c := New(DefaultLimits)
	require.NoError(t, c.AddItem(cola(), 20))
	require.NoError(t, c.SetDiscount(10))

	subtotal, discount, tax, total := c.Totals()
	assert.Equal(t, 2000.0, subtotal)
	assert.Equal(t, 200.0, discount)
	assert.Equal(t, 0.0, tax)
	assert.Equal(t, 1800.0, total)
	assert.Equal(t, subtotal-discount+tax, total)
}

func TestSetDiscountBounds(t *testing.T) {
	c := New(DefaultLimits)
	assert.NoError(t, c.SetDiscount(0))
	assert.NoError(t, c.SetDiscount(50))
	assert.Error(t, c.SetDiscount(50.5))
	assert.Error(t, c.SetDiscount(-1))
}

func TestClearResetsEverything(t *testing.T) {
	c := New(DefaultLimits)
	require.NoError(t, c.AddItem(cola(), 5))
	c.OutletID = "O1"
	c.Notes = "urgent"
	require.NoError(t, c.SetDiscount(5))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.OutletID)
	assert.Empty(t, c.Notes)
	assert.Zero(t, c.DiscountPercent)
}

func TestSnapshotItemsIsACopy(t *testing.T) {
	c := New(DefaultLimits)
	require.NoError(t, c.AddItem(cola(), 5))

	snapshot := c.SnapshotItems()
	snapshot[0].Quantity = 999

	assert.Equal(t, 5, c.Items[0].Quantity)
}
