package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretCreateOrder(t *testing.T) {
	for _, text := range []string{
		"Create order for Karachi Mart",
		"new order for Karachi Mart",
		"please place order for Karachi Mart",
	} {
		result := Interpret(text)
		assert.True(t, result.OK, text)
		assert.Equal(t, IntentCreateOrder, result.Intent)
		assert.Equal(t, "karachi mart", result.Payload.Outlet)
	}
}

func TestInterpretAddProduct(t *testing.T) {
	tests := []struct {
		text     string
		quantity int
		product  string
	}{
		{"Add 10 Pepsi 500ml to order", 10, "pepsi 500ml"},
		{"add 3 cola to cart", 3, "cola"},
		{"5 lemon soda to the order", 5, "lemon soda"},
		{"include 2 crisps", 2, "crisps"},
	}

	for _, tt := range tests {
		result := Interpret(tt.text)
		assert.True(t, result.OK, tt.text)
		assert.Equal(t, IntentAddProduct, result.Intent)
		assert.Equal(t, tt.quantity, result.Payload.Quantity)
		assert.Equal(t, tt.product, result.Payload.Product)
	}
}

func TestInterpretQueries(t *testing.T) {
	tests := []struct {
		text   string
		intent Intent
	}{
		{"what is the price of cola", IntentPriceQuery},
		{"show me the promotions", IntentShowPromotions},
		{"display the sales report", IntentShowReports},
		{"how is outlet performance", IntentOutletPerformance},
	}

	for _, tt := range tests {
		result := Interpret(tt.text)
		assert.True(t, result.OK, tt.text)
		assert.Equal(t, tt.intent, result.Intent)
		assert.Equal(t, tt.text, result.Payload.Query)
	}
}

func TestInterpretNavigation(t *testing.T) {
	tests := []struct {
		text   string
		intent Intent
	}{
		{"go to dashboard", IntentNavigateDashboard},
		{"open orders", IntentNavigateOrders},
		{"show outlets", IntentNavigateOutlets},
	}

	for _, tt := range tests {
		result := Interpret(tt.text)
		assert.True(t, result.OK, tt.text)
		assert.Equal(t, tt.intent, result.Intent)
		assert.Equal(t, Payload{}, result.Payload)
	}
}

func TestInterpretOrderMatters(t *testing.T) {
	// "show outlet performance" hits the query group before navigation.
	result := Interpret("show outlet performance")
	assert.Equal(t, IntentOutletPerformance, result.Intent)
}

func TestInterpretEmpty(t *testing.T) {
	for _, text := range []string{"", "   "} {
		result := Interpret(text)
		assert.False(t, result.OK)
		assert.Equal(t, IntentEmpty, result.Intent)
		assert.Equal(t, Payload{}, result.Payload)
	}
}

func TestInterpretUnknown(t *testing.T) {
	result := Interpret("sing me a song")
	assert.False(t, result.OK)
	assert.Equal(t, IntentUnknown, result.Intent)
	assert.Equal(t, "sing me a song", result.Payload.Command)
}
