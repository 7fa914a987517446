package validate

import (
	"strings"

	"sales-core/internal/models"
)

// PromotionEligibility checks whether a set of order lines qualifies
// for a promotion: the promotion must be active and the lines must meet
// its minimum quantity, minimum amount and applicable-product rules.
func PromotionEligibility(items []models.OrderItem, promo models.Promotion) Result {
	if !promo.IsActive {
		return fail("Promotion is not active")
	}

	if promo.MinQuantity > 0 {
		totalQuantity := 0
		for _, item := range items {
			totalQuantity += item.Quantity
		}
		if totalQuantity < promo.MinQuantity {
			return fail("Minimum quantity requirement not met. Required: %d", promo.MinQuantity)
		}
	}

	if promo.MinAmount > 0 {
		totalAmount := 0.0
		for _, item := range items {
			totalAmount += float64(item.Quantity) * item.UnitPrice
		}
		if totalAmount < promo.MinAmount {
			return fail("Minimum amount requirement not met. Required: Rs. %.2f", promo.MinAmount)
		}
	}

	if len(promo.ApplicableProducts) > 0 {
		eligible := false
		for _, item := range items {
			for _, name := range promo.ApplicableProducts {
				if item.ProductName == name {
					eligible = true
					break
				}
			}
		}
		if !eligible {
			return fail("No eligible products for this promotion. Applicable: %s",
				strings.Join(promo.ApplicableProducts, ", "))
		}
	}

	return ok("Eligible for promotion")
}
