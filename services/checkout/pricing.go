package checkout

import "bookit/models"

// TaxRate is the flat tax applied to the pre-discount subtotal.
const TaxRate = 0.06

// Quote is the derived price breakdown for a selection. It is recomputed from
// quantity and promo state on every request, never stored.
type Quote struct {
	Subtotal float64
	Taxes    float64
	Discount float64
	Total    float64
}

// ComputeQuote derives subtotal, taxes, discount and total. The invariant is
// total = subtotal + taxes - discount, with taxes = subtotal * TaxRate and
// discount 0 unless a promo is applied.
func ComputeQuote(unitPrice float64, quantity int, promo *models.PromoCodeData) Quote {
	subtotal := unitPrice * float64(quantity)
	taxes := subtotal * TaxRate
	discount := 0.0
	if promo != nil {
		discount = promo.DiscountAmount
	}
	return Quote{
		Subtotal: subtotal,
		Taxes:    taxes,
		Discount: discount,
		Total:    subtotal + taxes - discount,
	}
}
