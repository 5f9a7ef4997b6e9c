package models

// Promo discount types.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// PromoCodeData is the discount terms returned for a valid promo code.
type PromoCodeData struct {
	Code           string  `json:"code"`
	Description    string  `json:"description"`
	DiscountType   string  `json:"discount_type"` // "percentage" or "fixed"
	DiscountValue  float64 `json:"discount_value"`
	DiscountAmount float64 `json:"discount_amount"` // computed against the submitted amount
	OriginalAmount float64 `json:"original_amount"`
	FinalAmount    float64 `json:"final_amount"`
}

// PromoCodeRequest validates a code against a pre-tax subtotal.
type PromoCodeRequest struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}
