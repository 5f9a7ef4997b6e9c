package checkout

import (
	"testing"

	"bookit/models"
)

func TestComputeQuoteNoPromo(t *testing.T) {
	q := ComputeQuote(1000, 2, nil)
	if q.Subtotal != 2000 {
		t.Errorf("Subtotal = %v, want 2000", q.Subtotal)
	}
	if q.Taxes != 120 {
		t.Errorf("Taxes = %v, want 120", q.Taxes)
	}
	if q.Discount != 0 {
		t.Errorf("Discount = %v, want 0", q.Discount)
	}
	if q.Total != 2120 {
		t.Errorf("Total = %v, want 2120", q.Total)
	}
}

func TestComputeQuoteWithPromo(t *testing.T) {
	promo := &models.PromoCodeData{Code: "SAVE10", DiscountAmount: 200}
	q := ComputeQuote(1000, 2, promo)
	if q.Discount != 200 {
		t.Errorf("Discount = %v, want 200", q.Discount)
	}
	if q.Total != 1920 {
		t.Errorf("Total = %v, want 1920", q.Total)
	}
	// Taxes are computed on the pre-discount subtotal.
	if q.Taxes != 120 {
		t.Errorf("Taxes = %v, want 120", q.Taxes)
	}
}

func TestStateQuoteFollowsPromoMachine(t *testing.T) {
	st := &State{
		Experience: models.Experience{ID: 1, Price: 1000},
		Quantity:   2,
	}
	if st.PromoApplied() {
		t.Error("fresh state must not report an applied promo")
	}
	if got := st.Quote().Total; got != 2120 {
		t.Errorf("Total = %v, want 2120", got)
	}

	st.Promo = &models.PromoCodeData{Code: "SAVE10", DiscountAmount: 200}
	if !st.PromoApplied() {
		t.Error("state with promo must report applied")
	}
	if got := st.Quote().Total; got != 1920 {
		t.Errorf("Total after promo = %v, want 1920", got)
	}
}
