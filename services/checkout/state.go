package checkout

import "bookit/models"

// State is the checkout record handed over from the details page: the
// selected experience, slot, date and party size, plus the promo machine's
// current position. It lives in the transient session store for the duration
// of one checkout and is deleted once the booking is created.
type State struct {
	Experience models.Experience     `json:"experience"`
	Slot       models.Slot           `json:"slot"`
	Date       string                `json:"date"`
	Quantity   int                   `json:"quantity"`
	Promo      *models.PromoCodeData `json:"promo,omitempty"`
	PromoError string                `json:"promo_error,omitempty"`
}

// PromoApplied reports whether the state machine is in Applied.
func (st *State) PromoApplied() bool {
	return st.Promo != nil
}

// Quote derives the current price breakdown.
func (st *State) Quote() Quote {
	return ComputeQuote(st.Experience.Price, st.Quantity, st.Promo)
}
