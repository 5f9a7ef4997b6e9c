package checkout

import (
	"context"

	"bookit/models"
)

// BookingAPI is the slice of the remote API the checkout flow needs.
// *client.Client satisfies it.
type BookingAPI interface {
	ValidatePromoCode(ctx context.Context, code string, amount float64) (*models.PromoCodeData, error)
	CreateBooking(ctx context.Context, form models.BookingFormData) (*models.Booking, error)
}
