package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"bookit/models"
)

// CreateBooking submits a booking request. Success means the server has
// reserved the slot and generated a booking reference.
func (c *Client) CreateBooking(ctx context.Context, form models.BookingFormData) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, form, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBookingByReference fetches one booking by its reference code.
func (c *Client) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/reference/"+url.PathEscape(reference), nil, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetUserBookings fetches all bookings made under an email address.
func (c *Client) GetUserBookings(ctx context.Context, email string) ([]models.Booking, error) {
	query := url.Values{}
	query.Set("email", email)

	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/user", query, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ApplyPromoToBooking attaches a promo code to an already-created booking.
// The primary checkout path validates the code before booking creation
// instead; this covers the flow where creation happens first.
func (c *Client) ApplyPromoToBooking(ctx context.Context, bookingID int64, code string) error {
	body := struct {
		Code string `json:"code"`
	}{Code: code}
	return c.do(ctx, http.MethodPost, "/bookings/"+strconv.FormatInt(bookingID, 10)+"/apply-promo", nil, body, nil)
}
