package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"bookit/client"
	"bookit/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingLookupAPI is the slice of the remote API the lookup view needs.
// *client.Client satisfies it.
type BookingLookupAPI interface {
	GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error)
	GetUserBookings(ctx context.Context, email string) ([]models.Booking, error)
}

// BookingLookupHandler renders the booking lookup view: one booking by
// reference code, or all bookings under an email.
type BookingLookupHandler struct {
	API    BookingLookupAPI
	Logger *zap.Logger
}

func NewBookingLookupHandler(api BookingLookupAPI, logger *zap.Logger) *BookingLookupHandler {
	return &BookingLookupHandler{API: api, Logger: logger}
}

// Show handles GET /bookings with optional ?ref= or ?email=.
func (h *BookingLookupHandler) Show(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("ref"))
	email := strings.TrimSpace(c.Query("email"))

	data := gin.H{"Ref": ref, "Email": email}

	switch {
	case ref != "":
		booking, err := h.API.GetBookingByReference(c.Request.Context(), ref)
		if err != nil {
			data["Message"] = lookupMessage(err, "No booking found for that reference.")
		} else {
			data["Bookings"] = []models.Booking{*booking}
		}
	case email != "":
		bookings, err := h.API.GetUserBookings(c.Request.Context(), email)
		if err != nil {
			data["Message"] = lookupMessage(err, "Could not load bookings for that email.")
		} else if len(bookings) == 0 {
			data["Message"] = "No bookings found for that email."
		} else {
			data["Bookings"] = bookings
		}
	}

	c.HTML(http.StatusOK, "bookings.html", data)
}

func lookupMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
