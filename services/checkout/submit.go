package checkout

import (
	"context"
	"errors"

	"bookit/client"
	"bookit/models"
	"bookit/utils"

	"go.uber.org/zap"
)

// submitFallbackMessage is shown when booking creation fails without a
// server-provided message.
const submitFallbackMessage = "Booking failed. Please try again."

// Contact is the contact form input for a submission.
type Contact struct {
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
}

// SubmitError carries either per-field validation messages (no network call
// was made) or a single failure message from booking creation.
type SubmitError struct {
	FieldErrors map[string]string
	Message     string
}

func (e *SubmitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "booking form validation failed"
}

// Submit re-validates the contact form, composes the booking payload and
// creates the booking. The promo code is included only when one is applied.
// Field errors abort before any network call; the checkout state is left
// intact on every failure path.
func (s *Service) Submit(ctx context.Context, st *State, contact Contact) (*models.Booking, error) {
	fieldErrors := utils.ValidateBookingForm(utils.BookingFormInput{
		Name:           contact.Name,
		Email:          contact.Email,
		Phone:          contact.Phone,
		NumberOfPeople: st.Quantity,
	})
	if len(fieldErrors) > 0 {
		return nil, &SubmitError{FieldErrors: fieldErrors}
	}

	form := models.BookingFormData{
		Name:            contact.Name,
		Email:           contact.Email,
		Phone:           contact.Phone,
		ExperienceID:    st.Experience.ID,
		SlotID:          st.Slot.ID,
		NumberOfPeople:  st.Quantity,
		SpecialRequests: contact.SpecialRequests,
	}
	if st.PromoApplied() {
		form.PromoCode = st.Promo.Code
	}

	booking, err := s.API.CreateBooking(ctx, form)
	if err != nil {
		message := submitFallbackMessage
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			message = apiErr.Message
		}
		s.Logger.Warn("booking creation failed",
			zap.Int64("experience_id", form.ExperienceID),
			zap.Int64("slot_id", form.SlotID),
			zap.Error(err))
		return nil, &SubmitError{Message: message}
	}

	s.Logger.Info("booking created",
		zap.String("reference", booking.BookingReference),
		zap.Float64("total", booking.TotalPrice))
	return booking, nil
}
