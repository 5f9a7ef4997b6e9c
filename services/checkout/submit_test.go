package checkout

import (
	"context"
	"errors"
	"testing"

	"bookit/client"
	"bookit/models"
)

func TestSubmitFieldErrorsSkipNetwork(t *testing.T) {
	api := &fakeAPI{}
	svc, _ := newTestService(api)

	_, err := svc.Submit(context.Background(), seededState(), Contact{
		Name: "A", Email: "bad", Phone: "123",
	})
	var subErr *SubmitError
	if !errors.As(err, &subErr) {
		t.Fatalf("got %v, want *SubmitError", err)
	}
	if len(subErr.FieldErrors) == 0 || subErr.Message != "" {
		t.Errorf("SubmitError = %+v, want field errors only", subErr)
	}
	if api.createCalls != 0 {
		t.Error("invalid form must not reach the API")
	}
}

func TestSubmitComposesPayloadWithPromo(t *testing.T) {
	var gotForm models.BookingFormData
	api := &fakeAPI{
		createFn: func(_ context.Context, form models.BookingFormData) (*models.Booking, error) {
			gotForm = form
			return &models.Booking{ID: 1, BookingReference: "BK-7F3A21", TotalPrice: 1920, Status: models.BookingStatusConfirmed}, nil
		},
	}
	svc, _ := newTestService(api)
	st := seededState()
	st.Promo = &models.PromoCodeData{Code: "SAVE10", DiscountAmount: 200}

	booking, err := svc.Submit(context.Background(), st, Contact{
		Name: "John Doe", Email: "john@x.com", Phone: "9876543210",
		SpecialRequests: "window seat",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if booking.BookingReference != "BK-7F3A21" {
		t.Errorf("reference = %q", booking.BookingReference)
	}
	if gotForm.ExperienceID != 3 || gotForm.SlotID != 11 || gotForm.NumberOfPeople != 2 {
		t.Errorf("selection fields = %+v", gotForm)
	}
	if gotForm.PromoCode != "SAVE10" {
		t.Errorf("PromoCode = %q, want SAVE10", gotForm.PromoCode)
	}
	if gotForm.SpecialRequests != "window seat" {
		t.Errorf("SpecialRequests = %q", gotForm.SpecialRequests)
	}
}

func TestSubmitOmitsPromoWhenNotApplied(t *testing.T) {
	var gotForm models.BookingFormData
	api := &fakeAPI{
		createFn: func(_ context.Context, form models.BookingFormData) (*models.Booking, error) {
			gotForm = form
			return &models.Booking{ID: 1, BookingReference: "BK-1"}, nil
		},
	}
	svc, _ := newTestService(api)

	_, err := svc.Submit(context.Background(), seededState(), Contact{
		Name: "John Doe", Email: "john@x.com", Phone: "9876543210",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotForm.PromoCode != "" {
		t.Errorf("PromoCode = %q, want empty", gotForm.PromoCode)
	}
}

func TestSubmitFailureMessages(t *testing.T) {
	cases := []struct {
		name    string
		apiErr  error
		message string
	}{
		{"server message", &client.APIError{Status: 409, Message: "Slot is fully booked"}, "Slot is fully booked"},
		{"transport failure", errors.New("connection refused"), "Booking failed. Please try again."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{
				createFn: func(context.Context, models.BookingFormData) (*models.Booking, error) {
					return nil, tc.apiErr
				},
			}
			svc, _ := newTestService(api)

			_, err := svc.Submit(context.Background(), seededState(), Contact{
				Name: "John Doe", Email: "john@x.com", Phone: "9876543210",
			})
			var subErr *SubmitError
			if !errors.As(err, &subErr) {
				t.Fatalf("got %v, want *SubmitError", err)
			}
			if subErr.Message != tc.message {
				t.Errorf("Message = %q, want %q", subErr.Message, tc.message)
			}
			if len(subErr.FieldErrors) != 0 {
				t.Errorf("unexpected field errors: %v", subErr.FieldErrors)
			}
		})
	}
}
