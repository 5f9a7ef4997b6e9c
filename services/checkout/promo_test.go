package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bookit/client"
	"bookit/models"
	"bookit/session"
	"bookit/utils"

	"go.uber.org/zap"
)

type fakeAPI struct {
	validateFn func(ctx context.Context, code string, amount float64) (*models.PromoCodeData, error)
	createFn   func(ctx context.Context, form models.BookingFormData) (*models.Booking, error)

	validateCalls int
	createCalls   int
}

func (f *fakeAPI) ValidatePromoCode(ctx context.Context, code string, amount float64) (*models.PromoCodeData, error) {
	f.validateCalls++
	if f.validateFn == nil {
		return nil, errors.New("unexpected ValidatePromoCode call")
	}
	return f.validateFn(ctx, code, amount)
}

func (f *fakeAPI) CreateBooking(ctx context.Context, form models.BookingFormData) (*models.Booking, error) {
	f.createCalls++
	if f.createFn == nil {
		return nil, errors.New("unexpected CreateBooking call")
	}
	return f.createFn(ctx, form)
}

func newTestService(api *fakeAPI) (*Service, *session.MemoryStore) {
	store := session.NewMemoryStore()
	return NewService(api, store, zap.NewNop()), store
}

func seededState() *State {
	return &State{
		Experience: models.Experience{ID: 3, Title: "Old Town Walk", Price: 1000},
		Slot:       models.Slot{ID: 11, Time: "09:00", IsAvailable: true, AvailableSpots: 4},
		Date:       "2025-12-01",
		Quantity:   2,
	}
}

func TestApplyPromoAccepted(t *testing.T) {
	api := &fakeAPI{
		validateFn: func(_ context.Context, code string, amount float64) (*models.PromoCodeData, error) {
			if code != "SAVE10" {
				t.Errorf("code = %q, want uppercased trimmed SAVE10", code)
			}
			if amount != 2000 {
				t.Errorf("amount = %v, want pre-tax subtotal 2000", amount)
			}
			return &models.PromoCodeData{Code: code, DiscountAmount: 200}, nil
		},
	}
	svc, store := newTestService(api)
	st := seededState()

	if err := svc.ApplyPromo(context.Background(), "tok1", st, "  save10 "); err != nil {
		t.Fatalf("ApplyPromo: %v", err)
	}
	if !st.PromoApplied() || st.PromoError != "" {
		t.Errorf("state after accept: promo=%v err=%q", st.Promo, st.PromoError)
	}

	// The updated state must be persisted under the same token.
	var stored State
	if err := store.Get(context.Background(), utils.CheckoutStatePrefix, "tok1", &stored); err != nil {
		t.Fatalf("stored state missing: %v", err)
	}
	if !stored.PromoApplied() || stored.Promo.Code != "SAVE10" {
		t.Errorf("stored state = %+v", stored)
	}
}

func TestApplyPromoRejectedKeepsServerMessage(t *testing.T) {
	api := &fakeAPI{
		validateFn: func(context.Context, string, float64) (*models.PromoCodeData, error) {
			return nil, &client.APIError{Status: 400, Message: "This promo code has expired"}
		},
	}
	svc, _ := newTestService(api)
	st := seededState()
	st.Promo = &models.PromoCodeData{Code: "OLD", DiscountAmount: 50}

	if err := svc.ApplyPromo(context.Background(), "tok1", st, "OLD10"); err != nil {
		t.Fatalf("ApplyPromo: rejection must not be an error, got %v", err)
	}
	if st.PromoApplied() {
		t.Error("rejected apply must clear any previously applied promo")
	}
	if st.PromoError != "This promo code has expired" {
		t.Errorf("PromoError = %q", st.PromoError)
	}
}

func TestApplyPromoFallbackMessage(t *testing.T) {
	api := &fakeAPI{
		validateFn: func(context.Context, string, float64) (*models.PromoCodeData, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc, _ := newTestService(api)
	st := seededState()

	if err := svc.ApplyPromo(context.Background(), "tok1", st, "SAVE10"); err != nil {
		t.Fatalf("ApplyPromo: %v", err)
	}
	if st.PromoError != "Invalid or expired promo code" {
		t.Errorf("PromoError = %q, want the generic fallback", st.PromoError)
	}
}

func TestApplyPromoEmptyCodeIsNoOp(t *testing.T) {
	api := &fakeAPI{}
	svc, _ := newTestService(api)
	st := seededState()

	if err := svc.ApplyPromo(context.Background(), "tok1", st, "   "); err != nil {
		t.Fatalf("ApplyPromo: %v", err)
	}
	if api.validateCalls != 0 {
		t.Error("blank code must not reach the API")
	}
	if st.PromoError != "" || st.PromoApplied() {
		t.Errorf("state changed on blank code: %+v", st)
	}
}

func TestApplyPromoSingleFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var startedOnce sync.Once
	api := &fakeAPI{
		validateFn: func(context.Context, string, float64) (*models.PromoCodeData, error) {
			startedOnce.Do(func() { close(started) })
			<-release
			return &models.PromoCodeData{Code: "SAVE10", DiscountAmount: 200}, nil
		},
	}
	svc, _ := newTestService(api)

	done := make(chan error, 1)
	go func() {
		done <- svc.ApplyPromo(context.Background(), "tok1", seededState(), "SAVE10")
	}()
	<-started

	// Second submission for the same checkout while the first is outstanding.
	err := svc.ApplyPromo(context.Background(), "tok1", seededState(), "SAVE10")
	if !errors.Is(err, ErrPromoInFlight) {
		t.Errorf("concurrent apply: got %v, want ErrPromoInFlight", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if api.validateCalls != 1 {
		t.Errorf("API called %d times, want 1", api.validateCalls)
	}

	// The lock is released after completion; a fresh apply goes through.
	if err := svc.ApplyPromo(context.Background(), "tok1", seededState(), "SAVE10"); err != nil {
		t.Errorf("apply after release: %v", err)
	}
}

func TestRemovePromo(t *testing.T) {
	svc, store := newTestService(&fakeAPI{})
	st := seededState()
	st.Promo = &models.PromoCodeData{Code: "SAVE10", DiscountAmount: 200}
	st.PromoError = "stale"

	if err := svc.RemovePromo(context.Background(), "tok1", st); err != nil {
		t.Fatalf("RemovePromo: %v", err)
	}
	if st.PromoApplied() || st.PromoError != "" {
		t.Errorf("state after remove = %+v", st)
	}

	var stored State
	if err := store.Get(context.Background(), utils.CheckoutStatePrefix, "tok1", &stored); err != nil {
		t.Fatalf("stored state missing: %v", err)
	}
	if stored.PromoApplied() {
		t.Error("removal must be persisted")
	}
}
