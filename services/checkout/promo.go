package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookit/client"
	"bookit/session"
	"bookit/utils"

	"go.uber.org/zap"
)

// ErrPromoInFlight means a validation round trip for this checkout is already
// outstanding; the duplicate submission is dropped.
var ErrPromoInFlight = errors.New("checkout: promo validation already in flight")

// promoFallbackMessage is shown when the server rejects a code without a
// message of its own, or when the request never completes.
const promoFallbackMessage = "Invalid or expired promo code"

const promoLockTTL = 15 * time.Second

// Service drives the checkout flow: promo application and booking submission.
type Service struct {
	API      BookingAPI
	Sessions session.Store
	Logger   *zap.Logger
}

func NewService(api BookingAPI, sessions session.Store, logger *zap.Logger) *Service {
	return &Service{API: api, Sessions: sessions, Logger: logger}
}

// ApplyPromo runs the NoPromo/Applied → Applying transition: it validates the
// code against the pre-tax subtotal and moves the state to Applied on accept
// or back to NoPromo with an error message on reject. The updated state is
// saved before returning; a rejection is not an error to the caller.
func (s *Service) ApplyPromo(ctx context.Context, token string, st *State, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil
	}

	// One validation in flight per checkout session.
	ok, err := s.Sessions.Acquire(ctx, "applying:"+token, promoLockTTL)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPromoInFlight
	}
	defer s.Sessions.Release(ctx, "applying:"+token)

	subtotal := ComputeQuote(st.Experience.Price, st.Quantity, nil).Subtotal
	promo, err := s.API.ValidatePromoCode(ctx, code, subtotal)
	if err != nil {
		st.Promo = nil
		st.PromoError = promoFallbackMessage
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			st.PromoError = apiErr.Message
		}
		s.Logger.Debug("promo rejected",
			zap.String("code", code), zap.String("message", st.PromoError))
		return s.saveState(ctx, token, st)
	}

	st.Promo = promo
	st.PromoError = ""
	s.Logger.Debug("promo applied",
		zap.String("code", promo.Code), zap.Float64("discount", promo.DiscountAmount))
	return s.saveState(ctx, token, st)
}

// RemovePromo runs Applied → NoPromo: clears the stored validation and any
// error message.
func (s *Service) RemovePromo(ctx context.Context, token string, st *State) error {
	st.Promo = nil
	st.PromoError = ""
	return s.saveState(ctx, token, st)
}

func (s *Service) saveState(ctx context.Context, token string, st *State) error {
	return s.Sessions.Save(ctx, utils.CheckoutStatePrefix, token, utils.CheckoutStateTTL, st)
}
