package handlers

import (
	"errors"
	"net/http"
	"strings"

	"bookit/services/checkout"
	"bookit/session"
	"bookit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// termsMessage blocks submission until the terms checkbox is set.
const termsMessage = "Please agree to the terms and safety policy"

// CheckoutHandler renders the checkout view and drives promo application and
// booking submission against the checkout service.
type CheckoutHandler struct {
	Svc      *checkout.Service
	Sessions session.Store
	Logger   *zap.Logger
}

func NewCheckoutHandler(svc *checkout.Service, sessions session.Store, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Svc: svc, Sessions: sessions, Logger: logger}
}

// loadState resolves the checkout session from the cookie. Direct navigation
// with no (or expired) state redirects to the catalog.
func (h *CheckoutHandler) loadState(c *gin.Context) (string, *checkout.State, bool) {
	token, err := c.Cookie(CheckoutCookie)
	if err != nil || token == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return "", nil, false
	}
	var state checkout.State
	if err := h.Sessions.Get(c.Request.Context(), utils.CheckoutStatePrefix, token, &state); err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			h.Logger.Error("failed to load checkout state", zap.Error(err))
		}
		clearStateCookie(c, CheckoutCookie)
		c.Redirect(http.StatusSeeOther, "/")
		return "", nil, false
	}
	return token, &state, true
}

type checkoutForm struct {
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
}

func (h *CheckoutHandler) render(c *gin.Context, status int, st *checkout.State, form checkoutForm, fieldErrors map[string]string, message, termsError string) {
	c.HTML(status, "checkout.html", gin.H{
		"Experience":  st.Experience,
		"Date":        st.Date,
		"TimeDisplay": utils.FormatTime(st.Slot.Time),
		"Quantity":    st.Quantity,
		"Quote":       st.Quote(),
		"Promo":       st.Promo,
		"PromoError":  st.PromoError,
		"Form":        form,
		"FieldErrors": fieldErrors,
		"Message":     message,
		"TermsError":  termsError,
	})
}

// Show handles GET /checkout.
func (h *CheckoutHandler) Show(c *gin.Context) {
	_, state, ok := h.loadState(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, state, checkoutForm{}, nil, "", "")
}

// ApplyPromo handles POST /checkout/promo. Post-redirect-get: the outcome
// lands in the stored state and the checkout view re-renders from it.
func (h *CheckoutHandler) ApplyPromo(c *gin.Context) {
	token, state, ok := h.loadState(c)
	if !ok {
		return
	}
	err := h.Svc.ApplyPromo(c.Request.Context(), token, state, c.PostForm("code"))
	if err != nil && !errors.Is(err, checkout.ErrPromoInFlight) {
		h.Logger.Error("promo application failed", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/checkout")
}

// RemovePromo handles POST /checkout/promo/remove.
func (h *CheckoutHandler) RemovePromo(c *gin.Context) {
	token, state, ok := h.loadState(c)
	if !ok {
		return
	}
	if err := h.Svc.RemovePromo(c.Request.Context(), token, state); err != nil {
		h.Logger.Error("promo removal failed", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/checkout")
}

// Submit handles POST /checkout. Field errors and the terms gate abort before
// any network call; a failed creation re-renders the form with its input
// intact.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	token, state, ok := h.loadState(c)
	if !ok {
		return
	}

	form := checkoutForm{
		Name:            strings.TrimSpace(c.PostForm("name")),
		Email:           strings.TrimSpace(c.PostForm("email")),
		Phone:           strings.TrimSpace(c.PostForm("phone")),
		SpecialRequests: strings.TrimSpace(c.PostForm("special_requests")),
	}

	if c.PostForm("terms") == "" {
		h.render(c, http.StatusOK, state, form, nil, "", termsMessage)
		return
	}

	booking, err := h.Svc.Submit(c.Request.Context(), state, checkout.Contact{
		Name:            form.Name,
		Email:           form.Email,
		Phone:           form.Phone,
		SpecialRequests: form.SpecialRequests,
	})
	if err != nil {
		var submitErr *checkout.SubmitError
		if errors.As(err, &submitErr) {
			h.render(c, http.StatusOK, state, form, submitErr.FieldErrors, submitErr.Message, "")
			return
		}
		h.render(c, http.StatusOK, state, form, nil, "Booking failed. Please try again.", "")
		return
	}

	confirmToken, err := h.Sessions.Put(c.Request.Context(), utils.ConfirmStatePrefix, utils.ConfirmStateTTL, booking)
	if err != nil {
		// The booking exists; show the confirmation directly rather than
		// bouncing through the one-shot record.
		h.Logger.Error("failed to store confirmation record", zap.Error(err))
		h.Sessions.Delete(c.Request.Context(), utils.CheckoutStatePrefix, token)
		clearStateCookie(c, CheckoutCookie)
		renderSuccess(c, booking)
		return
	}

	h.Sessions.Delete(c.Request.Context(), utils.CheckoutStatePrefix, token)
	clearStateCookie(c, CheckoutCookie)
	setStateCookie(c, ConfirmCookie, confirmToken, int(utils.ConfirmStateTTL.Seconds()))
	c.Redirect(http.StatusSeeOther, "/success")
}
