package handlers

import (
	"errors"
	"net/http"

	"bookit/models"
	"bookit/session"
	"bookit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuccessHandler renders the confirmation view from the one-shot booking
// record. It has no network dependency.
type SuccessHandler struct {
	Sessions session.Store
	Logger   *zap.Logger
}

func NewSuccessHandler(sessions session.Store, logger *zap.Logger) *SuccessHandler {
	return &SuccessHandler{Sessions: sessions, Logger: logger}
}

// Show handles GET /success. Taking the record consumes it, so a reload or a
// direct visit finds nothing and goes back to the catalog.
func (h *SuccessHandler) Show(c *gin.Context) {
	token, err := c.Cookie(ConfirmCookie)
	if err != nil || token == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var booking models.Booking
	if err := h.Sessions.Take(c.Request.Context(), utils.ConfirmStatePrefix, token, &booking); err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			h.Logger.Error("failed to load confirmation record", zap.Error(err))
		}
		clearStateCookie(c, ConfirmCookie)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	clearStateCookie(c, ConfirmCookie)
	renderSuccess(c, &booking)
}

func renderSuccess(c *gin.Context, booking *models.Booking) {
	dateDisplay := "Date not available"
	if booking.Slot.Date != "" {
		dateDisplay = utils.FormatDate(booking.Slot.Date)
	}
	timeDisplay := "Time not available"
	if booking.Slot.Time != "" {
		timeDisplay = utils.FormatTime(booking.Slot.Time)
	}

	promoCode := ""
	if booking.PromoCode != nil {
		promoCode = *booking.PromoCode
	}

	c.HTML(http.StatusOK, "success.html", gin.H{
		"Booking":     booking,
		"PromoCode":   promoCode,
		"DateDisplay": dateDisplay,
		"TimeDisplay": timeDisplay,
	})
}
