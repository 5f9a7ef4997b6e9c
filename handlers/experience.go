package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"bookit/client"
	"bookit/models"
	"bookit/services/catalog"
	"bookit/services/checkout"
	"bookit/session"
	"bookit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExperienceHandler renders the details/slot-selection view and hands a
// confirmed selection over to checkout.
type ExperienceHandler struct {
	Catalog  *catalog.Service
	Sessions session.Store
	Logger   *zap.Logger
}

func NewExperienceHandler(svc *catalog.Service, sessions session.Store, logger *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{Catalog: svc, Sessions: sessions, Logger: logger}
}

// dateOption is one entry in the date strip.
type dateOption struct {
	Value    string
	Label    string
	Selected bool
	URL      string
}

// slotOption is one entry in the slot grid.
type slotOption struct {
	ID         int64
	Display    string
	SpotsLabel string
	Selectable bool
	Selected   bool
	URL        string
}

// Details handles GET /experience/:id. Selection state (date, slot, quantity)
// round-trips through query parameters so the page stays a plain GET.
func (h *ExperienceHandler) Details(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
		return
	}

	details, err := h.Catalog.Get(c.Request.Context(), id)
	if err != nil {
		status := http.StatusBadGateway
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			status = http.StatusNotFound
		}
		h.Logger.Warn("failed to load experience", zap.Int64("id", id), zap.Error(err))
		c.HTML(status, "error.html", gin.H{"Message": "Experience not found"})
		return
	}

	experience := details.Experience
	dates := details.AvailableSlots.Dates()

	selectedDate := c.Query("date")
	if _, ok := details.AvailableSlots[selectedDate]; !ok {
		// Auto-select the first available date.
		selectedDate = ""
		if len(dates) > 0 {
			selectedDate = dates[0]
		}
	}
	daySlots := details.AvailableSlots[selectedDate]

	quantity := 1
	if raw := c.Query("qty"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			quantity = v
		}
	}

	var selectedSlot *models.Slot
	if raw := c.Query("slot"); raw != "" {
		if slotID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			for i := range daySlots {
				if daySlots[i].ID == slotID {
					selectedSlot = &daySlots[i]
					break
				}
			}
		}
	}
	quantity = models.ClampQuantity(quantity, selectedSlot)
	if selectedSlot != nil && !selectedSlot.SelectableFor(quantity) {
		selectedSlot = nil
	}

	basePath := "/experience/" + strconv.FormatInt(id, 10)

	// The strip shows at most the first five available dates.
	stripDates := dates
	if len(stripDates) > 5 {
		stripDates = stripDates[:5]
	}
	dateOptions := make([]dateOption, len(stripDates))
	for i, d := range stripDates {
		dateOptions[i] = dateOption{
			Value:    d,
			Label:    utils.FormatDateShort(d),
			Selected: d == selectedDate,
			URL:      selectionURL(basePath, d, 0, quantity),
		}
	}

	slotOptions := make([]slotOption, len(daySlots))
	for i, slot := range daySlots {
		label := "Sold out"
		if slot.IsAvailable {
			label = strconv.Itoa(slot.AvailableSpots) + " left"
		}
		slotOptions[i] = slotOption{
			ID:         slot.ID,
			Display:    utils.FormatTime(slot.Time),
			SpotsLabel: label,
			Selectable: slot.SelectableFor(quantity),
			Selected:   selectedSlot != nil && slot.ID == selectedSlot.ID,
			URL:        selectionURL(basePath, selectedDate, slot.ID, quantity),
		}
	}

	selectedSlotID := int64(0)
	if selectedSlot != nil {
		selectedSlotID = selectedSlot.ID
	}

	c.HTML(http.StatusOK, "details.html", gin.H{
		"Experience":   experience,
		"Dates":        dateOptions,
		"Slots":        slotOptions,
		"SelectedDate": selectedDate,
		"SelectedSlot": selectedSlot,
		"Quantity":     quantity,
		"DecURL":       selectionURL(basePath, selectedDate, selectedSlotID, quantity-1),
		"IncURL":       selectionURL(basePath, selectedDate, selectedSlotID, quantity+1),
		"Quote":        checkout.ComputeQuote(experience.Price, quantity, nil),
		"CanConfirm":   selectedSlot != nil,
	})
}

// Book handles POST /experience/:id/book. It re-fetches availability, trusts
// the server's counts as of now, creates the transient checkout state and
// redirects into the checkout view.
func (h *ExperienceHandler) Book(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
		return
	}
	basePath := "/experience/" + strconv.FormatInt(id, 10)

	date := c.PostForm("date")
	slotID, _ := strconv.ParseInt(c.PostForm("slot_id"), 10, 64)
	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil {
		quantity = 1
	}

	details, err := h.Catalog.Get(c.Request.Context(), id)
	if err != nil {
		h.Logger.Warn("failed to load experience for booking", zap.Int64("id", id), zap.Error(err))
		c.HTML(http.StatusBadGateway, "error.html", gin.H{"Message": "Experience not found"})
		return
	}

	var slot *models.Slot
	for i := range details.AvailableSlots[date] {
		if details.AvailableSlots[date][i].ID == slotID {
			slot = &details.AvailableSlots[date][i]
			break
		}
	}
	quantity = models.ClampQuantity(quantity, slot)
	if slot == nil || !slot.SelectableFor(quantity) {
		// The selection went stale; back to the details page to pick again.
		c.Redirect(http.StatusSeeOther, selectionURL(basePath, date, 0, quantity))
		return
	}

	state := checkout.State{
		Experience: details.Experience,
		Slot:       *slot,
		Date:       date,
		Quantity:   quantity,
	}
	token, err := h.Sessions.Put(c.Request.Context(), utils.CheckoutStatePrefix, utils.CheckoutStateTTL, state)
	if err != nil {
		h.Logger.Error("failed to store checkout state", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Something went wrong. Please try again."})
		return
	}

	setStateCookie(c, CheckoutCookie, token, int(utils.CheckoutStateTTL.Seconds()))
	c.Redirect(http.StatusSeeOther, "/checkout")
}

func selectionURL(basePath, date string, slotID int64, quantity int) string {
	v := url.Values{}
	if date != "" {
		v.Set("date", date)
	}
	if slotID != 0 {
		v.Set("slot", strconv.FormatInt(slotID, 10))
	}
	if quantity > 0 {
		v.Set("qty", strconv.Itoa(quantity))
	}
	if len(v) == 0 {
		return basePath
	}
	return basePath + "?" + v.Encode()
}
