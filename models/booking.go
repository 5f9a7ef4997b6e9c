package models

// Booking status values as reported by the booking API.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusFailed    = "failed"
)

// BookingFormData is the payload to create a booking. Constructed client-side
// immediately before submission.
type BookingFormData struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ExperienceID    int64  `json:"experience_id"`
	SlotID          int64  `json:"slot_id"`
	NumberOfPeople  int    `json:"number_of_people"`
	PromoCode       string `json:"promo_code,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// BookingExperience is the denormalized experience summary on a booking.
type BookingExperience struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Duration string `json:"duration"`
	ImageURL string `json:"image_url"`
	Category string `json:"category"`
}

// BookingSlot is the denormalized slot summary on a booking.
type BookingSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// BookingUser is the denormalized contact summary on a booking.
type BookingUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is a confirmed reservation. Created server-side; the storefront only
// ever reads it back.
type Booking struct {
	ID               int64             `json:"id"`
	UserID           int64             `json:"user_id"`
	ExperienceID     int64             `json:"experience_id"`
	SlotID           int64             `json:"slot_id"`
	BookingReference string            `json:"booking_reference"`
	NumberOfPeople   int               `json:"number_of_people"`
	BasePrice        float64           `json:"base_price"`
	DiscountAmount   float64           `json:"discount_amount"`
	TotalPrice       float64           `json:"total_price"`
	PromoCode        *string           `json:"promo_code"`
	Status           string            `json:"status"`
	SpecialRequests  *string           `json:"special_requests"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
	Experience       BookingExperience `json:"experience"`
	Slot             BookingSlot       `json:"slot"`
	User             BookingUser       `json:"user"`
}
