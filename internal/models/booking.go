package models

// BookingStatus is the confirmation state of a court booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingPending   BookingStatus = "Pending"
	BookingCancelled BookingStatus = "Cancelled"
)

// ParseBookingStatus maps a free-text status to a known value.
// Unrecognized input defaults to BookingConfirmed.
func ParseBookingStatus(s string) BookingStatus {
	switch BookingStatus(s) {
	case BookingPending, BookingCancelled:
		return BookingStatus(s)
	default:
		return BookingConfirmed
	}
}

// Booking is a scheduled use of a court or field.
type Booking struct {
	// ID is the unique identifier for the booking (UUID format).
	ID string `json:"id"`

	// Date is the booking day in YYYY-MM-DD form.
	Date string `json:"date"`

	// Time is the start time in HH:MM form.
	Time string `json:"time"`

	// Location is the court or field name.
	Location string `json:"location"`

	// TeamName optionally names the team playing. It is free text, not a
	// reference into the team store.
	TeamName string `json:"team_name"`

	// Price is the booking cost.
	Price float64 `json:"price"`

	// Status is the confirmation state.
	Status BookingStatus `json:"status"`
}
