package events

import (
	"time"

	"hotelreservation/internal/domain"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingModified  = "booking.modified"
	TypeBookingCancelled = "booking.cancelled"
)

// Event is the message pushed to every feed subscriber.
type Event struct {
	Type      string          `json:"type"`
	BookingID int64           `json:"bookingId"`
	Booking   *domain.Booking `json:"booking,omitempty"`
	At        time.Time       `json:"at"`
}

func newEvent(typ string, id int64, b *domain.Booking) Event {
	return Event{Type: typ, BookingID: id, Booking: b, At: time.Now().UTC()}
}
