package domain

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCancelled  BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return true
	}
	return false
}

// Persistable reports whether stores accept the status. CHECKED_IN and
// CHECKED_OUT are never reached by any use case.
func (s BookingStatus) Persistable() bool {
	return s == BookingPending || s == BookingConfirmed || s == BookingCancelled
}

type Booking struct {
	ID           int64         `json:"id"`
	Guest        *User         `json:"guest"`
	Room         *Room         `json:"room"`
	CheckInDate  time.Time     `json:"checkInDate"`
	CheckOutDate time.Time     `json:"checkOutDate"`
	Status       BookingStatus `json:"status"`
	TotalPrice   float64       `json:"totalPrice"`
}

// NewBooking builds a PENDING booking with its price computed from the stay length.
// The id stays zero until a BookingRepository saves it.
func NewBooking(guest *User, room *Room, checkIn, checkOut time.Time) *Booking {
	return &Booking{
		Guest:        guest,
		Room:         room,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       BookingPending,
		TotalPrice:   TotalPrice(checkIn, checkOut, room.Type.BasePrice),
	}
}

// StayDays is the number of started days between the two dates, in either order.
func StayDays(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

func TotalPrice(checkIn, checkOut time.Time, basePrice float64) float64 {
	return float64(StayDays(checkIn, checkOut)) * basePrice
}

func (b *Booking) Confirm() error {
	if b.Status == BookingCancelled {
		return ErrInvalidStatusTransition
	}
	b.Status = BookingConfirmed
	return nil
}

// Overlaps reports whether the booking occupies any part of [checkIn, checkOut).
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}

func (b *Booking) GuestID() int64 {
	if b.Guest == nil {
		return 0
	}
	return b.Guest.ID
}

func (b *Booking) RoomID() int64 {
	if b.Room == nil {
		return 0
	}
	return b.Room.ID
}
