package domain

import (
	"context"
	"time"
)

// RoomRepository is implemented by every storage adapter.
type RoomRepository interface {
	FindAll(ctx context.Context) ([]Room, error)
	FindByID(ctx context.Context, id int64) (*Room, error)
	// FindAvailable returns rooms in AVAILABLE status without a non-cancelled
	// booking overlapping [checkIn, checkOut).
	FindAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]Room, error)
	UpdateStatus(ctx context.Context, roomID int64, status RoomStatus) error
	Delete(ctx context.Context, id int64) error
}

type GuestRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
}

type BookingRepository interface {
	// Save inserts a booking with ID 0 under a freshly assigned id and
	// updates it otherwise.
	Save(ctx context.Context, b *Booking) (*Booking, error)
	FindByID(ctx context.Context, id int64) (*Booking, error)
	FindByGuestID(ctx context.Context, guestID int64) ([]Booking, error)
	FindAll(ctx context.Context) ([]Booking, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id int64) error
}
