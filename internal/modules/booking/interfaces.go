package booking

import (
	"context"

	"hotelreservation/internal/domain"
)

// RoomLocker serialises reservations of one room. Lock fails with an error
// matching domain.ErrNotAvailable when another request holds the room.
type RoomLocker interface {
	Lock(ctx context.Context, roomID int64) (unlock func(), err error)
}

type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
	NotifyBookingModified(ctx context.Context, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, bookingID int64) error
}
