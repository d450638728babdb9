package booking

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"hotelreservation/internal/domain"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings domain.BookingRepository
	rooms    domain.RoomRepository
	guests   domain.GuestRepository
	locker   RoomLocker
	notifs   NotificationSender
	log      *zap.Logger
}

// NewService wires the booking use cases. locker and notifs may be nil:
// without a locker two concurrent creates for the same room can both pass
// the availability check.
func NewService(
	bookings domain.BookingRepository,
	rooms domain.RoomRepository,
	guests domain.GuestRepository,
	locker RoomLocker,
	notifs NotificationSender,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		guests:   guests,
		locker:   locker,
		notifs:   notifs,
		log:      log,
	}
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, domain.NewValidationError(field, "must be an ISO 8601 date")
}

// ParseRange parses both dates and rejects empty or inverted stays.
func ParseRange(checkInValue, checkOutValue string) (time.Time, time.Time, error) {
	checkIn, err := ParseDate("checkInDate", checkInValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := ParseDate("checkOutDate", checkOutValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, domain.NewValidationError("checkOutDate", "must be after checkInDate")
	}
	return checkIn, checkOut, nil
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.GuestID <= 0 {
		return nil, domain.NewValidationError("guestId", "must be a positive id")
	}
	if req.RoomID <= 0 {
		return nil, domain.NewValidationError("roomId", "must be a positive id")
	}
	checkIn, checkOut, err := ParseRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	guest, err := s.guests.FindByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}
	room, err := s.rooms.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	available, err := s.rooms.FindAvailable(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !containsRoom(available, room.ID) {
		return nil, &domain.AvailabilityError{Reason: "Room is not available"}
	}

	b, err := s.bookings.Save(ctx, domain.NewBooking(guest, room, checkIn, checkOut))
	if err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.Int64("booking_id", b.ID),
		zap.Int64("guest_id", guest.ID),
		zap.Int64("room_id", room.ID),
		zap.Float64("total_price", b.TotalPrice),
	)
	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}
	return b, nil
}

func containsRoom(rooms []domain.Room, id int64) bool {
	for _, r := range rooms {
		if r.ID == id {
			return true
		}
	}
	return false
}

// CancelBooking removes the booking. Unknown ids are not an error.
func (s *Service) CancelBooking(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("booking cancelled", zap.Int64("booking_id", id))
	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCancelled(ctx, id)
	}
	return nil
}

// ModifyBooking overwrites the supplied fields. The total price is never
// derived from new dates; only an explicit totalPrice changes it.
func (s *Service) ModifyBooking(ctx context.Context, id int64, req ModifyBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	datesChanged := false
	if v := req.CheckInDate; v != nil && *v != "" {
		t, err := ParseDate("checkInDate", *v)
		if err != nil {
			return nil, err
		}
		b.CheckInDate = t
		datesChanged = true
	}
	if v := req.CheckOutDate; v != nil && *v != "" {
		t, err := ParseDate("checkOutDate", *v)
		if err != nil {
			return nil, err
		}
		b.CheckOutDate = t
		datesChanged = true
	}
	if datesChanged && !b.CheckOutDate.After(b.CheckInDate) {
		return nil, domain.NewValidationError("checkOutDate", "must be after checkInDate")
	}

	if v := req.Status; v != nil && *v != "" {
		status := domain.BookingStatus(strings.ToUpper(strings.TrimSpace(*v)))
		if !status.Persistable() {
			return nil, domain.NewValidationError("status", "must be one of PENDING, CONFIRMED, CANCELLED")
		}
		if status == domain.BookingConfirmed {
			if err := b.Confirm(); err != nil {
				return nil, err
			}
		} else {
			b.Status = status
		}
	}

	if req.TotalPrice != nil {
		if *req.TotalPrice < 0 {
			return nil, domain.NewValidationError("totalPrice", "must not be negative")
		}
		b.TotalPrice = *req.TotalPrice
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info("booking modified",
		zap.Int64("booking_id", b.ID),
		zap.String("status", string(b.Status)),
		zap.Float64("total_price", b.TotalPrice),
	)
	if s.notifs != nil {
		_ = s.notifs.NotifyBookingModified(ctx, b)
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.FindAll(ctx)
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

func (s *Service) ListGuestBookings(ctx context.Context, guestID int64) ([]domain.Booking, error) {
	if _, err := s.guests.FindByID(ctx, guestID); err != nil {
		return nil, err
	}
	return s.bookings.FindByGuestID(ctx, guestID)
}
