package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"hotelreservation/internal/domain"
	"hotelreservation/internal/modules/booking"
)

type Service struct {
	rooms domain.RoomRepository
	log   *zap.Logger
}

func NewService(rooms domain.RoomRepository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{rooms: rooms, log: log}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.FindAll(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

// AvailableRooms lists rooms that can take a new booking for the range.
func (s *Service) AvailableRooms(ctx context.Context, checkIn, checkOut string) ([]domain.Room, error) {
	in, out, err := booking.ParseRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return s.rooms.FindAvailable(ctx, in, out)
}

// UpdateRoomStatus is the staff operation for housekeeping and maintenance.
func (s *Service) UpdateRoomStatus(ctx context.Context, id int64, status string) (*domain.Room, error) {
	st := domain.RoomStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, domain.NewValidationError("status", "must be one of AVAILABLE, OCCUPIED, MAINTENANCE, DIRTY")
	}
	if err := s.rooms.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	s.log.Info("room status changed", zap.Int64("room_id", id), zap.String("status", string(st)))
	return s.rooms.FindByID(ctx, id)
}

// DeleteRoom is idempotent. Bookings keep their room reference.
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("room deleted", zap.Int64("room_id", id))
	return nil
}
