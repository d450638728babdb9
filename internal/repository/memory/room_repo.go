package memory

import (
	"context"
	"time"

	"hotelreservation/internal/domain"
)

var _ domain.RoomRepository = (*RoomRepository)(nil)

type RoomRepository struct {
	s *Store
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Room, 0, len(r.s.rooms))
	for _, id := range sortedKeys(r.s.rooms) {
		out = append(out, r.s.rooms[id])
	}
	return out, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	room, ok := r.s.rooms[id]
	if !ok {
		return nil, domain.NewNotFoundError("Room")
	}
	return &room, nil
}

func (r *RoomRepository) FindAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	busy := make(map[int64]bool)
	for _, rec := range r.s.bookings {
		if rec.status == domain.BookingCancelled {
			continue
		}
		if rec.checkInDate.Before(checkOut) && rec.checkOutDate.After(checkIn) {
			busy[rec.roomID] = true
		}
	}

	out := make([]domain.Room, 0)
	for _, id := range sortedKeys(r.s.rooms) {
		room := r.s.rooms[id]
		if room.IsAvailable() && !busy[id] {
			out = append(out, room)
		}
	}
	return out, nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	room, ok := r.s.rooms[roomID]
	if !ok {
		return domain.NewNotFoundError("Room")
	}
	room.Status = status
	r.s.rooms[roomID] = room
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.rooms, id)
	return nil
}
