// Package memory keeps rooms, guests and bookings in process memory. All
// state belongs to a single Store so tests never share data.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"hotelreservation/internal/domain"
)

type bookingRecord struct {
	id           int64
	guestID      int64
	roomID       int64
	checkInDate  time.Time
	checkOutDate time.Time
	totalPrice   float64
	status       domain.BookingStatus
}

type Store struct {
	mu       sync.RWMutex
	rooms    map[int64]domain.Room
	guests   map[int64]domain.User
	bookings map[int64]bookingRecord
}

func NewStore() *Store {
	return &Store{
		rooms:    make(map[int64]domain.Room),
		guests:   make(map[int64]domain.User),
		bookings: make(map[int64]bookingRecord),
	}
}

func (s *Store) Rooms() *RoomRepository { return &RoomRepository{s: s} }

func (s *Store) Guests() *GuestRepository { return &GuestRepository{s: s} }

func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }

func (s *Store) CountRooms(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.rooms)), nil
}

func (s *Store) InsertRooms(ctx context.Context, rooms []domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rooms {
		s.rooms[r.ID] = r
	}
	return nil
}

func (s *Store) InsertGuests(ctx context.Context, guests []domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range guests {
		s.guests[g.ID] = cloneUser(g)
	}
	return nil
}

func cloneUser(u domain.User) domain.User {
	if u.Guest != nil {
		p := *u.Guest
		u.Guest = &p
	}
	return u
}

// resolve joins a record with its guest and room. Missing references keep
// only their id.
func (s *Store) resolve(rec bookingRecord) domain.Booking {
	guest := &domain.User{ID: rec.guestID}
	if g, ok := s.guests[rec.guestID]; ok {
		c := cloneUser(g)
		guest = &c
	}
	room := &domain.Room{ID: rec.roomID}
	if r, ok := s.rooms[rec.roomID]; ok {
		room = &r
	}
	return domain.Booking{
		ID:           rec.id,
		Guest:        guest,
		Room:         room,
		CheckInDate:  rec.checkInDate,
		CheckOutDate: rec.checkOutDate,
		Status:       rec.status,
		TotalPrice:   rec.totalPrice,
	}
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
