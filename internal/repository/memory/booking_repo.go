package memory

import (
	"context"

	"hotelreservation/internal/domain"
)

var _ domain.BookingRepository = (*BookingRepository)(nil)

type BookingRepository struct {
	s *Store
}

func toRecord(b *domain.Booking) bookingRecord {
	return bookingRecord{
		id:           b.ID,
		guestID:      b.GuestID(),
		roomID:       b.RoomID(),
		checkInDate:  b.CheckInDate,
		checkOutDate: b.CheckOutDate,
		totalPrice:   b.TotalPrice,
		status:       b.Status,
	}
}

func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if b.ID != 0 {
		if err := r.Update(ctx, b); err != nil {
			return nil, err
		}
		return b, nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var maxID int64
	for id := range r.s.bookings {
		if id > maxID {
			maxID = id
		}
	}
	b.ID = maxID + 1
	r.s.bookings[b.ID] = toRecord(b)
	return b, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("Booking")
	}
	b := r.s.resolve(rec)
	return &b, nil
}

func (r *BookingRepository) FindByGuestID(ctx context.Context, guestID int64) ([]domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, id := range sortedKeys(r.s.bookings) {
		rec := r.s.bookings[id]
		if rec.guestID == guestID {
			out = append(out, r.s.resolve(rec))
		}
	}
	return out, nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Booking, 0, len(r.s.bookings))
	for _, id := range sortedKeys(r.s.bookings) {
		out = append(out, r.s.resolve(r.s.bookings[id]))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.bookings[b.ID]
	if !ok {
		return domain.NewNotFoundError("Booking")
	}
	rec.checkInDate = b.CheckInDate
	rec.checkOutDate = b.CheckOutDate
	rec.totalPrice = b.TotalPrice
	rec.status = b.Status
	r.s.bookings[b.ID] = rec
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.bookings, id)
	return nil
}
