package memory

import (
	"context"

	"hotelreservation/internal/domain"
)

var _ domain.GuestRepository = (*GuestRepository)(nil)

type GuestRepository struct {
	s *Store
}

func (r *GuestRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.guests[id]
	if !ok {
		return nil, domain.NewNotFoundError("Guest")
	}
	c := cloneUser(g)
	return &c, nil
}
