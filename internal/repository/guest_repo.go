package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelreservation/internal/domain"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var m guestModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Guest")
		}
		return nil, domain.WrapStore("guests.get", err)
	}
	return toDomainGuest(m), nil
}
