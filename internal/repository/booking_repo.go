package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelreservation/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) resolved(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Guest").Preload("Room")
}

// Save inserts a booking with id 0 under the next free id and updates any
// other. Concurrent inserts racing for the same id retry.
func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if b.ID != 0 {
		if err := r.Update(ctx, b); err != nil {
			return nil, err
		}
		return r.FindByID(ctx, b.ID)
	}

	m := toBookingModel(b)
	var err error
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		var maxID int64
		if err = r.db.WithContext(ctx).Model(&bookingModel{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return nil, domain.WrapStore("bookings.next_id", err)
		}
		m.ID = maxID + 1
		err = r.db.WithContext(ctx).Omit("Guest", "Room").Create(&m).Error
		if err == nil {
			b.ID = m.ID
			return r.FindByID(ctx, m.ID)
		}
		if !isUniqueViolation(err) {
			return nil, domain.WrapStore("bookings.insert", err)
		}
	}
	return nil, domain.WrapStore("bookings.insert", err)
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	err := r.resolved(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking")
		}
		return nil, domain.WrapStore("bookings.get", err)
	}
	b := toDomainBooking(m)
	return &b, nil
}

func (r *BookingRepository) FindByGuestID(ctx context.Context, guestID int64) ([]domain.Booking, error) {
	var models []bookingModel
	if err := r.resolved(ctx).Where("guest_id = ?", guestID).Order("id").Find(&models).Error; err != nil {
		return nil, domain.WrapStore("bookings.by_guest", err)
	}
	return toDomainBookings(models), nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	var models []bookingModel
	if err := r.resolved(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, domain.WrapStore("bookings.find", err)
	}
	return toDomainBookings(models), nil
}

// Update overwrites dates, price and status. Guest and room are fixed at creation.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"check_in_date":  b.CheckInDate.UTC(),
			"check_out_date": b.CheckOutDate.UTC(),
			"total_price":    b.TotalPrice,
			"status":         string(b.Status),
		})
	if tx.Error != nil {
		return domain.WrapStore("bookings.update", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.NewNotFoundError("Booking")
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return domain.WrapStore("bookings.delete", r.db.WithContext(ctx).Delete(&bookingModel{}, id).Error)
}

func toDomainBookings(models []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainBooking(m))
	}
	return out
}
