package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelreservation/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]domain.Room, error) {
	var models []roomModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, domain.WrapStore("rooms.find", err)
	}
	return toDomainRooms(models), nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Room")
		}
		return nil, domain.WrapStore("rooms.get", err)
	}
	room := toDomainRoom(m)
	return &room, nil
}

// FindAvailable returns AVAILABLE rooms with no live booking overlapping
// [checkIn, checkOut).
func (r *RoomRepository) FindAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	db := r.db.WithContext(ctx)
	busy := db.Model(&bookingModel{}).
		Select("room_id").
		Where("status <> ? AND check_in_date < ? AND check_out_date > ?",
			string(domain.BookingCancelled), checkOut.UTC(), checkIn.UTC())

	var models []roomModel
	err := db.Where("status = ?", string(domain.RoomAvailable)).
		Where("id NOT IN (?)", busy).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, domain.WrapStore("rooms.available", err)
	}
	return toDomainRooms(models), nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", roomID).
		Update("status", string(status))
	if tx.Error != nil {
		return domain.WrapStore("rooms.status", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.NewNotFoundError("Room")
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return domain.WrapStore("rooms.delete", r.db.WithContext(ctx).Delete(&roomModel{}, id).Error)
}

func toDomainRooms(models []roomModel) []domain.Room {
	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainRoom(m))
	}
	return out
}
