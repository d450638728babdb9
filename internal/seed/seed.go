// Package seed loads the reference rooms and the demo guest into an empty store.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hotelreservation/internal/domain"
	"hotelreservation/internal/pkg/validator"
)

// Target is implemented by every storage adapter's seeder.
type Target interface {
	CountRooms(ctx context.Context) (int64, error)
	InsertRooms(ctx context.Context, rooms []domain.Room) error
	InsertGuests(ctx context.Context, guests []domain.User) error
}

const demoGuestPassword = "password"

func RoomTypes() []domain.RoomType {
	return []domain.RoomType{
		{ID: 1, Name: "Single", Description: "A cozy single room", Capacity: 1, BasePrice: 50},
		{ID: 2, Name: "Double", Description: "A standard double room", Capacity: 2, BasePrice: 80},
		{ID: 3, Name: "Suite", Description: "A luxury suite", Capacity: 4, BasePrice: 150},
	}
}

func Rooms() []domain.Room {
	types := RoomTypes()
	return []domain.Room{
		{ID: 101, RoomNumber: "101", Type: types[0], Status: domain.RoomAvailable},
		{ID: 102, RoomNumber: "102", Type: types[1], Status: domain.RoomAvailable},
		{ID: 201, RoomNumber: "201", Type: types[2], Status: domain.RoomAvailable},
	}
}

// Guests returns the demo guest with a bcrypt-hashed credential.
func Guests() ([]domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoGuestPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	g := domain.NewGuest(1, "Guest User", "guest@hotel.com", string(hash), "1234567890", "A1234567")
	return []domain.User{*g}, nil
}

// Run seeds t when it holds no rooms, or always when force is set.
// It reports whether data was written.
func Run(ctx context.Context, t Target, log *zap.Logger, force bool) (bool, error) {
	if log == nil {
		log = zap.NewNop()
	}
	count, err := t.CountRooms(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 && !force {
		log.Debug("seed skipped", zap.Int64("rooms", count))
		return false, nil
	}

	log.Info("seeding database")

	rooms := Rooms()
	for _, r := range rooms {
		if errs := validator.Validate(r); errs != nil {
			return false, fmt.Errorf("seed room %d: %v", r.ID, errs)
		}
	}
	guests, err := Guests()
	if err != nil {
		return false, fmt.Errorf("hash guest password: %w", err)
	}
	for _, g := range guests {
		if errs := validator.Validate(g); errs != nil {
			return false, fmt.Errorf("seed guest %d: %v", g.ID, errs)
		}
	}

	if err := t.InsertRooms(ctx, rooms); err != nil {
		return false, err
	}
	if err := t.InsertGuests(ctx, guests); err != nil {
		return false, err
	}

	log.Info("database seeded", zap.Int("rooms", len(rooms)), zap.Int("guests", len(guests)))
	return true, nil
}
