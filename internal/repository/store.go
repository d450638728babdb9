// Package repository is the relational storage adapter (PostgreSQL or SQLite through gorm).
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"hotelreservation/internal/domain"
)

const maxInsertAttempts = 5

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Rooms() *RoomRepository { return &RoomRepository{db: s.db} }

func (s *Store) Guests() *GuestRepository { return &GuestRepository{db: s.db} }

func (s *Store) Bookings() *BookingRepository { return &BookingRepository{db: s.db} }

// Migrate creates or updates the rooms, guests and bookings tables.
func (s *Store) Migrate(ctx context.Context) error {
	return domain.WrapStore("migrate", s.db.WithContext(ctx).AutoMigrate(Models()...))
}

func (s *Store) CountRooms(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&roomModel{}).Count(&n).Error; err != nil {
		return 0, domain.WrapStore("rooms.count", err)
	}
	return n, nil
}

// InsertRooms upserts by id so reseeding resets the reference rooms.
func (s *Store) InsertRooms(ctx context.Context, rooms []domain.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	models := make([]roomModel, 0, len(rooms))
	for _, r := range rooms {
		models = append(models, toRoomModel(r))
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&models).Error
	return domain.WrapStore("rooms.insert", err)
}

func (s *Store) InsertGuests(ctx context.Context, guests []domain.User) error {
	if len(guests) == 0 {
		return nil
	}
	models := make([]guestModel, 0, len(guests))
	for _, g := range guests {
		models = append(models, toGuestModel(g))
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&models).Error
	return domain.WrapStore("guests.insert", err)
}

// isUniqueViolation recognises a duplicate key from any of the supported drivers.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
