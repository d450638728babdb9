// Package mongostore is the MongoDB storage adapter. Bookings reference
// guests and rooms by _id and reads resolve them with $lookup.
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotelreservation/internal/domain"
)

const maxInsertAttempts = 5

type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Rooms() *RoomRepository {
	return &RoomRepository{rooms: s.db.Collection(roomsCollection), bookings: s.db.Collection(bookingsCollection)}
}

func (s *Store) Guests() *GuestRepository {
	return &GuestRepository{guests: s.db.Collection(guestsCollection)}
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{bookings: s.db.Collection(bookingsCollection)}
}

// EnsureIndexes creates the lookup indexes. Safe to run on every start.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(roomsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "roomNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return domain.WrapStore("rooms.indexes", err)
	}
	_, err = s.db.Collection(guestsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return domain.WrapStore("guests.indexes", err)
	}
	_, err = s.db.Collection(bookingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "room", Value: 1}, {Key: "checkInDate", Value: 1}}},
		{Keys: bson.D{{Key: "guest", Value: 1}}},
	})
	return domain.WrapStore("bookings.indexes", err)
}

func (s *Store) CountRooms(ctx context.Context) (int64, error) {
	n, err := s.db.Collection(roomsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, domain.WrapStore("rooms.count", err)
	}
	return n, nil
}

// InsertRooms upserts by _id.
func (s *Store) InsertRooms(ctx context.Context, rooms []domain.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(rooms))
	for _, r := range rooms {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": r.ID}).
			SetReplacement(newRoomDoc(r)).
			SetUpsert(true))
	}
	_, err := s.db.Collection(roomsCollection).BulkWrite(ctx, models)
	return domain.WrapStore("rooms.insert", err)
}

func (s *Store) InsertGuests(ctx context.Context, guests []domain.User) error {
	if len(guests) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(guests))
	for _, g := range guests {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": g.ID}).
			SetReplacement(newGuestDoc(g)).
			SetUpsert(true))
	}
	_, err := s.db.Collection(guestsCollection).BulkWrite(ctx, models)
	return domain.WrapStore("guests.insert", err)
}
