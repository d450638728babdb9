package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotelreservation/internal/domain"
)

type RoomRepository struct {
	rooms    *mongo.Collection
	bookings *mongo.Collection
}

func (r *RoomRepository) find(ctx context.Context, op string, filter interface{}) ([]domain.Room, error) {
	cursor, err := r.rooms.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, domain.WrapStore(op, err)
	}
	var docs []roomDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domain.WrapStore(op, err)
	}
	out := make([]domain.Room, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]domain.Room, error) {
	return r.find(ctx, "rooms.find", bson.M{})
}

func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*domain.Room, error) {
	var d roomDoc
	err := r.rooms.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFoundError("Room")
		}
		return nil, domain.WrapStore("rooms.get", err)
	}
	room := d.toDomain()
	return &room, nil
}

// FindAvailable returns AVAILABLE rooms that no live booking overlaps.
func (r *RoomRepository) FindAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	busy, err := r.bookings.Distinct(ctx, "room", bson.M{
		"status":       bson.M{"$ne": string(domain.BookingCancelled)},
		"checkInDate":  bson.M{"$lt": checkOut.UTC()},
		"checkOutDate": bson.M{"$gt": checkIn.UTC()},
	})
	if err != nil {
		return nil, domain.WrapStore("rooms.available", err)
	}
	if busy == nil {
		busy = []interface{}{}
	}
	return r.find(ctx, "rooms.available", bson.M{
		"status": string(domain.RoomAvailable),
		"_id":    bson.M{"$nin": busy},
	})
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error {
	res, err := r.rooms.UpdateOne(ctx, bson.M{"_id": roomID}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return domain.WrapStore("rooms.status", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("Room")
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.rooms.DeleteOne(ctx, bson.M{"_id": id})
	return domain.WrapStore("rooms.delete", err)
}
