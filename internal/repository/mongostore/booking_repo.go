package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotelreservation/internal/domain"
)

type BookingRepository struct {
	bookings *mongo.Collection
}

// pipeline resolves the guest and room references. Dangling references
// survive the unwind with the *Doc field absent.
func pipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         guestsCollection,
			"localField":   "guest",
			"foreignField": "_id",
			"as":           "guestDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$guestDoc", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         roomsCollection,
			"localField":   "room",
			"foreignField": "_id",
			"as":           "roomDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$roomDoc", "preserveNullAndEmptyArrays": true}}},
	}
}

func (r *BookingRepository) aggregate(ctx context.Context, op string, match bson.M) ([]domain.Booking, error) {
	cursor, err := r.bookings.Aggregate(ctx, pipeline(match))
	if err != nil {
		return nil, domain.WrapStore(op, err)
	}
	var views []bookingView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, domain.WrapStore(op, err)
	}
	out := make([]domain.Booking, 0, len(views))
	for _, v := range views {
		out = append(out, v.toDomain())
	}
	return out, nil
}

func (r *BookingRepository) nextID(ctx context.Context) (int64, error) {
	var last struct {
		ID int64 `bson:"_id"`
	}
	opts := options.FindOne().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetProjection(bson.M{"_id": 1})
	err := r.bookings.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.ID + 1, nil
}

// Save inserts bookings with id 0 under max(_id)+1 and updates the rest.
func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if b.ID != 0 {
		if err := r.Update(ctx, b); err != nil {
			return nil, err
		}
		return r.FindByID(ctx, b.ID)
	}

	doc := newBookingDoc(b)
	var err error
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		if doc.ID, err = r.nextID(ctx); err != nil {
			return nil, domain.WrapStore("bookings.next_id", err)
		}
		_, err = r.bookings.InsertOne(ctx, doc)
		if err == nil {
			b.ID = doc.ID
			return r.FindByID(ctx, doc.ID)
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, domain.WrapStore("bookings.insert", err)
		}
	}
	return nil, domain.WrapStore("bookings.insert", err)
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	found, err := r.aggregate(ctx, "bookings.get", bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.NewNotFoundError("Booking")
	}
	return &found[0], nil
}

func (r *BookingRepository) FindByGuestID(ctx context.Context, guestID int64) ([]domain.Booking, error) {
	return r.aggregate(ctx, "bookings.by_guest", bson.M{"guest": guestID})
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	return r.aggregate(ctx, "bookings.find", bson.M{})
}

// Update overwrites dates, price and status.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	res, err := r.bookings.UpdateOne(ctx, bson.M{"_id": b.ID}, bson.M{"$set": bson.M{
		"checkInDate":  b.CheckInDate.UTC(),
		"checkOutDate": b.CheckOutDate.UTC(),
		"totalPrice":   b.TotalPrice,
		"status":       string(b.Status),
	}})
	if err != nil {
		return domain.WrapStore("bookings.update", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("Booking")
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.bookings.DeleteOne(ctx, bson.M{"_id": id})
	return domain.WrapStore("bookings.delete", err)
}
