package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hotelreservation/internal/domain"
)

type GuestRepository struct {
	guests *mongo.Collection
}

func (r *GuestRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var d guestDoc
	err := r.guests.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFoundError("Guest")
		}
		return nil, domain.WrapStore("guests.get", err)
	}
	return d.toDomain(), nil
}
