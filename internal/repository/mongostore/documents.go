package mongostore

import (
	"time"

	"hotelreservation/internal/domain"
)

const (
	roomsCollection    = "rooms"
	guestsCollection   = "guests"
	bookingsCollection = "bookings"
)

type roomTypeDoc struct {
	ID          int64   `bson:"id"`
	Name        string  `bson:"name"`
	Description string  `bson:"description"`
	Capacity    int     `bson:"capacity"`
	BasePrice   float64 `bson:"basePrice"`
}

type roomDoc struct {
	ID         int64       `bson:"_id"`
	RoomNumber string      `bson:"roomNumber"`
	Type       roomTypeDoc `bson:"type"`
	Status     string      `bson:"status"`
}

type guestDoc struct {
	ID         int64  `bson:"_id"`
	Name       string `bson:"name"`
	Email      string `bson:"email"`
	Password   string `bson:"password"`
	Role       string `bson:"role,omitempty"`
	Phone      string `bson:"phone"`
	NationalID string `bson:"nationalId"`
}

// bookingDoc stores guest and room as references by id.
type bookingDoc struct {
	ID           int64     `bson:"_id"`
	Guest        int64     `bson:"guest"`
	Room         int64     `bson:"room"`
	CheckInDate  time.Time `bson:"checkInDate"`
	CheckOutDate time.Time `bson:"checkOutDate"`
	TotalPrice   float64   `bson:"totalPrice"`
	Status       string    `bson:"status"`
}

// bookingView is a booking after the $lookup stages.
type bookingView struct {
	ID           int64     `bson:"_id"`
	Guest        int64     `bson:"guest"`
	Room         int64     `bson:"room"`
	CheckInDate  time.Time `bson:"checkInDate"`
	CheckOutDate time.Time `bson:"checkOutDate"`
	TotalPrice   float64   `bson:"totalPrice"`
	Status       string    `bson:"status"`
	GuestDoc     *guestDoc `bson:"guestDoc,omitempty"`
	RoomDoc      *roomDoc  `bson:"roomDoc,omitempty"`
}

func (d roomDoc) toDomain() domain.Room {
	return domain.Room{
		ID:         d.ID,
		RoomNumber: d.RoomNumber,
		Type: domain.RoomType{
			ID:          d.Type.ID,
			Name:        d.Type.Name,
			Description: d.Type.Description,
			Capacity:    d.Type.Capacity,
			BasePrice:   d.Type.BasePrice,
		},
		Status: domain.RoomStatus(d.Status),
	}
}

func newRoomDoc(r domain.Room) roomDoc {
	return roomDoc{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		Type: roomTypeDoc{
			ID:          r.Type.ID,
			Name:        r.Type.Name,
			Description: r.Type.Description,
			Capacity:    r.Type.Capacity,
			BasePrice:   r.Type.BasePrice,
		},
		Status: string(r.Status),
	}
}

func (d guestDoc) toDomain() *domain.User {
	u := domain.NewGuest(d.ID, d.Name, d.Email, d.Password, d.Phone, d.NationalID)
	if d.Role != "" {
		u.Role = domain.UserRole(d.Role)
	}
	return u
}

func newGuestDoc(u domain.User) guestDoc {
	return guestDoc{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Password:   u.PasswordHash,
		Role:       string(u.Role),
		Phone:      u.Phone(),
		NationalID: u.Passport(),
	}
}

func newBookingDoc(b *domain.Booking) bookingDoc {
	return bookingDoc{
		ID:           b.ID,
		Guest:        b.GuestID(),
		Room:         b.RoomID(),
		CheckInDate:  b.CheckInDate.UTC(),
		CheckOutDate: b.CheckOutDate.UTC(),
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
	}
}

func (v bookingView) toDomain() domain.Booking {
	b := domain.Booking{
		ID:           v.ID,
		CheckInDate:  v.CheckInDate.UTC(),
		CheckOutDate: v.CheckOutDate.UTC(),
		Status:       domain.BookingStatus(v.Status),
		TotalPrice:   v.TotalPrice,
	}
	if v.GuestDoc != nil {
		b.Guest = v.GuestDoc.toDomain()
	} else {
		b.Guest = &domain.User{ID: v.Guest}
	}
	if v.RoomDoc != nil {
		room := v.RoomDoc.toDomain()
		b.Room = &room
	} else {
		b.Room = &domain.Room{ID: v.Room}
	}
	return b
}
