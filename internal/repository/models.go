package repository

import (
	"time"

	"hotelreservation/internal/domain"
)

type roomTypeModel struct {
	ID          int64   `gorm:"column:id"`
	Name        string  `gorm:"column:name"`
	Description string  `gorm:"column:description"`
	Capacity    int     `gorm:"column:capacity"`
	BasePrice   float64 `gorm:"column:base_price"`
}

type roomModel struct {
	ID         int64         `gorm:"column:id;primaryKey;autoIncrement:false"`
	RoomNumber string        `gorm:"column:room_number;uniqueIndex;not null"`
	Type       roomTypeModel `gorm:"embedded;embeddedPrefix:type_"`
	Status     string        `gorm:"column:status;not null;index"`
}

func (roomModel) TableName() string { return "rooms" }

type guestModel struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name       string `gorm:"column:name;not null"`
	Email      string `gorm:"column:email;uniqueIndex;not null"`
	Password   string `gorm:"column:password"`
	Role       string `gorm:"column:role"`
	Phone      string `gorm:"column:phone"`
	NationalID string `gorm:"column:national_id"`
}

func (guestModel) TableName() string { return "guests" }

type bookingModel struct {
	ID           int64       `gorm:"column:id;primaryKey;autoIncrement:false"`
	GuestID      int64       `gorm:"column:guest_id;index"`
	RoomID       int64       `gorm:"column:room_id;index"`
	CheckInDate  time.Time   `gorm:"column:check_in_date"`
	CheckOutDate time.Time   `gorm:"column:check_out_date"`
	TotalPrice   float64     `gorm:"column:total_price"`
	Status       string      `gorm:"column:status;index"`
	Guest        *guestModel `gorm:"foreignKey:GuestID"`
	Room         *roomModel  `gorm:"foreignKey:RoomID"`
}

func (bookingModel) TableName() string { return "bookings" }

// Models lists everything AutoMigrate has to create.
func Models() []interface{} {
	return []interface{}{&roomModel{}, &guestModel{}, &bookingModel{}}
}

func toDomainRoom(m roomModel) domain.Room {
	return domain.Room{
		ID:         m.ID,
		RoomNumber: m.RoomNumber,
		Type: domain.RoomType{
			ID:          m.Type.ID,
			Name:        m.Type.Name,
			Description: m.Type.Description,
			Capacity:    m.Type.Capacity,
			BasePrice:   m.Type.BasePrice,
		},
		Status: domain.RoomStatus(m.Status),
	}
}

func toRoomModel(r domain.Room) roomModel {
	return roomModel{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		Type: roomTypeModel{
			ID:          r.Type.ID,
			Name:        r.Type.Name,
			Description: r.Type.Description,
			Capacity:    r.Type.Capacity,
			BasePrice:   r.Type.BasePrice,
		},
		Status: string(r.Status),
	}
}

func toDomainGuest(m guestModel) *domain.User {
	u := domain.NewGuest(m.ID, m.Name, m.Email, m.Password, m.Phone, m.NationalID)
	if m.Role != "" {
		u.Role = domain.UserRole(m.Role)
	}
	return u
}

func toGuestModel(u domain.User) guestModel {
	return guestModel{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Password:   u.PasswordHash,
		Role:       string(u.Role),
		Phone:      u.Phone(),
		NationalID: u.Passport(),
	}
}

// toDomainBooking resolves the preloaded references. A reference whose row
// is gone keeps only its id.
func toDomainBooking(m bookingModel) domain.Booking {
	b := domain.Booking{
		ID:           m.ID,
		CheckInDate:  m.CheckInDate.UTC(),
		CheckOutDate: m.CheckOutDate.UTC(),
		Status:       domain.BookingStatus(m.Status),
		TotalPrice:   m.TotalPrice,
	}
	if m.Guest != nil {
		b.Guest = toDomainGuest(*m.Guest)
	} else {
		b.Guest = &domain.User{ID: m.GuestID}
	}
	if m.Room != nil {
		room := toDomainRoom(*m.Room)
		b.Room = &room
	} else {
		b.Room = &domain.Room{ID: m.RoomID}
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:           b.ID,
		GuestID:      b.GuestID(),
		RoomID:       b.RoomID(),
		CheckInDate:  b.CheckInDate.UTC(),
		CheckOutDate: b.CheckOutDate.UTC(),
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
	}
}
