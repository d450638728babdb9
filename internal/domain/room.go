package domain

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
	RoomDirty       RoomStatus = "DIRTY"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomDirty:
		return true
	}
	return false
}

// RoomType is reference data shared by every room of the same category.
type RoomType struct {
	ID          int64   `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity" validate:"required,gt=0"`
	BasePrice   float64 `json:"basePrice" validate:"gte=0"`
}

type Room struct {
	ID         int64      `json:"id" validate:"required"`
	RoomNumber string     `json:"roomNumber" validate:"required"`
	Type       RoomType   `json:"type"`
	Status     RoomStatus `json:"status" validate:"required"`
}

func (r *Room) IsAvailable() bool {
	return r.Status == RoomAvailable
}
