package booking

type CreateBookingRequest struct {
	GuestID      int64  `json:"guestId" binding:"required"`
	RoomID       int64  `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// ModifyBookingRequest is a partial update. Nil or empty fields are left untouched.
type ModifyBookingRequest struct {
	CheckInDate  *string  `json:"checkInDate"`
	CheckOutDate *string  `json:"checkOutDate"`
	Status       *string  `json:"status"`
	TotalPrice   *float64 `json:"totalPrice"`
}
