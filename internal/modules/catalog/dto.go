package catalog

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
