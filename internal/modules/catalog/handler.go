package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelreservation/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func roomID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return 0, false
	}
	return id, true
}

// GetRooms handles GET /api/rooms
func (h *Handler) GetRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "Error fetching rooms")
		return
	}
	response.JSON(c, http.StatusOK, rooms)
}

// GetAvailableRooms handles GET /api/rooms/available?checkIn=...&checkOut=...
func (h *Handler) GetAvailableRooms(c *gin.Context) {
	rooms, err := h.service.AvailableRooms(c.Request.Context(), c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		response.FromError(c, err, "Error fetching available rooms")
		return
	}
	response.JSON(c, http.StatusOK, rooms)
}

// GetRoomByID handles GET /api/rooms/:id
func (h *Handler) GetRoomByID(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}
	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Error fetching room")
		return
	}
	response.JSON(c, http.StatusOK, room)
}

func (h *Handler) UpdateRoomStatus(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}
	var req UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.UpdateRoomStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.FromError(c, err, "Failed to update room status")
		return
	}
	response.JSON(c, http.StatusOK, room)
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "Failed to delete room")
		return
	}
	response.NoContent(c)
}
