package catalog

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rooms := rg.Group("/rooms")
	{
		rooms.GET("", h.GetRooms)
		rooms.GET("/available", h.GetAvailableRooms) // ?checkIn=2026-02-01&checkOut=2026-02-05
		rooms.GET("/:id", h.GetRoomByID)
		rooms.PATCH("/:id/status", h.UpdateRoomStatus)
		rooms.DELETE("/:id", h.DeleteRoom)
	}
}
