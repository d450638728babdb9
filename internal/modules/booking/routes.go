package booking

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the booking endpoints. createMiddleware runs in
// front of booking creation only (rate limiting).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, createMiddleware ...gin.HandlerFunc) {
	create := append(append([]gin.HandlerFunc{}, createMiddleware...), h.CreateBooking)
	rg.POST("/bookings", create...)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/export", h.ExportBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id", h.UpdateBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)

	rg.GET("/guests/:id/bookings", h.GetGuestBookings)
}
