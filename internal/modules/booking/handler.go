package booking

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelreservation/internal/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+name)
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err, "Failed to create booking")
		return
	}
	response.JSON(c, http.StatusCreated, b)
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "Error fetching bookings")
		return
	}
	response.JSON(c, http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Error fetching booking")
		return
	}
	response.JSON(c, http.StatusOK, b)
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.ModifyBooking(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err, "Failed to update booking")
		return
	}
	response.JSON(c, http.StatusOK, b)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.CancelBooking(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "Failed to delete booking")
		return
	}
	response.NoContent(c)
}

func (h *Handler) GetGuestBookings(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	bookings, err := h.service.ListGuestBookings(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Error fetching bookings")
		return
	}
	response.JSON(c, http.StatusOK, bookings)
}

func (h *Handler) ExportBookings(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.ExportBookings(c.Request.Context(), &buf); err != nil {
		response.FromError(c, err, "Failed to export bookings")
		return
	}
	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().UTC().Format(dateLayout))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
