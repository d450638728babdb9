package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelreservation/internal/domain"
)

// JSON writes data as the bare response body, the shape the web client reads.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
		"code":  code,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"code":    code,
		"details": details,
	})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// FromError maps the domain error taxonomy onto HTTP statuses. Anything
// unrecognised is a 500 carrying fallback as its message.
func FromError(c *gin.Context, err error, fallback string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrNotAvailable):
		Error(c, http.StatusConflict, "BOOKING_CONFLICT", err.Error())
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Cannot confirm a cancelled booking")
	default:
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
