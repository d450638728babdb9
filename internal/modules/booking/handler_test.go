package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelreservation/internal/domain"
	"hotelreservation/internal/repository/memory"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	ctx := context.Background()
	double := domain.RoomType{ID: 2, Name: "Double", Capacity: 2, BasePrice: 80}
	require.NoError(t, store.InsertRooms(ctx, []domain.Room{
		{ID: 1, RoomNumber: "101", Type: double, Status: domain.RoomAvailable},
		{ID: 2, RoomNumber: "102", Type: double, Status: domain.RoomMaintenance},
	}))
	require.NoError(t, store.InsertGuests(ctx, []domain.User{
		*domain.NewGuest(1, "Guest User", "guest@hotel.com", "x", "1234567890", "A1234567"),
	}))

	svc := NewService(store.Bookings(), store.Rooms(), store.Guests(), nil, nil, nil)
	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api"))
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createBody(roomID int64) gin.H {
	return gin.H{"guestId": 1, "roomId": roomID, "checkInDate": "2026-02-01", "checkOutDate": "2026-02-05"}
}

func TestHandler_CreateAndFetchBooking(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/bookings", createBody(1))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "PENDING", created["status"])
	assert.Equal(t, float64(320), created["totalPrice"])
	assert.Equal(t, "101", created["room"].(map[string]interface{})["roomNumber"])

	w = doJSON(router, http.MethodGet, "/api/bookings/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/guests/1/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestHandler_CreateBooking_Conflicts(t *testing.T) {
	router := setupRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/api/bookings", createBody(1)).Code)

	w := doJSON(router, http.MethodPost, "/api/bookings", createBody(1))
	assert.Equal(t, http.StatusConflict, w.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Room is not available", body.Error)
	assert.Equal(t, "BOOKING_CONFLICT", body.Code)

	w = doJSON(router, http.MethodPost, "/api/bookings", createBody(2))
	assert.Equal(t, http.StatusConflict, w.Code, "room under maintenance")
}

func TestHandler_CreateBooking_BadInput(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/bookings", gin.H{"guestId": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/bookings", gin.H{
		"guestId": 1, "roomId": 1, "checkInDate": "2026-02-05", "checkOutDate": "2026-02-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/bookings", gin.H{
		"guestId": 7, "roomId": 1, "checkInDate": "2026-02-01", "checkOutDate": "2026-02-05",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Guest not found", body.Error)
}

func TestHandler_UpdateBooking(t *testing.T) {
	router := setupRouter(t)
	require.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/api/bookings", createBody(1)).Code)

	w := doJSON(router, http.MethodPut, "/api/bookings/1", gin.H{"status": "CANCELLED"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPut, "/api/bookings/1", gin.H{"status": "CONFIRMED"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, http.MethodPut, "/api/bookings/99", gin.H{"status": "CONFIRMED"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPut, "/api/bookings/abc", gin.H{"status": "CONFIRMED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteBooking(t *testing.T) {
	router := setupRouter(t)
	require.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/api/bookings", createBody(1)).Code)

	assert.Equal(t, http.StatusNoContent, doJSON(router, http.MethodDelete, "/api/bookings/1", nil).Code)
	assert.Equal(t, http.StatusNoContent, doJSON(router, http.MethodDelete, "/api/bookings/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodGet, "/api/bookings/1", nil).Code)

	// the room is free again
	assert.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/api/bookings", createBody(1)).Code)
}

func TestHandler_ExportBookings(t *testing.T) {
	router := setupRouter(t)
	require.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/api/bookings", createBody(1)).Code)

	w := doJSON(router, http.MethodGet, "/api/bookings/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings-")
	assert.NotZero(t, w.Body.Len())
}
