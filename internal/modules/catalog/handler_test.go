package catalog

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
	"hotelreservation/internal/modules/booking"
	"hotelreservation/internal/repository/memory"
)

func setupRouter(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	ctx := context.Background()
	single := domain.RoomType{ID: 1, Name: "Single", Capacity: 1, BasePrice: 50}
	require.NoError(t, store.InsertRooms(ctx, []domain.Room{
		{ID: 1, RoomNumber: "101", Type: single, Status: domain.RoomAvailable},
		{ID: 2, RoomNumber: "102", Type: single, Status: domain.RoomAvailable},
	}))
	require.NoError(t, store.InsertGuests(ctx, []domain.User{*domain.NewGuest(1, "Guest", "g@hotel.com", "x", "1", "P")}))

	router := gin.New()
	NewHandler(NewService(store.Rooms(), nil)).RegisterRoutes(router.Group("/api"))
	return router, store
}

func request(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
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

func decodeRooms(t *testing.T, w *httptest.ResponseRecorder) []domain.Room {
	t.Helper()
	var rooms []domain.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	return rooms
}

func TestHandler_GetRooms(t *testing.T) {
	router, _ := setupRouter(t)

	w := request(router, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rooms := decodeRooms(t, w)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNumber)

	assert.Equal(t, http.StatusOK, request(router, http.MethodGet, "/api/rooms/2", nil).Code)
	assert.Equal(t, http.StatusNotFound, request(router, http.MethodGet, "/api/rooms/9", nil).Code)
	assert.Equal(t, http.StatusBadRequest, request(router, http.MethodGet, "/api/rooms/x", nil).Code)
}

func TestHandler_GetAvailableRooms(t *testing.T) {
	router, store := setupRouter(t)
	ctx := context.Background()
	guest, _ := store.Guests().FindByID(ctx, 1)
	room, _ := store.Rooms().FindByID(ctx, 1)
	in, out, err := booking.ParseRange("2026-02-01", "2026-02-05")
	require.NoError(t, err)
	_, err = store.Bookings().Save(ctx, domain.NewBooking(guest, room, in, out))
	require.NoError(t, err)

	w := request(router, http.MethodGet, "/api/rooms/available?checkIn=2026-02-03&checkOut=2026-02-04", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rooms := decodeRooms(t, w)
	require.Len(t, rooms, 1)
	assert.Equal(t, int64(2), rooms[0].ID)

	// checkout day is free for the next guest
	w = request(router, http.MethodGet, "/api/rooms/available?checkIn=2026-02-05&checkOut=2026-02-06", nil)
	assert.Len(t, decodeRooms(t, w), 2)

	w = request(router, http.MethodGet, "/api/rooms/available?checkIn=2026-02-05", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateRoomStatus(t *testing.T) {
	router, _ := setupRouter(t)

	w := request(router, http.MethodPatch, "/api/rooms/1/status", gin.H{"status": "maintenance"})
	require.Equal(t, http.StatusOK, w.Code)
	var room domain.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Equal(t, domain.RoomMaintenance, room.Status)

	w = request(router, http.MethodGet, "/api/rooms/available?checkIn=2026-02-01&checkOut=2026-02-02", nil)
	assert.Len(t, decodeRooms(t, w), 1)

	assert.Equal(t, http.StatusBadRequest, request(router, http.MethodPatch, "/api/rooms/1/status", gin.H{"status": "BROKEN"}).Code)
	assert.Equal(t, http.StatusNotFound, request(router, http.MethodPatch, "/api/rooms/9/status", gin.H{"status": "DIRTY"}).Code)
}

func TestHandler_DeleteRoom(t *testing.T) {
	router, _ := setupRouter(t)

	assert.Equal(t, http.StatusNoContent, request(router, http.MethodDelete, "/api/rooms/2", nil).Code)
	assert.Equal(t, http.StatusNoContent, request(router, http.MethodDelete, "/api/rooms/2", nil).Code)
	assert.Equal(t, http.StatusNotFound, request(router, http.MethodGet, "/api/rooms/2", nil).Code)
}
