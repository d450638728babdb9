package events

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelreservation/internal/domain"
)

func startFeed(t *testing.T, allow func(string) bool) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(nil)
	router := gin.New()
	NewHandler(hub, allow).RegisterRoutes(router.Group("/api"))
	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/bookings/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_BroadcastsBookingEvents(t *testing.T) {
	hub, srv := startFeed(t, nil)
	a := dial(t, srv)
	b := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 2 }, time.Second, 10*time.Millisecond)

	booking := &domain.Booking{ID: 7, Status: domain.BookingPending, TotalPrice: 400}
	require.NoError(t, hub.NotifyBookingCreated(context.Background(), booking))

	for _, conn := range []*websocket.Conn{a, b} {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var ev Event
		require.NoError(t, conn.ReadJSON(&ev))
		assert.Equal(t, TypeBookingCreated, ev.Type)
		assert.Equal(t, int64(7), ev.BookingID)
		require.NotNil(t, ev.Booking)
		assert.Equal(t, 400.0, ev.Booking.TotalPrice)
	}

	require.NoError(t, hub.NotifyBookingCancelled(context.Background(), 7))
	_ = a.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	require.NoError(t, a.ReadJSON(&ev))
	assert.Equal(t, TypeBookingCancelled, ev.Type)
	assert.Nil(t, ev.Booking)
}

func TestHub_DropsClosedSubscribers(t *testing.T) {
	hub, srv := startFeed(t, nil)
	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, hub.Broadcast(newEvent(TypeBookingModified, 1, nil)))
}

func TestHandler_RejectsForeignOrigin(t *testing.T) {
	_, srv := startFeed(t, func(origin string) bool { return origin == "http://localhost:5173" })
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/bookings/events"

	header := map[string][]string{"Origin": {"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 403, resp.StatusCode)

	header = map[string][]string{"Origin": {"http://localhost:5173"}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	_ = conn.Close()
}

func TestHub_NoSubscribers(t *testing.T) {
	hub := NewHub(nil)
	assert.Equal(t, 0, hub.Broadcast(newEvent(TypeBookingCreated, 1, nil)))
	assert.NoError(t, hub.NotifyBookingModified(context.Background(), &domain.Booking{ID: 1}))
}
