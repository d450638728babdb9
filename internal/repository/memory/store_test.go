package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelreservation/internal/domain"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	ctx := context.Background()
	std := domain.RoomType{ID: 1, Name: "Single", Capacity: 1, BasePrice: 50}
	require.NoError(t, s.InsertRooms(ctx, []domain.Room{
		{ID: 101, RoomNumber: "101", Type: std, Status: domain.RoomAvailable},
		{ID: 102, RoomNumber: "102", Type: std, Status: domain.RoomAvailable},
		{ID: 103, RoomNumber: "103", Type: std, Status: domain.RoomMaintenance},
	}))
	require.NoError(t, s.InsertGuests(ctx, []domain.User{*domain.NewGuest(1, "Guest", "g@hotel.com", "x", "1", "P")}))
	return s
}

func saveBooking(t *testing.T, s *Store, roomID int64, in, out string) *domain.Booking {
	t.Helper()
	ctx := context.Background()
	guest, err := s.Guests().FindByID(ctx, 1)
	require.NoError(t, err)
	room, err := s.Rooms().FindByID(ctx, roomID)
	require.NoError(t, err)
	b, err := s.Bookings().Save(ctx, domain.NewBooking(guest, room, date(in), date(out)))
	require.NoError(t, err)
	return b
}

func TestBookingRepository_SaveAssignsIncreasingIDs(t *testing.T) {
	s := newTestStore(t)

	first := saveBooking(t, s, 101, "2026-02-01", "2026-02-03")
	second := saveBooking(t, s, 102, "2026-02-01", "2026-02-03")
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	require.NoError(t, s.Bookings().Delete(context.Background(), 2))
	third := saveBooking(t, s, 102, "2026-03-01", "2026-03-03")
	assert.Equal(t, int64(2), third.ID, "id is max existing id + 1")
}

func TestBookingRepository_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	saved := saveBooking(t, s, 101, "2026-02-01", "2026-02-05")

	all, err := s.Bookings().FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	got := all[0]
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, saved.Guest.ID, got.Guest.ID)
	assert.Equal(t, "Guest", got.Guest.Name)
	assert.Equal(t, saved.Room.RoomNumber, got.Room.RoomNumber)
	assert.True(t, saved.CheckInDate.Equal(got.CheckInDate))
	assert.True(t, saved.CheckOutDate.Equal(got.CheckOutDate))
	assert.Equal(t, 200.0, got.TotalPrice)
	assert.Equal(t, domain.BookingPending, got.Status)
}

func TestBookingRepository_DeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	b := saveBooking(t, s, 101, "2026-02-01", "2026-02-05")
	ctx := context.Background()

	require.NoError(t, s.Bookings().Delete(ctx, b.ID))
	_, err := s.Bookings().FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, s.Bookings().Delete(ctx, b.ID))
}

func TestBookingRepository_UpdateAndFindByGuest(t *testing.T) {
	s := newTestStore(t)
	b := saveBooking(t, s, 101, "2026-02-01", "2026-02-05")
	ctx := context.Background()

	b.Status = domain.BookingConfirmed
	b.TotalPrice = 999
	_, err := s.Bookings().Save(ctx, b)
	require.NoError(t, err)

	got, err := s.Bookings().FindByGuestID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.BookingConfirmed, got[0].Status)
	assert.Equal(t, 999.0, got[0].TotalPrice)

	none, err := s.Bookings().FindByGuestID(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, none)

	err = s.Bookings().Update(ctx, &domain.Booking{ID: 77})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoomRepository_FindAvailable(t *testing.T) {
	s := newTestStore(t)
	saveBooking(t, s, 101, "2026-02-01", "2026-02-05")
	ctx := context.Background()

	rooms, err := s.Rooms().FindAvailable(ctx, date("2026-02-03"), date("2026-02-04"))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, int64(102), rooms[0].ID, "101 overlaps, 103 is in maintenance")

	rooms, err = s.Rooms().FindAvailable(ctx, date("2026-02-05"), date("2026-02-07"))
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestRoomRepository_CancelledBookingFreesRoom(t *testing.T) {
	s := newTestStore(t)
	b := saveBooking(t, s, 101, "2026-02-01", "2026-02-05")
	ctx := context.Background()
	b.Status = domain.BookingCancelled
	require.NoError(t, s.Bookings().Update(ctx, b))

	rooms, err := s.Rooms().FindAvailable(ctx, date("2026-02-02"), date("2026-02-03"))
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestRoomRepository_StatusAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Rooms().UpdateStatus(ctx, 102, domain.RoomDirty))
	room, err := s.Rooms().FindByID(ctx, 102)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomDirty, room.Status)

	assert.ErrorIs(t, s.Rooms().UpdateStatus(ctx, 999, domain.RoomDirty), domain.ErrNotFound)

	require.NoError(t, s.Rooms().Delete(ctx, 102))
	require.NoError(t, s.Rooms().Delete(ctx, 102))
	_, err = s.Rooms().FindByID(ctx, 102)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_IsolatedInstances(t *testing.T) {
	a := newTestStore(t)
	b := NewStore()

	saveBooking(t, a, 101, "2026-02-01", "2026-02-02")
	all, err := b.Bookings().FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBookingRepository_DeletedRoomKeepsReference(t *testing.T) {
	s := newTestStore(t)
	saveBooking(t, s, 101, "2026-02-01", "2026-02-02")
	ctx := context.Background()
	require.NoError(t, s.Rooms().Delete(ctx, 101))

	all, err := s.Bookings().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(101), all[0].Room.ID)
	assert.Empty(t, all[0].Room.RoomNumber)
}
