package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hotelreservation/internal/domain"
	"hotelreservation/internal/repository/memory"
)

func TestRun_SeedsEmptyStore(t *testing.T) {
	store := memory.NewStore()

	seeded, err := Run(context.Background(), store, zap.NewNop(), false)
	require.NoError(t, err)
	assert.True(t, seeded)

	rooms, err := store.Rooms().FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, 150.0, rooms[2].Type.BasePrice)

	guest, err := store.Guests().FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGuest, guest.Role)
	assert.Equal(t, "A1234567", guest.Passport())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guest.PasswordHash), []byte("password")))
}

func TestRun_SkipsPopulatedStore(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.InsertRooms(context.Background(), []domain.Room{{ID: 1, RoomNumber: "1", Status: domain.RoomDirty}}))

	seeded, err := Run(context.Background(), store, zap.NewNop(), false)
	require.NoError(t, err)
	assert.False(t, seeded)

	rooms, _ := store.Rooms().FindAll(context.Background())
	assert.Len(t, rooms, 1)
}

func TestRun_Force(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.InsertRooms(context.Background(), []domain.Room{{ID: 1, RoomNumber: "1", Status: domain.RoomDirty}}))

	seeded, err := Run(context.Background(), store, zap.NewNop(), true)
	require.NoError(t, err)
	assert.True(t, seeded)

	rooms, _ := store.Rooms().FindAll(context.Background())
	assert.Len(t, rooms, 4)
}
