package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelreservation/internal/domain"
)

func setupTestRedis(t *testing.T, wait time.Duration) (*miniredis.Miniredis, *RoomLocker) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRoomLocker(client, 5*time.Second, wait, nil)
}

func TestRoomLocker_AcquireAndRelease(t *testing.T) {
	mr, locker := setupTestRedis(t, 0)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, 101)
	require.NoError(t, err)
	assert.True(t, mr.Exists(key(101)))
	assert.Equal(t, 5*time.Second, mr.TTL(key(101)))

	unlock()
	assert.False(t, mr.Exists(key(101)))
}

func TestRoomLocker_BusyRoom(t *testing.T) {
	_, locker := setupTestRedis(t, 60*time.Millisecond)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, 101)
	require.NoError(t, err)
	defer unlock()

	_, err = locker.Lock(ctx, 101)
	assert.ErrorIs(t, err, domain.ErrNotAvailable)

	other, err := locker.Lock(ctx, 102)
	require.NoError(t, err, "locks are per room")
	other()
}

func TestRoomLocker_WaitsForRelease(t *testing.T) {
	_, locker := setupTestRedis(t, 2*time.Second)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, 101)
	require.NoError(t, err)
	go func() {
		time.Sleep(50 * time.Millisecond)
		unlock()
	}()

	second, err := locker.Lock(ctx, 101)
	require.NoError(t, err)
	second()
}

func TestRoomLocker_ReleaseKeepsForeignToken(t *testing.T) {
	mr, locker := setupTestRedis(t, 0)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, 101)
	require.NoError(t, err)

	// lock expired and another instance took it
	require.NoError(t, mr.Set(key(101), "someone-else"))
	unlock()

	got, err := mr.Get(key(101))
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRoomLocker_RedisDown(t *testing.T) {
	mr, locker := setupTestRedis(t, 0)
	mr.Close()

	_, err := locker.Lock(context.Background(), 101)
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestConnect_BadURL(t *testing.T) {
	_, err := Connect(context.Background(), "not a url")
	assert.Error(t, err)
}
