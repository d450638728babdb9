package lock

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hotelreservation/internal/domain"
)

const (
	keyPrefix     = "hotel:room-lock:"
	retryInterval = 25 * time.Millisecond
)

// ErrBusy is returned when the room stays locked for the whole wait window.
var ErrBusy = &domain.AvailabilityError{Reason: "Room is being reserved by another request"}

// release deletes the key only while it still holds our token.
var release = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RoomLocker serialises booking creation per room across API instances.
type RoomLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
	log    *zap.Logger
}

func NewRoomLocker(client *redis.Client, ttl, wait time.Duration, log *zap.Logger) *RoomLocker {
	if log == nil {
		log = zap.NewNop()
	}
	return &RoomLocker{client: client, ttl: ttl, wait: wait, log: log}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func key(roomID int64) string {
	return keyPrefix + strconv.FormatInt(roomID, 10)
}

// Lock acquires the room, retrying until the wait window closes. The
// returned func releases it and is safe to call once.
func (l *RoomLocker) Lock(ctx context.Context, roomID int64) (func(), error) {
	k := key(roomID)
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, k, token, l.ttl).Result()
		if err != nil {
			return nil, domain.WrapStore("lock.acquire", err)
		}
		if ok {
			break
		}
		if !time.Now().Before(deadline) {
			return nil, ErrBusy
		}
		select {
		case <-ctx.Done():
			return nil, domain.WrapStore("lock.acquire", ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	return func() {
		// the request context may already be cancelled
		rctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := release.Run(rctx, l.client, []string{k}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			l.log.Warn("room lock release failed", zap.Int64("room_id", roomID), zap.Error(err))
		}
	}, nil
}
