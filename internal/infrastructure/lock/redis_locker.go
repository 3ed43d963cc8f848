package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"purchase_sale/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	defaultLockPrefix = "purchase-sale:vehicle-lock"
	defaultRetryDelay = 50 * time.Millisecond
)

var ErrLockTimeout = errors.New("timed out waiting for vehicle lock")

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another instance is left alone.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisVehicleLocker serializes work per vehicle across service instances
// with SET NX locks that expire after ttl.
type RedisVehicleLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
	prefix string
}

var _ interfaces.IVehicleLocker = (*RedisVehicleLocker)(nil)

func NewRedisVehicleLocker(client *redis.Client, ttl, wait time.Duration) *RedisVehicleLocker {
	return &RedisVehicleLocker{client: client, ttl: ttl, wait: wait, prefix: defaultLockPrefix}
}

func (l *RedisVehicleLocker) Lock(ctx context.Context, vehicleID int64) (func(), error) {
	key := fmt.Sprintf("%s:%d", l.prefix, vehicleID)
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock for vehicle %d: %w", vehicleID, err)
		}
		if ok {
			return func() { l.unlock(key, token) }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w %d", ErrLockTimeout, vehicleID)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(defaultRetryDelay):
		}
	}
}

func (l *RedisVehicleLocker) unlock(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		log.WithError(err).WithField("key", key).Warn("[lock][redis] release failed")
	}
}
