package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// CancelLockRepository marks an order as having a cancel request outstanding,
// shared by every storefront instance.
type CancelLockRepository interface {
	Acquire(ctx context.Context, orderID, holder string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, orderID, holder string) error
}

type cancelLockRepository struct {
	rdb *redis.Client
	log *logrus.Logger
}

func NewCancelLockRepository(rdb *redis.Client, log *logrus.Logger) CancelLockRepository {
	return &cancelLockRepository{rdb: rdb, log: log}
}

// only the holder may delete its own lock
var releaseCancelLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func cancelLockKey(orderID string) string {
	return fmt.Sprintf("order:cancelling:%s", orderID)
}

func (r *cancelLockRepository) Acquire(ctx context.Context, orderID, holder string, ttl time.Duration) (bool, error) {
	ok, err := r.rdb.SetNX(ctx, cancelLockKey(orderID), holder, ttl).Result()
	if err != nil {
		r.log.WithFields(logrus.Fields{"order_id": orderID, "error": err}).Error("Failed to acquire cancel lock")
		return false, fmt.Errorf("failed to acquire cancel lock: %w", err)
	}
	return ok, nil
}

func (r *cancelLockRepository) Release(ctx context.Context, orderID, holder string) error {
	if err := releaseCancelLock.Run(ctx, r.rdb, []string{cancelLockKey(orderID)}, holder).Err(); err != nil {
		return fmt.Errorf("failed to release cancel lock: %w", err)
	}
	return nil
}
