package repositories

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// CartRepository reads the cart hash the cart service maintains in Redis:
// cart:{owner} -> {product id: quantity}.
type CartRepository interface {
	ItemCount(ctx context.Context, ownerID string) (int, error)
}

type cartRepository struct {
	rdb *redis.Client
	log *logrus.Logger
}

func NewCartRepository(rdb *redis.Client, log *logrus.Logger) CartRepository {
	return &cartRepository{rdb: rdb, log: log}
}

func cartKey(ownerID string) string {
	return fmt.Sprintf("cart:%s", ownerID)
}

func (r *cartRepository) ItemCount(ctx context.Context, ownerID string) (int, error) {
	vals, err := r.rdb.HVals(ctx, cartKey(ownerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		r.log.WithFields(logrus.Fields{"owner_id": ownerID, "error": err}).Error("Failed to read cart from Redis")
		return 0, fmt.Errorf("failed to read cart: %w", err)
	}

	total := 0
	for _, v := range vals {
		qty, err := strconv.Atoi(v)
		if err != nil || qty < 0 {
			r.log.WithFields(logrus.Fields{"owner_id": ownerID, "value": v}).Warn("Skipping malformed cart quantity")
			continue
		}
		total += qty
	}

	return total, nil
}
