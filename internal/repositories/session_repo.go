package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// SessionRepository tracks revoked session tokens until they would have expired anyway.
type SessionRepository interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type sessionRepository struct {
	rdb *redis.Client
	log *logrus.Logger
}

func NewSessionRepository(rdb *redis.Client, log *logrus.Logger) SessionRepository {
	return &sessionRepository{rdb: rdb, log: log}
}

func revokedKey(sessionID string) string {
	return fmt.Sprintf("session:revoked:%s", sessionID)
}

func (r *sessionRepository) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}

	if err := r.rdb.Set(ctx, revokedKey(sessionID), 1, ttl).Err(); err != nil {
		r.log.WithFields(logrus.Fields{"session_id": sessionID, "error": err}).Error("Failed to revoke session")
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (r *sessionRepository) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, revokedKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session revocation: %w", err)
	}
	return n > 0, nil
}
