package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

type WishlistRepository interface {
	CountByUserID(ctx context.Context, userID string) (int, error)
}

type wishlistRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewWishlistRepository(db *sql.DB, log *logrus.Logger) WishlistRepository {
	return &wishlistRepository{db: db, log: log}
}

const countWishlistItems = `SELECT COUNT(*) FROM wishlist_items WHERE user_id = $1`

func (r *wishlistRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countWishlistItems, userID).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{"user_id": userID, "error": err}).Error("Failed to count wishlist items")
		return 0, fmt.Errorf("failed to count wishlist items: %w", err)
	}
	return count, nil
}
