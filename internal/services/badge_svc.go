package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/repositories"
)

// BadgeService feeds the cart and wishlist counters of the navigation bar.
type BadgeService interface {
	CartCount(ctx context.Context, ownerID string) (int, error)
	WishlistCount(ctx context.Context, userID string) (int, error)
}

type badgeServiceImpl struct {
	cartRepo     repositories.CartRepository
	wishlistRepo repositories.WishlistRepository
	log          *logrus.Logger
}

func NewBadgeService(
	cartRepo repositories.CartRepository,
	wishlistRepo repositories.WishlistRepository,
	log *logrus.Logger,
) BadgeService {
	return &badgeServiceImpl{
		cartRepo:     cartRepo,
		wishlistRepo: wishlistRepo,
		log:          log,
	}
}

func (s *badgeServiceImpl) CartCount(ctx context.Context, ownerID string) (int, error) {
	if ownerID == "" || s.cartRepo == nil {
		return 0, nil
	}
	return s.cartRepo.ItemCount(ctx, ownerID)
}

func (s *badgeServiceImpl) WishlistCount(ctx context.Context, userID string) (int, error) {
	if userID == "" || s.wishlistRepo == nil {
		return 0, nil
	}
	return s.wishlistRepo.CountByUserID(ctx, userID)
}
