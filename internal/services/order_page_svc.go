package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/entities"
	gateway "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/gateways"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/i18n"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/messaging"
	apperrors "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/repositories"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/ui/orderdetail"
)

// OrderPageService mounts order detail views for incoming page requests.
type OrderPageService interface {
	Open(viewer *entities.User, tr i18n.Translator) *orderdetail.View
}

type orderPageServiceImpl struct {
	orderAPI       gateway.OrderAPI
	cancelGuard    orderdetail.CancelGuard
	eventPublisher messaging.EventPublisher
	log            *logrus.Logger
}

// NewOrderPageService builds views that share one cancel guard, so two
// requests for the same order never both reach the order API. lockTTL bounds
// how long a crashed holder can block the order.
func NewOrderPageService(
	orderAPI gateway.OrderAPI,
	cancelLocks repositories.CancelLockRepository,
	lockTTL time.Duration,
	eventPublisher messaging.EventPublisher,
	log *logrus.Logger,
) OrderPageService {
	return &orderPageServiceImpl{
		orderAPI:       orderAPI,
		cancelGuard:    &cancelGuard{locks: cancelLocks, ttl: lockTTL, log: log},
		eventPublisher: eventPublisher,
		log:            log,
	}
}

type cancelGuard struct {
	locks repositories.CancelLockRepository
	ttl   time.Duration
	log   *logrus.Logger
}

func (g *cancelGuard) Acquire(ctx context.Context, orderID string) (func(), error) {
	holder := uuid.NewString()

	ok, err := g.locks.Acquire(ctx, orderID, holder, g.ttl)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrCancelInFlight
	}

	return func() {
		relCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()

		if err := g.locks.Release(relCtx, orderID, holder); err != nil {
			g.log.WithError(err).WithField("order_id", orderID).Warn("Failed to release cancel lock")
		}
	}, nil
}

func (s *orderPageServiceImpl) Open(viewer *entities.User, tr i18n.Translator) *orderdetail.View {
	userID := ""
	if viewer != nil {
		userID = viewer.ID
	}

	return orderdetail.NewView(s.orderAPI, tr, s.log,
		orderdetail.WithCancelGuard(s.cancelGuard),
		orderdetail.WithOnCancelled(func(ctx context.Context, order entities.Order, previous entities.OrderStatus) {
			event := messaging.OrderCancelledEvent{
				OrderID:     order.ID,
				UserID:      userID,
				OldStatus:   string(previous),
				TotalAmount: order.TotalAmount,
				CancelledAt: time.Now(),
			}

			go func() {
				pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
				defer cancel()

				if err := s.eventPublisher.PublishOrderCancelled(pubCtx, event); err != nil {
					s.log.WithError(err).WithField("order_id", order.ID).Warn("Failed to publish order cancelled event")
				}
			}()
		}),
	)
}
