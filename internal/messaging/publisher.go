package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	gateway "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/gateways"
)

type EventPublisher interface {
	PublishOrderCancelled(ctx context.Context, event OrderCancelledEvent) error
	PublishSessionLoggedOut(ctx context.Context, event SessionLoggedOutEvent) error
}

type EventPublisherImpl struct {
	raw gateway.RawPublisher
	log *logrus.Logger
	now func() time.Time
}

func NewEventPublisher(raw gateway.RawPublisher, log *logrus.Logger) *EventPublisherImpl {
	return &EventPublisherImpl{
		raw: raw,
		log: log,
		now: time.Now,
	}
}

// PublishOrderCancelled publish event order cancelled from the storefront
func (p *EventPublisherImpl) PublishOrderCancelled(ctx context.Context, event OrderCancelledEvent) error {
	if err := p.publish(ctx, RoutingOrderCancelled, event); err != nil {
		p.log.Errorf("Failed to publish order cancelled event: %v", err)
		return err
	}

	p.log.Infof("Published %s event for order: %s", RoutingOrderCancelled, event.OrderID)
	return nil
}

// PublishSessionLoggedOut publish event session logged out
func (p *EventPublisherImpl) PublishSessionLoggedOut(ctx context.Context, event SessionLoggedOutEvent) error {
	if err := p.publish(ctx, RoutingSessionLoggedOut, event); err != nil {
		p.log.Errorf("Failed to publish session logged out event: %v", err)
		return err
	}

	p.log.Debugf("Published %s event for user: %s", RoutingSessionLoggedOut, event.UserID)
	return nil
}

func (p *EventPublisherImpl) publish(ctx context.Context, routingKey string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	body, err := json.Marshal(Envelope{
		Type:       routingKey,
		RequestID:  gateway.RequestID(ctx),
		OccurredAt: p.now(),
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	return p.raw.Publish(ctx, routingKey, body)
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCancelled(context.Context, OrderCancelledEvent) error { return nil }

func (NopPublisher) PublishSessionLoggedOut(context.Context, SessionLoggedOutEvent) error {
	return nil
}
