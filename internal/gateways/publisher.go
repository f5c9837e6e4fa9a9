package gateway

import (
	"context"
)

// RawPublisher delivers an already encoded event to the broker.
type RawPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}
