package gateway

import (
	"context"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/entities"
)

// OrderAPI is the remote order service as seen by the storefront.
//
// GetOrder returns (nil, nil) when the service answered successfully but sent
// no order document.
type OrderAPI interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	CancelOrder(ctx context.Context, orderID string) error
}

type ctxKey int

const (
	bearerTokenKey ctxKey = iota
	requestIDKey
)

func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey, token)
}

func BearerToken(ctx context.Context) string {
	token, _ := ctx.Value(bearerTokenKey).(string)
	return token
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
