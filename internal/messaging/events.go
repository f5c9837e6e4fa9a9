package messaging

import (
	"encoding/json"
	"time"
)

const (
	RoutingOrderCancelled   = "storefront.order.cancelled"
	RoutingSessionLoggedOut = "storefront.session.logged_out"
)

// OrderCancelledEvent is emitted after a customer cancelled an order from the storefront.
type OrderCancelledEvent struct {
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	OldStatus   string    `json:"old_status"`
	TotalAmount float64   `json:"total_amount"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// SessionLoggedOutEvent is emitted when a session token is revoked.
type SessionLoggedOutEvent struct {
	UserID      string    `json:"user_id"`
	SessionID   string    `json:"session_id"`
	LoggedOutAt time.Time `json:"logged_out_at"`
}

// Envelope is the wire shape of every storefront event.
type Envelope struct {
	Type       string          `json:"type"`
	RequestID  string          `json:"request_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}
