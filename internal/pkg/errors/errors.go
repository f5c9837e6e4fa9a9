package errors

import "errors"

var (
	ErrInvalidRequestPayload = errors.New("invalid request payload")
	ErrInvalidUserSession    = errors.New("invalid user session")
	ErrSessionRevoked        = errors.New("session has been revoked")
	ErrInvalidCSRFToken      = errors.New("missing or invalid csrf token")

	// order API
	ErrUpstreamStatus      = errors.New("order api returned an error status")
	ErrInvalidOrderPayload = errors.New("order api returned an invalid payload")

	// order detail view
	ErrFetchOrderFailed    = errors.New("failed to fetch order details")
	ErrOrderNotFound       = errors.New("order not found")
	ErrCancelOrderFailed   = errors.New("failed to cancel order")
	ErrOrderNotCancellable = errors.New("order is not cancellable")
	ErrCancelInFlight      = errors.New("order cancellation already in progress")
	ErrStaleResponse       = errors.New("response superseded by a newer request")
)
