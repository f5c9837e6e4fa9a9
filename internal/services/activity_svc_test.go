package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/messaging"
	apperrors "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/repositories"
)

type fakeActivityRepo struct {
	inserted []repositories.Activity
}

func (f *fakeActivityRepo) Insert(_ context.Context, a repositories.Activity) error {
	f.inserted = append(f.inserted, a)
	return nil
}

func TestActivityService_RecordOrderCancelled(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewActivityService(repo, quietLogger())

	payload, err := json.Marshal(messaging.OrderCancelledEvent{OrderID: "abc123", UserID: "u1", OldStatus: "pending"})
	require.NoError(t, err)
	body, err := json.Marshal(messaging.Envelope{
		Type:       messaging.RoutingOrderCancelled,
		RequestID:  "req-1",
		OccurredAt: testNow,
		Payload:    payload,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Record(context.Background(), messaging.RoutingOrderCancelled, body))
	require.Len(t, repo.inserted, 1)

	got := repo.inserted[0]
	assert.Equal(t, messaging.RoutingOrderCancelled, got.EventType)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "abc123", got.OrderID)
	assert.Equal(t, "req-1", got.RequestID)
	assert.True(t, got.OccurredAt.Equal(testNow))
	assert.JSONEq(t, string(payload), string(got.Payload))
}

func TestActivityService_TypeFallsBackToRoutingKey(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewActivityService(repo, quietLogger())

	body := []byte(`{"occurred_at":"2024-03-05T10:00:00Z","payload":{"user_id":"u1","session_id":"s1"}}`)
	require.NoError(t, svc.Record(context.Background(), messaging.RoutingSessionLoggedOut, body))

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, messaging.RoutingSessionLoggedOut, repo.inserted[0].EventType)
	assert.Equal(t, "u1", repo.inserted[0].UserID)
	assert.Empty(t, repo.inserted[0].OrderID)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), repo.inserted[0].OccurredAt.UTC())
}

func TestActivityService_RejectsGarbage(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewActivityService(repo, quietLogger())

	err := svc.Record(context.Background(), "storefront.x", []byte("not json"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequestPayload)

	err = svc.Record(context.Background(), "storefront.x", []byte(`{"payload":[1,2]}`))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequestPayload)
	assert.Empty(t, repo.inserted)
}
