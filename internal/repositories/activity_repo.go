package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type Activity struct {
	EventType  string
	UserID     string
	OrderID    string
	RequestID  string
	Payload    json.RawMessage
	OccurredAt time.Time
}

// ActivityRepository stores the storefront event log written by the activity worker.
type ActivityRepository interface {
	Insert(ctx context.Context, a Activity) error
}

type activityRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewActivityRepository(db *sql.DB, log *logrus.Logger) ActivityRepository {
	return &activityRepository{db: db, log: log}
}

const insertActivity = `
INSERT INTO storefront_activity (event_type, user_id, order_id, request_id, payload, occurred_at)
VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6)`

func (r *activityRepository) Insert(ctx context.Context, a Activity) error {
	payload := []byte(a.Payload)
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	_, err := r.db.ExecContext(ctx, insertActivity, a.EventType, a.UserID, a.OrderID, a.RequestID, payload, a.OccurredAt)
	if err != nil {
		r.log.WithFields(logrus.Fields{"event_type": a.EventType, "error": err}).Error("Failed to insert activity")
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}
