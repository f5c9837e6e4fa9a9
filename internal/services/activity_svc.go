package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/messaging"
	apperrors "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/repositories"
)

// ActivityService turns storefront events into rows of the activity log.
type ActivityService interface {
	Record(ctx context.Context, routingKey string, body []byte) error
}

type activityServiceImpl struct {
	activityRepo repositories.ActivityRepository
	log          *logrus.Logger
}

func NewActivityService(activityRepo repositories.ActivityRepository, log *logrus.Logger) ActivityService {
	return &activityServiceImpl{activityRepo: activityRepo, log: log}
}

// subject holds the ids any storefront event payload may carry.
type subject struct {
	UserID  string `json:"user_id"`
	OrderID string `json:"order_id"`
}

func (s *activityServiceImpl) Record(ctx context.Context, routingKey string, body []byte) error {
	var env messaging.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidRequestPayload, err.Error())
	}

	eventType := env.Type
	if eventType == "" {
		eventType = routingKey
	}

	var subj subject
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, &subj); err != nil {
			return fmt.Errorf("%w: %s", apperrors.ErrInvalidRequestPayload, err.Error())
		}
	}

	s.log.WithFields(logrus.Fields{
		"event_type": eventType,
		"user_id":    subj.UserID,
		"order_id":   subj.OrderID,
	}).Info("Recording storefront activity")

	return s.activityRepo.Insert(ctx, repositories.Activity{
		EventType:  eventType,
		UserID:     subj.UserID,
		OrderID:    subj.OrderID,
		RequestID:  env.RequestID,
		Payload:    env.Payload,
		OccurredAt: env.OccurredAt,
	})
}
