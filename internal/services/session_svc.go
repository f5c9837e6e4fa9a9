package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/entities"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/messaging"
	apperrors "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/repositories"
)

// SessionClaims are the claims the account service puts in the session cookie.
type SessionClaims struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name,omitempty"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type SessionService interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
	Logout(ctx context.Context, token string) error
}

type sessionServiceImpl struct {
	sessionRepo    repositories.SessionRepository
	eventPublisher messaging.EventPublisher
	secret         []byte
	audience       string
	log            *logrus.Logger
	now            func() time.Time
}

func NewSessionService(
	sessionRepo repositories.SessionRepository,
	eventPublisher messaging.EventPublisher,
	secret string,
	audience string,
	log *logrus.Logger,
) SessionService {
	return &sessionServiceImpl{
		sessionRepo:    sessionRepo,
		eventPublisher: eventPublisher,
		secret:         []byte(secret),
		audience:       audience,
		log:            log,
		now:            time.Now,
	}
}

func (s *sessionServiceImpl) parse(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithAudience(s.audience),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidUserSession, err)
	}

	if claims.Subject == "" || claims.ID == "" {
		return nil, fmt.Errorf("%w: missing subject or session id", apperrors.ErrInvalidUserSession)
	}

	return claims, nil
}

func (s *sessionServiceImpl) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.sessionRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrSessionRevoked
	}

	return &entities.User{
		ID:        claims.Subject,
		Name:      claims.Name,
		FirstName: claims.FirstName,
		Email:     claims.Email,
		Role:      claims.Role,
		SessionID: claims.ID,
	}, nil
}

func (s *sessionServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidUserSession) {
			// nothing to revoke, the cookie is useless anyway
			return nil
		}
		return err
	}

	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.sessionRepo.Revoke(ctx, claims.ID, ttl); err != nil {
		return err
	}

	logger := s.log.WithFields(logrus.Fields{"user_id": claims.Subject, "session_id": claims.ID})
	logger.Info("Session revoked")

	event := messaging.SessionLoggedOutEvent{
		UserID:      claims.Subject,
		SessionID:   claims.ID,
		LoggedOutAt: s.now(),
	}
	go func() {
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if err := s.eventPublisher.PublishSessionLoggedOut(pubCtx, event); err != nil {
			logger.WithError(err).Warn("Failed to publish session logged out event")
		}
	}()

	return nil
}

// Session binds one visitor's token to the session service.
type Session struct {
	svc   SessionService
	token string
	user  *entities.User
}

func NewSession(svc SessionService, token string, user *entities.User) *Session {
	return &Session{svc: svc, token: token, user: user}
}

func (s *Session) User() *entities.User {
	return s.user
}

func (s *Session) Logout(ctx context.Context) error {
	if s.user == nil {
		return nil
	}
	if err := s.svc.Logout(ctx, s.token); err != nil {
		return err
	}
	s.user = nil
	return nil
}
