package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/messaging"
	apperrors "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
)

const (
	testSecret   = "s3cret"
	testAudience = "tokohobby-storefront"
)

var testNow = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

type fakeSessionRepo struct {
	mu        sync.Mutex
	revoked   map[string]time.Duration
	revokeErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{revoked: map[string]time.Duration{}}
}

func (f *fakeSessionRepo) Revoke(_ context.Context, sessionID string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.revokeErr != nil {
		return f.revokeErr
	}
	f.revoked[sessionID] = ttl
	return nil
}

func (f *fakeSessionRepo) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.revoked[sessionID]
	return ok, nil
}

type fakeEventPublisher struct {
	messaging.NopPublisher
	loggedOut chan messaging.SessionLoggedOutEvent
}

func (f *fakeEventPublisher) PublishSessionLoggedOut(_ context.Context, e messaging.SessionLoggedOutEvent) error {
	f.loggedOut <- e
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestSessionService(repo *fakeSessionRepo, pub messaging.EventPublisher) *sessionServiceImpl {
	svc := NewSessionService(repo, pub, testSecret, testAudience, quietLogger()).(*sessionServiceImpl)
	svc.now = func() time.Time { return testNow }
	return svc
}

func signToken(t *testing.T, mutate func(*SessionClaims)) string {
	t.Helper()

	claims := SessionClaims{
		Name:  "Alice Liddell",
		Email: "alice@example.com",
		Role:  "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ID:        "sess-1",
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(testNow.Add(-time.Minute)),
		},
	}
	if mutate != nil {
		mutate(&claims)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthenticate_ValidToken(t *testing.T) {
	svc := newTestSessionService(newFakeSessionRepo(), messaging.NopPublisher{})

	user, err := svc.Authenticate(context.Background(), signToken(t, nil))
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "sess-1", user.SessionID)
	assert.Equal(t, "Alice", user.DisplayName())
	assert.Equal(t, "customer", user.Role)
}

func TestAuthenticate_RejectsBadTokens(t *testing.T) {
	cases := map[string]func(*SessionClaims){
		"expired":        func(c *SessionClaims) { c.ExpiresAt = jwt.NewNumericDate(testNow.Add(-time.Second)) },
		"no expiry":      func(c *SessionClaims) { c.ExpiresAt = nil },
		"wrong audience": func(c *SessionClaims) { c.Audience = jwt.ClaimStrings{"admin"} },
		"no subject":     func(c *SessionClaims) { c.Subject = "" },
		"no session id":  func(c *SessionClaims) { c.ID = "" },
	}

	svc := newTestSessionService(newFakeSessionRepo(), messaging.NopPublisher{})
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), signToken(t, mutate))
			assert.ErrorIs(t, err, apperrors.ErrInvalidUserSession)
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "u1",
			ID:        "sess-1",
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		}).SignedString([]byte("other"))
		require.NoError(t, err)

		_, err = svc.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidUserSession)
	})
}

func TestLogout_RevokesUntilExpiry(t *testing.T) {
	repo := newFakeSessionRepo()
	pub := &fakeEventPublisher{loggedOut: make(chan messaging.SessionLoggedOutEvent, 1)}
	svc := newTestSessionService(repo, pub)
	token := signToken(t, nil)

	require.NoError(t, svc.Logout(context.Background(), token))
	assert.Equal(t, time.Hour, repo.revoked["sess-1"])

	select {
	case e := <-pub.loggedOut:
		assert.Equal(t, "u1", e.UserID)
		assert.Equal(t, "sess-1", e.SessionID)
	case <-time.After(time.Second):
		t.Fatal("logout event was not published")
	}

	_, err := svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrSessionRevoked)
}

func TestLogout_InvalidTokenIsNoop(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestSessionService(repo, messaging.NopPublisher{})

	assert.NoError(t, svc.Logout(context.Background(), "garbage"))
	assert.Empty(t, repo.revoked)
}

func TestLogout_RepositoryFailure(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.revokeErr = errors.New("redis down")
	svc := newTestSessionService(repo, messaging.NopPublisher{})

	err := svc.Logout(context.Background(), signToken(t, nil))
	assert.Error(t, err)
}

func TestSession_LogoutClearsUser(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestSessionService(repo, messaging.NopPublisher{})
	token := signToken(t, nil)

	user, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)

	session := NewSession(svc, token, user)
	require.NotNil(t, session.User())
	require.NoError(t, session.Logout(context.Background()))
	assert.Nil(t, session.User())

	// anonymous sessions have nothing to log out
	assert.NoError(t, NewSession(svc, "", nil).Logout(context.Background()))
}
