package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/configs"
	gateway "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/gateways"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/helpers"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/services"
)

const guestCookieMaxAge = 30 * 24 * time.Hour

// SessionMiddleware resolves the visitor from the session cookie. Anonymous
// visitors are allowed through; a guest id cookie identifies their cart.
func SessionMiddleware(sessionSvc services.SessionService, cfg *configs.ServerConfig, log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()

			if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
				ctx = gateway.WithRequestID(ctx, id)
			}

			if token, fromCookie := sessionToken(c, cfg.SessionCookie); token != "" {
				user, err := sessionSvc.Authenticate(ctx, token)
				if err != nil {
					log.WithError(err).Debug("Discarding unusable session token")
					if fromCookie {
						ClearCookie(c, cfg.SessionCookie, cfg.SecureCookies)
					}
				} else {
					c.Set(ContextUser, user)
					c.Set(ContextToken, token)
					ctx = gateway.WithBearerToken(ctx, token)
				}
			}

			var guestID string
			if cookie, err := c.Cookie(cfg.GuestCookie); err == nil && helpers.IsValidUUID(cookie.Value) {
				guestID = cookie.Value
			} else {
				guestID = helpers.GenerateNewID().String()
				c.SetCookie(&http.Cookie{
					Name:     cfg.GuestCookie,
					Value:    guestID,
					Path:     "/",
					MaxAge:   int(guestCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   cfg.SecureCookies,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(ContextGuestID, guestID)

			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

// sessionToken reads the session cookie, or a bearer token for API clients.
func sessionToken(c echo.Context, cookieName string) (string, bool) {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:], false
	}
	return "", false
}

func ClearCookie(c echo.Context, name string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
