package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/configs"
	apperrors "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
)

const CSRFFormField = "_csrf"

// CSRFMiddleware issues a token cookie on every page and requires the same
// token back, in the form or the X-CSRF-Token header, on state-changing
// requests. Clients that authenticate with a bearer header and carry no
// session cookie are skipped: browsers never attach that header cross-site.
func CSRFMiddleware(cfg *configs.ServerConfig, log *logrus.Logger) echo.MiddlewareFunc {
	return middleware.CSRFWithConfig(middleware.CSRFConfig{
		Skipper: func(c echo.Context) bool {
			if _, err := c.Cookie(cfg.SessionCookie); err == nil {
				return false
			}
			return strings.HasPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		},
		TokenLookup:    "header:" + echo.HeaderXCSRFToken + ",form:" + CSRFFormField,
		ContextKey:     ContextCSRF,
		CookieName:     cfg.CSRFCookie,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.SecureCookies,
		CookieSameSite: http.SameSiteStrictMode,
		ErrorHandler: func(err error, c echo.Context) error {
			log.WithFields(logrus.Fields{
				"method": c.Request().Method,
				"path":   c.Request().URL.Path,
				"error":  err,
			}).Warn("Rejecting request without a valid csrf token")
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrInvalidCSRFToken.Error())
		},
	})
}
