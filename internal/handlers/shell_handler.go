package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/configs"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/delivery/http/middlewares"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/models"
	apperrors "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
)

const languageCookieMaxAge = 365 * 24 * time.Hour

// ShellHandler serves the navbar endpoints: its view model, logout and the
// language selector.
type ShellHandler struct {
	shell     *Shell
	serverCfg *configs.ServerConfig
	i18nCfg   *configs.I18nConfig
	validate  *validator.Validate
	log       *logrus.Logger
}

func NewShellHandler(
	shell *Shell,
	serverCfg *configs.ServerConfig,
	i18nCfg *configs.I18nConfig,
	validate *validator.Validate,
	log *logrus.Logger,
) *ShellHandler {
	return &ShellHandler{
		shell:     shell,
		serverCfg: serverCfg,
		i18nCfg:   i18nCfg,
		validate:  validate,
		log:       log,
	}
}

func (h *ShellHandler) GetNavbar() echo.HandlerFunc {
	return func(c echo.Context) error {
		nb := h.shell.navbarFor(c)
		return c.JSON(http.StatusOK, nb.View(c.Request().Context()))
	}
}

func (h *ShellHandler) Logout() echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		nb := h.shell.navbarFor(c)
		if err := nb.Logout(ctx); err != nil {
			return h.shell.respondMessage(c, http.StatusBadGateway, err, "logoutFailed")
		}

		middlewares.ClearCookie(c, h.serverCfg.SessionCookie, h.serverCfg.SecureCookies)
		return redirect(c, "/", MsgLoggedOut, nil)
	}
}

func (h *ShellHandler) SetLanguage() echo.HandlerFunc {
	return func(c echo.Context) error {
		var form models.LanguageForm
		if err := c.Bind(&form); err != nil {
			return h.shell.respondMessage(c, http.StatusBadRequest, apperrors.ErrInvalidRequestPayload, "invalidRequest")
		}
		if err := h.validate.Struct(form); err != nil {
			return h.shell.respondMessage(c, http.StatusBadRequest, apperrors.ErrInvalidRequestPayload, "invalidRequest")
		}

		nb := h.shell.navbarFor(c)
		if !nb.SetLanguage(form.Language) {
			return h.shell.respondMessage(c, http.StatusBadRequest, apperrors.ErrInvalidRequestPayload, "invalidRequest")
		}

		c.SetCookie(&http.Cookie{
			Name:     h.i18nCfg.LanguageCookie,
			Value:    form.Language,
			Path:     "/",
			MaxAge:   int(languageCookieMaxAge.Seconds()),
			Secure:   h.serverCfg.SecureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		return redirect(c, safeRedirect(form.Redirect), MsgLanguageChanged, map[string]string{"language": nb.Language()})
	}
}

// safeRedirect only allows same-site absolute paths.
func safeRedirect(to string) string {
	if !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") || strings.HasPrefix(to, "/\\") {
		return "/"
	}
	return to
}

// Check is one dependency probed by the health endpoint.
type Check func(ctx context.Context) error

func HealthCheck(checks map[string]Check, log *logrus.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		result := map[string]string{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.WithError(err).WithField("dependency", name).Warn("Health check failed")
				result[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			result[name] = "up"
		}

		return c.JSON(status, map[string]interface{}{
			"status":       http.StatusText(status),
			"dependencies": result,
		})
	}
}
