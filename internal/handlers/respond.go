package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/delivery/http/views"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/models"
	apperrors "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
)

const (
	MsgCancelDeclined  = "Order left unchanged"
	MsgLoggedOut       = "Logged out successfully"
	MsgLanguageChanged = "Language changed successfully"
)

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

func respondSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, models.SuccessResponse{
		Message: message,
		Data:    data,
	})
}

func respondError(c echo.Context, status int, err error) error {
	return c.JSON(status, models.ErrorResponse{
		Error: err.Error(),
	})
}

// renderPage answers with the page HTML, or only its content for JSON clients.
func (s *Shell) renderPage(c echo.Context, status int, name, titleKey string, content interface{}) error {
	if wantsJSON(c) {
		return c.JSON(status, content)
	}
	return c.Render(status, name, s.page(c, titleKey, content))
}

func (s *Shell) respondMessage(c echo.Context, status int, err error, messageKey string) error {
	if wantsJSON(c) {
		return respondError(c, status, err)
	}

	tr := s.translator(c)
	return c.Render(status, views.PageMessage, s.page(c, messageKey, views.MessageView{
		Message:   tr.T(messageKey),
		BackHref:  "/",
		BackLabel: tr.T("home"),
	}))
}

func redirect(c echo.Context, to string, message string, data interface{}) error {
	if wantsJSON(c) {
		return respondSuccess(c, http.StatusOK, message, data)
	}
	return c.Redirect(http.StatusSeeOther, to)
}

// statusForViewError maps the outcome of a view operation to a page status.
// Fetch and cancel failures are part of the rendered page, so they stay 200.
func statusForViewError(err error) int {
	switch {
	case err == nil,
		errors.Is(err, apperrors.ErrFetchOrderFailed),
		errors.Is(err, apperrors.ErrOrderNotFound),
		errors.Is(err, apperrors.ErrCancelOrderFailed):
		return http.StatusOK

	case errors.Is(err, apperrors.ErrOrderNotCancellable),
		errors.Is(err, apperrors.ErrCancelInFlight),
		errors.Is(err, apperrors.ErrStaleResponse):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
