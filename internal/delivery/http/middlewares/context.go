package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/entities"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/i18n"
)

const (
	ContextUser       = "user"
	ContextToken      = "sessionToken"
	ContextGuestID    = "guestID"
	ContextTranslator = "translator"
	ContextLanguage   = "language"
	ContextCSRF       = "csrf"
)

func UserFrom(c echo.Context) *entities.User {
	user, _ := c.Get(ContextUser).(*entities.User)
	return user
}

func TokenFrom(c echo.Context) string {
	token, _ := c.Get(ContextToken).(string)
	return token
}

func GuestIDFrom(c echo.Context) string {
	id, _ := c.Get(ContextGuestID).(string)
	return id
}

// CartOwnerFrom is the user id for signed-in visitors and the guest id otherwise.
func CartOwnerFrom(c echo.Context) string {
	if user := UserFrom(c); user != nil {
		return user.ID
	}
	return GuestIDFrom(c)
}

func TranslatorFrom(c echo.Context) i18n.Translator {
	tr, _ := c.Get(ContextTranslator).(i18n.Translator)
	return tr
}

// CSRFTokenFrom is the token forms must echo back in the _csrf field.
func CSRFTokenFrom(c echo.Context) string {
	token, _ := c.Get(ContextCSRF).(string)
	return token
}

func LanguageFrom(c echo.Context) string {
	lang, _ := c.Get(ContextLanguage).(string)
	return lang
}
