package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/i18n"
)

// LocaleMiddleware picks the visitor's language from the ?lang query or the
// language cookie and stores the matching translator on the context.
func LocaleMiddleware(catalog *i18n.Catalog, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := catalog.Default()

			if cookie, err := c.Cookie(cookieName); err == nil && catalog.Supports(cookie.Value) {
				lang = cookie.Value
			}
			if q := c.QueryParam("lang"); catalog.Supports(q) {
				lang = q
			}

			c.Set(ContextLanguage, lang)
			c.Set(ContextTranslator, catalog.For(lang))
			return next(c)
		}
	}
}
