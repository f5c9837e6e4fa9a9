package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/delivery/http/middlewares"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/delivery/http/views"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/i18n"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/services"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/ui/navbar"
)

// Shell builds the parts every page shares: the translator and the navbar.
type Shell struct {
	BadgeSvc   services.BadgeService
	SessionSvc services.SessionService
	Catalog    *i18n.Catalog
	log        *logrus.Logger
}

func NewShell(
	badgeSvc services.BadgeService,
	sessionSvc services.SessionService,
	catalog *i18n.Catalog,
	log *logrus.Logger,
) *Shell {
	return &Shell{
		BadgeSvc:   badgeSvc,
		SessionSvc: sessionSvc,
		Catalog:    catalog,
		log:        log,
	}
}

// ---- HELPERS -----

func (s *Shell) translator(c echo.Context) i18n.Translator {
	if tr := middlewares.TranslatorFrom(c); tr != nil {
		return tr
	}
	return s.Catalog.For(s.Catalog.Default())
}

func (s *Shell) navbarFor(c echo.Context) *navbar.Navbar {
	session := services.NewSession(s.SessionSvc, middlewares.TokenFrom(c), middlewares.UserFrom(c))

	return navbar.New(navbar.Deps{
		Cart:       s.BadgeSvc,
		Wishlist:   s.BadgeSvc,
		Session:    session,
		Translator: s.translator(c),
		Languages:  s.Catalog.Languages(),
		Log:        s.log,
	}, c.Request().URL.Path, middlewares.CartOwnerFrom(c))
}

func (s *Shell) page(c echo.Context, titleKey string, content interface{}) views.Page {
	tr := s.translator(c)
	nb := s.navbarFor(c)

	return views.Page{
		Title:   tr.T(titleKey),
		Lang:    tr.Locale(),
		Path:    c.Request().URL.Path,
		CSRF:    middlewares.CSRFTokenFrom(c),
		T:       tr,
		Nav:     nb.View(c.Request().Context()),
		Content: content,
	}
}
