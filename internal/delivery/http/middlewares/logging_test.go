package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/i18n"
)

func TestLoggingMiddleware(t *testing.T) {
	log, hook := test.NewNullLogger()

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(LoggingMiddleware(log))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "/ok", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status_code"])
	assert.NotEmpty(t, entry.Data["request_id"])

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, http.StatusBadGateway, entry.Data["status_code"])
}

func TestLocaleMiddleware(t *testing.T) {
	log, _ := test.NewNullLogger()
	catalog := newCatalog(t, log)

	e := echo.New()
	e.Use(LocaleMiddleware(catalog, "lang"))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, LanguageFrom(c)+":"+TranslatorFrom(c).T("cart"))
	})

	cases := []struct {
		name   string
		query  string
		cookie string
		want   string
	}{
		{name: "default", want: "en:Cart"},
		{name: "cookie", cookie: "am", want: "am:ጋሪ"},
		{name: "query wins", query: "?lang=en", cookie: "am", want: "en:Cart"},
		{name: "unsupported cookie", cookie: "fr", want: "en:Cart"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tc.cookie})
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Body.String())
		})
	}
}

func newCatalog(t *testing.T, log *logrus.Logger) *i18n.Catalog {
	t.Helper()
	catalog, err := i18n.NewCatalog("en", log)
	require.NoError(t, err)
	return catalog
}
