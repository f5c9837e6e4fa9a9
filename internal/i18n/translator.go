// Package i18n serves the storefront's translation lookup.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/locales/am"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/helpers"
)

//go:embed catalog/*.json
var catalogFS embed.FS

const statusKeyPrefix = "status."

// Translator maps message keys to display strings for one language.
type Translator interface {
	// T returns the localized string, or the key itself when no mapping exists.
	T(key string) string
	// Status localizes an order status, falling back to the capitalized raw value.
	Status(status string) string
	Locale() string
	FormatDate(t time.Time) string
}

type Language struct {
	Code  string
	Label string
}

var supported = []Language{
	{Code: "en", Label: "EN"},
	{Code: "am", Label: "አማ"},
}

// Catalog holds every supported language.
type Catalog struct {
	uni      *ut.UniversalTranslator
	fallback string
	log      *logrus.Logger
}

func NewCatalog(defaultLang string, log *logrus.Logger) (*Catalog, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, am.New())

	if _, ok := uni.GetTranslator(defaultLang); !ok {
		return nil, fmt.Errorf("unsupported default language %q", defaultLang)
	}

	entries, err := catalogFS.ReadDir("catalog")
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	for _, entry := range entries {
		lang := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		trans, ok := uni.GetTranslator(lang)
		if !ok {
			return nil, fmt.Errorf("catalog %s has no matching locale", entry.Name())
		}

		raw, err := catalogFS.ReadFile(path.Join("catalog", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", entry.Name(), err)
		}

		var messages map[string]string
		if err := json.Unmarshal(raw, &messages); err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", entry.Name(), err)
		}

		if err := addMessages(trans, messages); err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", entry.Name(), err)
		}
	}

	return &Catalog{uni: uni, fallback: defaultLang, log: log}, nil
}

func addMessages(trans ut.Translator, messages map[string]string) error {
	keys := make([]string, 0, len(messages))
	for k := range messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := trans.Add(k, messages[k], true); err != nil {
			return err
		}
	}
	return nil
}

// For returns the translator for lang, or the default language when lang is unknown.
func (c *Catalog) For(lang string) Translator {
	trans, ok := c.uni.GetTranslator(lang)
	if !ok || !c.Supports(lang) {
		trans, _ = c.uni.GetTranslator(c.fallback)
	}

	fallback, _ := c.uni.GetTranslator(c.fallback)
	return &translator{trans: trans, fallback: fallback}
}

func (c *Catalog) Supports(lang string) bool {
	for _, l := range supported {
		if l.Code == lang {
			return true
		}
	}
	return false
}

func (c *Catalog) Languages() []Language {
	return append([]Language(nil), supported...)
}

func (c *Catalog) Default() string {
	return c.fallback
}

type translator struct {
	trans    ut.Translator
	fallback ut.Translator
}

func (t *translator) T(key string) string {
	if s, ok := lookup(t.trans, key); ok {
		return s
	}
	if s, ok := lookup(t.fallback, key); ok {
		return s
	}
	return key
}

func (t *translator) Status(status string) string {
	if s, ok := lookup(t.trans, statusKeyPrefix+status); ok {
		return s
	}
	if s, ok := lookup(t.fallback, statusKeyPrefix+status); ok {
		return s
	}
	return helpers.Capitalize(status)
}

func (t *translator) Locale() string {
	return t.trans.Locale()
}

func (t *translator) FormatDate(tm time.Time) string {
	if tm.IsZero() {
		return ""
	}
	return t.trans.FmtDateMedium(tm)
}

func lookup(trans ut.Translator, key string) (string, bool) {
	if trans == nil {
		return "", false
	}
	s, err := trans.T(key)
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}
