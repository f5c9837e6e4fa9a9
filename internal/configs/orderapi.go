package configs

import "time"

type OrderAPIConfig struct {
	BaseURL string        `env:"ORDER_API_BASE_URL,required"`
	Timeout time.Duration `env:"ORDER_API_TIMEOUT" envDefault:"10s"`

	// keep above Timeout so a slow PATCH cannot outlive its lock
	CancelLockTTL time.Duration `env:"CANCEL_LOCK_TTL" envDefault:"30s"`
}

type I18nConfig struct {
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	LanguageCookie  string `env:"LANGUAGE_COOKIE" envDefault:"lang"`
}
