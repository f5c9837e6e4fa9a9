package configs

import "time"

type ServerConfig struct {
	Port          string        `env:"SERVER_PORT,required"`
	JWTSecret     string        `env:"JWT_SECRET,required"`
	Audience      string        `env:"JWT_AUDIENCE,required"`
	SessionCookie string        `env:"SESSION_COOKIE" envDefault:"session"`
	GuestCookie   string        `env:"GUEST_COOKIE" envDefault:"guest_id"`
	CSRFCookie    string        `env:"CSRF_COOKIE" envDefault:"_csrf"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"false"`
	ShutdownGrace time.Duration `env:"SHUTDOWN_GRACE" envDefault:"10s"`

	// empty means no cross-origin access at all
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}
