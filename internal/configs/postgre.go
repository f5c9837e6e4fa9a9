package configs

type PostgreConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"tokohobby_storefront"`
}

type MigrationConfig struct {
	Path string `env:"MIGRATION_PATH" envDefault:"file://db/migrations"`
}
