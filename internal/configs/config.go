package configs

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type AppConfig struct {
	Postgre   PostgreConfig
	Migration MigrationConfig
	Redis     RedisConfig
	GRPC      GrpcConfig
	Server    ServerConfig
	RabbitMQ  RabbitMQConfig
	OrderAPI  OrderAPIConfig
	I18n      I18nConfig
}

func LoadConfig(log *logrus.Logger) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("Warning: failed to load .env file, falling back to process environment")
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	log.Info("Structured configuration loaded")
	return cfg, nil
}

// WorkerConfig is the subset of settings the background workers need.
type WorkerConfig struct {
	Postgre   PostgreConfig
	Migration MigrationConfig
	RabbitMQ  RabbitMQConfig
}

func LoadWorkerConfig(log *logrus.Logger) (*WorkerConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("Warning: failed to load .env file, falling back to process environment")
	}

	cfg := &WorkerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
