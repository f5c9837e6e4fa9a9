package configs

import "time"

type RabbitMQConfig struct {
	URL           string        `env:"RABBITMQ_URL"`
	Exchange      string        `env:"RABBITMQ_EXCHANGE" envDefault:"storefront.events"`
	ActivityQueue string        `env:"RABBITMQ_ACTIVITY_QUEUE" envDefault:"storefront.activity"`
	MaxRetries    int           `env:"RABBITMQ_MAX_RETRIES" envDefault:"5"`
	RetryDelay    time.Duration `env:"RABBITMQ_RETRY_DELAY" envDefault:"2s"`
	PrefetchCount int           `env:"RABBITMQ_PREFETCH_COUNT" envDefault:"10"`
	WorkerCount   int           `env:"WORKER_COUNT" envDefault:"3"`
}
