package messaging

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/configs"
)

// Dial opens a broker connection, retrying while RabbitMQ is still starting.
func Dial(cfg *configs.RabbitMQConfig, log *logrus.Logger) (*amqp.Connection, error) {
	attempts := cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 1; i <= attempts; i++ {
		conn, err := amqp.Dial(cfg.URL)
		if err == nil {
			log.Infof("Connected to RabbitMQ after %d attempt(s)", i)
			return conn, nil
		}

		lastErr = err
		log.WithError(err).Warnf("RabbitMQ dial attempt %d/%d failed", i, attempts)
		if i < attempts {
			time.Sleep(cfg.RetryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", lastErr)
}

func declareExchange(ch *amqp.Channel, name string) error {
	err := ch.ExchangeDeclare(
		name,    // name
		"topic", // type
		true,    // durable
		false,   // auto-deleted
		false,   // internal
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", name, err)
	}
	return nil
}
