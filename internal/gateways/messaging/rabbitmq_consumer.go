package messaging

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// Handler processes one message body. A returned error requeues the message once.
type Handler func(ctx context.Context, routingKey string, body []byte) error

type ConsumerOptions struct {
	Exchange    string
	QueueName   string
	BindingKeys []string
	WorkerCount int
	Prefetch    int
}

type RabbitMQConsumer struct {
	channel *amqp.Channel
	opts    ConsumerOptions
	handler Handler
	log     *logrus.Logger
}

func NewRabbitMQConsumer(ch *amqp.Channel, opts ConsumerOptions, handler Handler, log *logrus.Logger) (*RabbitMQConsumer, error) {
	if opts.WorkerCount < 1 {
		opts.WorkerCount = 1
	}

	if err := declareExchange(ch, opts.Exchange); err != nil {
		return nil, err
	}

	q, err := ch.QueueDeclare(opts.QueueName, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", opts.QueueName, err)
	}

	for _, key := range opts.BindingKeys {
		if err := ch.QueueBind(q.Name, key, opts.Exchange, false, nil); err != nil {
			return nil, fmt.Errorf("failed to bind %s to %s: %w", q.Name, key, err)
		}
	}

	if opts.Prefetch > 0 {
		if err := ch.Qos(opts.Prefetch, 0, false); err != nil {
			return nil, fmt.Errorf("failed to set qos: %w", err)
		}
	}

	return &RabbitMQConsumer{channel: ch, opts: opts, handler: handler, log: log}, nil
}

// Start blocks until ctx is cancelled or the delivery channel closes.
func (c *RabbitMQConsumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(c.opts.QueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming %s: %w", c.opts.QueueName, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < c.opts.WorkerCount; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			c.work(ctx, worker, deliveries)
		}(i)
	}

	wg.Wait()
	return nil
}

func (c *RabbitMQConsumer) work(ctx context.Context, worker int, deliveries <-chan amqp.Delivery) {
	logger := c.log.WithFields(logrus.Fields{"queue": c.opts.QueueName, "worker": worker})

	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("Delivery channel closed")
				return
			}

			if err := c.handler(ctx, d.RoutingKey, d.Body); err != nil {
				logger.WithError(err).WithField("routing_key", d.RoutingKey).Error("Failed to handle message")
				_ = d.Nack(false, !d.Redelivered)
				continue
			}

			_ = d.Ack(false)
		}
	}
}
