package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/db"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/configs"
	amqpGateway "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/gateways/messaging"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/models"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/logger"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/repositories"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/services"
)

// storefront.# matches every event the web process publishes.
const activityBindingKey = "storefront.#"

func main() {
	log := logger.NewLogger()
	log.Info("Starting storefront activity worker...")

	cfg, err := configs.LoadWorkerConfig(log)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.RabbitMQ.URL == "" {
		log.Fatal("RABBITMQ_URL is required for the activity worker")
	}

	dbCredential := models.Credential{
		Host:         cfg.Postgre.Host,
		Username:     cfg.Postgre.User,
		Password:     cfg.Postgre.Password,
		DatabaseName: cfg.Postgre.Name,
		Port:         cfg.Postgre.Port,
	}

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connectCancel()

	conn, err := db.Connect(connectCtx, &dbCredential)
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	defer conn.Close()

	if err := db.Migrate(cfg.Migration.Path, &dbCredential); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	rmq, err := amqpGateway.Dial(&cfg.RabbitMQ, log)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rmq.Close()

	ch, err := rmq.Channel()
	if err != nil {
		log.Fatalf("Failed to open RabbitMQ channel: %v", err)
	}
	defer ch.Close()

	activityService := services.NewActivityService(repositories.NewActivityRepository(conn, log), log)

	consumer, err := amqpGateway.NewRabbitMQConsumer(ch, amqpGateway.ConsumerOptions{
		Exchange:    cfg.RabbitMQ.Exchange,
		QueueName:   cfg.RabbitMQ.ActivityQueue,
		BindingKeys: []string{activityBindingKey},
		WorkerCount: cfg.RabbitMQ.WorkerCount,
		Prefetch:    cfg.RabbitMQ.PrefetchCount,
	}, activityService.Record, log)
	if err != nil {
		log.Fatalf("Failed to setup activity queue: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := consumer.Start(ctx); err != nil {
			log.Errorf("Consumer error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down activity worker...")
	cancel()
}
