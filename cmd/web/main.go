package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/db"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/configs"
	customMiddleware "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/delivery/http/middlewares"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/delivery/http/routes"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/delivery/http/views"
	amqpGateway "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/gateways/messaging"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/gateways/rest"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/handlers"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/i18n"
	storefrontMsg "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/messaging"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/models"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/grpc/health"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/logger"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/redis"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/repositories"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/services"
)

func main() {
	log := logger.NewLogger()

	cfg, err := configs.LoadConfig(log)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbCredential := models.Credential{
		Host:         cfg.Postgre.Host,
		Username:     cfg.Postgre.User,
		Password:     cfg.Postgre.Password,
		DatabaseName: cfg.Postgre.Name,
		Port:         cfg.Postgre.Port,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := db.Connect(ctx, &dbCredential)
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	defer conn.Close()

	if err := db.Migrate(cfg.Migration.Path, &dbCredential); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	// Redis
	redisClient, err := redis.NewRedisClient(&cfg.Redis, log)
	if err != nil {
		log.Fatalf("Failed to create Redis client: %v", err)
	}
	defer redisClient.Close()

	// RabbitMQ
	eventPublisher, closeBroker := newEventPublisher(&cfg.RabbitMQ, log)
	defer closeBroker()

	// Order API
	validate := validator.New()
	orderClient, err := rest.NewOrderClient(cfg.OrderAPI.BaseURL, &http.Client{Timeout: cfg.OrderAPI.Timeout}, validate, log)
	if err != nil {
		log.Fatalf("Failed to create order api client: %v", err)
	}

	catalog, err := i18n.NewCatalog(cfg.I18n.DefaultLanguage, log)
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Dependency Injection
	cartRepo := repositories.NewCartRepository(redisClient.Client, log)
	sessionRepo := repositories.NewSessionRepository(redisClient.Client, log)
	cancelLockRepo := repositories.NewCancelLockRepository(redisClient.Client, log)
	wishlistRepo := repositories.NewWishlistRepository(conn, log)

	sessionService := services.NewSessionService(sessionRepo, eventPublisher, cfg.Server.JWTSecret, cfg.Server.Audience, log)
	badgeService := services.NewBadgeService(cartRepo, wishlistRepo, log)
	orderPageService := services.NewOrderPageService(orderClient, cancelLockRepo, cfg.OrderAPI.CancelLockTTL, eventPublisher, log)

	shell := handlers.NewShell(badgeService, sessionService, catalog, log)
	orderHandler := handlers.NewOrderHandler(orderPageService, shell, validate, log)
	shellHandler := handlers.NewShellHandler(shell, &cfg.Server, &cfg.I18n, validate, log)
	pingRedis := func(ctx context.Context) error {
		return redisClient.Client.Ping(ctx).Err()
	}
	healthHandler := handlers.HealthCheck(map[string]handlers.Check{
		"postgres": conn.PingContext,
		"redis":    pingRedis,
	}, log)

	// Setup Server Web
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.RequestID())
	e.Use(customMiddleware.LoggingMiddleware(log))
	e.Use(middleware.Recover())
	if len(cfg.Server.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.Server.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXCSRFToken},
			AllowCredentials: true,
		}))
	}

	routes.InitRoutes(e, orderHandler, shellHandler, healthHandler,
		customMiddleware.SessionMiddleware(sessionService, &cfg.Server, log),
		customMiddleware.LocaleMiddleware(catalog, cfg.I18n.LanguageCookie),
		customMiddleware.CSRFMiddleware(&cfg.Server, log),
	)

	// gRPC health
	healthServer := health.NewServer(log)
	go func() {
		if err := healthServer.Serve(cfg.GRPC.Port); err != nil {
			log.Errorf("gRPC health server stopped: %v", err)
		}
	}()

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	healthServer.SetServing(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down storefront...")
	healthServer.SetServing(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to shut down server gracefully: %v", err)
	}
	healthServer.Stop()
}

// newEventPublisher connects to RabbitMQ. Without RABBITMQ_URL the storefront
// runs without publishing events.
func newEventPublisher(cfg *configs.RabbitMQConfig, log *logrus.Logger) (storefrontMsg.EventPublisher, func()) {
	if cfg.URL == "" {
		log.Warn("RABBITMQ_URL is empty, storefront events are disabled")
		return storefrontMsg.NopPublisher{}, func() {}
	}

	rmq, err := amqpGateway.Dial(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	ch, err := rmq.Channel()
	if err != nil {
		log.Fatalf("Failed to open RabbitMQ channel: %v", err)
	}

	publisher, err := amqpGateway.NewRabbitMQPublisher(ch, cfg.Exchange)
	if err != nil {
		log.Fatalf("Failed to setup storefront exchange: %v", err)
	}

	return storefrontMsg.NewEventPublisher(publisher, log), func() {
		closeQuietly(ch, rmq, log)
	}
}

func closeQuietly(ch *amqp.Channel, conn *amqp.Connection, log *logrus.Logger) {
	if err := ch.Close(); err != nil {
		log.WithError(err).Warn("Failed to close RabbitMQ channel")
	}
	if err := conn.Close(); err != nil {
		log.WithError(err).Warn("Failed to close RabbitMQ connection")
	}
}
