package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	_ "github.com/jefner876/codernet-backend-solo/docs"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/configs"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/events"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/logging"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/messaging"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/tracing"
	"github.com/jefner876/codernet-backend-solo/internal/persistence/db"
	"github.com/jefner876/codernet-backend-solo/internal/persistence/repository"
	"github.com/jefner876/codernet-backend-solo/internal/presentation/api"
	"github.com/jefner876/codernet-backend-solo/internal/presentation/handler/health"
	"github.com/jefner876/codernet-backend-solo/internal/presentation/handler/messages"
	"github.com/jefner876/codernet-backend-solo/internal/presentation/handler/users"
)

const (
	serviceName = "codernet-api"
)

// @title        Codernet API
// @version      1.0
// @description  User registration and a room-scoped message board.
// @BasePath     /api
func main() {
	// Missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	tracerCfg := tracing.NewDefaultConfig(serviceName)

	sh, err := tracing.InitTracer(tracerCfg)
	if err != nil {
		log.Fatalf("Failed to initialize the tracer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer sh(ctx)

	configPath := configs.DetermineConfigPath()
	cfg, err := configs.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.NewLogger(&cfg.Logger)

	mongoClient, err := db.NewMongoClient(ctx, &cfg.Mongo)
	if err != nil {
		log.Fatal(err)
	}
	defer db.DisconnectMongo(context.Background(), mongoClient)

	database := db.GetDatabase(mongoClient, &cfg.Mongo)

	if err := repository.EnsureIndexes(ctx, database); err != nil {
		logger.Warn(logging.Mongo, logging.Startup, "failed to ensure indexes", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
	}

	userRepository := repository.NewUserRepository(database)
	messageRepository := repository.NewMessageRepository(database)

	// Domain events are best-effort: without a broker the API still serves.
	var publisher *events.ChatPublisher
	if cfg.RabbitMQ.URI != "" {
		rabbitmq, err := messaging.NewRabbitMQ(cfg.RabbitMQ.URI)
		if err != nil {
			logger.Warn(logging.RabbitMQ, logging.Startup, "rabbitmq unavailable, events disabled", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
			})
		} else {
			defer rabbitmq.Close()
			publisher = events.NewChatPublisher(rabbitmq)

			consumer := events.NewChatConsumer(rabbitmq, logger)
			go consumer.Listen()
		}
	}

	usersHandler := users.NewHandler(userRepository, publisher)
	messagesHandler := messages.NewHandler(messageRepository, userRepository, publisher)
	healthHandler := health.NewHandler()

	app := api.NewApplication(*cfg, *usersHandler, *messagesHandler, *healthHandler, logger)

	mux := app.Mount()
	if err := app.Run(mux); err != nil {
		logger.Fatal(logging.General, logging.Startup, "server stopped with error", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
	}
}
