package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/configs"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/logging"
	healthHandler "github.com/jefner876/codernet-backend-solo/internal/presentation/handler/health"
	messagesHandler "github.com/jefner876/codernet-backend-solo/internal/presentation/handler/messages"
	usersHandler "github.com/jefner876/codernet-backend-solo/internal/presentation/handler/users"
)

type Application struct {
	config          configs.Config
	usersHandler    usersHandler.Handler
	messagesHandler messagesHandler.Handler
	healthHandler   healthHandler.Handler
	logger          logging.Logger
}

func NewApplication(
	config configs.Config,
	usersHandler usersHandler.Handler,
	messagesHandler messagesHandler.Handler,
	healthHandler healthHandler.Handler,
	logger logging.Logger,
) *Application {
	return &Application{
		config:          config,
		usersHandler:    usersHandler,
		messagesHandler: messagesHandler,
		healthHandler:   healthHandler,
		logger:          logger,
	}
}

func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(app.loggerMiddleware)
	r.Use(app.prometheusMiddleware)
	r.Use(app.enableCors)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", app.usersHandler.GetUsersHandler)
			r.Post("/", app.usersHandler.CreateUserHandler)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", app.messagesHandler.GetMessagesHandler)
			r.Post("/", app.messagesHandler.CreateMessageHandler)
			r.Get("/{room}", app.messagesHandler.GetMessagesByRoomHandler)
		})

		r.Get("/health", app.healthHandler.GetHealth)
		r.Get("/healthz", app.healthHandler.GetHealth)
		r.Get("/ready", app.healthHandler.GetHealth)
		r.Get("/live", app.healthHandler.GetHealth)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return otelhttp.NewHandler(r, "http.server")
}

func (app *Application) Run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", app.config.HTTP.Host, app.config.HTTP.Port),
		Handler:      mux,
		WriteTimeout: app.config.HTTP.WriteTimeout,
		ReadTimeout:  app.config.HTTP.ReadTimeout,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		healthHandler.SetHealthy(false)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Info(logging.General, logging.Shutdown, "signal caught", map[logging.ExtraKey]any{
			"signal": s.String(),
		})

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Info(logging.General, logging.Startup, "server has started", map[logging.ExtraKey]any{
		"addr": srv.Addr,
	})

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Info(logging.General, logging.Shutdown, "server has stopped", map[logging.ExtraKey]any{
		"addr": srv.Addr,
	})

	return nil
}
