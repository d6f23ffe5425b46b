package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"flight-service/internal/auth"
	"flight-service/internal/booking"
	"flight-service/internal/booking/booking_api"
	bookingdb "flight-service/internal/booking/db"
	"flight-service/internal/catalog"
	"flight-service/internal/catalog/catalog_api"
	catalogdb "flight-service/internal/catalog/db"
	"flight-service/internal/config"
	"flight-service/internal/database/migrations"
	"flight-service/internal/flights"
	flightsdb "flight-service/internal/flights/db"
	"flight-service/internal/flights/flight_api"
	"flight-service/internal/kafka"
	"flight-service/internal/logger"
	"flight-service/internal/metrics"
	"flight-service/internal/routes"
	"flight-service/internal/users"
	usersdb "flight-service/internal/users/db"
	"flight-service/internal/users/user_api"
	"flight-service/internal/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.NewLogger()

	// --- PostgreSQL ---
	sqldb, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("failed to open postgres connection: %v", err))
	}
	defer sqldb.Close()

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	if err := sqldb.Ping(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("failed to connect to postgres: %v", err))
	}

	bunDB := bun.NewDB(sqldb, pgdialect.New())

	runner := migrations.NewRunner(bunDB, migrations.Options{
		Dir: cfg.Database.MigrationsDir,
	})
	if err := runner.Up(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("migrations failed: %v", err))
	}
	if version, err := runner.Version(); err == nil {
		log.Info("DATABASE", fmt.Sprintf("schema at version %d", version))
	}

	// --- Redis token cache (optional) ---
	var tokenCache *auth.TokenCache
	if cfg.Redis.Enabled {
		tokenCache, err = auth.InitializeTokenCache(cfg.Redis.Addr, cfg.Redis.TokenTTL)
		if err != nil {
			log.Warn("REDIS", fmt.Sprintf("redis unavailable, token cache disabled: %v", err))
			tokenCache = nil
		} else {
			log.Info("REDIS", "token cache connected")
		}
	}

	// --- Kafka producer (optional) ---
	var publisher booking.KafkaPublisher
	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka.Brokers,
			cfg.Kafka.Topics.OrderCreated, cfg.Kafka.Topics.OrderCancelled)
		publisher = producer
		defer producer.Close()
		log.Info("KAFKA", "order event producer connected")
	}

	// --- Services ---
	reg := metrics.NewRegistry()

	catalogService := catalog.NewService(catalogdb.New(bunDB), log)
	flightService := flights.NewService(flightsdb.New(bunDB), log)
	bookingService := booking.NewService(bookingdb.New(bunDB), publisher, log, reg)
	userService := users.NewService(usersdb.New(bunDB), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	router := routes.New(routes.Deps{
		Catalog:   catalog_api.NewHandler(catalogService, log),
		Flights:   flight_api.NewHandler(flightService, log),
		Booking:   booking_api.NewHandler(bookingService, log),
		Users:     user_api.NewHandler(userService, log),
		JWTSecret: cfg.Auth.JWTSecret,
		Cache:     tokenCache,
		Metrics:   reg,
		Health:    healthHandler(sqldb),
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("SERVER", fmt.Sprintf("flight service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", fmt.Sprintf("http server error: %v", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("SERVER", "shutdown signal received, cleaning up")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("SERVER", fmt.Sprintf("server forced to shutdown: %v", err))
	}

	log.Info("SERVER", "server exited gracefully")
}

func healthHandler(sqldb *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		code := http.StatusOK
		if err := sqldb.PingContext(r.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		utils.WriteJSON(w, code, status)
	}
}
