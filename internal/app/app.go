package app

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"go-workforce/internal/bootstrap"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultPort = "3000"

// Config is the backend configuration, read from the environment.
type Config struct {
	Server      bootstrap.ServerConfig
	DB          connection.DBConfig
	RedisAddr   string
	KafkaBroker string
	MaxRetries  int
}

func LoadConfig() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	retries, err := strconv.Atoi(os.Getenv("CONNECT_RETRIES"))
	if err != nil || retries < 1 {
		retries = 5
	}
	return Config{
		Server: bootstrap.ServerConfig{
			Port:            port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		DB: connection.DBConfig{
			Driver:     os.Getenv("DB_DRIVER"),
			Host:       os.Getenv("DB_HOST"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       os.Getenv("DB_NAME"),
			Port:       os.Getenv("DB_PORT"),
			SSLMode:    os.Getenv("DB_SSLMODE"),
			SQLitePath: os.Getenv("SQLITE_PATH"),
		},
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		MaxRetries:  retries,
	}
}

// App owns the backend's connections.
type App struct {
	Deps   Deps
	writer *kafkago.Writer
	logger *zap.Logger
}

// Build connects to the database and, when configured, Redis and Kafka, then
// migrates the schema. Redis is optional: a failed connection is logged and
// the employee list is served uncached.
func Build(cfg Config, logger *zap.Logger) (*App, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.MaxRetries, 2*time.Second, logger)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.MaxRetries, time.Second, logger)
		if err != nil {
			logger.Warn("redis unavailable, employee list cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	a := &App{logger: logger}
	publisher := kafka.NewNoopPublisher()
	if cfg.KafkaBroker != "" {
		a.writer = connection.NewKafkaWriter(cfg.KafkaBroker)
		publisher = kafka.NewPublisher(a.writer, logger)
		logger.Info("lifecycle events enabled", zap.String("broker", cfg.KafkaBroker))
	}

	a.Deps = Deps{
		DB:        db,
		Redis:     rdb,
		Publisher: publisher,
		Logger:    logger,
	}
	return a, nil
}

// Run serves the API until ctx is cancelled.
func (a *App) Run(ctx context.Context, server bootstrap.ServerConfig) error {
	return bootstrap.StartHTTPServer(ctx, NewRouter(a.Deps), server, a.logger)
}

func (a *App) Close() error {
	var errs []error
	if a.writer != nil {
		errs = append(errs, a.writer.Close())
	}
	if a.Deps.Redis != nil {
		errs = append(errs, a.Deps.Redis.Close())
	}
	if a.Deps.DB != nil {
		if sqlDB, err := a.Deps.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}

// Migrate creates or updates the employee and attendance tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models()...)
}
