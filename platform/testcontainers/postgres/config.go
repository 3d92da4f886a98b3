package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/Leonardostavares/Catalogo-Carro/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	NetworkName   string
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	SSLMode       string
	Logger        Logger

	Host string
	Port string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: "postgres:17-alpine",
		Database:  "catalog",
		Username:  "catalog",
		Password:  "catalog",
		SSLMode:   "disable",
		Logger:    &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
