package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds application configuration read from INVOICE_* variables.
type Config struct {
	StartNumber int64  `envconfig:"START_NUMBER" default:"1"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	DevLog      bool   `envconfig:"DEV_LOG" default:"false"`
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("invoice", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to stderr so stdout carries
// only the printed invoice.
func newLogger(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.DevLog {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build(zap.AddCaller())
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger, nil
}
