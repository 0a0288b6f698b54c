// Package logging builds the logrus logger the CLI and the dictionary
// package's load/save diagnostics share.
package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/loftafi/praxis-go/internal/config"
)

// NewLogger builds a configured logrus logger from CLI configuration.
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)

	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger, nil
}
