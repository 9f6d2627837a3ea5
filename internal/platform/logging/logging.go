package logging

import (
	"strings"

	"github.com/sirupsen/logrus"

	"hrmc/internal/platform/config"
)

// New builds the process-wide logger. Level falls back to info on junk input
// so a bad HRM_LOG_LEVEL never prevents startup.
func New(cfg config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel)))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
