// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup sets the log level and formatter. Logs go to stderr so that
// stdout carries only rendered summaries.
func Setup(level string) error {
	return SetupWithOutput(level, os.Stderr)
}

// SetupWithOutput is Setup with an explicit log destination.
func SetupWithOutput(level string, out io.Writer) error {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}
