// Package logger configures the application logger. The terminal belongs
// to the game screen, so logs default to a file.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultLogFile = "wander.log"

// New creates a logger configured from the environment:
//   - LOG_LEVEL: logrus level name, default "info"
//   - LOG_FORMAT: "json" for machine-readable output, anything else for text
//   - LOG_FILE: log destination path, default "wander.log"
func New() *logrus.Logger {
	log := logrus.New()

	levelName, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	path := os.Getenv("LOG_FILE")
	if path == "" {
		path = defaultLogFile
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// No usable file; drop logs rather than corrupt the screen.
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(f)
	return log
}

// NewNop returns a logger that discards everything, for tests.
func NewNop() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
