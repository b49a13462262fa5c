package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "rsi-career-extraction"

// SetupLogger configures the global zerolog logger from cfg and returns it.
func SetupLogger(cfg *Config) zerolog.Logger {
	return SetupLoggerTo(cfg, os.Stdout)
}

// SetupLoggerTo is SetupLogger writing to out.
func SetupLoggerTo(cfg *Config, out io.Writer) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.LogLevel))

	var zl zerolog.Logger
	if strings.EqualFold(cfg.LogFormat, "json") {
		zl = zerolog.New(out)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		})
	}

	zl = zl.With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	log.Logger = zl
	return zl
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
