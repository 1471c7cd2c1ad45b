// Package logging centralizes the daemon's structured logging setup:
// component-scoped *log.Logger values sharing one base handler, with
// env-driven level configuration (journald-friendly on stderr, a debug
// switch via an environment variable), using charmbracelet/log's `With`
// scoping for per-component fields.
package logging

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLevel is the environment variable controlling the base log level.
// An env var rather than a config setting, since it must work before any
// config is loaded.
const EnvLevel = "HIDBRIDGE_LOG"

var base = newBase()

func newBase() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	})

	logger.SetLevel(levelFromEnv())

	return logger
}

func levelFromEnv() log.Level {
	switch strings.ToLower(os.Getenv(EnvLevel)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// For returns a logger scoped to component, e.g. For("manager"),
// For("composite").With("name", deviceName).
func For(component string) *log.Logger {
	return base.With("component", component)
}

// SetLevel overrides the base logger's level at runtime, used by the
// control plane's debug-toggle method if one is wired in.
func SetLevel(level log.Level) {
	base.SetLevel(level)
}
