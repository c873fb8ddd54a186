// Package cli contains plumbing shared by command-line front ends.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// EnvPrefix is a prefix of environment variables read by Settings.
const EnvPrefix = "JSONCONTRACT_"

// Settings are front-end settings.
type Settings struct {
	Log LogSettings `koanf:"log"`
}

// LogSettings configures logger.
type LogSettings struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level"`
	// Format is text or json.
	Format string `koanf:"format"`
}

// LoadSettings reads settings from environment.
//
// JSONCONTRACT_LOG_LEVEL becomes log.level.
func LoadSettings() (Settings, error) {
	k := koanf.New(".")
	if err := k.Set("log.level", "warn"); err != nil {
		return Settings{}, err
	}
	if err := k.Set("log.format", "text"); err != nil {
		return Settings{}, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return Settings{}, errors.Wrap(err, "load env")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, errors.Wrap(err, "unmarshal settings")
	}
	return s, nil
}

// NewLogger creates logger writing to output. Every record carries run_id attribute.
func NewLogger(output io.Writer, s LogSettings) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(s.Level),
	}
	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(s.Format)) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler).With(slog.String("run_id", uuid.NewString()))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Env is the process environment of a command.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Log    *slog.Logger
}

// Setup builds Env from os.Environ and standard streams.
//
// Invalid settings are reported and defaults are used.
func Setup() Env {
	s, err := LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
	}
	return Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    NewLogger(os.Stderr, s.Log),
	}
}

// Failf prints message to stderr and returns ExitFailure.
func (e Env) Failf(format string, args ...interface{}) int {
	fmt.Fprintf(e.Stderr, format+"\n", args...)
	return ExitFailure
}

// Usage prints usage line to stderr and returns ExitUsage.
func (e Env) Usage(usage string) int {
	fmt.Fprintln(e.Stderr, "Usage: "+usage)
	return ExitUsage
}
