package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	a := require.New(t)

	s, err := LoadSettings()
	a.NoError(err)
	a.Equal("warn", s.Log.Level)
	a.Equal("text", s.Log.Format)

	t.Setenv("JSONCONTRACT_LOG_LEVEL", "debug")
	t.Setenv("JSONCONTRACT_LOG_FORMAT", "json")
	s, err = LoadSettings()
	a.NoError(err)
	a.Equal("debug", s.Log.Level)
	a.Equal("json", s.Log.Format)
}

func TestNewLogger(t *testing.T) {
	a := require.New(t)

	var buf bytes.Buffer
	log := NewLogger(&buf, LogSettings{Level: "info", Format: "json"})
	log.Debug("hidden")
	log.Info("shown", slog.String("path", "a.json"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	a.Len(lines, 1)
	a.Contains(lines[0], `"msg":"shown"`)
	a.Contains(lines[0], `"path":"a.json"`)
	a.Contains(lines[0], `"run_id":`)
}

func TestParseLogLevel(t *testing.T) {
	a := require.New(t)
	a.Equal(slog.LevelDebug, parseLogLevel(" DEBUG "))
	a.Equal(slog.LevelInfo, parseLogLevel("info"))
	a.Equal(slog.LevelError, parseLogLevel("error"))
	a.Equal(slog.LevelWarn, parseLogLevel(""))
	a.Equal(slog.LevelWarn, parseLogLevel("unknown"))
}

func TestEnvMessages(t *testing.T) {
	a := require.New(t)

	var stderr bytes.Buffer
	e := Env{Stderr: &stderr}
	a.Equal(ExitFailure, e.Failf("Missing config file: %s", "x.toml"))
	a.Equal(ExitUsage, e.Usage("tool <arg>"))
	a.Equal("Missing config file: x.toml\nUsage: tool <arg>\n", stderr.String())
}
