// Command resolve-role-model prints the model assigned to a workflow role.
//
// Usage:
//
//	resolve-role-model <role> [config-path]
//
// Config is a TOML (or YAML) file with [models] aliases and [role_models]
// assignments, .workflow/config.toml by default.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-faster/errors"

	"github.com/tdakkota/jsoncontract/internal/cli"
	"github.com/tdakkota/jsoncontract/rolemodel"
)

const defaultConfig = ".workflow/config.toml"

func main() {
	os.Exit(run(os.Args[1:], cli.Setup()))
}

func run(args []string, e cli.Env) int {
	if len(args) < 1 || len(args) > 2 {
		return e.Usage("resolve-role-model <role> [config-path]")
	}

	role := strings.TrimSpace(args[0])
	if role == "" {
		return e.Failf("Role must be non-empty")
	}

	configPath := defaultConfig
	if len(args) > 1 {
		configPath = args[1]
	}
	if st, err := os.Stat(configPath); err != nil || !st.Mode().IsRegular() {
		return e.Failf("Missing config file: %s", configPath)
	}

	cfg, err := rolemodel.Load(configPath)
	if err != nil {
		return e.Failf("Invalid config file %s: %v", configPath, err)
	}

	model, err := cfg.Resolve(role)
	switch {
	case err == nil:
	case errors.Is(err, rolemodel.ErrInvalidMapping):
		return e.Failf("Invalid model mapping for role: %s", role)
	default:
		e.Log.Debug("Role is not resolved", slog.String("role", role), slog.String("error", err.Error()))
		return e.Failf("No model configured for role: %s", role)
	}

	e.Log.Debug("Resolved", slog.String("role", role), slog.String("model", model))
	fmt.Fprintln(e.Stdout, model)
	return cli.ExitOK
}
