// Command validate-json checks a JSON document against a contract schema.
//
// Usage:
//
//	validate-json <schema-path> <json-path>
//
// Exit code is 0 if document is valid, 1 if it is invalid or cannot be loaded
// and 2 on wrong usage.
package main

import (
	"log/slog"
	"os"

	"github.com/go-faster/errors"

	"github.com/tdakkota/jsoncontract"
	"github.com/tdakkota/jsoncontract/internal/cli"
	"github.com/tdakkota/jsoncontract/internal/loader"
)

func main() {
	os.Exit(run(os.Args[1:], cli.Setup()))
}

// load loads document, printing failure in terms of what the document is.
func load(e cli.Env, path, missing, invalid string) (jsoncontract.Value, int, bool) {
	v, err := loader.Load(path)
	if err == nil {
		return v, cli.ExitOK, true
	}

	var (
		nf *loader.NotFoundError
		se *loader.SyntaxError
	)
	switch {
	case errors.As(err, &nf):
		return v, e.Failf("%s file not found: %s", missing, path), false
	case errors.As(err, &se):
		return v, e.Failf("Invalid %s at %s: %v", invalid, path, se.Err), false
	default:
		return v, e.Failf("Failed to load %s: %v", path, err), false
	}
}

func run(args []string, e cli.Env) int {
	if len(args) != 2 {
		return e.Usage("validate-json <schema-path> <json-path>")
	}
	schemaPath, jsonPath := args[0], args[1]

	schemaDoc, code, ok := load(e, schemaPath, "Schema", "schema JSON")
	if !ok {
		return code
	}
	payload, code, ok := load(e, jsonPath, "JSON", "JSON")
	if !ok {
		return code
	}

	report := jsoncontract.Check(jsoncontract.Compile(schemaDoc), payload, schemaPath, jsonPath)
	e.Log.Debug("Validated",
		slog.String("schema", schemaPath),
		slog.String("instance", jsonPath),
		slog.Int("errors", len(report.Errors)),
	)
	if !report.Valid() {
		if _, err := report.WriteTo(e.Stderr); err != nil {
			e.Log.Error("Write report", slog.String("error", err.Error()))
		}
		return cli.ExitFailure
	}
	return cli.ExitOK
}
