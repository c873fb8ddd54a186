// Command extract-json extracts the first JSON object from mixed text output.
//
// Usage:
//
//	extract-json <input-path> <output-path>
//
// Extracted object is written to output as indented JSON with sorted keys.
package main

import (
	"log/slog"
	"os"

	"github.com/tdakkota/jsoncontract"
	"github.com/tdakkota/jsoncontract/extract"
	"github.com/tdakkota/jsoncontract/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], cli.Setup()))
}

func run(args []string, e cli.Env) int {
	if len(args) != 2 {
		return e.Usage("extract-json <input-path> <output-path>")
	}
	inputPath, outputPath := args[0], args[1]

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return e.Failf("Failed to read %s: %v", inputPath, err)
	}

	m, err := extract.Find(string(source))
	if err != nil {
		e.Log.Debug("Extraction failed", slog.String("input", inputPath), slog.Int("size", len(source)))
		return e.Failf("Failed to extract a valid JSON object from reviewer output.")
	}
	e.Log.Debug("Extracted object",
		slog.String("input", inputPath),
		slog.String("strategy", m.Strategy.String()),
		slog.Int("offset", m.Offset),
	)

	out := append(jsoncontract.EncodeIndent(m.Value, 2), '\n')
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return e.Failf("Failed to write %s: %v", outputPath, err)
	}
	return cli.ExitOK
}
