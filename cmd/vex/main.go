// Command vex checks JSON documents against a schema inferred from
// known-good sample documents.
//
// Usage:
//
//	vex -samples good1.json,good2.json [-select EXPR] doc.json...
//
// The schema is inferred from the sample documents; every remaining
// document is then validated against it. With -select, a jq expression
// picks the values to validate inside each document (e.g. ".items[]"
// validates every element of a top-level array field).
//
// Configuration is read from environment variables (VEX_LOG_LEVEL,
// VEX_LOG_FILE, VEX_CHECK_WORKERS, ...; see internal/config).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/usestring/vex/internal/config"
	"github.com/usestring/vex/internal/logging"
	"github.com/usestring/vex/internal/query"
	"github.com/usestring/vex/pkg/infer"
	"github.com/usestring/vex/pkg/vex"
)

func main() {
	samples := flag.String("samples", "", "comma-separated sample documents to infer the schema from")
	selectExpr := flag.String("select", "", "jq expression selecting the values to validate in each document")
	flag.Parse()

	if *samples == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: vex -samples good1.json,good2.json [-select EXPR] doc.json...")
		os.Exit(2)
	}

	cfg := config.Load()
	cleanup, err := logging.Setup(logging.Config{
		Level:      cfg.LogLevel,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging setup failed:", err)
		os.Exit(1)
	}
	defer cleanup()

	schema, err := inferSchema(strings.Split(*samples, ","))
	if err != nil {
		slog.Error("schema inference failed", "error", err)
		os.Exit(1)
	}

	engine := query.NewEngine()
	if *selectExpr != "" {
		if err := engine.ValidateExpression(*selectExpr); err != nil {
			slog.Error("bad -select expression", "error", err)
			os.Exit(2)
		}
	}

	// Schemas are safe to share across concurrent parses once built.
	var failures atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(cfg.CheckWorkers)
	for _, name := range flag.Args() {
		name := name
		g.Go(func() error {
			n, err := checkFile(schema, engine, name, *selectExpr, cfg.SelectMaxResults)
			if err != nil {
				return err
			}
			failures.Add(int64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("check aborted", "error", err)
		os.Exit(1)
	}

	if n := failures.Load(); n > 0 {
		slog.Error("validation failed", "failures", n)
		os.Exit(1)
	}
	slog.Info("all documents valid", "documents", flag.NArg())
}

func inferSchema(paths []string) (vex.Schema, error) {
	docs := make([][]byte, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading sample: %w", err)
		}
		docs = append(docs, data)
	}
	return infer.Infer(docs...)
}

// checkFile validates one document and returns the number of failed
// values found in it.
func checkFile(schema vex.Schema, engine *query.Engine, name, selectExpr string, maxResults int) (int, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", name, err)
	}

	if selectExpr == "" {
		if res := vex.SafeParseJSON(schema, data); !res.Success {
			slog.Error("document failed validation",
				"file", name,
				"path", res.Error.Path.String(),
				"message", res.Error.Message)
			return 1, nil
		}
		slog.Debug("document valid", "file", name)
		return 0, nil
	}

	sel, err := engine.Select(data, selectExpr, maxResults)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	for _, msg := range sel.Errors {
		slog.Warn("selection error", "file", name, "error", msg)
	}

	failed := 0
	for i, v := range sel.Values {
		if res := schema.SafeParse(v); !res.Success {
			slog.Error("value failed validation",
				"file", name,
				"selection", i,
				"path", res.Error.Path.String(),
				"message", res.Error.Message)
			failed++
		}
	}
	if failed == 0 {
		slog.Debug("document valid", "file", name, "values", len(sel.Values))
	}
	return failed, nil
}
