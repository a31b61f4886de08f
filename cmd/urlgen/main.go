package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	urlgen "github.com/goliatone/go-urlgen"
	"github.com/goliatone/go-urlgen/internal/config"
	"github.com/goliatone/go-urlgen/pkg/openapi"
	"github.com/goliatone/go-urlgen/pkg/params"
	"github.com/goliatone/go-urlgen/pkg/prompt"
	"github.com/goliatone/go-urlgen/pkg/render"
	"github.com/goliatone/go-urlgen/pkg/schemafile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, prompt.NewSurveyDriver()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "urlgen: %v\n", err)
		os.Exit(1)
	}
}

type assignments params.Values

func (a assignments) String() string {
	pairs := make([]string, 0, len(a))
	for k, v := range a {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, ",")
}

func (a assignments) Set(raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("expected name=value, got %q", raw)
	}
	a[strings.TrimSpace(name)] = value
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, driver prompt.Driver) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	values := assignments{}
	flags := flag.NewFlagSet("urlgen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	file := flags.String("file", cfg.SchemaFile, "schema document (YAML or JSON)")
	schemaName := flags.String("schema", cfg.Schema, "schema to render")
	index := flags.Int("index", -1, "item index for enumerated schemas")
	interactive := flags.Bool("interactive", cfg.Interactive, "prompt for field values")
	logLevel := flags.String("log-level", cfg.LogLevel, "debug, info, warn or error")
	printSchema := flags.Bool("print-schema", false, "print the schema document JSON Schema and exit")
	describe := flags.Bool("openapi", false, "print the schema keys as OpenAPI query parameters instead of rendering")
	flags.Var(values, "set", "field value as name=value (repeatable)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg.LogLevel = *logLevel
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *printSchema {
		return writeJSON(stdout, schemafile.DocumentSchema())
	}

	if *file == "" {
		return errors.New("a schema document is required (-file or URLGEN_SCHEMA_FILE)")
	}
	catalog, err := schemafile.LoadFile(*file)
	if err != nil {
		return err
	}
	logger.Debug("schemas loaded", "file", *file, "schemas", catalog.Names())

	schema, ok := catalog.Schema(*schemaName)
	if !ok {
		return fmt.Errorf("unknown schema %q (available: %s)", *schemaName, strings.Join(catalog.Names(), ", "))
	}

	var opts []render.Option
	if *index >= 0 {
		opts = append(opts, render.WithIndex(*index))
	}

	if *describe {
		renderer, err := urlgen.DefaultRegistry().ForSchema(schema)
		if err != nil {
			return err
		}
		parameters, err := openapi.Parameters(schema, renderer, opts...)
		if err != nil {
			return err
		}
		return writeJSON(stdout, parameters)
	}

	bag, err := params.New(schema, params.FromMap(values), nil)
	if err != nil {
		return err
	}
	if *interactive {
		if err := prompt.Fill(ctx, driver, bag); err != nil {
			return err
		}
	}
	logger.Debug("parameters collected", "bag", bag.String(), "count", bag.Len())

	out, err := urlgen.URL(bag, opts...)
	if err != nil {
		return err
	}
	logger.Info("rendered", "schema", schema.Name(), "renderer", schema.Kind().String(), "keys", len(out))
	return writeJSON(stdout, out)
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
