package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/kqlkit/kql-language-tools/internal/analyzer"
	"github.com/kqlkit/kql-language-tools/internal/config"
	"github.com/kqlkit/kql-language-tools/internal/service"
	"github.com/kqlkit/kql-language-tools/internal/transport"
	"github.com/kqlkit/kql-language-tools/pkg/client"
	"github.com/kqlkit/kql-language-tools/pkg/kql"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	schemaPath := flag.String("schema", "", "Path to schema JSON for schema-aware calls")
	cursor := flag.Int("cursor", -1, "Cursor offset for completions (default: end of query)")
	flag.Parse()

	logger := zap.L()
	if *logLevel == "debug" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: kqlsvc [flags] <validate|classify|complete> [query]")
		os.Exit(2)
	}
	command := flag.Arg(0)

	logger.Info("Starting kqlsvc",
		zap.String("version", version),
		zap.String("commit", commit),
		zap.String("command", command),
	)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	runtimeDir := cfg.AnalyzerPath
	if runtimeDir == "" {
		dir, searched := analyzer.FindRuntimeDir()
		if dir == "" {
			logger.Fatal("Analyzer runtime not found",
				zap.Strings("searched", searched),
				zap.String("hint", "set "+analyzer.PathEnvVar),
			)
		}
		runtimeDir = dir
	}

	rt, err := analyzer.LoadRuntime(ctx, runtimeDir, &analyzer.RuntimeConfig{
		MemoryPages: cfg.Wasm.MemoryPages,
		CacheDir:    cfg.Wasm.CacheDir,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to load analyzer runtime", zap.Error(err))
	}
	defer rt.Close(ctx)

	bridge := transport.NewBridge(service.New(rt, logger), logger)
	if code := bridge.Init(); code != 0 {
		logger.Fatal("Initialization failed", zap.Int("code", code))
	}
	c := client.New(bridge)

	query, err := readQuery(flag.Args()[1:])
	if err != nil {
		logger.Fatal("Failed to read query", zap.Error(err))
	}

	schema, err := readSchema(*schemaPath)
	if err != nil {
		logger.Fatal("Failed to read schema", zap.Error(err))
	}

	var result any
	switch command {
	case "validate":
		if schema != nil {
			result, err = c.ValidateWithSchema(query, schema)
		} else {
			result, err = c.ValidateSyntax(query)
		}
	case "classify":
		result, err = c.GetClassifications(query)
	case "complete":
		pos := *cursor
		if pos < 0 {
			pos = len(query)
		}
		result, err = c.GetCompletions(query, pos, schema)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal("Call failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Fatal("Failed to encode result", zap.Error(err))
	}
}

// readQuery takes the query from the remaining arguments, or stdin when
// none are given.
func readQuery(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func readSchema(path string) (*kql.Schema, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema kql.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}
