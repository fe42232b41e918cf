package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/kqlkit/kql-language-tools/internal/symbols"
)

// Guest export names.
const (
	exportAlloc   = "kql_alloc"
	exportAnalyze = "kql_analyze"
)

// RuntimeConfig holds wasm runtime limits.
type RuntimeConfig struct {
	// MemoryPages caps guest memory (64KB pages). Default 256 = 16MB.
	MemoryPages uint32

	// CacheDir enables persistent compilation caching when non-empty.
	CacheDir string
}

// DefaultRuntimeConfig returns sensible defaults.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{MemoryPages: 256}
}

// Runtime hosts the analyzer as a Wasm module and implements Analyzer by
// round-tripping JSON requests through the guest's kql_analyze export.
//
// Guest calls are serialized per Runtime: the module has one linear
// memory and one instance. Runtime is safe for concurrent use; callers
// wanting parallel analysis load one Runtime per worker.
type Runtime struct {
	runtime  wazero.Runtime
	module   api.Module
	memory   guestMemory
	analyze  api.Function
	manifest *Manifest
	logger   *zap.Logger

	mu        sync.Mutex
	closeOnce sync.Once
}

var _ Analyzer = (*Runtime)(nil)

// LoadRuntime loads the analyzer runtime from dir, which must contain a
// manifest.yaml describing the module. Compilation happens once per
// load; use cfg.CacheDir for persistent caching across processes.
func LoadRuntime(ctx context.Context, dir string, cfg *RuntimeConfig, logger *zap.Logger) (*Runtime, error) {
	if cfg == nil {
		cfg = DefaultRuntimeConfig()
	}
	log := logger.With(zap.String("component", "analyzer-runtime"))

	manifest, err := ParseManifest(dir)
	if err != nil {
		return nil, err
	}

	runtimeConfig := wazero.NewRuntimeConfig().WithMemoryLimitPages(cfg.MemoryPages)
	if cfg.CacheDir != "" {
		cache, cacheErr := wazero.NewCompilationCacheWithDir(cfg.CacheDir)
		if cacheErr != nil {
			log.Warn("Compilation cache unavailable, continuing without",
				zap.String("cache_dir", cfg.CacheDir),
				zap.Error(cacheErr),
			)
		} else {
			runtimeConfig = runtimeConfig.WithCompilationCache(cache)
		}
	}

	r := wazero.NewRuntimeWithConfig(ctx, runtimeConfig)

	// Export host functions the guest may import.
	hostBuilder := r.NewHostModuleBuilder("host")
	hostBuilder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, mod api.Module, level, ptr, length uint32) {
			logGuestMessage(log, mod, level, ptr, length)
		}).
		WithParameterNames("level", "ptr", "length").
		Export("log_message")
	if _, err := hostBuilder.Instantiate(ctx); err != nil {
		_ = r.Close(ctx)
		return nil, fmt.Errorf("failed to instantiate host module: %w", err)
	}

	wasmBytes, err := manifest.ReadModule()
	if err != nil {
		_ = r.Close(ctx)
		return nil, err
	}

	log.Info("Compiling analyzer module",
		zap.String("path", manifest.ModulePath()),
		zap.Int("size_bytes", len(wasmBytes)),
	)

	compiled, err := r.CompileModule(ctx, wasmBytes)
	if err != nil {
		_ = r.Close(ctx)
		return nil, &CompilationError{Path: manifest.ModulePath(), Err: err}
	}

	module, err := r.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().
		WithName(manifest.Name).
		WithStartFunctions("_initialize"))
	if err != nil {
		_ = r.Close(ctx)
		return nil, &InstantiationError{Path: manifest.ModulePath(), Err: err}
	}

	alloc := module.ExportedFunction(exportAlloc)
	if alloc == nil {
		_ = r.Close(ctx)
		return nil, &ExportNotFoundError{Export: exportAlloc}
	}
	analyzeFn := module.ExportedFunction(exportAnalyze)
	if analyzeFn == nil {
		_ = r.Close(ctx)
		return nil, &ExportNotFoundError{Export: exportAnalyze}
	}

	log.Info("Analyzer runtime loaded",
		zap.String("name", manifest.Name),
		zap.String("version", manifest.Version),
		zap.Strings("capabilities", manifest.Capabilities),
	)

	return &Runtime{
		runtime:  r,
		module:   module,
		memory:   guestMemory{mod: module, alloc: alloc},
		analyze:  analyzeFn,
		manifest: manifest,
		logger:   log,
	}, nil
}

// Close releases the wasm runtime. Idempotent.
func (r *Runtime) Close(ctx context.Context) error {
	var err error
	r.closeOnce.Do(func() {
		r.logger.Info("Shutting down analyzer runtime")
		err = r.runtime.Close(ctx)
	})
	return err
}

// Capabilities returns the manifest-declared capabilities.
func (r *Runtime) Capabilities() []string {
	return r.manifest.Capabilities
}

// Parse implements Analyzer.
func (r *Runtime) Parse(ctx context.Context, query string) (*ParseResult, error) {
	return r.parseOp(ctx, &wireRequest{Op: "parse", Query: query})
}

// Analyze implements Analyzer.
func (r *Runtime) Analyze(ctx context.Context, query string, globals *symbols.GlobalState) (*ParseResult, error) {
	return r.parseOp(ctx, &wireRequest{Op: "analyze", Query: query, Globals: encodeGlobals(globals)})
}

// Complete implements Analyzer.
func (r *Runtime) Complete(ctx context.Context, query string, cursor int, globals *symbols.GlobalState) (*CompletionResponse, error) {
	resp, err := r.call(ctx, &wireRequest{
		Op:      "complete",
		Query:   query,
		Cursor:  cursor,
		Globals: encodeGlobals(globals),
	})
	if err != nil {
		return nil, err
	}
	out := &CompletionResponse{}
	if resp.Completion != nil {
		out.EditStart = resp.Completion.EditStart
		for _, item := range resp.Completion.Items {
			out.Items = append(out.Items, CompletionItem{
				DisplayText: item.DisplayText,
				MatchText:   item.MatchText,
				Kind:        item.Kind,
			})
		}
	}
	return out, nil
}

func (r *Runtime) parseOp(ctx context.Context, req *wireRequest) (*ParseResult, error) {
	resp, err := r.call(ctx, req)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		Root:        decodeTree(resp.Root),
		Diagnostics: decodeDiagnostics(resp.Diagnostics),
	}, nil
}

// call round-trips one request through the guest.
func (r *Runtime) call(ctx context.Context, req *wireRequest) (*wireResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analyzer request: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ptr, err := r.memory.writeBytes(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to write analyzer request: %w", err)
	}

	results, err := r.analyze.Call(ctx, uint64(ptr), uint64(len(payload)))
	if err != nil {
		return nil, fmt.Errorf("analyzer call failed: %w", err)
	}

	// Result packs (ptr << 32) | len.
	packed := results[0]
	out, err := r.memory.readBytes(uint32(packed>>32), uint32(packed))
	if err != nil {
		return nil, err
	}

	resp, err := decodeResponse(req.Op, out)
	if err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, errors.New(resp.Error)
	}
	return resp, nil
}

// logGuestMessage forwards a guest log_message call to the host logger.
// level: 0 = debug, 1 = info, 2 = warn, 3 = error.
func logGuestMessage(log *zap.Logger, mod api.Module, level, ptr, length uint32) {
	msg, ok := mod.Memory().Read(ptr, length)
	if !ok {
		log.Error("Failed to read guest log message",
			zap.Uint32("ptr", ptr),
			zap.Uint32("length", length),
		)
		return
	}
	switch level {
	case 0:
		log.Debug(string(msg))
	case 2:
		log.Warn(string(msg))
	case 3:
		log.Error(string(msg))
	default:
		log.Info(string(msg))
	}
}
