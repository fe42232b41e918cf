// Package transport implements the fixed-buffer boundary contract:
// byte-counted UTF-8 inputs, caller-supplied output buffers of bounded
// capacity, integer return codes, and a per-worker last-error channel.
//
// The surface mirrors a C-ABI export table (init, cleanup,
// validate_syntax, validate_with_schema, get_completions,
// get_classifications, get_last_error) so a thin cgo or wasmexport shim
// can forward to it one-to-one.
package transport

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/kqlkit/kql-language-tools/internal/service"
	"github.com/kqlkit/kql-language-tools/pkg/kql"
)

// Bridge is the boundary for one caller worker. The last-error slot is
// per-Bridge state: callers reproduce the per-call-thread contract by
// giving each worker goroutine its own Bridge over a shared Service.
// A Bridge must not be used from multiple goroutines concurrently.
type Bridge struct {
	svc     *service.Service
	logger  *zap.Logger
	lastErr string
}

// NewBridge creates a bridge over the given service.
func NewBridge(svc *service.Service, logger *zap.Logger) *Bridge {
	return &Bridge{
		svc:    svc,
		logger: logger.With(zap.String("component", "transport")),
	}
}

// Init must be called once before any other entry point. It performs a
// warm-up parse to force static initialization; a failing warm-up
// returns CodeInternalError with detail pending on the last-error
// channel.
func (b *Bridge) Init() int {
	if err := b.svc.WarmUp(context.Background()); err != nil {
		b.setError(fmt.Sprintf("initialization failed: %v", err))
		return CodeInternalError
	}
	return CodeEmpty
}

// Cleanup is a no-op reserved for forward compatibility.
func (b *Bridge) Cleanup() {}

// ValidateSyntax validates query text for syntax issues and writes the
// serialized result into out.
func (b *Bridge) ValidateSyntax(query, out []byte) (code int) {
	defer b.recoverTo(&code)

	result := b.svc.ValidateSyntax(context.Background(), string(query))
	return b.writeJSON(result, out, result.Valid && len(result.Diagnostics) == 0)
}

// ValidateWithSchema validates query text against a schema description
// given as JSON. Malformed schema JSON returns CodeParseError.
func (b *Bridge) ValidateWithSchema(query, schemaJSON, out []byte) (code int) {
	defer b.recoverTo(&code)

	sch, ok := b.parseSchema(schemaJSON)
	if !ok {
		return CodeParseError
	}

	result := b.svc.ValidateWithSchema(context.Background(), string(query), sch)
	return b.writeJSON(result, out, result.Valid && len(result.Diagnostics) == 0)
}

// GetCompletions writes the serialized completion items for the cursor
// position. schemaJSON may be empty for schema-free completion.
func (b *Bridge) GetCompletions(query []byte, cursor int, schemaJSON, out []byte) (code int) {
	defer b.recoverTo(&code)

	var sch *kql.Schema
	if len(schemaJSON) > 0 {
		parsed, ok := b.parseSchema(schemaJSON)
		if !ok {
			return CodeParseError
		}
		sch = parsed
	}

	items := b.svc.GetCompletions(context.Background(), string(query), cursor, sch)
	return b.writeJSON(&kql.CompletionResult{Items: items}, out, len(items) == 0)
}

// GetClassifications writes the serialized highlighting spans for the
// query.
func (b *Bridge) GetClassifications(query, out []byte) (code int) {
	defer b.recoverTo(&code)

	spans := b.svc.GetClassifications(context.Background(), string(query))
	return b.writeJSON(&kql.ClassificationResult{Spans: spans}, out, len(spans) == 0)
}

// GetLastError writes the pending error message for this worker.
// Returns 0 when none is pending, the message byte length on success, or
// CodeBufferTooSmall without clearing the message so the caller can
// retry with more capacity. A successful read clears the message.
func (b *Bridge) GetLastError(out []byte) int {
	if b.lastErr == "" {
		return CodeEmpty
	}
	msg := []byte(b.lastErr)
	if len(msg) > len(out) {
		return CodeBufferTooSmall
	}
	copy(out, msg)
	b.lastErr = ""
	return len(msg)
}

// parseSchema decodes schema JSON, recording a parse failure on the
// last-error channel.
func (b *Bridge) parseSchema(schemaJSON []byte) (*kql.Schema, bool) {
	var sch kql.Schema
	if err := json.Unmarshal(schemaJSON, &sch); err != nil {
		b.setError(fmt.Sprintf("malformed schema JSON: %v", err))
		return nil, false
	}
	return &sch, true
}

// writeJSON serializes v compactly into out. Trivial results return
// CodeEmpty with nothing written. A result that does not fit returns
// CodeBufferTooSmall with nothing written, so the identical retried call
// sees no consumed state.
func (b *Bridge) writeJSON(v any, out []byte, trivial bool) int {
	if trivial {
		return CodeEmpty
	}

	payload, err := json.Marshal(v)
	if err != nil {
		b.setError(fmt.Sprintf("failed to serialize result: %v", err))
		return CodeInternalError
	}
	if len(payload) > len(out) {
		return CodeBufferTooSmall
	}
	copy(out, payload)
	return len(payload)
}

func (b *Bridge) recoverTo(code *int) {
	if r := recover(); r != nil {
		b.logger.Error("Entry point panicked", zap.Any("panic", r))
		b.setError(fmt.Sprintf("internal failure: %v", r))
		*code = CodeInternalError
	}
}

func (b *Bridge) setError(msg string) {
	b.lastErr = msg
}
