// Package analyzertest provides a scriptable Analyzer for tests.
package analyzertest

import (
	"context"

	"github.com/kqlkit/kql-language-tools/internal/analyzer"
	"github.com/kqlkit/kql-language-tools/internal/symbols"
)

// Fake implements analyzer.Analyzer with per-call hooks. Unset hooks
// return empty results; set Caps to restrict capabilities (nil means
// all).
type Fake struct {
	ParseFunc    func(query string) (*analyzer.ParseResult, error)
	AnalyzeFunc  func(query string, globals *symbols.GlobalState) (*analyzer.ParseResult, error)
	CompleteFunc func(query string, cursor int, globals *symbols.GlobalState) (*analyzer.CompletionResponse, error)
	Caps         []string
}

var _ analyzer.Analyzer = (*Fake)(nil)

// Parse implements analyzer.Analyzer.
func (f *Fake) Parse(_ context.Context, query string) (*analyzer.ParseResult, error) {
	if f.ParseFunc != nil {
		return f.ParseFunc(query)
	}
	return &analyzer.ParseResult{}, nil
}

// Analyze implements analyzer.Analyzer.
func (f *Fake) Analyze(_ context.Context, query string, globals *symbols.GlobalState) (*analyzer.ParseResult, error) {
	if f.AnalyzeFunc != nil {
		return f.AnalyzeFunc(query, globals)
	}
	return &analyzer.ParseResult{}, nil
}

// Complete implements analyzer.Analyzer.
func (f *Fake) Complete(_ context.Context, query string, cursor int, globals *symbols.GlobalState) (*analyzer.CompletionResponse, error) {
	if f.CompleteFunc != nil {
		return f.CompleteFunc(query, cursor, globals)
	}
	return &analyzer.CompletionResponse{}, nil
}

// Capabilities implements analyzer.Analyzer.
func (f *Fake) Capabilities() []string {
	if f.Caps != nil {
		return f.Caps
	}
	return []string{
		analyzer.CapabilityValidation,
		analyzer.CapabilitySchemaValidation,
		analyzer.CapabilityCompletion,
		analyzer.CapabilityClassification,
	}
}
