// Package analyzer defines the contract with the external semantic
// analyzer and hosts the wazero-backed runtime adapter that loads it.
//
// The analyzer owns tokenization, grammar, type inference and symbol
// binding. This layer only sends it query text plus an optional symbol
// universe and reads back a syntax tree, diagnostics and completion
// suggestions.
package analyzer

import (
	"context"

	"github.com/kqlkit/kql-language-tools/internal/symbols"
)

// Capability names an analyzer feature declared in its manifest.
const (
	CapabilityValidation       = "validation"
	CapabilitySchemaValidation = "schema_validation"
	CapabilityCompletion       = "completion"
	CapabilityClassification   = "classification"
)

// Diagnostic is one raw issue reported by the analyzer. Severity is the
// analyzer's spelling; offset translation and severity mapping happen in
// the validation result builder.
type Diagnostic struct {
	Message  string
	Severity string
	Code     string
	Start    int
	End      int
}

// ParseResult is the outcome of parsing (and optionally analyzing) one
// query. Root may be nil on a hard parse failure; Diagnostics may be
// non-empty either way.
type ParseResult struct {
	Root        *Node
	Diagnostics []Diagnostic
}

// CompletionItem is one raw suggestion from the analyzer's completion
// service.
type CompletionItem struct {
	// DisplayText is what the analyzer shows for the suggestion.
	DisplayText string

	// MatchText is the text the suggestion matches/inserts; may equal
	// DisplayText or be empty.
	MatchText string

	// Kind is the analyzer's suggestion kind name.
	Kind string
}

// CompletionResponse carries the suggestions for one cursor position.
// EditStart is the replacement start shared by all items.
type CompletionResponse struct {
	EditStart int
	Items     []CompletionItem
}

// Analyzer is the external collaborator that parses query text into a
// syntax tree with resolved symbols. Implementations must be safe for
// concurrent use; each call takes its own universe and returns
// structures the caller owns (except the tree, which is borrowed and
// read-only).
type Analyzer interface {
	// Parse performs syntax-only analysis.
	Parse(ctx context.Context, query string) (*ParseResult, error)

	// Analyze performs semantic analysis against the given universe.
	Analyze(ctx context.Context, query string, globals *symbols.GlobalState) (*ParseResult, error)

	// Complete returns suggestions for the block containing the cursor.
	Complete(ctx context.Context, query string, cursor int, globals *symbols.GlobalState) (*CompletionResponse, error)

	// Capabilities lists the features the loaded analyzer supports.
	Capabilities() []string
}
