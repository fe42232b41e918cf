package kql

// CompletionKind categorizes a completion item. The set is closed.
type CompletionKind string

// Completion kinds.
const (
	CompletionKeyword           CompletionKind = "Keyword"
	CompletionPunctuation       CompletionKind = "Punctuation"
	CompletionOther             CompletionKind = "Other"
	CompletionTable             CompletionKind = "Table"
	CompletionColumn            CompletionKind = "Column"
	CompletionVariable          CompletionKind = "Variable"
	CompletionParameter         CompletionKind = "Parameter"
	CompletionDatabase          CompletionKind = "Database"
	CompletionCluster           CompletionKind = "Cluster"
	CompletionAggregateFunction CompletionKind = "AggregateFunction"
	CompletionFunction          CompletionKind = "Function"
)

// CompletionItem is one suggestion at a cursor position.
type CompletionItem struct {
	// Label is the display text.
	Label string         `json:"label"`
	Kind  CompletionKind `json:"kind"`

	// InsertText is set only when the text to insert differs from the
	// label; empty means "insert the label as-is".
	InsertText string `json:"insertText,omitempty"`

	// Detail carries extra display text when available.
	Detail string `json:"detail,omitempty"`

	// SortOrder is 0-based; lower sorts first. Assigned in analyzer
	// emission order, which is already relevance-ranked.
	SortOrder int `json:"sortOrder"`

	// EditStart is the byte offset at which a consuming editor should
	// begin replacing text. Shared by all items of one response.
	EditStart int `json:"editStart"`
}

// CompletionResult is the ordered item list for one completion request.
type CompletionResult struct {
	Items []CompletionItem `json:"items"`
}
