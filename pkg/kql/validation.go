package kql

import "strings"

// Severity is the severity level of a diagnostic.
type Severity string

// Severity levels, from most to least severe.
const (
	SeverityError       Severity = "Error"
	SeverityWarning     Severity = "Warning"
	SeverityInformation Severity = "Information"
	SeverityHint        Severity = "Hint"
)

// ParseSeverity maps a severity spelling reported by the analyzer to a
// Severity. Matching is case-insensitive. Unrecognized spellings map to
// SeverityError so that no reported issue is silently downgraded.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "warning":
		return SeverityWarning
	case "information", "info":
		return SeverityInformation
	case "hint", "suggestion":
		return SeverityHint
	default:
		return SeverityError
	}
}

// Diagnostic is one issue reported against a query.
type Diagnostic struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`

	// Start and End are byte offsets into the query text, start <= end.
	Start int `json:"start"`
	End   int `json:"end"`

	// Line and Column are 1-based and derived from Start.
	Line   int `json:"line"`
	Column int `json:"column"`

	// Code is a stable error code when the analyzer provides one.
	Code string `json:"code,omitempty"`
}

// Length returns the width of the diagnostic span.
func (d *Diagnostic) Length() int {
	if d.End < d.Start {
		return 0
	}
	return d.End - d.Start
}

// IsError reports whether the diagnostic has error severity.
func (d *Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// ValidationResult is the outcome of validating one query.
type ValidationResult struct {
	// Valid is true iff no diagnostic has error severity.
	Valid       bool         `json:"valid"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// HasErrors reports whether any diagnostic has error severity.
func (r *ValidationResult) HasErrors() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].IsError() {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has warning severity.
func (r *ValidationResult) HasWarnings() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Errors returns only the error-severity diagnostics.
func (r *ValidationResult) Errors() []Diagnostic {
	var errs []Diagnostic
	for _, d := range r.Diagnostics {
		if d.IsError() {
			errs = append(errs, d)
		}
	}
	return errs
}
