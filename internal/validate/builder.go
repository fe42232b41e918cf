// Package validate builds portable validation results from the
// analyzer's raw diagnostics.
package validate

import (
	"github.com/kqlkit/kql-language-tools/internal/analyzer"
	"github.com/kqlkit/kql-language-tools/pkg/kql"
)

// BuildResult translates raw diagnostics into a validation result:
// severities mapped onto the portable set, byte offsets resolved to
// 1-based line/column against the query text. The result is valid iff
// no diagnostic carries error severity.
func BuildResult(query string, raw []analyzer.Diagnostic) *kql.ValidationResult {
	diagnostics := make([]kql.Diagnostic, 0, len(raw))
	for _, d := range raw {
		line, column := lineColumn(query, d.Start)
		diagnostics = append(diagnostics, kql.Diagnostic{
			Message:  d.Message,
			Severity: kql.ParseSeverity(d.Severity),
			Start:    d.Start,
			End:      d.End,
			Line:     line,
			Column:   column,
			Code:     d.Code,
		})
	}

	result := &kql.ValidationResult{Diagnostics: diagnostics}
	result.Valid = !result.HasErrors()
	return result
}

// FailureResult wraps a hard analyzer failure as a single synthetic
// error diagnostic at offset 0, preserving the "always returns a
// structured result" contract.
func FailureResult(message string) *kql.ValidationResult {
	return &kql.ValidationResult{
		Valid: false,
		Diagnostics: []kql.Diagnostic{{
			Message:  message,
			Severity: kql.SeverityError,
			Line:     1,
			Column:   1,
		}},
	}
}

// lineColumn scans the query up to offset, counting newlines. Offsets
// outside [0, len(query)] degrade to line 1, column 1.
func lineColumn(query string, offset int) (line, column int) {
	if offset < 0 || offset > len(query) {
		return 1, 1
	}
	line, column = 1, 1
	for i := 0; i < offset; i++ {
		if query[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
