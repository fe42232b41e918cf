// Package complete normalizes the analyzer's raw completion suggestions
// into the portable completion taxonomy.
package complete

import (
	"github.com/kqlkit/kql-language-tools/internal/analyzer"
	"github.com/kqlkit/kql-language-tools/pkg/kql"
)

// kindMap translates the analyzer's suggestion kind names. Unlisted
// kinds map to Other.
var kindMap = map[string]kql.CompletionKind{
	"Keyword":           kql.CompletionKeyword,
	"Syntax":            kql.CompletionKeyword,
	"Punctuation":       kql.CompletionPunctuation,
	"Example":           kql.CompletionOther,
	"Table":             kql.CompletionTable,
	"Column":            kql.CompletionColumn,
	"Variable":          kql.CompletionVariable,
	"Parameter":         kql.CompletionParameter,
	"Database":          kql.CompletionDatabase,
	"Cluster":           kql.CompletionCluster,
	"AggregateFunction": kql.CompletionAggregateFunction,
	"BuiltInFunction":   kql.CompletionFunction,
	"LocalFunction":     kql.CompletionFunction,
	"DatabaseFunction":  kql.CompletionFunction,
}

// Normalize converts an analyzer completion response into portable
// items. Emission order is preserved and becomes the sort order: the
// analyzer already ranks by relevance. A nil response yields no items.
func Normalize(resp *analyzer.CompletionResponse) []kql.CompletionItem {
	if resp == nil || len(resp.Items) == 0 {
		return nil
	}

	items := make([]kql.CompletionItem, 0, len(resp.Items))
	for i, raw := range resp.Items {
		item := kql.CompletionItem{
			Label:     raw.DisplayText,
			Kind:      mapKind(raw.Kind),
			SortOrder: i,
			EditStart: resp.EditStart,
		}
		// Only a match text that actually differs from the label is
		// worth carrying; otherwise "use label as-is".
		if raw.MatchText != "" && raw.MatchText != raw.DisplayText {
			item.InsertText = raw.MatchText
			item.Detail = raw.MatchText
		}
		items = append(items, item)
	}
	return items
}

func mapKind(raw string) kql.CompletionKind {
	if k, ok := kindMap[raw]; ok {
		return k
	}
	return kql.CompletionOther
}
