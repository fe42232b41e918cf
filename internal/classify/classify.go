// Package classify assigns a stable classification to every non-trivial
// token of an analyzed syntax tree, for syntax highlighting.
package classify

import (
	"strings"

	"github.com/kqlkit/kql-language-tools/internal/analyzer"
	"github.com/kqlkit/kql-language-tools/internal/symbols"
	"github.com/kqlkit/kql-language-tools/pkg/kql"
)

// Classify walks the tree depth-first, left to right, and produces one
// span per non-zero-width token. Spans come out in strictly increasing
// start order and never overlap.
//
// A nil root yields an empty span list: classification is advisory and
// validation is the authoritative error channel.
func Classify(root *analyzer.Node, globals *symbols.GlobalState) []kql.ClassifiedSpan {
	if root == nil {
		return nil
	}
	if globals == nil {
		globals = symbols.Default()
	}

	var spans []kql.ClassifiedSpan
	root.WalkTokens(func(tok *analyzer.Node) {
		if tok.Width == 0 {
			return
		}
		spans = append(spans, kql.ClassifiedSpan{
			Start:  tok.Start,
			Length: tok.Width,
			Kind:   classifyToken(tok, globals),
		})
	})
	return spans
}

// classifyToken applies the layered resolution: fixed token-kind
// categories first, then semantic resolution through the ancestor chain,
// then the keyword vocabulary fallback.
func classifyToken(tok *analyzer.Node, globals *symbols.GlobalState) kql.ClassificationKind {
	kind := tok.Kind

	// Fixed kind-based categories are final; no semantic lookup.
	switch {
	case analyzer.IsStringLiteralKind(kind):
		return kql.ClassificationStringLiteral
	case analyzer.IsLiteralKind(kind):
		return kql.ClassificationLiteral
	case analyzer.IsPunctuationKind(kind):
		return kql.ClassificationPunctuation
	case kind == analyzer.KindBarToken:
		return kql.ClassificationQueryOperator
	case analyzer.IsScalarOperatorKind(kind):
		return kql.ClassificationScalarOperator
	}

	// Semantic resolution runs before the keyword vocabulary so that
	// lexemes like "count", which name both a pipeline keyword and a
	// built-in aggregate, classify by their resolved use.
	if kind == analyzer.KindIdentifierToken || analyzer.IsKeywordKind(kind) {
		if sym := resolveSymbol(tok); sym != nil {
			return symbolClassification(sym, globals)
		}
	}

	if queryOperatorKeywords[strings.ToLower(tok.Text)] {
		return kql.ClassificationQueryOperator
	}
	if analyzer.IsKeywordKind(kind) {
		return kql.ClassificationKeyword
	}
	return kql.ClassificationIdentifier
}

// resolveSymbol walks the token's ancestor chain outward and returns the
// first resolved symbol. A function-call ancestor's symbol only applies
// when the token lies within the call's name sub-expression; argument
// identifiers keep walking so they are not mis-classified as the
// function being called.
func resolveSymbol(tok *analyzer.Node) *symbols.Symbol {
	for n := tok.Parent; n != nil; n = n.Parent {
		if n.Symbol == nil || n.Symbol.Kind == symbols.KindNone {
			continue
		}
		if n.Kind == analyzer.KindFunctionCall && !inCallName(n, tok) {
			continue
		}
		return n.Symbol
	}
	return nil
}

// inCallName reports whether tok lies within the name sub-expression of
// a function-call node (its first child).
func inCallName(call, tok *analyzer.Node) bool {
	if len(call.Children) == 0 {
		return false
	}
	name := call.Children[0]
	return tok.Start >= name.Start && tok.End() <= name.End()
}

// symbolClassification maps a resolved symbol onto a classification
// kind. The symbol kind set is closed; the switch is exhaustive.
func symbolClassification(sym *symbols.Symbol, globals *symbols.GlobalState) kql.ClassificationKind {
	switch sym.Kind {
	case symbols.KindTable:
		return kql.ClassificationTable
	case symbols.KindColumn:
		return kql.ClassificationColumn
	case symbols.KindFunction:
		if globals.IsAggregate(sym.Name) {
			return kql.ClassificationAggregateFunction
		}
		return kql.ClassificationScalarFunction
	case symbols.KindVariable:
		return kql.ClassificationVariable
	case symbols.KindParameter:
		return kql.ClassificationParameter
	case symbols.KindDatabase:
		return kql.ClassificationDatabase
	case symbols.KindCluster:
		return kql.ClassificationCluster
	case symbols.KindScalarType:
		return kql.ClassificationLiteral
	default:
		return kql.ClassificationIdentifier
	}
}
