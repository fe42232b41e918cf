package classify

import (
	"testing"

	"github.com/kqlkit/kql-language-tools/internal/analyzer"
	"github.com/kqlkit/kql-language-tools/internal/symbols"
	"github.com/kqlkit/kql-language-tools/pkg/kql"
)

func TestClassify_NilTree(t *testing.T) {
	spans := Classify(nil, symbols.Default())
	if len(spans) != 0 {
		t.Errorf("expected no spans for nil tree, got %d", len(spans))
	}
}

func TestClassify_PrimaryTokenKinds(t *testing.T) {
	tests := []struct {
		name string
		kind string
		text string
		want kql.ClassificationKind
	}{
		{"string literal", analyzer.KindStringLiteralToken, `"abc"`, kql.ClassificationStringLiteral},
		{"quoted identifier", analyzer.KindIdentifierQuotedToken, "['my col']", kql.ClassificationStringLiteral},
		{"long literal", analyzer.KindLongLiteralToken, "42", kql.ClassificationLiteral},
		{"real literal", analyzer.KindRealLiteralToken, "1.5", kql.ClassificationLiteral},
		{"bool literal", analyzer.KindBoolLiteralToken, "true", kql.ClassificationLiteral},
		{"datetime literal", analyzer.KindDateTimeLiteralToken, "datetime(2024-01-01)", kql.ClassificationLiteral},
		{"comma", "CommaToken", ",", kql.ClassificationPunctuation},
		{"open paren", "OpenParenToken", "(", kql.ClassificationPunctuation},
		{"dot", "DotToken", ".", kql.ClassificationPunctuation},
		{"pipe", analyzer.KindBarToken, "|", kql.ClassificationQueryOperator},
		{"equality", "EqualEqualToken", "==", kql.ClassificationScalarOperator},
		{"greater than", "GreaterThanToken", ">", kql.ClassificationScalarOperator},
		{"plus", "PlusToken", "+", kql.ClassificationScalarOperator},
		{"match", "EqualTildeToken", "=~", kql.ClassificationScalarOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := analyzer.NewNode("Query", analyzer.NewToken(tt.kind, 0, tt.text))
			spans := Classify(root, symbols.Default())
			if len(spans) != 1 {
				t.Fatalf("expected 1 span, got %d", len(spans))
			}
			if spans[0].Kind != tt.want {
				t.Errorf("expected %s, got %s", tt.want, spans[0].Kind)
			}
		})
	}
}

func TestClassify_SkipsZeroWidthTokens(t *testing.T) {
	root := analyzer.NewNode("Query",
		analyzer.NewToken(analyzer.KindIdentifierToken, 0, "T"),
		analyzer.NewToken("EndOfTextToken", 1, ""),
	)
	spans := Classify(root, symbols.Default())
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Length == 0 {
		t.Error("zero-width span should have been omitted")
	}
}

// buildProjectQuery models "T | project c" with T resolved as a table
// and c resolved as a column.
func buildProjectQuery() *analyzer.Node {
	tableRef := analyzer.NewNode("NameReference",
		analyzer.NewToken(analyzer.KindIdentifierToken, 0, "T"))
	tableRef.Symbol = &symbols.Symbol{Kind: symbols.KindTable, Name: "T"}

	columnRef := analyzer.NewNode("NameReference",
		analyzer.NewToken(analyzer.KindIdentifierToken, 12, "c"))
	columnRef.Symbol = &symbols.Symbol{Kind: symbols.KindColumn, Name: "c"}

	projectOp := analyzer.NewNode("ProjectOperator",
		analyzer.NewToken("ProjectKeyword", 4, "project"),
		columnRef,
	)

	return analyzer.NewNode("Query",
		tableRef,
		analyzer.NewToken(analyzer.KindBarToken, 2, "|"),
		projectOp,
	)
}

func TestClassify_SemanticResolution(t *testing.T) {
	spans := Classify(buildProjectQuery(), symbols.Default())
	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, got %d", len(spans))
	}

	want := []kql.ClassificationKind{
		kql.ClassificationTable,
		kql.ClassificationQueryOperator,
		kql.ClassificationQueryOperator, // "project" keyword
		kql.ClassificationColumn,
	}
	for i, w := range want {
		if spans[i].Kind != w {
			t.Errorf("span %d: expected %s, got %s", i, w, spans[i].Kind)
		}
	}
}

func TestClassify_SpansOrderedAndNonOverlapping(t *testing.T) {
	spans := Classify(buildProjectQuery(), symbols.Default())
	for i := 1; i < len(spans); i++ {
		prev, cur := spans[i-1], spans[i]
		if cur.Start <= prev.Start {
			t.Errorf("span %d start %d not after span %d start %d", i, cur.Start, i-1, prev.Start)
		}
		if cur.Start < prev.Start+prev.Length {
			t.Errorf("span %d overlaps span %d", i, i-1)
		}
	}
}

// buildCallQuery models "count(x)" where the call node resolves to the
// built-in count function and the argument resolution is configurable.
func buildCallQuery(resolveArg bool) *analyzer.Node {
	nameRef := analyzer.NewNode("NameReference",
		analyzer.NewToken(analyzer.KindIdentifierToken, 0, "count"))

	argRef := analyzer.NewNode("NameReference",
		analyzer.NewToken(analyzer.KindIdentifierToken, 6, "x"))
	if resolveArg {
		argRef.Symbol = &symbols.Symbol{Kind: symbols.KindColumn, Name: "x"}
	}

	call := analyzer.NewNode(analyzer.KindFunctionCall,
		nameRef,
		analyzer.NewToken("OpenParenToken", 5, "("),
		argRef,
		analyzer.NewToken("CloseParenToken", 7, ")"),
	)
	call.Symbol = &symbols.Symbol{Kind: symbols.KindFunction, Name: "count"}

	return analyzer.NewNode("Query", call)
}

func TestClassify_FunctionCallName(t *testing.T) {
	spans := Classify(buildCallQuery(true), symbols.Default())
	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, got %d", len(spans))
	}

	// "count" is within the call's name sub-expression and count is a
	// built-in aggregate.
	if spans[0].Kind != kql.ClassificationAggregateFunction {
		t.Errorf("expected AggregateFunction for call name, got %s", spans[0].Kind)
	}
	// "x" resolved through its own reference node, not the call.
	if spans[2].Kind != kql.ClassificationColumn {
		t.Errorf("expected Column for argument, got %s", spans[2].Kind)
	}
}

func TestClassify_FunctionCallArgumentNotFunction(t *testing.T) {
	spans := Classify(buildCallQuery(false), symbols.Default())

	// With no resolution of its own, the argument must not inherit the
	// call's function symbol; it falls through to Identifier.
	if spans[2].Kind != kql.ClassificationIdentifier {
		t.Errorf("expected Identifier for unresolved argument, got %s", spans[2].Kind)
	}
}

func TestClassify_ScalarFunction(t *testing.T) {
	nameRef := analyzer.NewNode("NameReference",
		analyzer.NewToken(analyzer.KindIdentifierToken, 0, "ago"))
	call := analyzer.NewNode(analyzer.KindFunctionCall,
		nameRef,
		analyzer.NewToken("OpenParenToken", 3, "("),
		analyzer.NewToken("CloseParenToken", 4, ")"),
	)
	call.Symbol = &symbols.Symbol{Kind: symbols.KindFunction, Name: "ago"}
	spans := Classify(analyzer.NewNode("Query", call), symbols.Default())

	if spans[0].Kind != kql.ClassificationScalarFunction {
		t.Errorf("expected ScalarFunction for ago, got %s", spans[0].Kind)
	}
}

func TestClassify_SemanticBeforeKeywordVocabulary(t *testing.T) {
	// The lexeme "count" is both a pipeline keyword and a built-in
	// aggregate; a resolved functional use must win over the keyword
	// vocabulary.
	spans := Classify(buildCallQuery(true), symbols.Default())
	if spans[0].Kind == kql.ClassificationQueryOperator {
		t.Error("resolved function use of 'count' classified as QueryOperator")
	}

	// Unresolved "count" falls back to the vocabulary.
	root := analyzer.NewNode("Query",
		analyzer.NewToken("CountKeyword", 0, "count"))
	spans = Classify(root, symbols.Default())
	if spans[0].Kind != kql.ClassificationQueryOperator {
		t.Errorf("expected QueryOperator for unresolved 'count', got %s", spans[0].Kind)
	}
}

func TestClassify_SymbolKindMapping(t *testing.T) {
	tests := []struct {
		name string
		kind symbols.Kind
		want kql.ClassificationKind
	}{
		{"variable", symbols.KindVariable, kql.ClassificationVariable},
		{"parameter", symbols.KindParameter, kql.ClassificationParameter},
		{"database", symbols.KindDatabase, kql.ClassificationDatabase},
		{"cluster", symbols.KindCluster, kql.ClassificationCluster},
		{"scalar type", symbols.KindScalarType, kql.ClassificationLiteral},
		{"other", symbols.KindOther, kql.ClassificationIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := analyzer.NewNode("NameReference",
				analyzer.NewToken(analyzer.KindIdentifierToken, 0, "name"))
			ref.Symbol = &symbols.Symbol{Kind: tt.kind, Name: "name"}
			spans := Classify(analyzer.NewNode("Query", ref), symbols.Default())
			if spans[0].Kind != tt.want {
				t.Errorf("expected %s, got %s", tt.want, spans[0].Kind)
			}
		})
	}
}

func TestClassify_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		kind string
		text string
		want kql.ClassificationKind
	}{
		{"pipeline keyword", analyzer.KindIdentifierToken, "where", kql.ClassificationQueryOperator},
		{"hyphenated operator", analyzer.KindIdentifierToken, "mv-expand", kql.ClassificationQueryOperator},
		{"keyword shaped", "ByKeyword", "by", kql.ClassificationQueryOperator},
		{"plain keyword", "InKeyword", "in", kql.ClassificationKeyword},
		{"unknown identifier", analyzer.KindIdentifierToken, "Unknown", kql.ClassificationIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := analyzer.NewNode("Query", analyzer.NewToken(tt.kind, 0, tt.text))
			spans := Classify(root, symbols.Default())
			if spans[0].Kind != tt.want {
				t.Errorf("expected %s, got %s", tt.want, spans[0].Kind)
			}
		})
	}
}

func TestClassify_UnresolvedSymbolKindIgnored(t *testing.T) {
	ref := analyzer.NewNode("NameReference",
		analyzer.NewToken(analyzer.KindIdentifierToken, 0, "x"))
	ref.Symbol = &symbols.Symbol{Kind: symbols.KindNone, Name: "x"}
	spans := Classify(analyzer.NewNode("Query", ref), symbols.Default())

	if spans[0].Kind != kql.ClassificationIdentifier {
		t.Errorf("expected Identifier for none-kind symbol, got %s", spans[0].Kind)
	}
}
