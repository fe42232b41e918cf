package analyzer

import (
	"testing"
)

func TestNewNode_SpanAndParents(t *testing.T) {
	// "T | take 1"
	table := NewToken(KindIdentifierToken, 0, "T")
	bar := NewToken(KindBarToken, 2, "|")
	take := NewToken("TakeKeyword", 4, "take")
	count := NewToken(KindLongLiteralToken, 9, "1")

	op := NewNode("TakeOperator", take, count)
	root := NewNode("PipeExpression", table, bar, op)

	if root.Start != 0 || root.End() != 10 {
		t.Errorf("root span = [%d,%d), want [0,10)", root.Start, root.End())
	}
	if op.Start != 4 || op.Width != 6 {
		t.Errorf("operator span = [%d,+%d), want [4,+6)", op.Start, op.Width)
	}

	for _, c := range []*Node{table, bar, op} {
		if c.Parent != root {
			t.Errorf("node %s not parented to root", c.Kind)
		}
	}
	if take.Parent != op || count.Parent != op {
		t.Error("operator children not parented to operator")
	}
}

func TestWalkTokens_Order(t *testing.T) {
	table := NewToken(KindIdentifierToken, 0, "T")
	bar := NewToken(KindBarToken, 2, "|")
	take := NewToken("TakeKeyword", 4, "take")
	count := NewToken(KindLongLiteralToken, 9, "1")
	root := NewNode("PipeExpression", table, bar, NewNode("TakeOperator", take, count))

	var kinds []string
	root.WalkTokens(func(n *Node) {
		if !n.IsToken() {
			t.Errorf("WalkTokens visited inner node %s", n.Kind)
		}
		kinds = append(kinds, n.Kind)
	})

	want := []string{KindIdentifierToken, KindBarToken, "TakeKeyword", KindLongLiteralToken}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d tokens, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestContains(t *testing.T) {
	tok := NewToken(KindIdentifierToken, 4, "take")

	if !tok.Contains(4) || !tok.Contains(7) {
		t.Error("span bounds not contained")
	}
	if tok.Contains(3) || tok.Contains(8) {
		t.Error("offsets outside span reported as contained")
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		kind string
		pred func(string) bool
		want bool
	}{
		{"WhereKeyword", IsKeywordKind, true},
		{KindIdentifierToken, IsKeywordKind, false},
		{KindStringLiteralToken, IsStringLiteralKind, true},
		{KindIdentifierQuotedToken, IsStringLiteralKind, true},
		{KindLongLiteralToken, IsStringLiteralKind, false},
		{KindTimespanLiteralToken, IsLiteralKind, true},
		{KindStringLiteralToken, IsLiteralKind, false},
		{"CommaToken", IsPunctuationKind, true},
		{"PlusToken", IsPunctuationKind, false},
		{"EqualEqualToken", IsScalarOperatorKind, true},
		{"BangTildeToken", IsScalarOperatorKind, true},
		{"CommaToken", IsScalarOperatorKind, false},
	}

	for _, tt := range tests {
		if got := tt.pred(tt.kind); got != tt.want {
			t.Errorf("predicate(%s) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
