package analyzer

import (
	"strings"

	"github.com/kqlkit/kql-language-tools/internal/symbols"
)

// Token and node kind names follow the analyzer's naming convention:
// token kinds end in "Token", keyword-shaped tokens end in "Keyword".
// The sets below are the ones the classification engine dispatches on;
// any other kind falls through to the identifier/keyword rules.
const (
	KindIdentifierToken = "IdentifierToken"

	KindStringLiteralToken     = "StringLiteralToken"
	KindIdentifierQuotedToken  = "IdentifierQuotedToken"
	KindLongLiteralToken       = "LongLiteralToken"
	KindIntLiteralToken        = "IntLiteralToken"
	KindRealLiteralToken       = "RealLiteralToken"
	KindDecimalLiteralToken    = "DecimalLiteralToken"
	KindBoolLiteralToken       = "BoolLiteralToken"
	KindDateTimeLiteralToken   = "DateTimeLiteralToken"
	KindTimespanLiteralToken   = "TimespanLiteralToken"
	KindGuidLiteralToken       = "GuidLiteralToken"

	KindBarToken = "BarToken"

	// KindFunctionCall is the syntax-node kind for function call
	// expressions; its first child is the call's name sub-expression.
	KindFunctionCall = "FunctionCallExpression"
)

// stringLiteralKinds classify as StringLiteral.
var stringLiteralKinds = map[string]bool{
	KindStringLiteralToken:    true,
	KindIdentifierQuotedToken: true,
}

// literalKinds classify as Literal (non-string literals).
var literalKinds = map[string]bool{
	KindLongLiteralToken:     true,
	KindIntLiteralToken:      true,
	KindRealLiteralToken:     true,
	KindDecimalLiteralToken:  true,
	KindBoolLiteralToken:     true,
	KindDateTimeLiteralToken: true,
	KindTimespanLiteralToken: true,
	KindGuidLiteralToken:     true,
}

// punctuationKinds classify as Punctuation.
var punctuationKinds = map[string]bool{
	"OpenParenToken":    true,
	"CloseParenToken":   true,
	"OpenBracketToken":  true,
	"CloseBracketToken": true,
	"OpenBraceToken":    true,
	"CloseBraceToken":   true,
	"CommaToken":        true,
	"SemicolonToken":    true,
	"ColonToken":        true,
	"DotToken":          true,
	"DotDotToken":       true,
	"FatArrowToken":     true,
}

// scalarOperatorKinds classify as ScalarOperator: comparison, arithmetic
// and match operators.
var scalarOperatorKinds = map[string]bool{
	"EqualEqualToken":         true,
	"BangEqualToken":          true,
	"LessThanToken":           true,
	"LessThanOrEqualToken":    true,
	"GreaterThanToken":        true,
	"GreaterThanOrEqualToken": true,
	"EqualToken":              true,
	"PlusToken":               true,
	"MinusToken":              true,
	"AsteriskToken":           true,
	"SlashToken":              true,
	"PercentToken":            true,
	"EqualTildeToken":         true,
	"BangTildeToken":          true,
}

// IsKeywordKind reports whether a token kind is keyword-shaped.
func IsKeywordKind(kind string) bool {
	return strings.HasSuffix(kind, "Keyword")
}

// IsStringLiteralKind reports whether a token kind is a string or
// quoted-identifier literal.
func IsStringLiteralKind(kind string) bool {
	return stringLiteralKinds[kind]
}

// IsLiteralKind reports whether a token kind is a non-string literal.
func IsLiteralKind(kind string) bool {
	return literalKinds[kind]
}

// IsPunctuationKind reports whether a token kind is punctuation.
func IsPunctuationKind(kind string) bool {
	return punctuationKinds[kind]
}

// IsScalarOperatorKind reports whether a token kind is a scalar operator.
func IsScalarOperatorKind(kind string) bool {
	return scalarOperatorKinds[kind]
}

// Node is one element of the analyzer's syntax tree: an inner syntax
// node or a leaf token. The tree is handed in from the analyzer and is
// read-only for this layer; parent pointers are set when the tree is
// built and never change.
type Node struct {
	// Kind is the syntax-node kind for inner nodes and the token kind
	// for leaves.
	Kind string

	Parent   *Node
	Children []*Node

	// Start and Width locate the node in the query text, in bytes.
	Start int
	Width int

	// Text is the token lexeme; empty for inner nodes.
	Text string

	// Symbol is the resolved symbol, if semantic analysis bound one to
	// this node.
	Symbol *symbols.Symbol

	token bool
}

// NewToken creates a leaf token node.
func NewToken(kind string, start int, text string) *Node {
	return &Node{Kind: kind, Start: start, Width: len(text), Text: text, token: true}
}

// NewNode creates an inner node spanning its children and wires their
// parent pointers.
func NewNode(kind string, children ...*Node) *Node {
	n := &Node{Kind: kind, Children: children}
	for i, c := range children {
		c.Parent = n
		if i == 0 {
			n.Start = c.Start
		}
		if end := c.End(); end > n.Start+n.Width {
			n.Width = end - n.Start
		}
	}
	return n
}

// IsToken reports whether the node is a leaf token.
func (n *Node) IsToken() bool {
	return n.token
}

// End returns the exclusive end offset of the node.
func (n *Node) End() int {
	return n.Start + n.Width
}

// Contains reports whether the byte offset lies within the node's span.
func (n *Node) Contains(offset int) bool {
	return offset >= n.Start && offset < n.End()
}

// WalkTokens visits every leaf token in depth-first, left-to-right
// order.
func (n *Node) WalkTokens(visit func(*Node)) {
	if n == nil {
		return
	}
	if n.token {
		visit(n)
		return
	}
	for _, c := range n.Children {
		c.WalkTokens(visit)
	}
}
