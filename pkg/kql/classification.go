package kql

// ClassificationKind tags a span of query text for syntax highlighting.
// The set is closed; consumers can rely on never seeing other values.
type ClassificationKind string

// Classification kinds.
const (
	ClassificationPlainText         ClassificationKind = "PlainText"
	ClassificationComment           ClassificationKind = "Comment"
	ClassificationPunctuation       ClassificationKind = "Punctuation"
	ClassificationDirective         ClassificationKind = "Directive"
	ClassificationLiteral           ClassificationKind = "Literal"
	ClassificationStringLiteral     ClassificationKind = "StringLiteral"
	ClassificationType              ClassificationKind = "Type"
	ClassificationIdentifier        ClassificationKind = "Identifier"
	ClassificationColumn            ClassificationKind = "Column"
	ClassificationTable             ClassificationKind = "Table"
	ClassificationDatabase          ClassificationKind = "Database"
	ClassificationCluster           ClassificationKind = "Cluster"
	ClassificationScalarFunction    ClassificationKind = "ScalarFunction"
	ClassificationAggregateFunction ClassificationKind = "AggregateFunction"
	ClassificationKeyword           ClassificationKind = "Keyword"
	ClassificationOperator          ClassificationKind = "Operator"
	ClassificationVariable          ClassificationKind = "Variable"
	ClassificationParameter         ClassificationKind = "Parameter"
	ClassificationQueryOperator     ClassificationKind = "QueryOperator"
	ClassificationScalarOperator    ClassificationKind = "ScalarOperator"
)

// ClassifiedSpan describes how one token should be rendered.
type ClassifiedSpan struct {
	// Start is a byte offset into the query text.
	Start int `json:"start"`

	// Length is the span width in bytes; never zero.
	Length int `json:"length"`

	Kind ClassificationKind `json:"kind"`
}

// ClassificationResult is the ordered, non-overlapping span list for one
// query, in left-to-right token order.
type ClassificationResult struct {
	Spans []ClassifiedSpan `json:"spans"`
}
