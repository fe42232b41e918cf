// Package symbols models the symbol universe visible to the analyzer
// during analysis of one query: a read-only base of built-ins plus an
// optional per-call overlay derived from a user schema.
package symbols

import "strings"

// Kind discriminates the closed set of symbol variants. Exhaustive
// switches over Kind are the intended way to consume symbols.
type Kind int

// Symbol kinds.
const (
	KindNone Kind = iota
	KindTable
	KindColumn
	KindFunction
	KindVariable
	KindParameter
	KindDatabase
	KindCluster
	KindScalarType
	KindOther
)

// String returns the kind name used on the analyzer wire format.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindColumn:
		return "column"
	case KindFunction:
		return "function"
	case KindVariable:
		return "variable"
	case KindParameter:
		return "parameter"
	case KindDatabase:
		return "database"
	case KindCluster:
		return "cluster"
	case KindScalarType:
		return "scalartype"
	case KindOther:
		return "other"
	default:
		return "none"
	}
}

// ParseKind maps a wire-format kind name back to a Kind. Unknown names
// map to KindOther so a resolved-but-unrecognized symbol still counts as
// resolved.
func ParseKind(s string) Kind {
	switch strings.ToLower(s) {
	case "table":
		return KindTable
	case "column":
		return KindColumn
	case "function":
		return KindFunction
	case "variable":
		return KindVariable
	case "parameter":
		return KindParameter
	case "database":
		return KindDatabase
	case "cluster":
		return KindCluster
	case "scalartype":
		return KindScalarType
	case "", "none":
		return KindNone
	default:
		return KindOther
	}
}

// Parameter is one typed function parameter.
type Parameter struct {
	Name string
	Type string
}

// Symbol is one named entity in the universe. Fields beyond Kind and
// Name are populated per variant: Signature for tables, Parameters /
// ReturnType / Body for functions, Members for databases.
type Symbol struct {
	Kind Kind
	Name string

	// Signature is the inline row-shape declaration for table symbols:
	// ordered "name: type" pairs joined by ", ".
	Signature string

	// Function fields. Body is carried but never type-checked or
	// inlined.
	Parameters []Parameter
	ReturnType string
	Body       string

	// Members holds the tables and functions owned by a database symbol.
	Members []*Symbol
}

// NewTable creates a table symbol with the given column signature.
func NewTable(name, signature string) *Symbol {
	return &Symbol{Kind: KindTable, Name: name, Signature: signature}
}

// NewFunction creates a function symbol.
func NewFunction(name string, params []Parameter, returnType string) *Symbol {
	return &Symbol{Kind: KindFunction, Name: name, Parameters: params, ReturnType: returnType}
}

// NewDatabase creates a database symbol owning the given members.
func NewDatabase(name string, members []*Symbol) *Symbol {
	return &Symbol{Kind: KindDatabase, Name: name, Members: members}
}
