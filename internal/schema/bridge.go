package schema

import (
	"strings"

	"github.com/kqlkit/kql-language-tools/internal/symbols"
	"github.com/kqlkit/kql-language-tools/pkg/kql"
)

// defaultDatabaseName is used when the schema omits a database name.
const defaultDatabaseName = "db"

// BuildGlobals composes a symbol universe from a schema description:
// one table symbol per table, one function symbol per function, all owned
// by a single database symbol merged over the default built-in set.
//
// The function is pure: it allocates a fresh universe per call and never
// mutates the shared default state. Duplicate names are passed through
// untouched; the analyzer owns duplicate handling.
func BuildGlobals(s *kql.Schema) *symbols.GlobalState {
	if s == nil {
		return symbols.Default()
	}

	members := make([]*symbols.Symbol, 0, len(s.Tables)+len(s.Functions))
	for i := range s.Tables {
		members = append(members, tableSymbol(&s.Tables[i]))
	}
	for i := range s.Functions {
		members = append(members, functionSymbol(&s.Functions[i]))
	}

	name := s.Database
	if name == "" {
		name = defaultDatabaseName
	}

	return symbols.Default().WithDatabase(symbols.NewDatabase(name, members))
}

// tableSymbol builds a table symbol whose signature is the ordered
// comma-joined "name: type" pairs, the row-shape declaration form the
// analyzer's constructors accept.
func tableSymbol(t *kql.Table) *symbols.Symbol {
	parts := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		parts[i] = c.Name + ": " + NormalizeType(c.DataType)
	}
	return symbols.NewTable(t.Name, strings.Join(parts, ", "))
}

// functionSymbol builds a function symbol with normalized parameter and
// return types. The body is carried on the symbol but not type-checked
// or inlined.
func functionSymbol(f *kql.Function) *symbols.Symbol {
	params := make([]symbols.Parameter, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = symbols.Parameter{Name: p.Name, Type: NormalizeType(p.DataType)}
	}

	returnType := f.ReturnType
	if returnType == "" {
		returnType = "dynamic"
	} else {
		returnType = NormalizeType(returnType)
	}

	sym := symbols.NewFunction(f.Name, params, returnType)
	sym.Body = f.Body
	return sym
}
