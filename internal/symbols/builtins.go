package symbols

// scalarTypeNames is the canonical scalar-type vocabulary. Each name is
// registered as a scalar-type symbol so that type names resolve during
// analysis.
var scalarTypeNames = []string{
	"string", "long", "int", "real", "bool",
	"datetime", "timespan", "guid", "dynamic", "decimal",
}

// builtinAggregates are the built-in aggregate functions. Functions in
// this list classify as AggregateFunction when resolved.
var builtinAggregates = []string{
	"count", "countif", "dcount", "dcountif",
	"sum", "sumif", "avg", "avgif",
	"min", "minif", "max", "maxif",
	"arg_min", "arg_max", "take_any",
	"percentile", "percentiles", "stdev", "variance",
	"make_list", "make_set", "make_bag",
	"hll", "tdigest",
}

// builtinScalars are the built-in scalar functions.
var builtinScalars = []string{
	"ago", "now", "bin", "floor", "round", "abs", "exp", "log", "pow", "sqrt",
	"strcat", "strlen", "substring", "tolower", "toupper", "trim", "split",
	"replace_string", "extract", "parse_json",
	"tostring", "toint", "tolong", "todouble", "todecimal",
	"tobool", "todatetime", "totimespan", "toguid",
	"iff", "iif", "case", "coalesce",
	"isempty", "isnotempty", "isnull", "isnotnull",
	"startofday", "endofday", "datetime_add", "datetime_diff",
	"format_datetime", "rand",
}

// buildDefaultTable constructs the default built-in symbol table. Called
// exactly once; the result is shared read-only across all calls.
func buildDefaultTable() *symbolTable {
	t := newSymbolTable()

	for _, name := range scalarTypeNames {
		t.add(&Symbol{Kind: KindScalarType, Name: name})
	}
	for _, name := range builtinAggregates {
		t.add(&Symbol{Kind: KindFunction, Name: name, ReturnType: "long"})
		t.aggregates[name] = true
	}
	for _, name := range builtinScalars {
		t.add(&Symbol{Kind: KindFunction, Name: name, ReturnType: "dynamic"})
	}

	return t
}
