// Package schema turns a portable schema description into the symbol
// universe the analyzer expects.
package schema

import "strings"

// typeAliases maps lowercase type spellings to the canonical scalar
// vocabulary. Covers the query language's native names plus common boxed
// and managed numeric aliases.
var typeAliases = map[string]string{
	"string": "string",
	"char":   "string",

	"long":   "long",
	"int64":  "long",
	"uint64": "long",
	"ulong":  "long",
	"uint":   "long",

	"int":    "int",
	"int32":  "int",
	"uint32": "int",
	"short":  "int",
	"int16":  "int",
	"ushort": "int",
	"uint16": "int",
	"byte":   "int",
	"uint8":  "int",
	"sbyte":  "int",
	"int8":   "int",

	"real":   "real",
	"double": "real",
	"float":  "real",
	"single": "real",

	"bool":    "bool",
	"boolean": "bool",

	"datetime": "datetime",
	"date":     "datetime",

	"timespan": "timespan",
	"time":     "timespan",

	"guid":     "guid",
	"uuid":     "guid",
	"uniqueid": "guid",

	"decimal": "decimal",
	"dynamic": "dynamic",
	"object":  "dynamic",
	"json":    "dynamic",
}

// NormalizeType maps a loose type spelling to the canonical scalar kind.
// Empty input means string (the deliberate default for column and
// parameter types); unrecognized input degrades to dynamic rather than
// rejecting the schema.
func NormalizeType(dataType string) string {
	name := strings.ToLower(strings.TrimSpace(dataType))
	if name == "" {
		return "string"
	}
	name = strings.TrimPrefix(name, "system.")
	if canonical, ok := typeAliases[name]; ok {
		return canonical
	}
	return "dynamic"
}
