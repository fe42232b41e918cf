package classify

// queryOperatorKeywords is the fixed vocabulary of query-pipeline
// keywords. An unresolved identifier or keyword token whose lowercase
// text appears here classifies as QueryOperator.
var queryOperatorKeywords = map[string]bool{
	"where":           true,
	"project":         true,
	"extend":          true,
	"summarize":       true,
	"join":            true,
	"order":           true,
	"sort":            true,
	"take":            true,
	"limit":           true,
	"top":             true,
	"count":           true,
	"distinct":        true,
	"union":           true,
	"render":          true,
	"parse":           true,
	"mv-expand":       true,
	"mv-apply":        true,
	"make-series":     true,
	"lookup":          true,
	"evaluate":        true,
	"facet":           true,
	"sample":          true,
	"sample-distinct": true,
	"reduce":          true,
	"serialize":       true,
	"invoke":          true,
	"fork":            true,
	"partition":       true,
	"find":            true,
	"search":          true,
	"getschema":       true,
	"as":              true,
	"by":              true,
	"on":              true,
	"let":             true,
	"set":             true,
	"alias":           true,
	"declare":         true,
	"pattern":         true,
	"restrict":        true,
	"access":          true,
}
