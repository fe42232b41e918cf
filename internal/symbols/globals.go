package symbols

import (
	"strings"
	"sync"
)

// GlobalState is the symbol universe for one analysis call: an immutable
// base of built-ins plus an optional overlay database. Name resolution
// checks the overlay first and falls back to the base.
//
// A GlobalState is never mutated after construction; WithDatabase returns
// a new value sharing the base.
type GlobalState struct {
	base     *symbolTable
	database *Symbol
}

// symbolTable is a name-indexed set of symbols. Lookup is
// case-insensitive; insertion order is preserved for deterministic
// iteration.
type symbolTable struct {
	byName  map[string]*Symbol
	ordered []*Symbol

	// aggregates holds the lowercase names of functions registered as
	// aggregates.
	aggregates map[string]bool
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		byName:     make(map[string]*Symbol),
		aggregates: make(map[string]bool),
	}
}

func (t *symbolTable) add(s *Symbol) {
	key := strings.ToLower(s.Name)
	if _, exists := t.byName[key]; !exists {
		t.ordered = append(t.ordered, s)
	}
	t.byName[key] = s
}

func (t *symbolTable) lookup(name string) *Symbol {
	return t.byName[strings.ToLower(name)]
}

var defaultOnce = sync.OnceValue(func() *GlobalState {
	return &GlobalState{base: buildDefaultTable()}
})

// Default returns the process-wide default universe: scalar types and
// built-in functions, no user database. It is immutable and safe for
// unsynchronized concurrent reads.
func Default() *GlobalState {
	return defaultOnce()
}

// WithDatabase returns a new universe that merges the given database
// symbol over the receiver's base. Built-ins remain visible; the
// database does not replace them.
func (g *GlobalState) WithDatabase(db *Symbol) *GlobalState {
	return &GlobalState{base: g.base, database: db}
}

// Database returns the overlay database symbol, or nil.
func (g *GlobalState) Database() *Symbol {
	return g.database
}

// Resolve looks up a name, overlay first, then built-ins. Returns nil if
// the name is unknown.
func (g *GlobalState) Resolve(name string) *Symbol {
	if g.database != nil {
		key := strings.ToLower(name)
		for _, m := range g.database.Members {
			if strings.ToLower(m.Name) == key {
				return m
			}
		}
	}
	return g.base.lookup(name)
}

// IsAggregate reports whether name is registered as an aggregate
// function in the built-in set. User-defined functions are never
// aggregates.
func (g *GlobalState) IsAggregate(name string) bool {
	return g.base.aggregates[strings.ToLower(name)]
}

// BuiltIns returns the built-in symbols in registration order.
func (g *GlobalState) BuiltIns() []*Symbol {
	return g.base.ordered
}
