package schema

import (
	"testing"

	"github.com/kqlkit/kql-language-tools/internal/symbols"
	"github.com/kqlkit/kql-language-tools/pkg/kql"
)

func TestBuildGlobals_NilSchema(t *testing.T) {
	globals := BuildGlobals(nil)
	if globals.Database() != nil {
		t.Error("nil schema should yield the default universe with no overlay")
	}
}

func TestBuildGlobals_TableSignature(t *testing.T) {
	schema := &kql.Schema{
		Tables: []kql.Table{
			kql.NewTable("SecurityEvent").
				WithColumn("TimeGenerated", "datetime").
				WithColumn("Account", "").
				WithColumn("EventID", "Int64"),
		},
	}

	globals := BuildGlobals(schema)
	db := globals.Database()
	if db == nil {
		t.Fatal("expected an overlay database")
	}
	if db.Name != "db" {
		t.Errorf("expected default database name 'db', got %q", db.Name)
	}
	if len(db.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(db.Members))
	}

	table := db.Members[0]
	if table.Kind != symbols.KindTable {
		t.Fatalf("expected table symbol, got %v", table.Kind)
	}
	want := "TimeGenerated: datetime, Account: string, EventID: long"
	if table.Signature != want {
		t.Errorf("expected signature %q, got %q", want, table.Signature)
	}
}

func TestBuildGlobals_DatabaseName(t *testing.T) {
	globals := BuildGlobals(&kql.Schema{Database: "SecurityDB"})
	if globals.Database().Name != "SecurityDB" {
		t.Errorf("expected database name 'SecurityDB', got %q", globals.Database().Name)
	}
}

func TestBuildGlobals_Function(t *testing.T) {
	schema := &kql.Schema{
		Functions: []kql.Function{
			{
				Name: "RecentEvents",
				Parameters: []kql.Parameter{
					{Name: "lookback", DataType: "timespan"},
					{Name: "account", DataType: ""},
				},
				ReturnType: "Int64",
				Body:       "SecurityEvent | where TimeGenerated > ago(lookback) | count",
			},
			{Name: "Untyped"},
		},
	}

	globals := BuildGlobals(schema)
	members := globals.Database().Members
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}

	fn := members[0]
	if fn.Kind != symbols.KindFunction {
		t.Fatalf("expected function symbol, got %v", fn.Kind)
	}
	if fn.ReturnType != "long" {
		t.Errorf("expected normalized return type 'long', got %q", fn.ReturnType)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fn.Parameters))
	}
	if fn.Parameters[0].Type != "timespan" {
		t.Errorf("expected parameter type 'timespan', got %q", fn.Parameters[0].Type)
	}
	if fn.Parameters[1].Type != "string" {
		t.Errorf("expected defaulted parameter type 'string', got %q", fn.Parameters[1].Type)
	}
	// The body is carried but never type-checked or inlined.
	if fn.Body == "" {
		t.Error("function body should be carried on the symbol")
	}

	// Missing return type defaults to the untyped marker.
	if members[1].ReturnType != "dynamic" {
		t.Errorf("expected default return type 'dynamic', got %q", members[1].ReturnType)
	}
}

func TestBuildGlobals_Pure(t *testing.T) {
	schema := &kql.Schema{Tables: []kql.Table{kql.NewTable("T").WithColumn("c", "string")}}

	a := BuildGlobals(schema)
	b := BuildGlobals(schema)
	if a == b {
		t.Error("each call must allocate a fresh universe")
	}

	// The shared default state must not see the overlay.
	if symbols.Default().Resolve("T") != nil {
		t.Error("default universe polluted by schema build")
	}
	if a.Resolve("T") == nil {
		t.Error("overlay table not resolvable")
	}
}

func TestBuildGlobals_BuiltInsRemainVisible(t *testing.T) {
	globals := BuildGlobals(&kql.Schema{Tables: []kql.Table{kql.NewTable("T")}})

	if globals.Resolve("ago") == nil {
		t.Error("built-in function hidden by overlay")
	}
	if !globals.IsAggregate("count") {
		t.Error("built-in aggregate registration lost")
	}
}
