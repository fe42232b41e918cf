package kql

// Schema describes the database entities the analyzer should be aware of
// during semantic validation and completion. The JSON shape is the wire
// format accepted by the transport boundary: snake_case field names,
// optional fields omitted.
type Schema struct {
	// Database name (optional). Defaults to "db" when empty.
	Database string `json:"database,omitempty"`

	// Tables in the schema.
	Tables []Table `json:"tables,omitempty"`

	// User-defined functions.
	Functions []Function `json:"functions,omitempty"`
}

// IsEmpty reports whether the schema declares no tables and no functions.
func (s *Schema) IsEmpty() bool {
	return len(s.Tables) == 0 && len(s.Functions) == 0
}

// Table describes one table and its columns.
type Table struct {
	Name        string   `json:"name"`
	Columns     []Column `json:"columns,omitempty"`
	Description string   `json:"description,omitempty"`
}

// NewTable creates a table description with the given name.
func NewTable(name string) Table {
	return Table{Name: name}
}

// WithColumn appends a column with the given name and data type.
func (t Table) WithColumn(name, dataType string) Table {
	t.Columns = append(t.Columns, Column{Name: name, DataType: dataType})
	return t
}

// Column describes one table column.
type Column struct {
	Name string `json:"name"`

	// DataType is a loose type spelling (native, boxed, or unknown).
	// It is normalized to the canonical scalar vocabulary by the schema
	// bridge; empty means string.
	DataType    string `json:"data_type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Function describes one user-defined function.
type Function struct {
	Name       string      `json:"name"`
	Parameters []Parameter `json:"parameters,omitempty"`

	// ReturnType defaults to the dynamic/untyped kind when empty.
	ReturnType string `json:"return_type"`

	// Body is accepted but not type-checked or inlined. Carried for
	// forward compatibility only.
	Body        string `json:"body,omitempty"`
	Description string `json:"description,omitempty"`
}

// NewFunction creates a function description with the given name and
// return type.
func NewFunction(name, returnType string) Function {
	return Function{Name: name, ReturnType: returnType}
}

// WithParameter appends a parameter with the given name and data type.
func (f Function) WithParameter(name, dataType string) Function {
	f.Parameters = append(f.Parameters, Parameter{Name: name, DataType: dataType})
	return f
}

// Parameter describes one function parameter.
type Parameter struct {
	Name         string `json:"name"`
	DataType     string `json:"data_type,omitempty"`
	DefaultValue string `json:"default_value,omitempty"`
}
