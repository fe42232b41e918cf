package analyzer

import (
	"encoding/json"

	"github.com/kqlkit/kql-language-tools/internal/symbols"
)

// Wire format between the host and the analyzer guest module.
//
// The guest exports:
//
//	kql_alloc(size uint32) uint32
//	kql_analyze(ptr, len uint32) uint64  // (resultPtr << 32) | resultLen
//
// The host writes a JSON request into guest memory, calls kql_analyze,
// and reads back a JSON response. Guest memory addresses are 32-bit
// offsets into the module's linear memory.

// wireRequest is the host-to-guest request envelope.
type wireRequest struct {
	// Op is one of "parse", "analyze", "complete".
	Op      string       `json:"op"`
	Query   string       `json:"query"`
	Cursor  int          `json:"cursor,omitempty"`
	Globals *wireGlobals `json:"globals,omitempty"`
}

// wireGlobals carries the overlay database of the symbol universe. The
// default built-ins are known to both sides and never travel.
type wireGlobals struct {
	Database wireDatabase `json:"database"`
}

type wireDatabase struct {
	Name      string         `json:"name"`
	Tables    []wireTable    `json:"tables,omitempty"`
	Functions []wireFunction `json:"functions,omitempty"`
}

type wireTable struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
}

type wireFunction struct {
	Name       string          `json:"name"`
	Parameters []wireParameter `json:"parameters,omitempty"`
	ReturnType string          `json:"returnType"`
	Body       string          `json:"body,omitempty"`
}

type wireParameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// wireResponse is the guest-to-host response envelope.
type wireResponse struct {
	Root        *wireNode        `json:"root,omitempty"`
	Diagnostics []wireDiagnostic `json:"diagnostics,omitempty"`
	Completion  *wireCompletion  `json:"completion,omitempty"`

	// Error carries a guest-side failure message; when set, all other
	// fields are ignored.
	Error string `json:"error,omitempty"`
}

type wireNode struct {
	Kind     string      `json:"kind"`
	Start    int         `json:"start"`
	Width    int         `json:"width"`
	Text     string      `json:"text,omitempty"`
	Symbol   *wireSymbol `json:"symbol,omitempty"`
	Children []*wireNode `json:"children,omitempty"`
}

type wireSymbol struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

type wireDiagnostic struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Code     string `json:"code,omitempty"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

type wireCompletion struct {
	EditStart int                  `json:"editStart"`
	Items     []wireCompletionItem `json:"items,omitempty"`
}

type wireCompletionItem struct {
	DisplayText string `json:"displayText"`
	MatchText   string `json:"matchText,omitempty"`
	Kind        string `json:"kind"`
}

// encodeGlobals projects a symbol universe onto the wire format. A nil
// or overlay-free universe encodes as nil.
func encodeGlobals(globals *symbols.GlobalState) *wireGlobals {
	if globals == nil || globals.Database() == nil {
		return nil
	}

	db := globals.Database()
	wg := &wireGlobals{Database: wireDatabase{Name: db.Name}}
	for _, m := range db.Members {
		switch m.Kind {
		case symbols.KindTable:
			wg.Database.Tables = append(wg.Database.Tables, wireTable{
				Name:      m.Name,
				Signature: m.Signature,
			})
		case symbols.KindFunction:
			fn := wireFunction{Name: m.Name, ReturnType: m.ReturnType, Body: m.Body}
			for _, p := range m.Parameters {
				fn.Parameters = append(fn.Parameters, wireParameter{Name: p.Name, Type: p.Type})
			}
			wg.Database.Functions = append(wg.Database.Functions, fn)
		}
	}
	return wg
}

// decodeResponse parses a guest response payload.
func decodeResponse(op string, payload []byte) (*wireResponse, error) {
	var resp wireResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, &WireDecodeError{Op: op, Err: err}
	}
	return &resp, nil
}

// decodeTree rebuilds a Node tree from its wire form, wiring parent
// pointers top-down.
func decodeTree(w *wireNode) *Node {
	if w == nil {
		return nil
	}
	n := &Node{
		Kind:  w.Kind,
		Start: w.Start,
		Width: w.Width,
		Text:  w.Text,
		token: len(w.Children) == 0,
	}
	if w.Symbol != nil {
		n.Symbol = &symbols.Symbol{
			Kind: symbols.ParseKind(w.Symbol.Kind),
			Name: w.Symbol.Name,
		}
	}
	for _, wc := range w.Children {
		c := decodeTree(wc)
		c.Parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// decodeDiagnostics converts wire diagnostics to the in-process form.
func decodeDiagnostics(ws []wireDiagnostic) []Diagnostic {
	if len(ws) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(ws))
	for i, w := range ws {
		out[i] = Diagnostic{
			Message:  w.Message,
			Severity: w.Severity,
			Code:     w.Code,
			Start:    w.Start,
			End:      w.End,
		}
	}
	return out
}
