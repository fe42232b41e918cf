// Package client is an in-process caller over the transport bridge. It
// owns the output buffer handling: start at the default size, retry once
// with a doubled buffer on overflow, and decode the JSON payload back
// into portable types.
package client

import (
	"encoding/json"
	"fmt"

	"github.com/kqlkit/kql-language-tools/internal/transport"
	"github.com/kqlkit/kql-language-tools/pkg/kql"
)

// Buffer sizing for transport calls.
const (
	// DefaultBufferSize is the initial output buffer capacity (64KB).
	DefaultBufferSize = 64 * 1024

	// MaxBufferSize caps retry growth (4MB).
	MaxBufferSize = 4 * 1024 * 1024
)

// BufferTooSmallError occurs when a result exceeds MaxBufferSize.
type BufferTooSmallError struct {
	Available int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("output buffer too small (had %d bytes)", e.Available)
}

// CallError occurs when the bridge reports a failure code.
type CallError struct {
	Code    int
	Message string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("call failed with code %d: %s", e.Code, e.Message)
}

// Client wraps one transport bridge. Like the bridge, a Client is
// per-worker: it must not be shared across goroutines.
type Client struct {
	bridge *transport.Bridge
}

// New creates a client over a bridge. The bridge's Init must have
// succeeded already.
func New(bridge *transport.Bridge) *Client {
	return &Client{bridge: bridge}
}

// ValidateSyntax validates a query for syntax issues.
func (c *Client) ValidateSyntax(query string) (*kql.ValidationResult, error) {
	result := &kql.ValidationResult{Valid: true}
	err := c.call(func(out []byte) int {
		return c.bridge.ValidateSyntax([]byte(query), out)
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ValidateWithSchema validates a query against a schema description.
func (c *Client) ValidateWithSchema(query string, schema *kql.Schema) (*kql.ValidationResult, error) {
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}

	result := &kql.ValidationResult{Valid: true}
	err = c.call(func(out []byte) int {
		return c.bridge.ValidateWithSchema([]byte(query), schemaJSON, out)
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetClassifications returns highlighting spans for a query.
func (c *Client) GetClassifications(query string) (*kql.ClassificationResult, error) {
	result := &kql.ClassificationResult{}
	err := c.call(func(out []byte) int {
		return c.bridge.GetClassifications([]byte(query), out)
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetCompletions returns suggestions at a cursor position; schema may be
// nil.
func (c *Client) GetCompletions(query string, cursor int, schema *kql.Schema) (*kql.CompletionResult, error) {
	var schemaJSON []byte
	if schema != nil {
		encoded, err := json.Marshal(schema)
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema: %w", err)
		}
		schemaJSON = encoded
	}

	result := &kql.CompletionResult{}
	err := c.call(func(out []byte) int {
		return c.bridge.GetCompletions([]byte(query), cursor, schemaJSON, out)
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// call invokes a bridge entry point with buffer-doubling retry and
// decodes the payload into result. A zero return leaves result at its
// trivial zero value.
func (c *Client) call(invoke func(out []byte) int, result any) error {
	buf := make([]byte, DefaultBufferSize)
	code := invoke(buf)

	if code == transport.CodeBufferTooSmall {
		size := len(buf)
		for code == transport.CodeBufferTooSmall {
			size *= 2
			if size > MaxBufferSize {
				return &BufferTooSmallError{Available: len(buf)}
			}
			buf = make([]byte, size)
			code = invoke(buf)
		}
	}

	if code < 0 {
		return &CallError{Code: code, Message: c.lastError()}
	}
	if code == 0 {
		return nil
	}
	if err := json.Unmarshal(buf[:code], result); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	return nil
}

// lastError drains the bridge's pending error message, growing the
// buffer once if the message does not fit.
func (c *Client) lastError() string {
	buf := make([]byte, 1024)
	code := c.bridge.GetLastError(buf)
	if code == transport.CodeBufferTooSmall {
		buf = make([]byte, DefaultBufferSize)
		code = c.bridge.GetLastError(buf)
	}
	if code <= 0 {
		return ""
	}
	return string(buf[:code])
}
