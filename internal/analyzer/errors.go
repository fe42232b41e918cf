package analyzer

import "fmt"

// RuntimeNotFoundError occurs when no analyzer runtime is found on the
// discovery path.
type RuntimeNotFoundError struct {
	Searched []string
}

func (e *RuntimeNotFoundError) Error() string {
	return fmt.Sprintf("analyzer runtime not found; searched: %v (set %s to specify a location)",
		e.Searched, PathEnvVar)
}

// CompilationError occurs when the analyzer module fails to compile.
type CompilationError struct {
	Path string
	Err  error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("failed to compile analyzer module '%s': %v", e.Path, e.Err)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// InstantiationError occurs when the analyzer module fails to
// instantiate.
type InstantiationError struct {
	Path string
	Err  error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("failed to instantiate analyzer module '%s': %v", e.Path, e.Err)
}

func (e *InstantiationError) Unwrap() error {
	return e.Err
}

// ExportNotFoundError occurs when a required guest export is missing.
type ExportNotFoundError struct {
	Export string
}

func (e *ExportNotFoundError) Error() string {
	return fmt.Sprintf("export '%s' not found in analyzer module", e.Export)
}

// MemoryAccessError occurs when a guest memory operation fails.
type MemoryAccessError struct {
	Operation string
	Address   uint32
	Length    uint32
}

func (e *MemoryAccessError) Error() string {
	return fmt.Sprintf("analyzer memory access failed (op=%s, addr=%d, len=%d)",
		e.Operation, e.Address, e.Length)
}

// WireDecodeError occurs when the analyzer's response cannot be decoded.
type WireDecodeError struct {
	Op  string
	Err error
}

func (e *WireDecodeError) Error() string {
	return fmt.Sprintf("failed to decode analyzer response for '%s': %v", e.Op, e.Err)
}

func (e *WireDecodeError) Unwrap() error {
	return e.Err
}

// CapabilityError occurs when an operation requires a capability the
// loaded analyzer does not declare.
type CapabilityError struct {
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("loaded analyzer does not support '%s'", e.Capability)
}

// ManifestError occurs when the analyzer manifest is missing or invalid.
type ManifestError struct {
	Path    string
	Message string
	Err     error
}

func (e *ManifestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid analyzer manifest at '%s': %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("invalid analyzer manifest at '%s': %s", e.Path, e.Message)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}
