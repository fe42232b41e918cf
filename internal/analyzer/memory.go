package analyzer

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

// guestMemory provides bounds-checked access to the analyzer module's
// linear memory. The guest has its own isolated memory space; every read
// and write goes through wazero's checked accessors so a misbehaving
// module cannot corrupt host state.
type guestMemory struct {
	mod   api.Module
	alloc api.Function
}

// writeBytes copies data into guest memory, allocating through the
// guest's kql_alloc export, and returns the guest address.
func (m *guestMemory) writeBytes(ctx context.Context, data []byte) (uint32, error) {
	results, err := m.alloc.Call(ctx, uint64(len(data)))
	if err != nil {
		return 0, err
	}
	ptr := uint32(results[0])

	if !m.mod.Memory().Write(ptr, data) {
		return 0, &MemoryAccessError{Operation: "write", Address: ptr, Length: uint32(len(data))}
	}
	return ptr, nil
}

// readBytes copies length bytes out of guest memory.
func (m *guestMemory) readBytes(ptr, length uint32) ([]byte, error) {
	buf, ok := m.mod.Memory().Read(ptr, length)
	if !ok {
		return nil, &MemoryAccessError{Operation: "read", Address: ptr, Length: length}
	}
	// Copy out: the wazero view aliases guest memory, which the next
	// guest call may reuse.
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}
