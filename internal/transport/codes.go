package transport

// Return codes shared by every data-producing entry point. A positive
// value is the number of bytes written to the output buffer.
const (
	// CodeEmpty signals success with an empty or trivial result;
	// nothing is written.
	CodeEmpty = 0

	// CodeBufferTooSmall signals the serialized result does not fit the
	// caller's buffer. Nothing is written; the identical call succeeds
	// with a larger buffer.
	CodeBufferTooSmall = -1

	// CodeParseError signals a malformed input (e.g. schema JSON).
	CodeParseError = -2

	// CodeInternalError signals an unexpected internal failure; detail
	// is available through GetLastError.
	CodeInternalError = -3
)
