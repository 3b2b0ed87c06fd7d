package frame

import "fmt"

// ParseError indicates that a textual callsign could not be parsed
// into an Address.
type ParseError struct {
	// Text is the input that was rejected.
	Text string
	// Reason describes why the input was rejected.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid AX.25 address %q: %s", e.Text, e.Reason)
}

// DecodeError indicates that a byte sequence is not a well formed
// AX.25 frame or address field.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "malformed AX.25 frame: " + e.Reason
}

// EncodeError indicates that a Frame or Address cannot be represented
// on the wire, such as a digipeater route beyond the address field
// capacity or a callsign containing characters outside A-Z0-9.
type EncodeError struct {
	Reason string
}

func (e *EncodeError) Error() string {
	return "cannot encode AX.25 frame: " + e.Reason
}

func decodeErrorf(format string, args ...interface{}) error {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}

func encodeErrorf(format string, args ...interface{}) error {
	return &EncodeError{Reason: fmt.Sprintf(format, args...)}
}
