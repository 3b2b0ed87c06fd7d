package tnc

import "fmt"

// NoPrefixError indicates a TNC address that does not begin with
// "tnc:".
type NoPrefixError struct {
	Input string
}

func (e *NoPrefixError) Error() string {
	return fmt.Sprintf("TNC address %q is invalid - it should begin with \"tnc:\"", e.Input)
}

// UnknownTypeError indicates an unrecognized backend tag in a TNC
// address.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown TNC type %q", e.Type)
}

// ParameterCountError indicates a TNC address with the wrong number
// of parameter segments for its backend.
type ParameterCountError struct {
	Type             string
	Expected, Actual int
}

func (e *ParameterCountError) Error() string {
	return fmt.Sprintf("TNC type %q expects %d parameters to follow but there are %d",
		e.Type, e.Expected, e.Actual)
}

// PortError indicates an unparsable port number in a tcpkiss address.
type PortError struct {
	Input string
	Err   error
}

func (e *PortError) Error() string {
	return fmt.Sprintf("supplied port %q should be a number from 0 to 65535", e.Input)
}

func (e *PortError) Unwrap() error { return e.Err }

// InterfaceNotFoundError indicates that no native AX.25 network
// interface carries the requested callsign.
type InterfaceNotFoundError struct {
	Callsign string
}

func (e *InterfaceNotFoundError) Error() string {
	return fmt.Sprintf("interface with specified callsign %q does not exist", e.Callsign)
}

// OpenError wraps the backend specific cause of a failed Open.
type OpenError struct {
	Address string
	Err     error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("unable to open TNC %s: %v", e.Address, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// IOError wraps an underlying medium failure during a send or
// receive. After an IOError the handle must be reopened; a
// *frame.DecodeError, by contrast, leaves the transport usable.
type IOError struct {
	// Op is "send" or "receive".
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("unable to %s frame: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
