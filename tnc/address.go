package tnc

import (
	"fmt"
	"strconv"
	"strings"
)

// Backend tags accepted in TNC addresses.
const (
	typeTCPKiss = "tcpkiss"
	typeLinuxIf = "linuxif"
)

// TCPKissConfig describes a TNC reachable over TCP speaking the KISS
// protocol, such as a Dire Wolf instance.
type TCPKissConfig struct {
	// Host is a hostname or IP address.
	Host string
	Port uint16
}

// LinuxIfConfig describes a TNC attached as a Linux network
// interface, e.g. with kissattach.
type LinuxIfConfig struct {
	// Callsign is the hardware address of the interface, e.g.
	// "VK7NTK-2". Matching is case insensitive.
	Callsign string
}

// Address is a parsed TNC address. Exactly one backend configuration
// is set. An Address is immutable once parsed and is consumed by
// Open.
type Address struct {
	TCPKiss *TCPKissConfig
	LinuxIf *LinuxIfConfig
}

// NewTCPKissAddress builds an Address for a KISS TCP service.
func NewTCPKissAddress(config TCPKissConfig) *Address {
	return &Address{TCPKiss: &config}
}

// NewLinuxIfAddress builds an Address for a Linux network interface.
func NewLinuxIfAddress(config LinuxIfConfig) *Address {
	return &Address{LinuxIf: &config}
}

// ParseAddress parses a textual TNC address of the form
// "tnc:<type>:<params>". It returns *NoPrefixError,
// *UnknownTypeError, *ParameterCountError or *PortError describing
// the first problem found.
func ParseAddress(s string) (*Address, error) {
	if !strings.HasPrefix(s, "tnc:") {
		return nil, &NoPrefixError{Input: s}
	}
	components := strings.Split(s, ":")
	switch tncType := components[1]; tncType {
	case typeTCPKiss:
		if len(components) != 4 {
			return nil, &ParameterCountError{Type: tncType, Expected: 2, Actual: len(components) - 2}
		}
		port, err := strconv.ParseUint(components[3], 10, 16)
		if err != nil {
			return nil, &PortError{Input: components[3], Err: err}
		}
		return NewTCPKissAddress(TCPKissConfig{Host: components[2], Port: uint16(port)}), nil
	case typeLinuxIf:
		if len(components) != 3 {
			return nil, &ParameterCountError{Type: tncType, Expected: 1, Actual: len(components) - 2}
		}
		return NewLinuxIfAddress(LinuxIfConfig{Callsign: components[2]}), nil
	default:
		return nil, &UnknownTypeError{Type: tncType}
	}
}

// String renders the address back to its textual form.
func (a *Address) String() string {
	switch {
	case a.TCPKiss != nil:
		return fmt.Sprintf("tnc:%s:%s:%d", typeTCPKiss, a.TCPKiss.Host, a.TCPKiss.Port)
	case a.LinuxIf != nil:
		return fmt.Sprintf("tnc:%s:%s", typeLinuxIf, a.LinuxIf.Callsign)
	}
	return "tnc:?"
}
