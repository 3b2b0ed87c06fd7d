package frame

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// addressLen is the fixed on-wire size of one address field entry.
	addressLen = 7
	// callsignLen is the maximum callsign length, space padded on the wire.
	callsignLen = 6
	// maxSSID is the largest secondary station identifier.
	maxSSID = 15
)

// Address is a station identifier: a callsign of up to six uppercase
// alphanumeric characters plus a secondary station identifier (SSID)
// from 0 to 15.
//
// Addresses are used as frame destination and source, and as entries
// in the digipeater route. Repeated is meaningful only for route
// entries, where it records that the digipeater has already relayed
// the frame.
type Address struct {
	Callsign string
	SSID     uint8
	Repeated bool
}

// ParseAddress parses a textual callsign of the form "CALLSIGN" or
// "CALLSIGN-SSID", e.g. "VK7NTK-2". The callsign is upper-cased.
// It returns a *ParseError if the callsign is empty, too long,
// contains characters outside A-Z0-9, or the SSID is not a number
// from 0 to 15.
func ParseAddress(s string) (Address, error) {
	callsign, ssidPart, hasSSID := strings.Cut(s, "-")
	callsign = strings.ToUpper(callsign)
	if callsign == "" {
		return Address{}, &ParseError{Text: s, Reason: "empty callsign"}
	}
	if len(callsign) > callsignLen {
		return Address{}, &ParseError{Text: s, Reason: "callsign longer than 6 characters"}
	}
	for i := 0; i < len(callsign); i++ {
		if !validCallsignChar(callsign[i]) {
			return Address{}, &ParseError{
				Text:   s,
				Reason: fmt.Sprintf("callsign character %q not in A-Z0-9", callsign[i]),
			}
		}
	}
	var ssid uint8
	if hasSSID {
		n, err := strconv.ParseUint(ssidPart, 10, 8)
		if err != nil || n > maxSSID {
			return Address{}, &ParseError{Text: s, Reason: "SSID must be a number from 0 to 15"}
		}
		ssid = uint8(n)
	}
	return Address{Callsign: callsign, SSID: ssid}, nil
}

// MustParseAddress is like ParseAddress but panics on error. It is
// intended for addresses known valid at compile time.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// DecodeAddress decodes the 7 octet wire form of a single address
// field entry. The top bit of the SSID octet is reported through
// Repeated; the extension bit (bit 0 of the SSID octet) is a framing
// concern handled by Decode and is ignored here.
func DecodeAddress(b []byte) (Address, error) {
	a, _, err := decodeAddressOctets(b)
	return a, err
}

// decodeAddressOctets decodes one address entry, additionally
// returning whether the extension bit marks this as the final entry
// of the address block.
func decodeAddressOctets(b []byte) (a Address, last bool, err error) {
	if len(b) < addressLen {
		return Address{}, false, decodeErrorf("address field requires 7 octets, have %d", len(b))
	}
	callsign := make([]byte, 0, callsignLen)
	for _, c := range b[:callsignLen] {
		callsign = append(callsign, c>>1)
	}
	a.Callsign = strings.TrimRight(string(callsign), " ")
	ssid := b[callsignLen]
	a.SSID = ssid >> 1 & 0x0f
	a.Repeated = ssid&0x80 != 0
	return a, ssid&0x01 != 0, nil
}

// Bytes encodes the address to its 7 octet wire form with the
// extension bit clear. The callsign is upper-cased and space padded
// to 6 characters.
func (a Address) Bytes() ([]byte, error) {
	return a.encodeOctets(false)
}

func (a Address) encodeOctets(last bool) ([]byte, error) {
	callsign := strings.ToUpper(a.Callsign)
	if callsign == "" || len(callsign) > callsignLen {
		return nil, encodeErrorf("callsign %q must be 1 to 6 characters", a.Callsign)
	}
	if a.SSID > maxSSID {
		return nil, encodeErrorf("SSID %d out of range 0-15", a.SSID)
	}
	b := make([]byte, addressLen)
	for i := 0; i < callsignLen; i++ {
		c := byte(' ')
		if i < len(callsign) {
			c = callsign[i]
			if !validCallsignChar(c) {
				return nil, encodeErrorf("callsign character %q not in A-Z0-9", c)
			}
		}
		b[i] = c << 1
	}
	// Reserved bits 5-6 are transmitted as ones per AX.25 v2.0.
	b[callsignLen] = 0x60 | a.SSID<<1
	if a.Repeated {
		b[callsignLen] |= 0x80
	}
	if last {
		b[callsignLen] |= 0x01
	}
	return b, nil
}

// String renders the address as "CALLSIGN-SSID", omitting the suffix
// when the SSID is zero.
func (a Address) String() string {
	if a.SSID == 0 {
		return a.Callsign
	}
	return fmt.Sprintf("%s-%d", a.Callsign, a.SSID)
}

func validCallsignChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
