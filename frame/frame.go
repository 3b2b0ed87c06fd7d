package frame

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// maxDigipeaters is the address field capacity for route entries.
	maxDigipeaters = 8
	// minFrameLen is the smallest well formed frame: destination and
	// source addresses. Anything shorter is rejected outright.
	minFrameLen = 2 * addressLen
)

// CommandResponse is the command/response indicator carried in the
// reserved bits of the destination and source address fields.
type CommandResponse uint8

const (
	// LegacyCommandResponse marks a frame whose command/response bits
	// are not set to a defined pattern, as transmitted by AX.25 v1
	// stations.
	LegacyCommandResponse CommandResponse = iota
	// Command marks a command frame (destination bit set).
	Command
	// Response marks a response frame (source bit set).
	Response
)

func (c CommandResponse) String() string {
	switch c {
	case Command:
		return "command"
	case Response:
		return "response"
	}
	return "legacy"
}

// Frame is a decoded AX.25 frame.
type Frame struct {
	Destination Address
	Source      Address
	// Route lists digipeaters in transmission order, at most 8.
	Route             []Address
	CommandOrResponse CommandResponse
	Content           FrameContent
}

// Decode parses raw as an AX.25 frame, modulo-8 control field only.
// It returns a *DecodeError when raw is shorter than 14 octets, the
// address block does not terminate within 8 digipeaters, or the
// control octet encodes an undefined type or modifier.
func Decode(raw []byte) (*Frame, error) {
	if len(raw) < minFrameLen {
		return nil, decodeErrorf("%d octets is shorter than the 14 octet minimum", len(raw))
	}

	dest, last, err := decodeAddressOctets(raw)
	if err != nil {
		return nil, err
	}
	if last {
		return nil, decodeErrorf("address block terminated before source address")
	}
	src, last, err := decodeAddressOctets(raw[addressLen:])
	if err != nil {
		return nil, err
	}

	f := &Frame{
		Destination:       dest,
		Source:            src,
		CommandOrResponse: commandResponse(dest.Repeated, src.Repeated),
	}
	// Bit 7 of the destination and source SSID octets carries the
	// command/response indicator, not a repeated flag.
	f.Destination.Repeated = false
	f.Source.Repeated = false

	offset := 2 * addressLen
	for !last {
		if len(f.Route) == maxDigipeaters {
			return nil, decodeErrorf("address block does not terminate within %d digipeaters", maxDigipeaters)
		}
		if len(raw) < offset+addressLen {
			return nil, decodeErrorf("truncated digipeater address at octet %d", offset)
		}
		var digi Address
		digi, last, err = decodeAddressOctets(raw[offset:])
		if err != nil {
			return nil, err
		}
		f.Route = append(f.Route, digi)
		offset += addressLen
	}

	if offset >= len(raw) {
		return nil, decodeErrorf("missing control octet")
	}
	control := raw[offset]
	if f.Content, err = decodeContent(control, raw[offset+1:]); err != nil {
		return nil, err
	}
	return f, nil
}

func commandResponse(destBit, srcBit bool) CommandResponse {
	switch {
	case destBit && !srcBit:
		return Command
	case !destBit && srcBit:
		return Response
	}
	return LegacyCommandResponse
}

// Bytes encodes the frame to its wire representation. It returns a
// *EncodeError when the route exceeds 8 digipeaters or an address
// cannot be encoded.
func (f *Frame) Bytes() ([]byte, error) {
	if len(f.Route) > maxDigipeaters {
		return nil, encodeErrorf("route of %d digipeaters exceeds capacity of %d", len(f.Route), maxDigipeaters)
	}
	if f.Content == nil {
		return nil, encodeErrorf("frame has no content")
	}

	destBit, srcBit := false, false
	switch f.CommandOrResponse {
	case Command:
		destBit = true
	case Response:
		srcBit = true
	}

	out := make([]byte, 0, (2+len(f.Route))*addressLen+3)
	dest := f.Destination
	dest.Repeated = destBit
	b, err := dest.encodeOctets(false)
	if err != nil {
		return nil, err
	}
	out = append(out, b...)

	src := f.Source
	src.Repeated = srcBit
	if b, err = src.encodeOctets(len(f.Route) == 0); err != nil {
		return nil, err
	}
	out = append(out, b...)

	for i, digi := range f.Route {
		if b, err = digi.encodeOctets(i == len(f.Route)-1); err != nil {
			return nil, err
		}
		out = append(out, b...)
	}

	out = append(out, f.Content.controlOctet())
	switch c := f.Content.(type) {
	case *Information:
		out = append(out, byte(c.PID))
		out = append(out, c.Info...)
	case *UnnumberedInformation:
		out = append(out, byte(c.PID))
		out = append(out, c.Info...)
	}
	return out, nil
}

// InfoString returns the information field as text, with invalid
// UTF-8 sequences replaced. It returns "" for frames that carry no
// information field.
func (f *Frame) InfoString() string {
	switch c := f.Content.(type) {
	case *Information:
		return strings.ToValidUTF8(string(c.Info), "�")
	case *UnnumberedInformation:
		return strings.ToValidUTF8(string(c.Info), "�")
	}
	return ""
}

// String renders the frame for diagnostics. This presentation is not
// part of the wire contract.
func (f *Frame) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source\t\t%s\n", f.Source)
	fmt.Fprintf(&b, "Destination\t%s\n", f.Destination)
	if len(f.Route) > 0 {
		names := make([]string, len(f.Route))
		for i, digi := range f.Route {
			names[i] = digi.String()
			if digi.Repeated {
				names[i] += "*"
			}
		}
		fmt.Fprintf(&b, "Route\t\t%s\n", strings.Join(names, " "))
	}
	switch c := f.Content.(type) {
	case *Information:
		fmt.Fprintf(&b, "Type\t\tI  N(S)=%d N(R)=%d P/F=%t\n", c.SendSequence, c.ReceiveSequence, c.PollOrFinal)
		fmt.Fprintf(&b, "Protocol\t%s\n", c.PID)
		fmt.Fprintf(&b, "Data\t\t%q", printableInfo(c.Info))
	case *UnnumberedInformation:
		fmt.Fprintf(&b, "Type\t\tUI P/F=%t\n", c.PollOrFinal)
		fmt.Fprintf(&b, "Protocol\t%s\n", c.PID)
		fmt.Fprintf(&b, "Data\t\t%q", printableInfo(c.Info))
	case *Supervisory:
		fmt.Fprintf(&b, "Type\t\t%s N(R)=%d P/F=%t", c.Type, c.ReceiveSequence, c.PollOrFinal)
	case *Unnumbered:
		fmt.Fprintf(&b, "Type\t\t%s P/F=%t", c.Modifier, c.PollOrFinal)
	default:
		b.WriteString("Type\t\t-")
	}
	return b.String()
}

// printableInfo gives a best effort text rendering of an information
// field for display.
func printableInfo(info []byte) string {
	s := strings.ToValidUTF8(string(info), "�")
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' || unicode.IsPrint(r) {
			return r
		}
		return '.'
	}, s)
}
