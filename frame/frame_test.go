package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ui(src, dest Address, cr CommandResponse, info string) *Frame {
	return &Frame{
		Source:            src,
		Destination:       dest,
		CommandOrResponse: cr,
		Content: &UnnumberedInformation{
			PID:  PIDNone,
			Info: []byte(info),
		},
	}
}

// The reference round trip: a UI frame from VK7NTK-4 to VK7NTK-5,
// no route, command, PID None, poll/final false. Every field must
// survive encode then decode exactly.
func TestUIFrameRoundTrip(t *testing.T) {
	f := ui(
		Address{Callsign: "VK7NTK", SSID: 4},
		Address{Callsign: "VK7NTK", SSID: 5},
		Command,
		"This is a test message",
	)
	raw, err := f.Bytes()
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestUIFrameWireFormat(t *testing.T) {
	f := ui(
		Address{Callsign: "VK7NTK", SSID: 4},
		Address{Callsign: "VK7NTK", SSID: 5},
		Command,
		"hi",
	)
	raw, err := f.Bytes()
	require.NoError(t, err)

	call := []byte{'V' << 1, 'K' << 1, '7' << 1, 'N' << 1, 'T' << 1, 'K' << 1}
	want := append([]byte{}, call...)
	want = append(want, 0x80|0x60|5<<1) // dest SSID octet: command bit set
	want = append(want, call...)
	want = append(want, 0x60|4<<1|0x01) // source SSID octet: extension bit ends the block
	want = append(want, 0x03, 0xF0)     // UI control, PID None
	want = append(want, 'h', 'i')
	assert.Equal(t, want, raw)
}

func TestFrameRoundTripVariants(t *testing.T) {
	src := Address{Callsign: "VK7NTK", SSID: 1}
	dest := Address{Callsign: "APRS"}

	for _, tc := range []struct {
		name  string
		frame *Frame
	}{
		{
			name: "information",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: Command,
				Content: &Information{
					PID: PIDNone, Info: []byte("numbered data"),
					SendSequence: 5, ReceiveSequence: 2, PollOrFinal: true,
				},
			},
		},
		{
			name: "information empty info",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: Response,
				Content:           &Information{PID: PIDUncompressedTCPIP, SendSequence: 7, ReceiveSequence: 7},
			},
		},
		{
			name: "receive ready",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: Command,
				Content:           &Supervisory{Type: ReceiveReady, ReceiveSequence: 3, PollOrFinal: true},
			},
		},
		{
			name: "receive not ready",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: Response,
				Content:           &Supervisory{Type: ReceiveNotReady, ReceiveSequence: 0},
			},
		},
		{
			name: "reject",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: Response,
				Content:           &Supervisory{Type: Reject, ReceiveSequence: 6, PollOrFinal: true},
			},
		},
		{
			name: "sabm",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: Command,
				Content:           &Unnumbered{Modifier: ModifierSABM, PollOrFinal: true},
			},
		},
		{
			name: "disconnect",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: Command,
				Content:           &Unnumbered{Modifier: ModifierDISC},
			},
		},
		{
			name: "unnumbered acknowledge",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: Response,
				Content:           &Unnumbered{Modifier: ModifierUA, PollOrFinal: true},
			},
		},
		{
			name: "disconnected mode",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: Response,
				Content:           &Unnumbered{Modifier: ModifierDM},
			},
		},
		{
			name: "frame reject",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: Response,
				Content:           &Unnumbered{Modifier: ModifierFRMR},
			},
		},
		{
			name: "legacy command response bits",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: LegacyCommandResponse,
				Content:           &UnnumberedInformation{PID: PIDNone, Info: []byte("v1 station")},
			},
		},
		{
			name: "digipeater route",
			frame: &Frame{
				Source: src, Destination: dest,
				Route: []Address{
					{Callsign: "WIDE1", SSID: 1, Repeated: true},
					{Callsign: "WIDE2", SSID: 2},
				},
				CommandOrResponse: Command,
				Content:           &UnnumberedInformation{PID: PIDNone, Info: []byte("via digis")},
			},
		},
		{
			name: "full route",
			frame: &Frame{
				Source: src, Destination: dest,
				Route: []Address{
					{Callsign: "D1"}, {Callsign: "D2"}, {Callsign: "D3"}, {Callsign: "D4"},
					{Callsign: "D5"}, {Callsign: "D6"}, {Callsign: "D7"}, {Callsign: "D8"},
				},
				CommandOrResponse: Command,
				Content:           &UnnumberedInformation{PID: PIDNone, Info: []byte("max digis")},
			},
		},
		{
			name: "binary info with unknown pid",
			frame: &Frame{
				Source: src, Destination: dest,
				CommandOrResponse: Command,
				Content: &UnnumberedInformation{
					PID:  ProtocolIdentifier(0x42),
					Info: []byte{0x00, 0xC0, 0xDB, 0xFF},
				},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := tc.frame.Bytes()
			require.NoError(t, err)

			got, err := Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.frame, got)

			// encode(decode(b)) == b for everything we produce
			raw2, err := got.Bytes()
			require.NoError(t, err)
			assert.Equal(t, raw, raw2)
		})
	}
}

func TestDecodeTooShort(t *testing.T) {
	var decodeErr *DecodeError
	for n := 0; n < 14; n++ {
		_, err := Decode(make([]byte, n))
		assert.ErrorAs(t, err, &decodeErr, "length %d", n)
	}
}

func TestDecodeMalformed(t *testing.T) {
	src := Address{Callsign: "VK7NTK", SSID: 1}
	dest := Address{Callsign: "APRS"}

	valid, err := ui(src, dest, Command, "x").Bytes()
	require.NoError(t, err)

	for _, tc := range []struct {
		name   string
		mangle func([]byte) []byte
		reason string
	}{
		{
			name: "missing control octet",
			mangle: func(b []byte) []byte {
				return b[:14]
			},
			reason: "missing control",
		},
		{
			name: "undefined supervisory type",
			mangle: func(b []byte) []byte {
				b[14] = 0x0D // S frame with type bits 11
				return b[:15]
			},
			reason: "undefined supervisory",
		},
		{
			name: "undefined unnumbered modifier",
			mangle: func(b []byte) []byte {
				b[14] = 0xAF
				return b[:15]
			},
			reason: "undefined unnumbered",
		},
		{
			name: "ui missing pid",
			mangle: func(b []byte) []byte {
				return b[:15]
			},
			reason: "missing PID",
		},
		{
			name: "extension bit on destination",
			mangle: func(b []byte) []byte {
				b[6] |= 0x01
				return b
			},
			reason: "before source",
		},
		{
			name: "unterminated address block",
			mangle: func(b []byte) []byte {
				b[13] &^= 0x01 // clear the source extension bit
				return b
			},
			reason: "truncated digipeater",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := append([]byte{}, valid...)
			_, err := Decode(tc.mangle(b))
			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Contains(t, err.Error(), tc.reason)
		})
	}
}

func TestDecodeRouteOverflow(t *testing.T) {
	src := Address{Callsign: "A"}
	dest := Address{Callsign: "B"}

	// An address block that never terminates within eight digipeaters.
	raw := make([]byte, 0, 16*7+3)
	b, _ := dest.Bytes()
	raw = append(raw, b...)
	b, _ = src.Bytes()
	raw = append(raw, b...)
	for i := 0; i < 9; i++ {
		b, _ = Address{Callsign: "DIGI", SSID: uint8(i)}.Bytes()
		raw = append(raw, b...)
	}
	raw = append(raw, 0x03, 0xF0)

	_, err := Decode(raw)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, err.Error(), "8 digipeaters")
}

func TestEncodeRouteOverflow(t *testing.T) {
	f := ui(Address{Callsign: "A"}, Address{Callsign: "B"}, Command, "hi")
	for i := 0; i < 9; i++ {
		f.Route = append(f.Route, Address{Callsign: "DIGI", SSID: uint8(i % 16)})
	}
	_, err := f.Bytes()
	var encodeErr *EncodeError
	require.ErrorAs(t, err, &encodeErr)
	assert.Contains(t, err.Error(), "exceeds capacity")
}

func TestCommandResponseBits(t *testing.T) {
	src := Address{Callsign: "SRC"}
	dest := Address{Callsign: "DEST"}

	for _, tc := range []struct {
		name            string
		destBit, srcBit bool
		want            CommandResponse
	}{
		{name: "command", destBit: true, want: Command},
		{name: "response", srcBit: true, want: Response},
		{name: "both clear", want: LegacyCommandResponse},
		{name: "both set", destBit: true, srcBit: true, want: LegacyCommandResponse},
	} {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := ui(src, dest, LegacyCommandResponse, "x").Bytes()
			require.NoError(t, err)
			if tc.destBit {
				raw[6] |= 0x80
			}
			if tc.srcBit {
				raw[13] |= 0x80
			}
			got, err := Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.CommandOrResponse)
			// the indicator bits must not leak into the addresses
			assert.False(t, got.Destination.Repeated)
			assert.False(t, got.Source.Repeated)
		})
	}
}

func TestInfoString(t *testing.T) {
	f := ui(Address{Callsign: "A"}, Address{Callsign: "B"}, Command, "hello radio")
	assert.Equal(t, "hello radio", f.InfoString())

	f.Content = &Supervisory{Type: ReceiveReady}
	assert.Equal(t, "", f.InfoString())
}

func TestFrameString(t *testing.T) {
	f := ui(
		Address{Callsign: "VK7NTK", SSID: 4},
		Address{Callsign: "VK7NTK", SSID: 5},
		Command,
		"This is a test message",
	)
	f.Route = []Address{{Callsign: "WIDE1", SSID: 1, Repeated: true}}
	s := f.String()
	assert.Contains(t, s, "VK7NTK-4")
	assert.Contains(t, s, "VK7NTK-5")
	assert.Contains(t, s, "WIDE1-1*")
	assert.Contains(t, s, "This is a test message")
}

func TestPIDNames(t *testing.T) {
	assert.Equal(t, "X25PLP", PIDX25PLP.String())
	assert.Equal(t, "None", PIDNone.String())
	assert.Equal(t, "Unknown(0x45)", ProtocolIdentifier(0x45).String())
	assert.True(t, ProtocolIdentifier(0x10).IsLayer3())
	assert.True(t, ProtocolIdentifier(0xA5).IsLayer3())
	assert.False(t, PIDNone.IsLayer3())
}
