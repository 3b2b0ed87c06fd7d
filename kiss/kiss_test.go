package kiss

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFrame(t *testing.T) {
	for _, tc := range []struct {
		name    string
		port    byte
		command byte
		payload []byte
		want    []byte
	}{
		{
			name:    "plain data frame",
			payload: []byte{0x01, 0x02},
			want:    []byte{FEND, 0x00, 0x01, 0x02, FEND},
		},
		{
			name: "empty payload",
			want: []byte{FEND, 0x00, FEND},
		},
		{
			name:    "literal FEND escaped",
			payload: []byte{0x01, FEND, 0x02},
			want:    []byte{FEND, 0x00, 0x01, FESC, TFEND, 0x02, FEND},
		},
		{
			name:    "literal FESC escaped",
			payload: []byte{0x01, FESC, 0x02},
			want:    []byte{FEND, 0x00, 0x01, FESC, TFESC, 0x02, FEND},
		},
		{
			name:    "escape substitutes pass unescaped",
			payload: []byte{TFEND, TFESC},
			want:    []byte{FEND, 0x00, TFEND, TFESC, FEND},
		},
		{
			name:    "tx delay command",
			command: CmdTXDelay,
			payload: []byte{0x32},
			want:    []byte{FEND, 0x01, 0x32, FEND},
		},
		{
			name:    "port in high nibble",
			port:    2,
			payload: []byte{0x01},
			want:    []byte{FEND, 0x20, 0x01, FEND},
		},
		{
			name:    "port and command combined",
			port:    2,
			command: CmdTXDelay,
			payload: []byte{0x32},
			want:    []byte{FEND, 0x21, 0x32, FEND},
		},
		{
			name: "command octet itself escaped",
			port: 0x0C, // port 12 data frame yields a literal FEND octet
			want: []byte{FEND, FESC, TFEND, FEND},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EncodeFrame(tc.port, tc.command, tc.payload))
		})
	}
}

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)

	require.NoError(t, e.WriteData([]byte{0x01, FEND}))
	require.NoError(t, e.WriteParameter(0, CmdTXDelay, 0x32))
	assert.Equal(t, []byte{
		FEND, 0x00, 0x01, FESC, TFEND, FEND,
		FEND, 0x01, 0x32, FEND,
	}, buf.Bytes())
}

func TestEncoderDecoderRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{0x01, 0x02, 0x03},
		{},
		{FEND},
		{FESC},
		{FEND, FESC, FEND, FESC},
		{TFEND, TFESC},
		bytes.Repeat([]byte{FESC, FEND, 0x55}, 100),
	}

	var buf bytes.Buffer
	for _, p := range payloads {
		buf.Write(EncodeFrame(0, CmdData, p))
	}

	d := NewDecoder(&buf)
	for i, p := range payloads {
		f, err := d.Next()
		require.NoError(t, err, "frame %d", i)
		assert.EqualValues(t, 0, f.Port)
		assert.EqualValues(t, CmdData, f.Command)
		if len(p) == 0 {
			assert.Empty(t, f.Payload)
		} else {
			assert.Equal(t, p, f.Payload)
		}
	}
	_, err := d.Next()
	assert.ErrorIs(t, err, io.EOF)
}
