package kiss

import (
	"bufio"
	"io"
)

const (
	// DecoderMinBufferSize is the scanner buffer size floor.
	DecoderMinBufferSize = 64
	// defaultBufferSize is the default read buffer capacity, which
	// also bounds the largest decodable frame.
	defaultBufferSize = 32 * 1024
)

// DecoderOption is a constructor option function for the Decoder type.
type DecoderOption func(*Decoder)

// WithScannerBufferSize configures the buffer size of the
// bufio.Scanner used by the decoder. A complete escaped frame must fit
// in the buffer; longer frames are discarded as corrupt and decoding
// resumes at the next delimiter. If bytes is smaller than
// DecoderMinBufferSize, the floor is used.
func WithScannerBufferSize(bytes int) DecoderOption {
	return func(d *Decoder) {
		if bytes < DecoderMinBufferSize {
			bytes = DecoderMinBufferSize
		}
		d.bufSize = bytes
	}
}

// Decoder is a lazy, restartable consumer of a KISS byte stream.
//
// Partial frame state is retained between calls to Next, so a read
// boundary falling mid frame is handled transparently. Decoder is not
// safe for concurrent use; callers sharing one across goroutines must
// serialize access.
type Decoder struct {
	// Input is the byte stream source.
	Input io.Reader

	s       *bufio.Scanner
	bufSize int
}

// NewDecoder creates a Decoder reading KISS frames from input.
func NewDecoder(input io.Reader, options ...DecoderOption) *Decoder {
	d := &Decoder{Input: input, bufSize: defaultBufferSize}
	for _, option := range options {
		option(d)
	}
	d.s = bufio.NewScanner(input)
	d.s.Buffer(make([]byte, d.bufSize), d.bufSize)
	// cap open spans below the buffer capacity so the scanner never
	// reaches its terminal ErrTooLong state
	d.s.Split(splitFrames(d.bufSize - 2))
	return d
}

// Next blocks until one complete frame is available and returns it.
// Corrupt spans are skipped silently. The returned frame owns its
// payload, which stays valid across further calls. Next returns
// io.EOF once the input is exhausted, or the underlying read error.
func (d *Decoder) Next() (Frame, error) {
	if d.s.Scan() {
		token := d.s.Bytes()
		return Frame{
			Port:    token[0] >> 4,
			Command: token[0] & 0x0F,
			Payload: token[1:],
		}, nil
	}
	if err := d.s.Err(); err != nil {
		return Frame{}, err
	}
	return Frame{}, io.EOF
}
