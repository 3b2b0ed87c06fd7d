package kiss

import (
	"io"

	"github.com/pkg/errors"
)

// NewEncoder returns an Encoder writing KISS framed output to output.
func NewEncoder(output io.Writer) *Encoder {
	return &Encoder{Output: output}
}

// Encoder writes KISS frames to an underlying writer. Each frame is
// written with a single Write call so that writers with atomic Write
// semantics never interleave two frames.
type Encoder struct {
	// Output is the underlying writer to receive framed output.
	Output io.Writer
}

// WriteFrame writes one frame.
func (e *Encoder) WriteFrame(f Frame) error {
	b := EncodeFrame(f.Port, f.Command, f.Payload)
	n, err := e.Output.Write(b)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return errors.Wrap(err, "write KISS frame")
}

// WriteData writes payload as a data frame on port 0.
func (e *Encoder) WriteData(payload []byte) error {
	return e.WriteFrame(Frame{Command: CmdData, Payload: payload})
}

// WriteParameter writes a single octet modem configuration command,
// such as CmdTXDelay or CmdPersistence.
func (e *Encoder) WriteParameter(port, command, value byte) error {
	return e.WriteFrame(Frame{Port: port, Command: command, Payload: []byte{value}})
}

// Close closes the underlying writer if it is an io.Closer.
func (e *Encoder) Close() error {
	if closer, ok := e.Output.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
