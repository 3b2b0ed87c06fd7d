package tnc

import (
	"net"
	"strconv"
	"sync"

	"github.com/thombles/ax25-rs/frame"
	"github.com/thombles/ax25-rs/kiss"
)

// tcpKissBackend speaks KISS over a TCP stream. The encoder and
// decoder each sit behind their own mutex so a send and a receive can
// proceed concurrently, while two sends (or two receives) are
// serialized: a frame is never interleaved byte-wise with another,
// and the decoder's partial frame state is never touched by two
// goroutines at once.
type tcpKissBackend struct {
	conn net.Conn

	txMu sync.Mutex
	enc  *kiss.Encoder

	rxMu sync.Mutex
	dec  *kiss.Decoder

	closeOnce sync.Once
	closeErr  error
}

func openTCPKiss(config *TCPKissConfig) (backend, error) {
	conn, err := net.Dial("tcp", net.JoinHostPort(config.Host, strconv.Itoa(int(config.Port))))
	if err != nil {
		return nil, err
	}
	return &tcpKissBackend{
		conn: conn,
		enc:  kiss.NewEncoder(conn),
		dec:  kiss.NewDecoder(conn),
	}, nil
}

func (t *tcpKissBackend) sendFrame(f *frame.Frame) error {
	raw, err := f.Bytes()
	if err != nil {
		return err
	}
	t.txMu.Lock()
	defer t.txMu.Unlock()
	if err := t.enc.WriteData(raw); err != nil {
		return &IOError{Op: "send", Err: err}
	}
	return nil
}

func (t *tcpKissBackend) receiveFrame() (*frame.Frame, error) {
	t.rxMu.Lock()
	defer t.rxMu.Unlock()
	for {
		kf, err := t.dec.Next()
		if err != nil {
			return nil, &IOError{Op: "receive", Err: err}
		}
		if !kf.IsData() {
			// modem configuration traffic, not ours to interpret
			continue
		}
		f, err := frame.Decode(kf.Payload)
		if err != nil {
			// surfaced per call; the stream stays usable
			return nil, err
		}
		return f, nil
	}
}

func (t *tcpKissBackend) close() error {
	t.closeOnce.Do(func() { t.closeErr = t.conn.Close() })
	return t.closeErr
}
