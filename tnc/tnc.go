package tnc

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/thombles/ax25-rs/frame"
)

// backend is the capability contract each concrete transport
// implements. Implementations serialize their own write and read
// paths so one backend value may serve any number of goroutines.
type backend interface {
	sendFrame(f *frame.Frame) error
	receiveFrame() (*frame.Frame, error)
	close() error
}

// Tnc is an open connection to a TNC. It is safe for concurrent use:
// each send and each receive is atomic with respect to other
// operations on the same handle, and a send and a receive may proceed
// concurrently without blocking each other.
type Tnc struct {
	b backend

	fanoutOnce sync.Once
	subMu      sync.Mutex
	subs       []chan Result
	readDone   bool
	readErr    error
}

// Open connects to the TNC the address describes. Failures are
// reported as *OpenError wrapping the backend specific cause.
func Open(address *Address) (*Tnc, error) {
	var (
		b   backend
		err error
	)
	switch {
	case address == nil:
		return nil, &OpenError{Address: "<nil>", Err: errors.New("nil address")}
	case address.TCPKiss != nil:
		b, err = openTCPKiss(address.TCPKiss)
	case address.LinuxIf != nil:
		b, err = openLinuxIf(address.LinuxIf)
	default:
		err = errors.New("address has no backend configuration")
	}
	if err != nil {
		return nil, &OpenError{Address: address.String(), Err: err}
	}
	return &Tnc{b: b}, nil
}

// SendFrame transmits a frame on the radio. A nil error does not
// guarantee the frame went to air, only that the medium accepted it.
// Underlying write failures are reported as *IOError; no retry is
// attempted.
func (t *Tnc) SendFrame(f *frame.Frame) error {
	return t.b.sendFrame(f)
}

// ReceiveFrame blocks the calling goroutine until one complete frame
// arrives and returns it decoded. An *IOError means the medium
// failed and the handle must be reopened. A *frame.DecodeError means
// one malformed frame arrived; the transport remains open and
// ReceiveFrame may simply be called again.
//
// ReceiveFrame must not be mixed with Incoming on the same handle.
func (t *Tnc) ReceiveFrame() (*frame.Frame, error) {
	return t.b.receiveFrame()
}

// Close releases the underlying medium. It is idempotent.
func (t *Tnc) Close() error {
	return t.b.close()
}

// Result is one delivery on an Incoming channel: a frame, or the
// error that accompanied it.
type Result struct {
	Frame *frame.Frame
	Err   error
}

// Incoming returns a channel receiving a copy of every incoming
// frame. The first call starts a single reader goroutine; each
// subsequent call adds another subscriber receiving the same
// deliveries. Malformed frames are delivered as Results carrying a
// *frame.DecodeError and the stream continues; on an I/O failure the
// final Result carries the error and all subscriber channels are
// closed. A call made after the reader has stopped returns a channel
// that delivers the terminal error and is already closed.
//
// Subscribers must drain their channel promptly; a stalled subscriber
// stalls delivery to all. Incoming must not be mixed with direct
// ReceiveFrame calls on the same handle.
func (t *Tnc) Incoming() <-chan Result {
	ch := make(chan Result, 16)
	t.subMu.Lock()
	if t.readDone {
		t.subMu.Unlock()
		ch <- Result{Err: t.readErr}
		close(ch)
		return ch
	}
	t.subs = append(t.subs, ch)
	t.subMu.Unlock()
	t.fanoutOnce.Do(func() { go t.fanout() })
	return ch
}

func (t *Tnc) fanout() {
	for {
		f, err := t.b.receiveFrame()
		t.deliver(Result{Frame: f, Err: err})
		if err == nil {
			continue
		}
		var decodeErr *frame.DecodeError
		if errors.As(err, &decodeErr) {
			// one bad frame does not end the stream
			continue
		}
		t.subMu.Lock()
		t.readDone = true
		t.readErr = err
		for _, ch := range t.subs {
			close(ch)
		}
		t.subs = nil
		t.subMu.Unlock()
		return
	}
}

func (t *Tnc) deliver(r Result) {
	t.subMu.Lock()
	subs := t.subs
	t.subMu.Unlock()
	for _, ch := range subs {
		ch <- r
	}
}
