package kiss

// KISS framing alphabet.
const (
	// FEND delimits frames.
	FEND = 0xC0
	// FESC introduces an escape sequence.
	FESC = 0xDB
	// TFEND is the escape substitute for a literal FEND.
	TFEND = 0xDC
	// TFESC is the escape substitute for a literal FESC.
	TFESC = 0xDD
)

// Command codes carried in the low nibble of the command octet. Only
// CmdData frames carry link payload; the rest configure the modem.
const (
	CmdData        = 0x00
	CmdTXDelay     = 0x01
	CmdPersistence = 0x02
	CmdSlotTime    = 0x03
	CmdTXTail      = 0x04
	CmdFullDuplex  = 0x05
	CmdSetHardware = 0x06
	CmdReturn      = 0x0F
)

// Frame is one KISS frame: a port number (high nibble of the command
// octet, 0 for single port TNCs), a command code and the unescaped
// payload.
type Frame struct {
	Port    byte
	Command byte
	Payload []byte
}

// IsData reports whether the frame carries link payload rather than a
// modem configuration command.
func (f Frame) IsData() bool { return f.Command == CmdData }

// EncodeFrame encapsulates payload in KISS framing: FEND, the command
// octet, the escaped payload, FEND. Literal FEND and FESC bytes in
// the command octet or payload are replaced by their two byte escape
// sequences.
func EncodeFrame(port, command byte, payload []byte) []byte {
	out := make([]byte, 0, len(payload)+4)
	out = append(out, FEND)
	out = appendEscaped(out, port<<4|command&0x0F)
	for _, c := range payload {
		out = appendEscaped(out, c)
	}
	return append(out, FEND)
}

func appendEscaped(out []byte, c byte) []byte {
	switch c {
	case FEND:
		return append(out, FESC, TFEND)
	case FESC:
		return append(out, FESC, TFESC)
	}
	return append(out, c)
}

// unescape reverses the escape substitution of one delimited span.
// It reports ok=false for an unexpected escape sequence, in which
// case the whole span is to be discarded.
func unescape(span []byte) (out []byte, ok bool) {
	out = make([]byte, 0, len(span))
	for i := 0; i < len(span); i++ {
		c := span[i]
		if c != FESC {
			out = append(out, c)
			continue
		}
		if i++; i == len(span) {
			return nil, false
		}
		switch span[i] {
		case TFEND:
			out = append(out, FEND)
		case TFESC:
			out = append(out, FESC)
		default:
			return nil, false
		}
	}
	return out, true
}
