package frame

import "fmt"

// FrameContent is the class-specific payload of an AX.25 frame: one
// of *Information, *Supervisory, *UnnumberedInformation or
// *Unnumbered. The set is closed.
type FrameContent interface {
	// controlOctet returns the modulo-8 control field encoding.
	controlOctet() byte
}

// SupervisoryType identifies the function of a supervisory frame.
type SupervisoryType byte

const (
	// ReceiveReady (RR) acknowledges frames up to N(R)-1.
	ReceiveReady SupervisoryType = 0x00
	// ReceiveNotReady (RNR) signals a temporarily busy receiver.
	ReceiveNotReady SupervisoryType = 0x01
	// Reject (REJ) requests retransmission from N(R).
	Reject SupervisoryType = 0x02
)

func (t SupervisoryType) String() string {
	switch t {
	case ReceiveReady:
		return "RR"
	case ReceiveNotReady:
		return "RNR"
	case Reject:
		return "REJ"
	}
	return fmt.Sprintf("SupervisoryType(0x%02X)", byte(t))
}

// UnnumberedModifier identifies the function of an unnumbered frame.
// Values are the control octet with the poll/final bit clear.
type UnnumberedModifier byte

const (
	// ModifierUI is unnumbered information.
	ModifierUI UnnumberedModifier = 0x03
	// ModifierDM is disconnected mode.
	ModifierDM UnnumberedModifier = 0x0F
	// ModifierSABM is set asynchronous balanced mode.
	ModifierSABM UnnumberedModifier = 0x2F
	// ModifierDISC is disconnect.
	ModifierDISC UnnumberedModifier = 0x43
	// ModifierUA is unnumbered acknowledge.
	ModifierUA UnnumberedModifier = 0x63
	// ModifierFRMR is frame reject.
	ModifierFRMR UnnumberedModifier = 0x87
)

func (m UnnumberedModifier) String() string {
	switch m {
	case ModifierUI:
		return "UI"
	case ModifierDM:
		return "DM"
	case ModifierSABM:
		return "SABM"
	case ModifierDISC:
		return "DISC"
	case ModifierUA:
		return "UA"
	case ModifierFRMR:
		return "FRMR"
	}
	return fmt.Sprintf("UnnumberedModifier(0x%02X)", byte(m))
}

// Information is a numbered data frame (I frame). Sequence numbers
// are taken modulo 8.
type Information struct {
	PID             ProtocolIdentifier
	Info            []byte
	SendSequence    uint8
	ReceiveSequence uint8
	PollOrFinal     bool
}

func (c *Information) controlOctet() byte {
	return (c.ReceiveSequence&0x07)<<5 | pfBit(c.PollOrFinal) | (c.SendSequence&0x07)<<1
}

// Supervisory is a flow control frame (S frame): RR, RNR or REJ.
type Supervisory struct {
	Type            SupervisoryType
	ReceiveSequence uint8
	PollOrFinal     bool
}

func (c *Supervisory) controlOctet() byte {
	return (c.ReceiveSequence&0x07)<<5 | pfBit(c.PollOrFinal) | byte(c.Type)<<2 | 0x01
}

// UnnumberedInformation is a connectionless data frame (UI frame).
type UnnumberedInformation struct {
	PID         ProtocolIdentifier
	Info        []byte
	PollOrFinal bool
}

func (c *UnnumberedInformation) controlOctet() byte {
	return byte(ModifierUI) | pfBit(c.PollOrFinal)
}

// Unnumbered is any unnumbered frame other than UI, such as SABM or
// DISC. These carry no information field in this codec.
type Unnumbered struct {
	Modifier    UnnumberedModifier
	PollOrFinal bool
}

func (c *Unnumbered) controlOctet() byte {
	return byte(c.Modifier) | pfBit(c.PollOrFinal)
}

func pfBit(set bool) byte {
	if set {
		return 0x10
	}
	return 0
}

// decodeContent classifies the control octet and parses the class
// specific remainder of the frame. rest holds the octets following
// the control field.
func decodeContent(control byte, rest []byte) (FrameContent, error) {
	pf := control&0x10 != 0
	switch {
	case control&0x01 == 0:
		// I frame
		if len(rest) == 0 {
			return nil, decodeErrorf("information frame missing PID octet")
		}
		return &Information{
			PID:             ProtocolIdentifier(rest[0]),
			Info:            copyBytes(rest[1:]),
			SendSequence:    control >> 1 & 0x07,
			ReceiveSequence: control >> 5 & 0x07,
			PollOrFinal:     pf,
		}, nil
	case control&0x03 == 0x01:
		// S frame
		stype := SupervisoryType(control >> 2 & 0x03)
		if stype > Reject {
			return nil, decodeErrorf("undefined supervisory type in control octet 0x%02X", control)
		}
		return &Supervisory{
			Type:            stype,
			ReceiveSequence: control >> 5 & 0x07,
			PollOrFinal:     pf,
		}, nil
	}
	// U frame: the modifier spans the remaining control bits.
	modifier := UnnumberedModifier(control &^ 0x10)
	switch modifier {
	case ModifierUI:
		if len(rest) == 0 {
			return nil, decodeErrorf("UI frame missing PID octet")
		}
		return &UnnumberedInformation{
			PID:         ProtocolIdentifier(rest[0]),
			Info:        copyBytes(rest[1:]),
			PollOrFinal: pf,
		}, nil
	case ModifierDM, ModifierSABM, ModifierDISC, ModifierUA, ModifierFRMR:
		return &Unnumbered{Modifier: modifier, PollOrFinal: pf}, nil
	}
	return nil, decodeErrorf("undefined unnumbered modifier in control octet 0x%02X", control)
}

func copyBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
