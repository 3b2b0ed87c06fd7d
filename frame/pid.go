package frame

import "fmt"

// ProtocolIdentifier is the PID octet carried by information and
// unnumbered information frames, naming the layer 3 protocol of the
// information field. The raw octet is preserved so that decoding and
// re-encoding a frame reproduces it exactly.
//
// Values 0x10-0x2F with bits 4-5 set per the "AX.25 layer 3
// implemented" patterns are reported collectively by IsLayer3.
type ProtocolIdentifier byte

// PID values from the AX.25 2.2 specification, which lists far more
// examples than 2.0.
const (
	PIDX25PLP                ProtocolIdentifier = 0x01
	PIDCompressedTCPIP       ProtocolIdentifier = 0x06
	PIDUncompressedTCPIP     ProtocolIdentifier = 0x07
	PIDSegmentationFragment  ProtocolIdentifier = 0x08
	PIDTexnetDatagram        ProtocolIdentifier = 0xC3
	PIDLinkQuality           ProtocolIdentifier = 0xC4
	PIDAppletalk             ProtocolIdentifier = 0xCA
	PIDAppletalkARP          ProtocolIdentifier = 0xCB
	PIDArpaIP                ProtocolIdentifier = 0xCC
	PIDArpaAddress           ProtocolIdentifier = 0xCD
	PIDFlexnet               ProtocolIdentifier = 0xCE
	PIDNetRom                ProtocolIdentifier = 0xCF
	PIDNone                  ProtocolIdentifier = 0xF0
	PIDEscape                ProtocolIdentifier = 0xFF
)

// IsLayer3 reports whether the PID indicates "AX.25 layer 3
// implemented", which is encoded as a bit pattern rather than a
// single value.
func (p ProtocolIdentifier) IsLayer3() bool {
	return byte(p)&0x30 == 0x10 || byte(p)&0x30 == 0x20
}

func (p ProtocolIdentifier) String() string {
	if p.IsLayer3() {
		return "Layer3Impl"
	}
	switch p {
	case PIDX25PLP:
		return "X25PLP"
	case PIDCompressedTCPIP:
		return "CompressedTCPIP"
	case PIDUncompressedTCPIP:
		return "UncompressedTCPIP"
	case PIDSegmentationFragment:
		return "SegmentationFragment"
	case PIDTexnetDatagram:
		return "TexnetDatagram"
	case PIDLinkQuality:
		return "LinkQuality"
	case PIDAppletalk:
		return "Appletalk"
	case PIDAppletalkARP:
		return "AppletalkARP"
	case PIDArpaIP:
		return "ArpaIP"
	case PIDArpaAddress:
		return "ArpaAddress"
	case PIDFlexnet:
		return "Flexnet"
	case PIDNetRom:
		return "NetRom"
	case PIDNone:
		return "None"
	case PIDEscape:
		return "Escape"
	}
	return fmt.Sprintf("Unknown(0x%02X)", byte(p))
}
