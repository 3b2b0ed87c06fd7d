// Package tnc connects to a Terminal Node Controller and exchanges
// AX.25 frames with it, behind one contract regardless of how the TNC
// is attached.
//
// A TNC is addressed by a textual descriptor:
//
//	tnc:linuxif:VK7NTK-2          a native Linux AX.25 network interface
//	tnc:tcpkiss:192.168.0.1:8001  a TCP service speaking KISS, e.g. Dire Wolf
//
// Parse the descriptor with ParseAddress, open it with Open, then use
// SendFrame and ReceiveFrame. The handle may be shared across
// goroutines: sends are serialized against each other, receives
// likewise, and a send never blocks a receive.
package tnc
