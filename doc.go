/*
Package ax25 is a set of packet radio support libraries.

These libraries cover the layers needed to exchange AX.25 frames with
a radio regardless of how the modem hardware is attached:

  - frame encodes and decodes AX.25 v2.0 frames between raw bytes and
    strongly typed structures, including addresses, the digipeater
    route and the modulo-8 control field.
  - kiss implements the KISS byte stream framing spoken between host
    and modem, with an escape-transparent encoder and a tolerant,
    resynchronizing stream decoder.
  - tnc opens a Terminal Node Controller from a textual address such
    as "tnc:tcpkiss:192.168.0.1:8001" or "tnc:linuxif:VK7NTK-2" and
    exposes a uniform, goroutine safe send/receive contract over
    either backend.

A typical application parses an address with tnc.ParseAddress, opens
it with tnc.Open, and exchanges frame.Frame values. Connected mode
sessions (acknowledged I frame exchange) are out of scope; the
libraries end at frame and byte stream codecs plus UI and raw control
frame transport.

See cmd/ax25 for example listen, send and beacon programs.
*/
package ax25
