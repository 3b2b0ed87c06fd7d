// Package kiss implements the KISS byte stream framing used between a
// host and a TNC modem over a serial line or TCP connection.
//
// KISS carries opaque payloads, typically encoded AX.25 frames,
// between FEND delimiters with a one octet command header and an
// escape scheme making the payload byte transparent. The package is
// agnostic to AX.25 semantics.
//
// Encoder writes frames to an io.Writer; Decoder reads them back from
// an io.Reader, resynchronizing silently on corrupt spans so that a
// single damaged frame never stalls the channel.
package kiss
