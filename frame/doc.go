// Package frame encodes and decodes AX.25 v2.0 frames between raw
// bytes and strongly typed structures.
//
// The codec covers the modulo-8 control field only. Destination,
// source and digipeater addresses are represented by Address, while
// the class-specific remainder of the frame (information,
// supervisory, unnumbered) is one of the FrameContent
// implementations. Decode and Frame.Bytes are exact inverses for
// every frame this package can produce.
package frame
