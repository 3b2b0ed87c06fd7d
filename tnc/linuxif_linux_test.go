//go:build linux

package tnc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHtonsNetworkByteOrder(t *testing.T) {
	for _, v := range []uint16{0x0000, 0x0008, 0x08FF, 0x1234, 0xFFFF} {
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], v)
		assert.Equal(t, binary.NativeEndian.Uint16(b[:]), htons(v))
	}
}
