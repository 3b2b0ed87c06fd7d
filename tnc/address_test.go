package tnc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  *Address
	}{
		{
			input: "tnc:tcpkiss:192.168.0.1:8001",
			want:  NewTCPKissAddress(TCPKissConfig{Host: "192.168.0.1", Port: 8001}),
		},
		{
			input: "tnc:tcpkiss:digi.example.com:8001",
			want:  NewTCPKissAddress(TCPKissConfig{Host: "digi.example.com", Port: 8001}),
		},
		{
			input: "tnc:linuxif:VK7NTK-2",
			want:  NewLinuxIfAddress(LinuxIfConfig{Callsign: "VK7NTK-2"}),
		},
		{
			input: "tnc:linuxif:vk7ntk-2",
			want:  NewLinuxIfAddress(LinuxIfConfig{Callsign: "vk7ntk-2"}),
		},
	} {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAddress(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.input, got.String())
		})
	}
}

func TestParseAddressErrors(t *testing.T) {
	var (
		noPrefix    *NoPrefixError
		unknownType *UnknownTypeError
		paramCount  *ParameterCountError
		portErr     *PortError
	)

	_, err := ParseAddress("fish")
	require.ErrorAs(t, err, &noPrefix)
	assert.Equal(t, "fish", noPrefix.Input)

	_, err = ParseAddress("tnc:")
	require.ErrorAs(t, err, &unknownType)
	assert.Equal(t, "", unknownType.Type)

	_, err = ParseAddress("tnc:bogus:x")
	require.ErrorAs(t, err, &unknownType)
	assert.Equal(t, "bogus", unknownType.Type)

	_, err = ParseAddress("tnc:tcpkiss")
	require.ErrorAs(t, err, &paramCount)
	assert.Equal(t, &ParameterCountError{Type: "tcpkiss", Expected: 2, Actual: 0}, paramCount)

	_, err = ParseAddress("tnc:tcpkiss:")
	require.ErrorAs(t, err, &paramCount)
	assert.Equal(t, &ParameterCountError{Type: "tcpkiss", Expected: 2, Actual: 1}, paramCount)

	_, err = ParseAddress("tnc:tcpkiss:192.168.0.1")
	require.ErrorAs(t, err, &paramCount)
	assert.Equal(t, &ParameterCountError{Type: "tcpkiss", Expected: 2, Actual: 1}, paramCount)

	_, err = ParseAddress("tnc:tcpkiss:a:b:c")
	require.ErrorAs(t, err, &paramCount)
	assert.Equal(t, &ParameterCountError{Type: "tcpkiss", Expected: 2, Actual: 3}, paramCount)

	_, err = ParseAddress("tnc:tcpkiss:192.168.0.1:hello")
	require.ErrorAs(t, err, &portErr)
	assert.Equal(t, "hello", portErr.Input)

	_, err = ParseAddress("tnc:tcpkiss:192.168.0.1:99999")
	require.ErrorAs(t, err, &portErr)

	_, err = ParseAddress("tnc:linuxif")
	require.ErrorAs(t, err, &paramCount)
	assert.Equal(t, &ParameterCountError{Type: "linuxif", Expected: 1, Actual: 0}, paramCount)

	_, err = ParseAddress("tnc:linuxif:a:b")
	require.ErrorAs(t, err, &paramCount)
	assert.Equal(t, &ParameterCountError{Type: "linuxif", Expected: 1, Actual: 2}, paramCount)
}
