//go:build !linux

package tnc

import "github.com/pkg/errors"

// Native AX.25 network interfaces only exist on Linux.
func openLinuxIf(config *LinuxIfConfig) (backend, error) {
	return nil, errors.New("linuxif TNCs are only supported on linux")
}
