//go:build linux

package tnc

import (
	"bytes"
	"encoding/binary"
	"net"
	"strings"
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/thombles/ax25-rs/frame"
)

// linuxIfBackend exchanges whole packets with a native AX.25 network
// interface through an AF_PACKET raw socket. Requires root or
// CAP_NET_RAW.
type linuxIfBackend struct {
	fd      int
	ifindex int

	txMu sync.Mutex

	rxMu  sync.Mutex
	rxBuf []byte

	closeOnce sync.Once
	closeErr  error
}

func openLinuxIf(config *LinuxIfConfig) (backend, error) {
	want, err := frame.ParseAddress(config.Callsign)
	if err != nil {
		return nil, err
	}
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(htons(unix.ETH_P_AX25)))
	if err != nil {
		return nil, errors.Wrap(err, "open raw AX.25 socket")
	}
	ifindex, err := findAX25Interface(fd, want)
	if err != nil {
		unix.Close(fd)
		return nil, err
	}
	return &linuxIfBackend{fd: fd, ifindex: ifindex, rxBuf: make([]byte, 1024)}, nil
}

func (l *linuxIfBackend) sendFrame(f *frame.Frame) error {
	raw, err := f.Bytes()
	if err != nil {
		return err
	}
	// The kernel expects a single null octet ahead of the frame proper.
	packet := append([]byte{0}, raw...)
	sa := &unix.SockaddrLinklayer{
		Protocol: htons(unix.ETH_P_AX25),
		Ifindex:  l.ifindex,
	}
	l.txMu.Lock()
	defer l.txMu.Unlock()
	if err := unix.Sendto(l.fd, packet, 0, sa); err != nil {
		return &IOError{Op: "send", Err: err}
	}
	return nil
}

func (l *linuxIfBackend) receiveFrame() (*frame.Frame, error) {
	l.rxMu.Lock()
	defer l.rxMu.Unlock()
	for {
		n, from, err := unix.Recvfrom(l.fd, l.rxBuf, 0)
		if err != nil {
			return nil, &IOError{Op: "receive", Err: err}
		}
		// The socket sees traffic from every AX.25 interface; keep
		// only packets from ours.
		sll, ok := from.(*unix.SockaddrLinklayer)
		if !ok || sll.Ifindex != l.ifindex {
			continue
		}
		// AF_PACKET delivers the same leading null octet it demands
		// on send.
		raw := bytes.TrimLeft(l.rxBuf[:n], "\x00")
		if len(raw) == 0 {
			continue
		}
		f, err := frame.Decode(raw)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}

func (l *linuxIfBackend) close() error {
	l.closeOnce.Do(func() { l.closeErr = unix.Close(l.fd) })
	return l.closeErr
}

// findAX25Interface locates the network interface whose AX.25
// hardware address matches want, comparing callsign and SSID case
// insensitively.
func findAX25Interface(fd int, want frame.Address) (int, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return 0, errors.Wrap(err, "list network interfaces")
	}
	for _, iface := range ifaces {
		hw, ok := hardwareAddress(fd, iface.Name)
		if !ok {
			continue
		}
		if strings.EqualFold(hw.Callsign, want.Callsign) && hw.SSID == want.SSID {
			return iface.Index, nil
		}
	}
	return 0, &InterfaceNotFoundError{Callsign: want.String()}
}

// ifreqHWAddr mirrors struct ifreq with the ifr_hwaddr member of its
// union; x/sys/unix offers no typed accessor for sockaddr valued
// ioctl results.
type ifreqHWAddr struct {
	Name [unix.IFNAMSIZ]byte
	Addr unix.RawSockaddr
	_    [8]byte
}

// hardwareAddress fetches an interface's hardware address via
// SIOCGIFHWADDR and decodes it as an AX.25 station address. ok is
// false for interfaces of any other address family.
func hardwareAddress(fd int, name string) (a frame.Address, ok bool) {
	var req ifreqHWAddr
	if len(name) >= unix.IFNAMSIZ {
		return a, false
	}
	copy(req.Name[:], name)
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), unix.SIOCGIFHWADDR, uintptr(unsafe.Pointer(&req)))
	if errno != 0 || req.Addr.Family != unix.AF_AX25 {
		return a, false
	}
	wire := make([]byte, 7)
	for i := range wire {
		wire[i] = byte(req.Addr.Data[i])
	}
	decoded, err := frame.DecodeAddress(wire)
	if err != nil {
		return a, false
	}
	decoded.Repeated = false
	return decoded, true
}

// htons converts v to network byte order on any host endianness.
func htons(v uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return *(*uint16)(unsafe.Pointer(&b[0]))
}
