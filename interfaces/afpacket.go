package interfaces

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/terassyi/goarp/ioctl"
)

type afPacket struct {
	fd   int
	name string
}

func newAfPacket(name string) (*afPacket, error) {
	fd, err := openPFPacket(name)
	if err != nil {
		return nil, err
	}
	return &afPacket{
		fd:   fd,
		name: name,
	}, nil
}

func (af *afPacket) Name() string {
	return af.name
}

func (af *afPacket) Fd() int {
	return af.fd
}

func (af *afPacket) Recv(buf []byte) (int, error) {
	n, err := unix.Read(af.fd, buf)
	if err != nil {
		return n, errors.Wrapf(err, "recv on %s", af.name)
	}
	return n, nil
}

func (af *afPacket) Send(buf []byte) (int, error) {
	n, err := unix.Write(af.fd, buf)
	if err != nil {
		return n, errors.Wrapf(err, "send on %s", af.name)
	}
	return n, nil
}

func (af *afPacket) Close() error {
	return unix.Close(af.fd)
}

func (af *afPacket) Address() ([]byte, error) {
	return ioctl.Siocgifhwaddr(af.name)
}

func openPFPacket(name string) (int, error) {
	if name == "" {
		return -1, errors.New("name is empty")
	}
	if len(name) >= unix.IFNAMSIZ {
		return -1, errors.Errorf("name %s is too long", name)
	}
	protocol := hton16(unix.ETH_P_ALL)
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(protocol))
	if err != nil {
		return -1, errors.Wrap(err, "open packet socket")
	}
	index, err := ioctl.Siocgifindex(name)
	if err != nil {
		unix.Close(fd)
		return -1, err
	}
	addr := &unix.SockaddrLinklayer{
		Protocol: protocol,
		Ifindex:  int(index),
	}
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return -1, errors.Wrapf(err, "bind to %s", name)
	}
	flags, err := ioctl.Siocgifflags(name)
	if err != nil {
		unix.Close(fd)
		return -1, err
	}
	flags |= unix.IFF_PROMISC
	if err := ioctl.Siocsifflags(name, flags); err != nil {
		unix.Close(fd)
		return -1, err
	}
	return fd, nil
}

func hton16(i uint16) uint16 {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, i)
	return binary.NativeEndian.Uint16(b)
}
