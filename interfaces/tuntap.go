package interfaces

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/terassyi/goarp/ioctl"
)

const tuntap = "/dev/net/tun"

type tapDevice struct {
	file *os.File
	name string
}

func newTapDevice(name string) (*tapDevice, error) {
	name, file, err := openDevice(name)
	if err != nil {
		return nil, err
	}
	return &tapDevice{
		file: file,
		name: name,
	}, nil
}

func (tap *tapDevice) Name() string {
	return tap.name
}

func (tap *tapDevice) Fd() int {
	return int(tap.file.Fd())
}

func (tap *tapDevice) Recv(buf []byte) (int, error) {
	n, err := tap.file.Read(buf)
	if err != nil {
		return n, errors.Wrapf(err, "recv on %s", tap.name)
	}
	return n, nil
}

func (tap *tapDevice) Send(buf []byte) (int, error) {
	n, err := tap.file.Write(buf)
	if err != nil {
		return n, errors.Wrapf(err, "send on %s", tap.name)
	}
	return n, nil
}

func (tap *tapDevice) Close() error {
	return tap.file.Close()
}

func (tap *tapDevice) Address() ([]byte, error) {
	return ioctl.Siocgifhwaddr(tap.name)
}

func openDevice(name string) (string, *os.File, error) {
	if len(name) >= unix.IFNAMSIZ {
		return "", nil, errors.Errorf("name %s is too long", name)
	}
	file, err := os.OpenFile(tuntap, os.O_RDWR, 0600)
	if err != nil {
		return "", nil, errors.Wrap(err, "open tap device")
	}
	name, err = ioctl.Tunsetiff(file.Fd(), name)
	if err != nil {
		file.Close()
		return "", nil, err
	}
	flags, err := ioctl.Siocgifflags(name)
	if err != nil {
		file.Close()
		return "", nil, err
	}
	flags |= (unix.IFF_UP | unix.IFF_RUNNING)
	if err := ioctl.Siocsifflags(name, flags); err != nil {
		file.Close()
		return "", nil, err
	}
	return name, file, nil
}
