package ioctl

import (
	"bytes"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type sockaddr struct {
	family uint16
	addr   [14]byte
}

func ifreqSocket() (int, error) {
	soc, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return -1, errors.Wrap(err, "open ioctl socket")
	}
	return soc, nil
}

func Siocgifindex(name string) (int32, error) {
	soc, err := ifreqSocket()
	if err != nil {
		return 0, err
	}
	defer unix.Close(soc)
	ifreq := struct {
		name  [unix.IFNAMSIZ]byte
		index int32
		_pad  [22]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(soc), unix.SIOCGIFINDEX, uintptr(unsafe.Pointer(&ifreq))); errno != 0 {
		return 0, errors.Wrapf(errno, "SIOCGIFINDEX %s", name)
	}
	return ifreq.index, nil
}

func Siocgifflags(name string) (uint16, error) {
	soc, err := ifreqSocket()
	if err != nil {
		return 0, err
	}
	defer unix.Close(soc)
	ifreq := struct {
		name  [unix.IFNAMSIZ]byte
		flags uint16
		_pad  [22]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(soc), unix.SIOCGIFFLAGS, uintptr(unsafe.Pointer(&ifreq))); errno != 0 {
		return 0, errors.Wrapf(errno, "SIOCGIFFLAGS %s", name)
	}
	return ifreq.flags, nil
}

func Siocsifflags(name string, flags uint16) error {
	soc, err := ifreqSocket()
	if err != nil {
		return err
	}
	defer unix.Close(soc)
	ifreq := struct {
		name  [unix.IFNAMSIZ]byte
		flags uint16
		_pad  [22]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	ifreq.flags = flags
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(soc), unix.SIOCSIFFLAGS, uintptr(unsafe.Pointer(&ifreq))); errno != 0 {
		return errors.Wrapf(errno, "SIOCSIFFLAGS %s", name)
	}
	return nil
}

func Siocgifhwaddr(name string) ([]byte, error) {
	soc, err := ifreqSocket()
	if err != nil {
		return nil, err
	}
	defer unix.Close(soc)
	ifreq := struct {
		name [unix.IFNAMSIZ]byte
		addr sockaddr
		_pad [8]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(soc), unix.SIOCGIFHWADDR, uintptr(unsafe.Pointer(&ifreq))); errno != 0 {
		return nil, errors.Wrapf(errno, "SIOCGIFHWADDR %s", name)
	}
	return ifreq.addr.addr[:], nil
}

func Siocgifaddr(name string) ([]byte, error) {
	type sockaddrIn struct {
		family uint16
		port   uint16
		addr   [4]byte
	}

	soc, err := ifreqSocket()
	if err != nil {
		return nil, err
	}
	defer unix.Close(soc)
	ifreq := struct {
		name [unix.IFNAMSIZ]byte
		addr sockaddrIn
		_pad [8]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(soc), unix.SIOCGIFADDR, uintptr(unsafe.Pointer(&ifreq))); errno != 0 {
		return nil, errors.Wrapf(errno, "SIOCGIFADDR %s", name)
	}
	return ifreq.addr.addr[:], nil
}

// Tunsetiff attaches fd to the named TAP device. IFF_NO_PI keeps packet
// metadata off the frames so reads and writes carry raw ethernet.
func Tunsetiff(fd uintptr, name string) (string, error) {
	ifreq := struct {
		name  [unix.IFNAMSIZ]byte
		flags uint16
		_pad  [22]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	ifreq.flags = unix.IFF_TAP | unix.IFF_NO_PI
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, unix.TUNSETIFF, uintptr(unsafe.Pointer(&ifreq))); errno != 0 {
		return "", errors.Wrapf(errno, "TUNSETIFF %s", name)
	}
	return string(ifreq.name[:bytes.IndexByte(ifreq.name[:], 0)]), nil
}
