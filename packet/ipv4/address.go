package ipv4

import (
	"fmt"
	"strconv"
	"strings"
)

const AddressSize int = 4

type IPAddress [4]byte

func NewIPAddress(addr []byte) IPAddress {
	return IPAddress{addr[0], addr[1], addr[2], addr[3]}
}

func (ipaddr IPAddress) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ipaddr[0], ipaddr[1], ipaddr[2], ipaddr[3])
}

func (ipaddr IPAddress) Bytes() []byte {
	return ipaddr[:]
}

func Address(addr []byte) (*IPAddress, error) {
	if len(addr) != AddressSize {
		return nil, fmt.Errorf("invalid address %v", addr)
	}
	return &IPAddress{addr[0], addr[1], addr[2], addr[3]}, nil
}

func StringToIPAddress(addr string) (*IPAddress, error) {
	octets := strings.Split(addr, ".")
	if len(octets) != AddressSize {
		return nil, fmt.Errorf("invalid address format %s", addr)
	}
	ipaddr := &IPAddress{}
	for i, o := range octets {
		n, err := strconv.Atoi(o)
		if err != nil {
			return nil, fmt.Errorf("invalid address format %s", addr)
		}
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("invalid address format %s", addr)
		}
		ipaddr[i] = byte(n)
	}
	return ipaddr, nil
}
