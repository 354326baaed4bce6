package arp

import (
	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/ioctl"
	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

// Identity is the link endpoint's own hardware/protocol address pair. It is
// built once at startup and passed by value; nothing mutates it afterwards.
type Identity struct {
	MacAddress ethernet.HardwareAddress
	IpAddress  ipv4.IPAddress
}

// NewIdentity queries iface for its hardware address and pairs it with the
// given protocol address. An empty addr falls back to the address assigned
// to the interface.
func NewIdentity(iface interfaces.Iface, addr string) (Identity, error) {
	macBytes, err := iface.Address()
	if err != nil {
		return Identity{}, err
	}
	mac, err := ethernet.Address(macBytes)
	if err != nil {
		return Identity{}, err
	}
	if addr == "" {
		ipBytes, err := ioctl.Siocgifaddr(iface.Name())
		if err != nil {
			return Identity{}, err
		}
		ip, err := ipv4.Address(ipBytes)
		if err != nil {
			return Identity{}, err
		}
		return Identity{MacAddress: *mac, IpAddress: *ip}, nil
	}
	ip, err := ipv4.StringToIPAddress(addr)
	if err != nil {
		return Identity{}, err
	}
	return Identity{MacAddress: *mac, IpAddress: *ip}, nil
}
