package interfaces

import "fmt"

// Iface is the raw frame transport the protocol code runs over. Recv and
// Send exchange whole ethernet frames; Address answers the hardware address
// assigned to the endpoint.
type Iface interface {
	Name() string
	Fd() int
	Recv([]byte) (int, error)
	Send([]byte) (int, error)
	Close() error
	Address() ([]byte, error)
}

func New(name, typ string) (Iface, error) {
	switch typ {
	case "tap":
		return newTapDevice(name)
	case "afpacket":
		return newAfPacket(name)
	default:
		return nil, fmt.Errorf("invalid type %s", typ)
	}
}
