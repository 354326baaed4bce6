package arp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

// PacketSize is the length of an ARP message for the ethernet/IPv4
// combination. FrameSize is the full on-wire frame: ethernet header plus
// the ARP message, no padding, no trailer.
const (
	PacketSize int = 28
	FrameSize  int = 42
)

// ErrTooShort is returned by Decode when fewer bytes than FrameSize are
// supplied. Frames read from the link always meet the minimum, so callers
// treat this by discarding the data.
var ErrTooShort = errors.New("arp frame is too short")

type HardwareType uint16
type ProtocolType uint16
type OperationCode uint16

type Header struct {
	HardwareType HardwareType
	ProtocolType ProtocolType
	HardwareSize uint8
	ProtocolSize uint8
	OpCode       OperationCode
}

type Packet struct {
	Header                Header
	SourceHardwareAddress ethernet.HardwareAddress
	SourceProtocolAddress ipv4.IPAddress
	TargetHardwareAddress ethernet.HardwareAddress
	TargetProtocolAddress ipv4.IPAddress
}

// Frame is one ethernet header plus its ARP message, the unit this stack
// exchanges over the link. A Frame is never mutated after construction;
// deriving a reply from a request builds a new value.
type Frame struct {
	Header ethernet.Header
	Packet Packet
}

func (op OperationCode) String() string {
	switch op {
	case ARP_REQUEST:
		return fmt.Sprintf("%d(REQUEST)", uint16(op))
	case ARP_REPLY:
		return fmt.Sprintf("%d(REPLY)", uint16(op))
	default:
		return fmt.Sprintf("%d(UNKNOWN)", uint16(op))
	}
}

// IsArp reports whether data holds an ARP frame, looking only at the
// ethertype field of the ethernet header.
func IsArp(data []byte) bool {
	if len(data) < ethernet.HeaderSize {
		return false
	}
	return ethernet.EtherType(binary.BigEndian.Uint16(data[12:14])) == ethernet.ETHER_TYPE_ARP
}

// Decode reads the leading FrameSize bytes of data into a Frame. Trailing
// bytes are the link's natural padding and are ignored.
func Decode(data []byte) (*Frame, error) {
	if len(data) < FrameSize {
		return nil, ErrTooShort
	}
	frame := &Frame{}
	buf := bytes.NewBuffer(data[:FrameSize])
	if err := binary.Read(buf, binary.BigEndian, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

func (f *Frame) Serialize() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, FrameSize))
	if err := binary.Write(buf, binary.BigEndian, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Request builds an ARP request frame asking for the hardware address
// holding targetProtoAddress. The ethernet destination and the ARP target
// hardware address are broadcast, the latter a placeholder for the address
// being resolved.
func Request(srcHardwareAddress ethernet.HardwareAddress, srcProtocolAddress, targetProtocolAddress ipv4.IPAddress) *Frame {
	return &Frame{
		Header: ethernet.Header{
			Dst:  ethernet.BroadcastAddress,
			Src:  srcHardwareAddress,
			Type: ethernet.ETHER_TYPE_ARP,
		},
		Packet: Packet{
			Header: Header{
				HardwareType: HARDWARE_ETHERNET,
				ProtocolType: PROTOCOL_IPv4,
				HardwareSize: uint8(6),
				ProtocolSize: uint8(4),
				OpCode:       ARP_REQUEST,
			},
			SourceHardwareAddress: srcHardwareAddress,
			SourceProtocolAddress: srcProtocolAddress,
			TargetHardwareAddress: ethernet.BroadcastAddress,
			TargetProtocolAddress: targetProtocolAddress,
		},
	}
}

// Reply builds an ARP reply frame addressed to the asking host.
func Reply(srcHardwareAddress ethernet.HardwareAddress, srcProtocolAddress ipv4.IPAddress,
	targetHardwareAddress ethernet.HardwareAddress, targetProtocolAddress ipv4.IPAddress) *Frame {
	return &Frame{
		Header: ethernet.Header{
			Dst:  targetHardwareAddress,
			Src:  srcHardwareAddress,
			Type: ethernet.ETHER_TYPE_ARP,
		},
		Packet: Packet{
			Header: Header{
				HardwareType: HARDWARE_ETHERNET,
				ProtocolType: PROTOCOL_IPv4,
				HardwareSize: uint8(6),
				ProtocolSize: uint8(4),
				OpCode:       ARP_REPLY,
			},
			SourceHardwareAddress: srcHardwareAddress,
			SourceProtocolAddress: srcProtocolAddress,
			TargetHardwareAddress: targetHardwareAddress,
			TargetProtocolAddress: targetProtocolAddress,
		},
	}
}

func (arp *Packet) Dump() string {
	return fmt.Sprintf(`---------------arp---------------
hardware type = 0x%04x
protocol type = 0x%04x
hardware address size = %d
protocol address size = %d
operation code = %s
src hwaddr = %s
src protoaddr = %s
target hwaddr = %s
target protoaddr = %s
---------------------------------
`, uint16(arp.Header.HardwareType), uint16(arp.Header.ProtocolType),
		arp.Header.HardwareSize, arp.Header.ProtocolSize, arp.Header.OpCode.String(),
		arp.SourceHardwareAddress.String(), arp.SourceProtocolAddress.String(),
		arp.TargetHardwareAddress.String(), arp.TargetProtocolAddress.String())
}

// Dump renders the whole frame for diagnostics. It never fails; unknown
// field values are shown as raw numbers.
func (f *Frame) Dump() string {
	return f.Header.Dump() + f.Packet.Dump()
}
