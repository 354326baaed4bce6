package ethernet

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

type HardwareAddress [6]byte

type EtherType uint16

type Header struct {
	Dst  HardwareAddress
	Src  HardwareAddress
	Type EtherType
}

func (hwaddr HardwareAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", hwaddr[0], hwaddr[1], hwaddr[2], hwaddr[3], hwaddr[4], hwaddr[5])
}

func (hwaddr HardwareAddress) Bytes() []byte {
	return hwaddr[:]
}

func Address(data []byte) (*HardwareAddress, error) {
	if len(data) < 6 {
		return nil, fmt.Errorf("invalid hardware address %v", data)
	}
	addr := &HardwareAddress{}
	copy(addr[:], data[:6])
	return addr, nil
}

func (typ EtherType) String() string {
	switch typ {
	case ETHER_TYPE_ARP:
		return fmt.Sprintf("0x%04x(ARP)", uint16(typ))
	case ETHER_TYPE_IP:
		return fmt.Sprintf("0x%04x(IP)", uint16(typ))
	case ETHER_TYPE_IPV6:
		return fmt.Sprintf("0x%04x(IPV6)", uint16(typ))
	default:
		return fmt.Sprintf("0x%04x(UNKNOWN)", uint16(typ))
	}
}

func UnmarshalHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("ethernet header is too short (%d)", len(data))
	}
	header := &Header{}
	buf := bytes.NewBuffer(data[:HeaderSize])
	if err := binary.Read(buf, binary.BigEndian, header); err != nil {
		return nil, err
	}
	return header, nil
}

func (hdr Header) Marshal() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize))
	if err := binary.Write(buf, binary.BigEndian, hdr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (hdr Header) Dump() string {
	return fmt.Sprintf(`----------ethernet header----------
dst = %s
src = %s
type = %s
-----------------------------------
`, hdr.Dst.String(), hdr.Src.String(), hdr.Type.String())
}
