package ethernet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddress(t *testing.T) {
	addr, err := Address([]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff})
	if err != nil {
		t.Fatal(err)
	}
	if addr.String() != "aa:bb:cc:dd:ee:ff" {
		t.Fatalf("actual: %s", addr.String())
	}
}

func TestAddressTooShort(t *testing.T) {
	if _, err := Address([]byte{0xaa, 0xbb, 0xcc}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestHeaderMarshalUnmarshal(t *testing.T) {
	header := Header{
		Dst:  BroadcastAddress,
		Src:  HardwareAddress{0x02, 0x42, 0xac, 0x11, 0x00, 0x02},
		Type: ETHER_TYPE_ARP,
	}
	data, err := header.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != HeaderSize {
		t.Fatalf("actual length: %d", len(data))
	}
	got, err := UnmarshalHeader(data)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(header, *got); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalHeaderTooShort(t *testing.T) {
	if _, err := UnmarshalHeader(make([]byte, HeaderSize-1)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestEtherTypeString(t *testing.T) {
	if ETHER_TYPE_ARP.String() != "0x0806(ARP)" {
		t.Fatalf("actual: %s", ETHER_TYPE_ARP.String())
	}
	if EtherType(0x1234).String() != "0x1234(UNKNOWN)" {
		t.Fatalf("actual: %s", EtherType(0x1234).String())
	}
}
