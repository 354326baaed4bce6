package ipv4

import "testing"

func TestStringToIPAddress(t *testing.T) {
	addr, err := StringToIPAddress("172.16.60.157")
	if err != nil {
		t.Fatal(err)
	}
	wanted := IPAddress{172, 16, 60, 157}
	if *addr != wanted {
		t.Fatalf("actual: %v", *addr)
	}
	if addr.String() != "172.16.60.157" {
		t.Fatalf("actual: %s", addr.String())
	}
}

func TestStringToIPAddressInvalid(t *testing.T) {
	for _, s := range []string{"", "172.16.60", "172.16.60.157.1", "172.16.60.256", "172.16.60.-1", "a.b.c.d"} {
		if _, err := StringToIPAddress(s); err == nil {
			t.Fatalf("expected an error for %q", s)
		}
	}
}

func TestAddress(t *testing.T) {
	addr, err := Address([]byte{192, 168, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if addr.String() != "192.168.0.1" {
		t.Fatalf("actual: %s", addr.String())
	}
	if _, err := Address([]byte{192, 168, 0}); err == nil {
		t.Fatal("expected an error")
	}
}
