package arp

import (
	"testing"
	"time"

	"github.com/terassyi/goarp/packet/arp"
	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

var (
	requesterMac = ethernet.HardwareAddress{0x02, 0x42, 0xac, 0x11, 0x00, 0x02}
	responderMac = ethernet.HardwareAddress{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	requesterIp  = ipv4.IPAddress{172, 16, 60, 250}
	responderIp  = ipv4.IPAddress{172, 16, 60, 157}
)

func recvFrame(t *testing.T, ch chan []byte) *arp.Frame {
	t.Helper()
	select {
	case data := <-ch:
		frame, err := arp.Decode(data)
		if err != nil {
			t.Fatal(err)
		}
		return frame
	case <-time.After(time.Second):
		t.Fatal("no frame was sent")
	}
	return nil
}

func TestResponderAnswersRequest(t *testing.T) {
	iface := newPipeIface("pipe0", responderMac)
	responder := NewResponder(iface, Identity{MacAddress: responderMac, IpAddress: responderIp}, false)
	go responder.Run()
	defer close(iface.rx)

	req := arp.Request(requesterMac, requesterIp, responderIp)
	data, err := req.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	iface.rx <- data

	rep := recvFrame(t, iface.tx)
	if rep.Header.Dst != requesterMac {
		t.Fatalf("actual: %s", rep.Header.Dst.String())
	}
	if rep.Header.Src != responderMac {
		t.Fatalf("actual: %s", rep.Header.Src.String())
	}
	if rep.Packet.Header.OpCode != arp.ARP_REPLY {
		t.Fatalf("actual: %s", rep.Packet.Header.OpCode.String())
	}
	if rep.Packet.SourceHardwareAddress != responderMac || rep.Packet.SourceProtocolAddress != responderIp {
		t.Fatalf("actual sender: %s %s", rep.Packet.SourceHardwareAddress.String(), rep.Packet.SourceProtocolAddress.String())
	}
	if rep.Packet.TargetHardwareAddress != requesterMac || rep.Packet.TargetProtocolAddress != requesterIp {
		t.Fatalf("actual target: %s %s", rep.Packet.TargetHardwareAddress.String(), rep.Packet.TargetProtocolAddress.String())
	}
}

func TestResponderAnswersAnyTarget(t *testing.T) {
	iface := newPipeIface("pipe0", responderMac)
	responder := NewResponder(iface, Identity{MacAddress: responderMac, IpAddress: responderIp}, false)
	go responder.Run()
	defer close(iface.rx)

	// a request for an address that is not ours is still answered
	req := arp.Request(requesterMac, requesterIp, ipv4.IPAddress{10, 0, 0, 1})
	data, err := req.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	iface.rx <- data

	rep := recvFrame(t, iface.tx)
	if rep.Packet.SourceProtocolAddress != responderIp {
		t.Fatalf("actual: %s", rep.Packet.SourceProtocolAddress.String())
	}
}

func TestResponderIgnoresNonRequests(t *testing.T) {
	iface := newPipeIface("pipe0", responderMac)
	responder := NewResponder(iface, Identity{MacAddress: responderMac, IpAddress: responderIp}, false)
	go responder.Run()
	defer close(iface.rx)

	// a non-arp frame
	nonArp := make([]byte, 60)
	copy(nonArp[0:6], requesterMac.Bytes())
	copy(nonArp[6:12], responderMac.Bytes())
	nonArp[12] = 0x08
	nonArp[13] = 0x00 // IP
	iface.rx <- nonArp

	// an arp reply
	rep := arp.Reply(requesterMac, requesterIp, responderMac, responderIp)
	repData, err := rep.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	iface.rx <- repData

	// a request, to prove the loop is still alive and nothing was answered
	// before it
	req := arp.Request(requesterMac, requesterIp, responderIp)
	reqData, err := req.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	iface.rx <- reqData

	answer := recvFrame(t, iface.tx)
	if answer.Packet.Header.OpCode != arp.ARP_REPLY {
		t.Fatalf("actual: %s", answer.Packet.Header.OpCode.String())
	}
	if answer.Packet.TargetProtocolAddress != requesterIp {
		t.Fatalf("actual: %s", answer.Packet.TargetProtocolAddress.String())
	}
	select {
	case <-iface.tx:
		t.Fatal("an ignored frame was answered")
	default:
	}
}

func TestResponderFatalOnRecvError(t *testing.T) {
	iface := newPipeIface("pipe0", responderMac)
	responder := NewResponder(iface, Identity{MacAddress: responderMac, IpAddress: responderIp}, false)
	errCh := make(chan error, 1)
	go func() {
		errCh <- responder.Run()
	}()

	close(iface.rx)
	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("expected an error")
		}
	case <-time.After(time.Second):
		t.Fatal("responder did not stop")
	}
}
