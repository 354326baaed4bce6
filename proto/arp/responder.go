package arp

import (
	"fmt"

	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/logger"
	"github.com/terassyi/goarp/packet/arp"
)

// Responder answers every ARP request heard on the link with a reply
// carrying the local identity. It answers regardless of the requested
// target protocol address.
type Responder struct {
	iface  interfaces.Iface
	id     Identity
	logger *logger.Logger
	seq    int
}

func NewResponder(iface interfaces.Iface, id Identity, debug bool) *Responder {
	return &Responder{
		iface:  iface,
		id:     id,
		logger: logger.New(debug, "arp"),
	}
}

// Run blocks on the link and replies to ARP requests until a read or write
// fails. There is no retry path; the first I/O failure is returned and ends
// the process.
func (r *Responder) Run() error {
	r.logger.Infof("wait and reply mode: answering arp requests on %s as %s(%s)",
		r.iface.Name(), r.id.IpAddress.String(), r.id.MacAddress.String())
	for {
		buf := make([]byte, 1500)
		if _, err := r.iface.Recv(buf); err != nil {
			return err
		}
		if !arp.IsArp(buf) {
			r.logger.Debug("dropped a non-arp frame")
			continue
		}
		req, err := arp.Decode(buf)
		if err != nil {
			// undersized reads never come off a healthy link
			r.logger.Warnf("dropped an arp frame: %v", err)
			continue
		}
		if req.Packet.Header.OpCode != arp.ARP_REQUEST {
			r.logger.Debugf("dropped an arp frame with opcode %s", req.Packet.Header.OpCode.String())
			continue
		}

		fmt.Printf("packet arp request #%d.1\n%s\n", r.seq, req.Dump())

		rep := arp.Reply(r.id.MacAddress, r.id.IpAddress,
			req.Packet.SourceHardwareAddress, req.Packet.SourceProtocolAddress)
		data, err := rep.Serialize()
		if err != nil {
			return err
		}
		fmt.Printf("packet arp reply #%d.2\n%s\n", r.seq, rep.Dump())
		r.seq++

		if _, err := r.iface.Send(data); err != nil {
			return err
		}
	}
}
