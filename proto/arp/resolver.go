package arp

import (
	"fmt"

	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/logger"
	"github.com/terassyi/goarp/packet/arp"
	"github.com/terassyi/goarp/packet/ipv4"
)

// Resolver broadcasts one ARP request for the target address and waits for
// an answer.
type Resolver struct {
	iface  interfaces.Iface
	id     Identity
	target ipv4.IPAddress
	logger *logger.Logger
}

func NewResolver(iface interfaces.Iface, id Identity, target ipv4.IPAddress, debug bool) *Resolver {
	return &Resolver{
		iface:  iface,
		id:     id,
		target: target,
		logger: logger.New(debug, "arp"),
	}
}

// Resolve sends the request and blocks until an ARP frame arrives, returning
// that frame. The first ARP frame seen on the link is taken as the answer;
// neither its opcode nor its sender is verified. There is no timeout, and
// any link I/O failure is returned as fatal.
func (r *Resolver) Resolve() (*arp.Frame, error) {
	r.logger.Infof("request and wait mode: resolving %s from %s(%s)",
		r.target.String(), r.id.IpAddress.String(), r.id.MacAddress.String())

	req := arp.Request(r.id.MacAddress, r.id.IpAddress, r.target)
	data, err := req.Serialize()
	if err != nil {
		return nil, err
	}
	fmt.Printf("packet arp request 0.1\n%s\n", req.Dump())
	if _, err := r.iface.Send(data); err != nil {
		return nil, err
	}

	for {
		buf := make([]byte, 1500)
		if _, err := r.iface.Recv(buf); err != nil {
			return nil, err
		}
		if !arp.IsArp(buf) {
			r.logger.Debug("dropped a non-arp frame")
			continue
		}
		rep, err := arp.Decode(buf)
		if err != nil {
			r.logger.Warnf("dropped an arp frame: %v", err)
			continue
		}
		fmt.Printf("packet arp reply 0.2\n%s\n", rep.Dump())
		return rep, nil
	}
}
