package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/packet/ipv4"
	"github.com/terassyi/goarp/proto/arp"
)

type ResolverCommand struct {
	Iface  string
	Typ    string
	Addr   string
	Target string
	Debug  bool
}

func (r *ResolverCommand) Name() string {
	return "resolver"
}

func (r *ResolverCommand) Synopsis() string {
	return "resolve a protocol address"
}

func (r *ResolverCommand) Usage() string {
	return `goarp resolver -i <interface name> -target <target protocol address>:
	send one arp request and wait for the answer`
}

func (r *ResolverCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.Iface, "i", "tap0", "interface")
	f.StringVar(&r.Typ, "type", "tap", "interface type (tap|afpacket)")
	f.StringVar(&r.Addr, "addr", "172.16.60.250", "local protocol address")
	f.StringVar(&r.Target, "target", "172.16.60.157", "target protocol address")
	f.BoolVar(&r.Debug, "debug", false, "debug mode")
}

func (r *ResolverCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := ipv4.StringToIPAddress(r.Target)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	iface, err := interfaces.New(r.Iface, r.Typ)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	defer iface.Close()

	id, err := arp.NewIdentity(iface, r.Addr)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	resolver := arp.NewResolver(iface, id, *target, r.Debug)
	answer, err := resolver.Resolve()
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s is at %s\n", answer.Packet.SourceProtocolAddress.String(), answer.Packet.SourceHardwareAddress.String())
	return subcommands.ExitSuccess
}
