package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/proto/arp"
)

type ResponderCommand struct {
	Iface string
	Typ   string
	Addr  string
	Debug bool
}

func (r *ResponderCommand) Name() string {
	return "responder"
}

func (r *ResponderCommand) Synopsis() string {
	return "answer arp requests"
}

func (r *ResponderCommand) Usage() string {
	return `goarp responder -i <interface name> -addr <local protocol address>:
	answer every arp request received on the interface`
}

func (r *ResponderCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.Iface, "i", "tap0", "interface")
	f.StringVar(&r.Typ, "type", "tap", "interface type (tap|afpacket)")
	f.StringVar(&r.Addr, "addr", "", "local protocol address (default: the address assigned to the interface)")
	f.BoolVar(&r.Debug, "debug", false, "debug mode")
}

func (r *ResponderCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	responder := arp.NewResponder(iface, id, r.Debug)
	if err := responder.Run(); err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
