package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/logger"
	"github.com/terassyi/goarp/packet/arp"
)

type DumpCommand struct {
	Iface string
	Typ   string
	Debug bool
}

func (d *DumpCommand) Name() string {
	return "dump"
}

func (d *DumpCommand) Synopsis() string {
	return "dump arp frames"
}

func (d *DumpCommand) Usage() string {
	return `goarp dump -i <interface name>:
	dump arp frames received on the interface`
}

func (d *DumpCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&d.Iface, "i", "tap0", "interface")
	f.StringVar(&d.Typ, "type", "tap", "interface type (tap|afpacket)")
	f.BoolVar(&d.Debug, "debug", false, "debug mode")
}

func (d *DumpCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	iface, err := interfaces.New(d.Iface, d.Typ)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	defer iface.Close()

	log := logger.New(d.Debug, "arp")
	log.Infof("dumping arp frames on %s", iface.Name())

	seq := 0
	for {
		buf := make([]byte, 1500)
		if _, err := iface.Recv(buf); err != nil {
			fmt.Println(err)
			return subcommands.ExitFailure
		}
		if !arp.IsArp(buf) {
			log.Debug("dropped a non-arp frame")
			continue
		}
		frame, err := arp.Decode(buf)
		if err != nil {
			log.Warnf("dropped an arp frame: %v", err)
			continue
		}
		fmt.Printf("packet arp #%d\n%s\n", seq, frame.Dump())
		seq++
	}
}
