package arp

import (
	"io"

	"github.com/terassyi/goarp/packet/ethernet"
)

// pipeIface is an in-memory link endpoint. Frames written with Send appear
// on tx; frames pushed into rx are handed out by Recv. Two of them with the
// channels crossed form a link.
type pipeIface struct {
	name string
	mac  ethernet.HardwareAddress
	rx   chan []byte
	tx   chan []byte
}

func newPipeIface(name string, mac ethernet.HardwareAddress) *pipeIface {
	return &pipeIface{
		name: name,
		mac:  mac,
		rx:   make(chan []byte, 16),
		tx:   make(chan []byte, 16),
	}
}

func crossPipe(a, b *pipeIface) {
	b.rx = a.tx
	b.tx = a.rx
}

func (p *pipeIface) Name() string {
	return p.name
}

func (p *pipeIface) Fd() int {
	return -1
}

func (p *pipeIface) Recv(buf []byte) (int, error) {
	data, ok := <-p.rx
	if !ok {
		return 0, io.EOF
	}
	return copy(buf, data), nil
}

func (p *pipeIface) Send(buf []byte) (int, error) {
	data := make([]byte, len(buf))
	copy(data, buf)
	p.tx <- data
	return len(buf), nil
}

func (p *pipeIface) Close() error {
	return nil
}

func (p *pipeIface) Address() ([]byte, error) {
	return p.mac.Bytes(), nil
}
