//go:build !tinygo

package main

import "ps2hid.dev/status"

// simPlatform stands in for the RP2040 hardware in any build that
// isn't a TinyGo build, so the rest of the firmware (and its
// tests) can be exercised without real PS/2 or USB hardware.
type simPlatform struct {
	led fakeLED
}

func newPlatform() (Platform, error) {
	return &simPlatform{}, nil
}

func (p *simPlatform) PollFrame() (uint32, bool) {
	return 0, false
}

func (p *simPlatform) RecordRejected(frame uint32) {}

func (p *simPlatform) SendReport(codes []byte) error {
	return nil
}

func (p *simPlatform) Host() Commander {
	return fakeCommander{}
}

func (p *simPlatform) LED() status.LED {
	return &p.led
}

type fakeLED struct{}

func (*fakeLED) WriteColor(status.RGB) error { return nil }

type fakeCommander struct{}

func (fakeCommander) Ack()                    {}
func (fakeCommander) Enable() error           { return nil }
func (fakeCommander) SetLEDs(mask byte) error { return nil }
