package main

import "ps2hid.dev/status"

// Commander is the subset of ps2host.Sender's API the main loop
// needs, factored out so platform_sim.go can stand in a fake for
// non-hardware builds.
type Commander interface {
	Ack()
	Enable() error
	SetLEDs(mask byte) error
}

// Platform is implemented once per build target: platform_rp.go for
// the real RP2040/RP2350 hardware (TinyGo with the rp tag),
// platform_sim.go for every non-TinyGo build.
type Platform interface {
	// PollFrame returns the next raw PS/2 frame word, if any.
	PollFrame() (frame uint32, ok bool)
	// RecordRejected updates frame/parity error counters for a
	// frame ps2.DecodeFrame rejected.
	RecordRejected(frame uint32)
	// SendReport writes a HID keyboard report built from the
	// sorted active usage codes.
	SendReport(codes []byte) error
	// Host returns the command sender used for ACK delivery and
	// device configuration commands.
	Host() Commander
	// LED returns the status indicator.
	LED() status.LED
}
