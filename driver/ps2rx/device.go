//go:build tinygo && rp

package ps2rx

import (
	"device/rp"
	"machine"

	"ps2hid.dev/driver/pio"
)

const smIndex = 0

// clockFreq is the PIO clock for the ps2rx state machine: 2 MHz is
// comfortably above the ~1 MHz floor needed to resolve PS/2's
// 10-16 kHz device clock edges.
const clockFreq = 2_000_000

// Device owns the PIO state machine that reassembles PS/2 frames
// from a CLK/DATA pin pair. DATA must be CLK+1.
type Device struct {
	pio       *rp.PIO0_Type
	clk       machine.Pin
	progOff   uint8
	suspended bool

	Stats Stats
}

// Configure claims state machine 0 of pio and starts decoding
// frames from clk and clk+1 (DATA).
func (d *Device) Configure(p *rp.PIO0_Type, clk machine.Pin) {
	d.pio = p
	d.clk = clk
	d.progOff = 0

	clk.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	data := clk + 1
	data.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pio.ConfigurePins(p, smIndex, clk, 2)

	pio.Program(d.pio, d.progOff, ps2rxInstructions)
	d.program()
	pio.Enable(d.pio, 0b1<<smIndex)
}

func (d *Device) program() {
	conf := ps2rxProgramDefaultConfig(d.progOff)
	conf.InBase = uint8(d.clk)
	conf.Freq = clockFreq
	pio.Configure(d.pio, smIndex, conf.Build())
}

// Poll returns the next raw 22-bit frame word, if one is ready.
// It never blocks.
func (d *Device) Poll() (frame uint32, ok bool) {
	if d.suspended || pio.IsRxEmpty(d.pio, smIndex) {
		return 0, false
	}
	return pio.Rx(d.pio, smIndex).Get() & 0x3FFFFF, true
}

// RecordRejected updates Stats for a frame word DecodeFrame in
// package ps2 rejected.
func (d *Device) RecordRejected(frame uint32) {
	d.Stats.record(frame)
}

// Suspended reports whether the state machine is currently
// suspended for a host-to-device transmission.
func (d *Device) Suspended() bool {
	return d.suspended
}

// Suspend disables the state machine so it stops consuming CLK/DATA
// edges while ps2host bit-bangs a host-to-device command over the
// same pins.
func (d *Device) Suspend() {
	pio.Disable(d.pio, 0b1<<smIndex)
	d.suspended = true
}

// Resume restarts and reactivates the state machine that Suspend
// disabled: restart, clear FIFOs, jump to program start, enable. The
// program memory and configuration registers written by Configure
// are reused as they are. It mirrors driver/tmc2209's UART Write
// restore sequence but skips the Pindirs step: ps2rx's pins are
// never driven by the PIO program, so there is no direction to
// restore.
func (d *Device) Resume() {
	pio.Restart(d.pio, 0b1<<smIndex)
	pio.ClearFIFOs(d.pio, smIndex)
	pio.Jump(d.pio, smIndex, d.progOff+ps2rxWrapTarget)
	pio.Enable(d.pio, 0b1<<smIndex)
	d.suspended = false
}
