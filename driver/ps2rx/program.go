// Package ps2rx drives the PIO program that reassembles PS/2
// device-to-host frames from the CLK/DATA pins.
//
// Below is the API to please pioasm -o go.
package ps2rx

import "ps2hid.dev/driver/pio"

// ps2rxInstructions is the hand-assembled PIO program corresponding
// to:
//
//	.program ps2rx
//	wrap_target
//	    wait 1 pin 0        ; CLK idle high
//	    wait 0 pin 0        ; CLK falling edge: start bit
//	    in pins, 2          ; sample CLK,DATA (start bit)
//	    set x, 9
//	bitloop:
//	    wait 1 pin 0        ; CLK high
//	    wait 0 pin 0        ; CLK falling edge: next bit
//	    in pins, 2          ; sample CLK,DATA
//	    jmp x--, bitloop
//	wrap
//
// Configured with in_shiftdir=left, autopush, push_thresh=22: 11
// two-bit samples (start, 8 data, parity, stop) accumulate into the
// low 22 bits of the ISR before each autopush.
var ps2rxInstructions = []uint16{
	0x20A0, // wait 1 pin 0
	0x2020, // wait 0 pin 0
	0x4002, // in pins, 2
	0xE029, // set x, 9
	0x20A0, // wait 1 pin 0      (bitloop)
	0x2020, // wait 0 pin 0
	0x4002, // in pins, 2
	0x0044, // jmp x--, 4        (bitloop)
}

const (
	ps2rxWrapTarget = 0
	ps2rxWrap       = 7
)

// ps2rxProgramDefaultConfig returns the state machine configuration
// for the ps2rx program loaded at offset. Callers still need to set
// InBase and Freq.
func ps2rxProgramDefaultConfig(offset uint8) pio.StateMachineConfig {
	c := pio.DefaultStateMachineConfig()
	c.SetWrap(offset+ps2rxWrapTarget, offset+ps2rxWrap)
	c.InShiftDir = pio.ShiftLeft
	c.Autopush = true
	c.PushThreshold = 22
	c.FIFOMode = pio.FIFOJoinRX
	return c
}
