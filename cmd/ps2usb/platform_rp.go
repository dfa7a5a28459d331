//go:build tinygo && rp

package main

import (
	"image/color"
	"machine"
	"machine/usb/hid/keyboard"

	"github.com/tinygo-org/drivers/ws2812"

	"ps2hid.dev/driver/ps2rx"
	"ps2hid.dev/ps2host"
	"ps2hid.dev/status"
)

// Pin assignments. CLK and DATA must be adjacent GPIOs (DATA =
// CLK+1); the status LED is a single WS2812 on its own pin,
// matching the original firmware's RP2040-Zero board (NeoPixel on
// GPIO16).
const (
	ps2ClkPin = machine.GPIO0
	ledPin    = machine.GPIO16
)

type rpPlatform struct {
	rx   ps2rx.Device
	host *ps2host.Sender
	led  *ws2812Adapter
	kb   keyboard.Keyboard
}

func newPlatform() (Platform, error) {
	p := &rpPlatform{}

	p.rx.Configure(machine.PIO0, ps2ClkPin)
	p.host = ps2host.New(ps2ClkPin, &p.rx)

	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.led = &ws2812Adapter{dev: ws2812.New(ledPin)}

	p.kb = keyboard.New()

	return p, nil
}

func (p *rpPlatform) PollFrame() (uint32, bool) {
	return p.rx.Poll()
}

func (p *rpPlatform) RecordRejected(frame uint32) {
	p.rx.RecordRejected(frame)
}

func (p *rpPlatform) Host() Commander {
	return p.host
}

func (p *rpPlatform) LED() status.LED {
	return p.led
}

// maxBootKeys is the number of simultaneous non-modifier keys a
// standard USB boot keyboard report can encode.
const maxBootKeys = 6

// errorRollOverCode is sent for every key slot when more keys are
// held than the boot report can represent, per the USB HID spec's
// phantom-state / ErrorRollOver convention.
const errorRollOverCode = 0x01

// SendReport builds an 8-byte USB HID boot keyboard report
// (modifier byte, reserved byte, up to 6 keycodes) from the sorted
// active usage codes and writes it to the USB HID endpoint.
func (p *rpPlatform) SendReport(codes []byte) error {
	var report [8]byte
	var keys [maxBootKeys]byte
	n := 0
	overflow := false
	for _, c := range codes {
		if c >= 0xE0 && c <= 0xE7 {
			report[0] |= 1 << (c - 0xE0)
			continue
		}
		if n >= maxBootKeys {
			overflow = true
			continue
		}
		keys[n] = c
		n++
	}
	if overflow {
		for i := range keys {
			keys[i] = errorRollOverCode
		}
	}
	copy(report[2:], keys[:])
	return p.kb.Port().SendReport(report[:])
}

// ws2812Adapter satisfies status.LED over a single WS2812 pixel.
type ws2812Adapter struct {
	dev ws2812.Device
}

func (a *ws2812Adapter) WriteColor(c status.RGB) error {
	return a.dev.WriteColors([]color.RGBA{{R: c.R, G: c.G, B: c.B, A: 0xFF}})
}
