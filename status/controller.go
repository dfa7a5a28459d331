// Package status drives the single WS2812 status LED through the
// firmware's INIT/READY/USB_ERR/PS2_ERR states.
package status

import (
	"sync/atomic"
	"time"
)

// State is one of the four indicator states, stored as a single
// atomic word so any goroutine can report it without a lock.
type State uint32

const (
	Init State = iota
	Ready
	USBErr
	PS2Err
)

// RGB is a single LED color, scaled to the dim values the original
// firmware used (never full brightness, to stay comfortable to look
// at).
type RGB struct {
	R, G, B byte
}

// LED is the minimal interface to a single addressable RGB LED.
// driver.ws2812.Device (via github.com/tinygo-org/drivers/ws2812)
// satisfies it through a small adapter in cmd/ps2usb.
type LED interface {
	WriteColor(c RGB) error
}

var (
	colorOff       = RGB{}
	colorInitOn    = RGB{R: 20, G: 20}
	colorUSBErr    = RGB{R: 50}
	colorPS2ErrOn  = RGB{R: 50}
	colorReadyDim  = RGB{G: 5}
	colorReadyHot  = RGB{G: 50}
)

const activityWindow = 100 * time.Millisecond
const ps2ErrAutoClear = time.Second

// Controller owns the LED state machine. The zero value starts in
// Init; call Run in its own goroutine.
type Controller struct {
	LED LED

	state    atomic.Uint32
	lastActU atomic.Int64 // UnixNano of last activity/error trigger
}

// NewController returns a Controller driving led, starting in Init.
func NewController(led LED) *Controller {
	c := &Controller{LED: led}
	c.state.Store(uint32(Init))
	return c
}

// SetState forces the state directly, used by main at startup
// (Init -> Ready) without implying activity or an error.
func (c *Controller) SetState(s State) {
	c.state.Store(uint32(s))
}

// State returns the current state.
func (c *Controller) State() State {
	return State(c.state.Load())
}

// TriggerActivity records a key event for the Ready state's
// brighten-on-activity behavior.
func (c *Controller) TriggerActivity() {
	c.lastActU.Store(time.Now().UnixNano())
}

// TriggerError switches to s (USBErr or PS2Err) and records the
// time, so PS2Err can auto-clear later.
func (c *Controller) TriggerError(s State) {
	c.state.Store(uint32(s))
	c.lastActU.Store(time.Now().UnixNano())
}

func (c *Controller) sinceLastAct() time.Duration {
	last := c.lastActU.Load()
	if last == 0 {
		return time.Hour
	}
	return time.Duration(time.Now().UnixNano() - last)
}

// Run drives the LED forever according to the current state. It is
// meant to run in its own goroutine; it never returns.
func (c *Controller) Run() {
	for {
		switch c.State() {
		case Init:
			c.LED.WriteColor(colorInitOn)
			time.Sleep(200 * time.Millisecond)
			c.LED.WriteColor(colorOff)
			time.Sleep(200 * time.Millisecond)
		case USBErr:
			c.LED.WriteColor(colorUSBErr)
			time.Sleep(200 * time.Millisecond)
		case PS2Err:
			c.LED.WriteColor(colorPS2ErrOn)
			time.Sleep(100 * time.Millisecond)
			c.LED.WriteColor(colorOff)
			time.Sleep(100 * time.Millisecond)
			if c.sinceLastAct() > ps2ErrAutoClear {
				c.state.Store(uint32(Ready))
			}
		case Ready:
			if c.sinceLastAct() < activityWindow {
				c.LED.WriteColor(colorReadyHot)
			} else {
				c.LED.WriteColor(colorReadyDim)
			}
			time.Sleep(50 * time.Millisecond)
		}
	}
}
