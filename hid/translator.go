package hid

import (
	"ps2hid.dev/keymap"
	"ps2hid.dev/ps2"
)

// Translator consumes ps2.Event values and maintains a USB HID
// keyboard report reflecting the currently held keys.
type Translator struct {
	active   ActiveSet
	lastSent ActiveSet
	haveSent bool
	usbErr   bool

	// Unknown is called with the raw (scancode, extended) pair
	// whenever an event has no keymap entry. May be nil.
	Unknown func(code byte, extended bool)
}

// Handle applies one decoded key event to the held-key state. It
// returns the sorted active usage codes and whether the caller
// should transmit a new report (the codes changed since the last
// report this translator produced).
func (tr *Translator) Handle(ev ps2.Event) (report []byte, changed bool) {
	action, ok := keymap.Lookup(ev.Code, ev.Extended)
	if !ok {
		if tr.Unknown != nil {
			tr.Unknown(ev.Code, ev.Extended)
		}
		return tr.currentReport(), false
	}

	for i := uint8(0); i < action.Len; i++ {
		code := action.Codes[i]
		if action.Toggle {
			if ev.Pressed {
				tr.active.Toggle(code)
			}
			continue
		}
		if ev.Pressed {
			tr.active.Add(code)
		} else {
			tr.active.Remove(code)
		}
	}

	if tr.haveSent && tr.active.Equal(&tr.lastSent) {
		return tr.currentReport(), false
	}
	tr.lastSent = tr.active
	tr.haveSent = true
	tr.usbErr = false
	return tr.currentReport(), true
}

func (tr *Translator) currentReport() []byte {
	return tr.active.Codes()
}

// ClearOnError drops all held keys after a USB transmit failure and
// returns an empty report for a best-effort recovery send. Marks
// the translator as USB-errored until the next Handle that reports
// a change.
func (tr *Translator) ClearOnError() []byte {
	tr.active.Clear()
	tr.lastSent.Clear()
	tr.haveSent = false
	tr.usbErr = true
	return tr.currentReport()
}

// USBErrored reports whether ClearOnError has been called since the
// last Handle that reported a change. The translator does not see
// USB sends itself.
func (tr *Translator) USBErrored() bool {
	return tr.usbErr
}
