// Package ps2 decodes the PS/2 scancode set 2 byte stream into
// discrete key events. It owns no hardware: callers feed it raw
// bytes received from the device (see driver/ps2rx) and host
// acknowledgements (see ps2host) pass through the same pipeline.
package ps2

// Event is a single key action decoded from the scancode stream.
type Event struct {
	// Code is the USB-HID-relevant scancode with the E0 prefix
	// stripped; Extended records whether the prefix was present.
	Code     byte
	Extended bool
	Pressed  bool
}

// FeedResult reports what, if anything, Feed produced.
type FeedResult uint8

const (
	// ResultNone means the byte was consumed as part of a
	// multi-byte sequence and produced no event yet.
	ResultNone FeedResult = iota
	// ResultEvent means ev is a complete key event.
	ResultEvent
	// ResultAck means the byte was the device's 0xFA command
	// acknowledgement, not a key event.
	ResultAck
)
