package keymap

import "testing"

func TestLookupKnown(t *testing.T) {
	cases := []struct {
		code     byte
		extended bool
		want     byte
	}{
		{ps2A, false, usbA},
		{ps2N1, false, usbN1},
		{ps2ERight, true, usbRight},
		{0x77, true, usbPause},
		{ps2EPrintScreen, true, usbPrintScreen},
		{ps2LShift, false, usbLeftShift},
	}
	for _, c := range cases {
		a, ok := Lookup(c.code, c.extended)
		if !ok {
			t.Fatalf("Lookup(%#x, %v): not found", c.code, c.extended)
		}
		if a.Len != 1 || a.Codes[0] != c.want {
			t.Fatalf("Lookup(%#x, %v) = %+v, want code %#x", c.code, c.extended, a, c.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	// 0x1F/0x27 non-extended GUI-key fallback scancodes are
	// intentionally left unmapped.
	if _, ok := Lookup(0x1F, false); ok {
		t.Fatalf("expected 0x1F to be unmapped")
	}
	if _, ok := Lookup(0xAA, false); ok {
		t.Fatalf("expected unused scancode 0xAA to be unmapped")
	}
}
