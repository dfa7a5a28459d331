package hid

import (
	"reflect"
	"testing"

	"ps2hid.dev/ps2"
)

func TestTranslatorPressRelease(t *testing.T) {
	var tr Translator
	report, changed := tr.Handle(ps2.Event{Code: 0x1C, Pressed: true}) // A
	if !changed {
		t.Fatalf("expected change on first press")
	}
	if !reflect.DeepEqual(report, []byte{0x04}) {
		t.Fatalf("got %v, want [0x04]", report)
	}

	report, changed = tr.Handle(ps2.Event{Code: 0x1C, Pressed: false})
	if !changed {
		t.Fatalf("expected change on release")
	}
	if len(report) != 0 {
		t.Fatalf("got %v, want empty", report)
	}
}

func TestTranslatorIdempotence(t *testing.T) {
	var tr Translator
	tr.Handle(ps2.Event{Code: 0x1C, Pressed: true})
	// Redundant press of the same key (autorepeat) must not
	// report a change.
	_, changed := tr.Handle(ps2.Event{Code: 0x1C, Pressed: true})
	if changed {
		t.Fatalf("expected no change on repeated press")
	}
}

func TestTranslatorSortedMultiKey(t *testing.T) {
	var tr Translator
	tr.Handle(ps2.Event{Code: 0x1C, Pressed: true}) // A -> 0x04
	report, _ := tr.Handle(ps2.Event{Code: 0x16, Pressed: true}) // 1 -> 0x1E
	if !reflect.DeepEqual(report, []byte{0x04, 0x1E}) {
		t.Fatalf("got %v, want sorted [0x04, 0x1e]", report)
	}
}

func TestTranslatorUnknownScancode(t *testing.T) {
	var tr Translator
	var got byte
	var gotExt bool
	tr.Unknown = func(code byte, extended bool) {
		got = code
		gotExt = extended
	}
	_, changed := tr.Handle(ps2.Event{Code: 0xAA, Pressed: true})
	if changed {
		t.Fatalf("expected no change for unknown scancode")
	}
	if got != 0xAA || gotExt {
		t.Fatalf("got (%#x, %v), want (0xaa, false)", got, gotExt)
	}
}

func TestTranslatorClearOnError(t *testing.T) {
	var tr Translator
	tr.Handle(ps2.Event{Code: 0x1C, Pressed: true})
	report := tr.ClearOnError()
	if len(report) != 0 {
		t.Fatalf("got %v, want empty", report)
	}
	if !tr.USBErrored() {
		t.Fatalf("expected USBErrored to be true")
	}
	_, changed := tr.Handle(ps2.Event{Code: 0x1C, Pressed: true})
	if !changed {
		t.Fatalf("expected change after clear")
	}
	if tr.USBErrored() {
		t.Fatalf("expected USBErrored to clear after a changed report")
	}
}

func TestTranslatorToggleKey(t *testing.T) {
	// Caps Lock is mapped as a plain (non-toggle) key in this
	// keymap, matching the original firmware's KEY_MAP; this test
	// exercises the toggle code path directly via ActiveSet.
	var s ActiveSet
	s.Toggle(0x39)
	if !s.Has(0x39) {
		t.Fatalf("expected toggle to add")
	}
	s.Toggle(0x39)
	if s.Has(0x39) {
		t.Fatalf("expected second toggle to remove")
	}
}
