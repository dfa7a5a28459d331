package keymap

// Action is what a single PS/2 scancode produces in terms of HID
// usage codes.
type Action struct {
	Codes [6]byte
	Len   uint8
	// Toggle keys flip their HID usage's membership in the active
	// set on every press edge and do nothing on release, instead
	// of the normal press-adds/release-removes rule.
	Toggle bool
}

// k builds a plain (press-adds, release-removes) single-code action.
func k(code byte) Action {
	return Action{Codes: [6]byte{code}, Len: 1}
}

// t builds a toggle action: every press flips membership.
func t(code byte) Action {
	return Action{Codes: [6]byte{code}, Len: 1, Toggle: true}
}

// m builds a multi-code (macro) action: all codes are added on
// press and removed on release, like k but for more than one usage.
func m(codes ...byte) Action {
	var a Action
	a.Len = uint8(len(codes))
	copy(a.Codes[:], codes)
	return a
}
