// Package hid turns decoded PS/2 key events into USB HID keyboard
// reports, tracking which HID usage codes are currently held.
package hid

// maxActive bounds the active set. USB boot keyboard reports carry
// at most 6 simultaneous non-modifier keys plus 8 modifiers; this
// firmware tracks more than that so a caller can observe true key
// state even past rollover, and applies the 6-key-rollover policy
// at the platform boundary instead.
const maxActive = 14

// ActiveSet is a small sorted set of HID usage codes, kept sorted
// by insertion rather than by a sort pass, since it never holds
// more than a literal keyboard's worth of simultaneously held keys.
type ActiveSet struct {
	sorted [maxActive]byte
	n      int
}

// Has reports whether code is currently in the set.
func (s *ActiveSet) Has(code byte) bool {
	_, ok := s.find(code)
	return ok
}

func (s *ActiveSet) find(code byte) (int, bool) {
	for i := 0; i < s.n; i++ {
		if s.sorted[i] == code {
			return i, true
		}
		if s.sorted[i] > code {
			return i, false
		}
	}
	return s.n, false
}

// Add inserts code if absent, keeping the set sorted. Reports
// whether the set changed.
func (s *ActiveSet) Add(code byte) bool {
	i, ok := s.find(code)
	if ok {
		return false
	}
	if s.n >= maxActive {
		return false
	}
	copy(s.sorted[i+1:s.n+1], s.sorted[i:s.n])
	s.sorted[i] = code
	s.n++
	return true
}

// Remove deletes code if present, keeping the set sorted. Reports
// whether the set changed.
func (s *ActiveSet) Remove(code byte) bool {
	i, ok := s.find(code)
	if !ok {
		return false
	}
	copy(s.sorted[i:s.n-1], s.sorted[i+1:s.n])
	s.n--
	return true
}

// Toggle flips code's membership in the set. The set is left
// unchanged only when code is absent and the set is already full.
func (s *ActiveSet) Toggle(code byte) {
	if !s.Remove(code) {
		s.Add(code)
	}
}

// Clear empties the set.
func (s *ActiveSet) Clear() {
	s.n = 0
}

// Codes returns the current sorted active usage codes. The slice
// aliases the set's backing array and is only valid until the next
// mutation.
func (s *ActiveSet) Codes() []byte {
	return s.sorted[:s.n]
}

// Equal reports whether two active sets hold the same codes. Since
// both are kept sorted, this is a straight slice comparison.
func (s *ActiveSet) Equal(other *ActiveSet) bool {
	if s.n != other.n {
		return false
	}
	for i := 0; i < s.n; i++ {
		if s.sorted[i] != other.sorted[i] {
			return false
		}
	}
	return true
}
