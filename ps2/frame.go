package ps2

import "math/bits"

// DecodeFrame extracts a scancode byte from a 22-bit raw frame word
// captured by driver/ps2rx. The word holds 11 two-bit pin samples
// (CLK, DATA), shifted in left-to-right: the first sample (the start
// bit) occupies bits 21-20, the last (the stop bit) occupies bits
// 1-0. Only the DATA half of each pair (the high bit) carries the
// frame's logical bit.
func DecodeFrame(frame uint32) (data byte, ok bool) {
	// Each 2-bit sample packs (CLK, DATA) with CLK in the low bit
	// and DATA in the high bit, per driver/ps2rx's in_base=CLK,
	// in pins,2 sampling order.
	bit := func(sampleIndex int) uint32 {
		shift := uint((10 - sampleIndex) * 2)
		pair := (frame >> shift) & 0b11
		return (pair >> 1) & 1
	}

	start := bit(0)
	if start != 0 {
		return 0, false
	}
	stop := bit(10)
	if stop != 1 {
		return 0, false
	}

	var d byte
	for i := range 8 {
		d |= byte(bit(1+i)) << i
	}
	parity := bit(9)
	if bits.OnesCount8(d)&1 == int(parity) {
		// Odd parity requires the data bits and the parity bit
		// to together contain an odd number of ones.
		return 0, false
	}
	return d, true
}
