package ps2rx

// FrameOutcome classifies a raw 22-bit frame word read from the PIO
// RX FIFO, independent of any hardware access, so it can be
// exercised without the tinygo/rp build tags.
type FrameOutcome uint8

const (
	FrameOK FrameOutcome = iota
	FrameBadFraming
	FrameBadParity
)

// bitAt extracts the DATA half of the i'th PIO sample (0=start,
// 1..8=data LSB-first, 9=parity, 10=stop) from a raw frame word,
// matching program.go's in_shiftdir=left, push_thresh=22 layout:
// the first sample lands at bits 21:20, the last at bits 1:0, and
// DATA occupies the high bit of each 2-bit (CLK, DATA) pair.
func bitAt(frame uint32, i int) byte {
	shift := uint((10 - i) * 2)
	pair := (frame >> shift) & 0b11
	return byte((pair >> 1) & 1)
}

// ClassifyFrame reports whether a raw frame word is well-formed,
// without assembling its data byte (see ps2.DecodeFrame for that).
func ClassifyFrame(frame uint32) FrameOutcome {
	if bitAt(frame, 0) != 0 || bitAt(frame, 10) != 1 {
		return FrameBadFraming
	}
	var ones int
	for i := 1; i <= 8; i++ {
		ones += int(bitAt(frame, i))
	}
	if (ones+int(bitAt(frame, 9)))%2 != 1 {
		return FrameBadParity
	}
	return FrameOK
}

// Stats counts framing and parity rejections seen by a Device.
type Stats struct {
	FrameErrors  uint32
	ParityErrors uint32
}

func (s *Stats) record(frame uint32) {
	switch ClassifyFrame(frame) {
	case FrameBadFraming:
		s.FrameErrors++
	case FrameBadParity:
		s.ParityErrors++
	}
}
