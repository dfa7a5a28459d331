package ps2

// Parser turns a byte stream of scancode set 2 into key events. The
// zero value is ready to use.
type Parser struct {
	extendedPending bool
	breakPending    bool
	// pauseState is 0 when idle, or 1..5 while consuming the
	// Pause key's fixed 8-byte make E1 14 77 E1 F0 14 F0 77.
	pauseState uint8
}

// Feed consumes one byte from the device and reports what it
// produced.
func (p *Parser) Feed(s byte) (Event, FeedResult) {
	if p.pauseState > 0 {
		return p.feedPause(s)
	}

	switch s {
	case 0xFA:
		return Event{}, ResultAck
	case 0xE1:
		p.pauseState = 1
		return Event{}, ResultNone
	case 0xE0:
		p.extendedPending = true
		return Event{}, ResultNone
	case 0xF0:
		p.breakPending = true
		return Event{}, ResultNone
	default:
		return p.emit(s)
	}
}

func (p *Parser) emit(s byte) (Event, FeedResult) {
	pressed := !p.breakPending
	extended := p.extendedPending
	p.extendedPending = false
	p.breakPending = false

	if extended && s == 0x12 {
		// Fake shift inside the E0 12 / E0 F0 12 Print Screen
		// sequence; not a real key.
		return Event{}, ResultNone
	}
	return Event{Code: s, Extended: extended, Pressed: pressed}, ResultEvent
}

func (p *Parser) feedPause(s byte) (Event, FeedResult) {
	if s == 0xE1 {
		p.pauseState = 1
		return Event{}, ResultNone
	}
	switch p.pauseState {
	case 1:
		switch s {
		case 0x14:
			p.pauseState = 2
		case 0xF0:
			p.pauseState = 3
		default:
			p.pauseState = 0
		}
	case 2:
		p.pauseState = 0
		if s == 0x77 {
			return Event{Code: 0x77, Extended: true, Pressed: true}, ResultEvent
		}
	case 3:
		if s == 0x14 {
			p.pauseState = 4
		} else {
			p.pauseState = 0
		}
	case 4:
		if s == 0xF0 {
			p.pauseState = 5
		} else {
			p.pauseState = 0
		}
	case 5:
		p.pauseState = 0
		if s == 0x77 {
			return Event{Code: 0x77, Extended: true, Pressed: false}, ResultEvent
		}
	}
	return Event{}, ResultNone
}
