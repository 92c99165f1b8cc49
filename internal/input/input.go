// Package input parses the raw terminal byte stream into per-frame input
// snapshots, including SGR mouse reports for pointer aiming.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals deliver key repeats, not press/release pairs, so holds
// are reconstructed from repeat timing.
const keyHoldDuration = 30 * time.Millisecond

// Input is the current frame's input state.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Space  bool
	Enter  bool
	Escape bool
	Number int // -1 when no digit was pressed recently

	// Pointer state from mouse tracking. Col/Row are 1-based terminal
	// coordinates of the last report; Valid is false until the first
	// report arrives.
	MouseCol   int
	MouseRow   int
	MouseValid bool
	MouseDown  bool
}

// keyState tracks the last press time of each key.
type keyState struct {
	quit      time.Time
	left      time.Time
	right     time.Time
	up        time.Time
	down      time.Time
	space     time.Time
	enter     time.Time
	escape    time.Time
	number    time.Time
	numberVal int

	mouseCol   int
	mouseRow   int
	mouseValid bool
	mouseDown  bool
}

// Stream delivers input bytes via a channel and tracks key state so
// simultaneous key combinations can be detected across frames.
type Stream struct {
	ch      chan byte
	pending []byte // partial escape sequence carried between frames
	state   keyState
	closed  bool
}

// StartStream spawns a goroutine that reads from r and feeds the stream. The
// channel closes when the reader fails, which ends the session.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numberVal: -1},
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has failed. It only becomes
// true after a ReadInput call has drained past the end of the stream.
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset clears all held-key and mouse-button state, for screen transitions.
func Reset(s *Stream) {
	num := s.state.numberVal
	col, row, valid := s.state.mouseCol, s.state.mouseRow, s.state.mouseValid
	s.state = keyState{numberVal: num, mouseCol: col, mouseRow: row, mouseValid: valid}
}

// ReadInput drains all available bytes from the stream without blocking,
// parses them and returns the resulting frame input. A key counts as pressed
// if it was seen within the hold window; the mouse button stays down until
// its release report.
func ReadInput(s *Stream) Input {
	now := time.Now()
	buf := s.pending
	s.pending = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	i := 0
	for i < len(buf) {
		b := buf[i]

		if b == '\x1b' {
			n := parseEscape(&s.state, buf[i:], now)
			if n == 0 {
				// Incomplete sequence; keep the tail for the next frame.
				s.pending = append(s.pending, buf[i:]...)
				break
			}
			i += n
			continue
		}

		applyKey(&s.state, b, now)
		i++
	}

	input := Input{
		Quit:       now.Sub(s.state.quit) < keyHoldDuration,
		Left:       now.Sub(s.state.left) < keyHoldDuration,
		Right:      now.Sub(s.state.right) < keyHoldDuration,
		Up:         now.Sub(s.state.up) < keyHoldDuration,
		Down:       now.Sub(s.state.down) < keyHoldDuration,
		Space:      now.Sub(s.state.space) < keyHoldDuration,
		Enter:      now.Sub(s.state.enter) < keyHoldDuration,
		Escape:     now.Sub(s.state.escape) < keyHoldDuration,
		Number:     -1,
		MouseCol:   s.state.mouseCol,
		MouseRow:   s.state.mouseRow,
		MouseValid: s.state.mouseValid,
		MouseDown:  s.state.mouseDown,
	}
	if now.Sub(s.state.number) < keyHoldDuration {
		input.Number = s.state.numberVal
	}
	return input
}

// parseEscape consumes one escape sequence from the front of buf, updating
// state. It returns the number of bytes consumed, 0 if the sequence is
// incomplete, or 1 to treat a bare ESC as the escape key.
func parseEscape(state *keyState, buf []byte, now time.Time) int {
	if len(buf) < 2 {
		return 0
	}
	if buf[1] != '[' {
		state.escape = now
		return 1
	}
	if len(buf) < 3 {
		return 0
	}

	switch buf[2] {
	case 'A':
		state.up = now
		return 3
	case 'B':
		state.down = now
		return 3
	case 'C':
		state.right = now
		return 3
	case 'D':
		state.left = now
		return 3
	case '<':
		return parseMouse(state, buf)
	}

	return skipCSI(buf)
}

// skipCSI consumes an unrecognized CSI sequence through its final byte, so
// keys like PageUp do not leak their payload into the key state. Returns 0
// when the sequence has not fully arrived.
func skipCSI(buf []byte) int {
	for i := 2; i < len(buf); i++ {
		b := buf[i]
		if b >= 0x40 && b <= 0x7e {
			return i + 1
		}
		if b < 0x20 || b > 0x3f {
			// Not a CSI byte; stop swallowing.
			return i
		}
	}
	return 0
}

// parseMouse consumes an SGR mouse report: ESC [ < Cb ; Cx ; Cy (M|m).
// M is press or motion, m is release. Returns bytes consumed, or 0 when the
// report has not fully arrived yet.
func parseMouse(state *keyState, buf []byte) int {
	var fields [3]int
	field := 0
	i := 3
	for ; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b >= '0' && b <= '9':
			fields[field] = fields[field]*10 + int(b-'0')
		case b == ';':
			field++
			if field > 2 {
				return i + 1 // malformed, drop it
			}
		case b == 'M' || b == 'm':
			if field == 2 {
				state.mouseCol = fields[1]
				state.mouseRow = fields[2]
				state.mouseValid = true
				// Motion (bit 5) and wheel (bit 6) reports never pair
				// with a release, so they must not toggle the held flag.
				if fields[0]&(32|64) == 0 {
					state.mouseDown = b == 'M'
				}
			}
			return i + 1
		default:
			return i + 1 // malformed, drop it
		}
	}
	return 0
}

// applyKey updates the key state timestamps for a single byte.
func applyKey(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		state.number = now
		state.numberVal = int(b - '0')
	}
}
