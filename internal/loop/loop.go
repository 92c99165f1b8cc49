// Package loop runs an interactive terminal session: the menu, the playing
// screen and the end screens, with the standard Input → Update → Draw cycle.
package loop

import (
	"bufio"
	"io"
	"time"

	"astrovoid/internal/draw"
	"astrovoid/internal/entity"
	"astrovoid/internal/game"
	"astrovoid/internal/input"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// World dimensions in logical units. The simulation always runs in this
// coordinate space; the canvas scales it to the terminal.
const (
	worldWidth  = 800
	worldHeight = 600
)

// Render resolution cap. Larger terminals get a centered, bordered canvas
// instead of ever finer pixels.
const (
	maxTermWidth  = 160
	maxTermHeight = 50
)

// Options configures a session. Zero values select the classic mode, a
// silent sound sink, the shared random source and the local terminal size.
type Options struct {
	Mode     game.Mode
	Sounds   entity.SoundSink
	Rand     entity.Rand
	TermSize draw.TermSizeFunc
}

// Run drives one session until the player quits or the reader closes. The
// writer must be connected to a raw-mode terminal.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.Sounds == nil {
		opts.Sounds = entity.NopSink{}
	}
	if opts.Rand == nil {
		opts.Rand = entity.NewRand()
	}
	if opts.TermSize == nil {
		opts.TermSize = draw.DefaultTermSizeFunc
	}

	s := newSession(opts, w)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	draw.EnableMouse(w)
	defer func() {
		draw.DisableMouse(w)
		draw.ShowCursor(w)
		draw.ClearScreen(w)
	}()
	draw.ClearScreen(w)

	for s.running {
		frameStart := time.Now()

		if err := s.fitTerminal(opts.TermSize); err != nil {
			return err
		}

		in := input.ReadInput(stream)
		if stream.Closed() || in.Quit {
			break
		}

		switch s.screen {
		case ScreenMenu:
			s.updateMenu(in, stream)
		case ScreenPlaying:
			s.updatePlaying(in)
		case ScreenDestroyed, ScreenVictory:
			s.updateEnded(in, stream)
		}

		if err := s.drawFrame(); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	return nil
}
