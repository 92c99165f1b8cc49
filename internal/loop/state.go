package loop

import (
	"io"
	"time"

	"astrovoid/internal/draw"
	"astrovoid/internal/entity"
	"astrovoid/internal/game"
	"astrovoid/internal/geom"
	"astrovoid/internal/input"
)

// Screen is the session's current display state.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenDestroyed
	ScreenVictory
)

// backdropLimit caps the asteroids drifting behind the menu.
const backdropLimit = 6

// session holds everything one player connection needs: the selected mode,
// the active round, the menu backdrop and the render plumbing.
type session struct {
	screen  Screen
	mode    game.Mode
	running bool

	rng    entity.Rand
	sounds entity.SoundSink

	round      *game.Round
	roundStart time.Time
	elapsed    float64   // round clock of the last tick
	pointer    geom.Vec2 // last known aim point, modern mode

	backdrop      []*entity.Asteroid
	backdropSpawn float64
	menuStart     time.Time

	canvas *draw.Canvas
	out    *draw.ChunkWriter
}

func newSession(opts Options, w io.Writer) *session {
	return &session{
		screen:    ScreenMenu,
		mode:      opts.Mode,
		running:   true,
		rng:       opts.Rand,
		sounds:    opts.Sounds,
		menuStart: time.Now(),
		canvas:    draw.NewScaledCanvas(80, 24, worldWidth, worldHeight),
		out:       draw.NewChunkWriter(w, 0, 0),
	}
}

func (s *session) bounds() geom.Bounds {
	return geom.Bounds{Width: worldWidth, Height: worldHeight}
}

// fitTerminal resizes the canvas to the current terminal, capping the render
// resolution and centering the play area in oversized terminals.
func (s *session) fitTerminal(size draw.TermSizeFunc) error {
	termWidth, termHeight, err := size()
	if err != nil {
		return err
	}

	w, h := termWidth, termHeight
	if w > maxTermWidth {
		w = maxTermWidth
	}
	if h > maxTermHeight {
		h = maxTermHeight
	}

	s.canvas.Resize(w, h)
	s.canvas.SetOffset((termWidth-w)/2, (termHeight-h)/2)
	s.out.SetOffset(s.canvas.OffsetCol(), s.canvas.OffsetRow())
	return nil
}

// startRound clears held keys and begins a fresh round in the selected mode.
func (s *session) startRound(stream *input.Stream) {
	input.Reset(stream)
	s.round = game.NewRound(s.mode, s.bounds(), s.rng, s.sounds)
	s.roundStart = time.Now()
	s.elapsed = 0
	s.screen = ScreenPlaying
}

// updateMenu drifts the backdrop and handles mode selection.
func (s *session) updateMenu(in input.Input, stream *input.Stream) {
	t := time.Since(s.menuStart).Seconds()
	if len(s.backdrop) < backdropLimit {
		entity.SpawnDue(&s.backdrop, &s.backdropSpawn, t, 1.0, s.bounds(), s.rng)
	}
	for _, a := range s.backdrop {
		a.Advance(true, 1, s.bounds())
	}

	switch {
	case in.Number == 1 || in.Left:
		s.mode = game.ModeClassic
	case in.Number == 2 || in.Right:
		s.mode = game.ModeModern
	}

	if in.Space || in.Enter {
		s.startRound(stream)
	}
}

// toMenu returns to the menu with a fresh backdrop.
func (s *session) toMenu() {
	s.round = nil
	s.screen = ScreenMenu
	s.menuStart = time.Now()
	s.backdrop = s.backdrop[:0]
	s.backdropSpawn = 0
}

// updateEnded handles the destroyed and victory screens.
func (s *session) updateEnded(in input.Input, stream *input.Stream) {
	switch {
	case in.Space || in.Enter:
		s.startRound(stream)
	case in.Escape:
		s.toMenu()
	}
}
