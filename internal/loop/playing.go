package loop

import (
	"time"

	"astrovoid/internal/entity"
	"astrovoid/internal/game"
	"astrovoid/internal/geom"
	"astrovoid/internal/input"
)

// updatePlaying advances the round by one tick and handles the resulting
// phase transitions.
func (s *session) updatePlaying(in input.Input) {
	if in.Escape {
		s.toMenu()
		return
	}

	s.elapsed = time.Since(s.roundStart).Seconds()
	if s.round.Tick(s.elapsed, s.controls(in)) {
		s.screen = ScreenDestroyed
		return
	}
	if s.round.Phase() == game.PhaseWon {
		s.screen = ScreenVictory
	}
}

// controls translates the frame input into a control snapshot. In modern
// mode the pointer comes from mouse tracking; before the first mouse report
// arrives the aim defaults to straight up.
func (s *session) controls(in input.Input) entity.Controls {
	c := entity.Controls{
		Up:    in.Up,
		Down:  in.Down,
		Left:  in.Left,
		Right: in.Right,
		Fire:  in.Space,
	}

	if s.mode == game.ModeModern {
		if in.MouseValid {
			x, y := s.canvas.TerminalToLogical(in.MouseCol, in.MouseRow)
			s.pointer = geom.Vec2{X: x, Y: y}
			if in.MouseDown {
				c.Fire = true
			}
		} else {
			s.pointer = s.round.Ship.Pos.Add(geom.Vec2{Y: -1})
		}
		c.Pointer = s.pointer
	}

	return c
}
