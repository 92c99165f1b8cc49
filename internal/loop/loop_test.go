package loop

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"astrovoid/internal/entity"
	"astrovoid/internal/game"
	"astrovoid/internal/geom"
	"astrovoid/internal/input"
)

func testSession(mode game.Mode) *session {
	s := newSession(Options{Mode: mode, Sounds: entity.NopSink{}, Rand: entity.NewRand()}, io.Discard)
	s.round = game.NewRound(mode, s.bounds(), nil, nil)
	return s
}

func TestControlsClassic(t *testing.T) {
	s := testSession(game.ModeClassic)
	c := s.controls(input.Input{Up: true, Left: true, Space: true})
	if !c.Up || !c.Left || !c.Fire || c.Down || c.Right {
		t.Errorf("got %+v, want up+left+fire", c)
	}
	if c.Pointer != (geom.Vec2{}) {
		t.Error("classic controls must not carry a pointer")
	}
}

func TestControlsModernPointer(t *testing.T) {
	s := testSession(game.ModeModern)
	// 80x30 cells over an 800x600 world puts both scales at 0.1.
	s.canvas.Resize(80, 30)

	c := s.controls(input.Input{MouseValid: true, MouseCol: 41, MouseRow: 16, MouseDown: true})
	if !c.Fire {
		t.Error("held mouse button must fire")
	}
	want := geom.Vec2{X: 400, Y: 310}
	if c.Pointer != want {
		t.Errorf("pointer = %v, want %v", c.Pointer, want)
	}

	// Without a report yet, aim defaults to straight up from the ship.
	c = s.controls(input.Input{})
	if c.Pointer.Y >= s.round.Ship.Pos.Y {
		t.Errorf("default pointer %v not above the ship at %v", c.Pointer, s.round.Ship.Pos)
	}
}

func TestFitTerminalCapsAndCenters(t *testing.T) {
	s := testSession(game.ModeClassic)
	size := func() (int, int, error) { return 200, 80, nil }

	if err := s.fitTerminal(size); err != nil {
		t.Fatal(err)
	}
	if s.canvas.TerminalWidth() != maxTermWidth || s.canvas.TerminalHeight() != maxTermHeight {
		t.Errorf("canvas %dx%d, want capped at %dx%d",
			s.canvas.TerminalWidth(), s.canvas.TerminalHeight(), maxTermWidth, maxTermHeight)
	}
	if s.canvas.OffsetCol() != 20 || s.canvas.OffsetRow() != 15 {
		t.Errorf("offsets (%d,%d), want (20,15)", s.canvas.OffsetCol(), s.canvas.OffsetRow())
	}
}

func TestMenuModeSelection(t *testing.T) {
	s := testSession(game.ModeClassic)
	stream := input.StartStream(bufio.NewReader(strings.NewReader("")))

	s.updateMenu(input.Input{Number: 2}, stream)
	if s.mode != game.ModeModern {
		t.Error("pressing 2 must select modern mode")
	}
	s.updateMenu(input.Input{Number: 1}, stream)
	if s.mode != game.ModeClassic {
		t.Error("pressing 1 must select classic mode")
	}

	s.updateMenu(input.Input{Enter: true}, stream)
	if s.screen != ScreenPlaying || s.round == nil {
		t.Error("enter must start a round")
	}
}
