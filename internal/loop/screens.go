package loop

import (
	"fmt"
	"strings"

	"astrovoid/internal/draw"
	"astrovoid/internal/entity"
	"astrovoid/internal/game"
)

// drawFrame renders the current screen into the chunk writer and flushes one
// frame to the terminal.
func (s *session) drawFrame() error {
	draw.ClearScreen(s.out)
	s.canvas.Clear()

	if s.screen == ScreenMenu {
		s.renderBackdrop()
	} else {
		s.renderRound()
	}
	s.canvas.Render(s.out)
	s.canvas.RenderBorder(s.out)

	switch s.screen {
	case ScreenMenu:
		s.drawMenuText()
	case ScreenPlaying:
		s.drawHUD()
	case ScreenDestroyed:
		s.drawHUD()
		s.drawEndText("SHIP LOST")
	case ScreenVictory:
		s.drawHUD()
		s.drawEndText("SECTOR CLEARED")
	}

	return s.out.Flush()
}

// centered writes text horizontally centered on the given canvas row.
func (s *session) centered(row int, text string) {
	col := (s.canvas.TerminalWidth()-len([]rune(text)))/2 + 1
	if col < 1 {
		col = 1
	}
	s.out.WriteAt(col, row, text)
}

func (s *session) drawMenuText() {
	cy := s.canvas.TerminalHeight() / 2

	s.centered(cy-4, "A S T R O V O I D")

	classic := "  CLASSIC  "
	modern := "  MODERN  "
	if s.mode == game.ModeClassic {
		classic = "[ CLASSIC ]"
	} else {
		modern = "[ MODERN ]"
	}
	s.centered(cy-1, classic+"   "+modern)
	s.centered(cy+1, "1/2 or arrows to choose, SPACE to launch")

	if s.mode == game.ModeClassic {
		s.centered(cy+3, "A/D rotate, W thrust, SPACE fire")
	} else {
		s.centered(cy+3, "WASD move, mouse aim, click or SPACE fire")
	}
	s.centered(cy+5, "Q to quit")
}

func (s *session) drawHUD() {
	r := s.round
	s.out.WriteAt(2, 1, fmt.Sprintf("TIME %5.1f", s.elapsed))
	s.out.WriteAt(2, 2, fmt.Sprintf("SCORE %d", r.Ship.Score))

	shield := strings.Repeat("▮", r.Ship.Shield) +
		strings.Repeat("▯", entity.InitialShield-r.Ship.Shield)
	col := s.canvas.TerminalWidth() - 11
	s.out.WriteAt(col, 1, "SHIELD "+shield)
	s.out.WriteAt(col, 2, fmt.Sprintf("ROCKS %d", len(r.Asteroids)))
}

func (s *session) drawEndText(title string) {
	cy := s.canvas.TerminalHeight() / 2
	s.centered(cy-2, title)
	s.centered(cy, fmt.Sprintf("SCORE %d IN %.1fs", s.round.Ship.Score, s.elapsed))
	s.centered(cy+2, "SPACE for another round, ESC for the menu")
}
