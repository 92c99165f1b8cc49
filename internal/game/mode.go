package game

import (
	"astrovoid/internal/entity"
	"astrovoid/internal/geom"
)

// Mode selects the control scheme. The two modes share one orchestration and
// differ only in the ship thrust model, the missile aim model, the win-time
// threshold and the speed-curve amplitude.
type Mode int

const (
	// ModeClassic rotates the ship with left/right and thrusts along its
	// facing; missiles fire along the facing.
	ModeClassic Mode = iota
	// ModeModern thrusts in 8 directions and aims missiles at the pointer.
	ModeModern
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeModern {
		return "modern"
	}
	return "classic"
}

// ParseMode maps a mode name to a Mode, defaulting to classic.
func ParseMode(name string) Mode {
	if name == "modern" {
		return ModeModern
	}
	return ModeClassic
}

func (m Mode) speedAmplitude() float64 {
	if m == ModeModern {
		return 2.5
	}
	return 1.0
}

// WinTime returns the minimum round time before an empty field counts as a
// victory.
func (m Mode) WinTime() float64 {
	if m == ModeModern {
		return winTimeModern
	}
	return winTimeClassic
}

// advanceShip applies one tick of the mode's movement model.
func (m Mode) advanceShip(s *entity.Ship, c entity.Controls, b geom.Bounds) {
	if m == ModeModern {
		s.AdvanceModern(c, b)
		return
	}
	s.AdvanceClassic(c, b)
}

// newMissile fires a missile using the mode's aim model.
func (m Mode) newMissile(s *entity.Ship, c entity.Controls) *entity.Missile {
	if m == ModeModern {
		return entity.NewModernMissile(s, c.Pointer, MissileSpeedFactor)
	}
	return entity.NewClassicMissile(s, MissileSpeedFactor)
}
