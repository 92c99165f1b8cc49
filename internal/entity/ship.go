package entity

import (
	"math"

	"astrovoid/internal/geom"
)

// Ship tuning. Acceleration is added along the thrust direction each tick;
// the velocity then decays multiplicatively, which caps the top speed.
const (
	ShipSize         = 20.0
	shipAcceleration = 0.18
	shipDeceleration = 0.99
	shipTurnStep     = 0.05

	// InitialShield is the ship's starting health.
	InitialShield = 3
	// shieldCooldown is the invulnerability window after a hit, in
	// simulation seconds.
	shieldCooldown = 2.0
)

// Ship is the player-controlled entity. One instance lives for one round.
type Ship struct {
	Pos      geom.Vec2
	Vel      geom.Vec2
	Size     float64
	Rotation float64 // facing angle, classic mode only
	Shield   int
	// LastCollision is the clock value of the last shield decrement. It
	// starts one cooldown in the past so the first hit always registers.
	LastCollision float64
	Score         int
}

// NewShip creates a ship at the center of the play area with a full shield.
func NewShip(b geom.Bounds) *Ship {
	return &Ship{
		Pos:           b.Center(),
		Size:          ShipSize,
		Shield:        InitialShield,
		LastCollision: -shieldCooldown,
	}
}

// Facing returns the unit vector of the ship's nose for its current rotation,
// using the (sin θ, -cos θ) convention: rotation 0 points up the screen.
func (s *Ship) Facing() geom.Vec2 {
	return geom.Vec2{X: math.Sin(s.Rotation), Y: -math.Cos(s.Rotation)}
}

// AimAt returns the unit vector from the ship toward target.
func (s *Ship) AimAt(target geom.Vec2) geom.Vec2 {
	d := target.Sub(s.Pos)
	return geom.FromAngle(math.Atan2(d.Y, d.X))
}

// AdvanceClassic applies one tick of the classic control scheme: thrust along
// the facing direction, multiplicative velocity decay, fixed-step rotation
// without inertia, then a wrapped position update.
func (s *Ship) AdvanceClassic(c Controls, b geom.Bounds) {
	switch {
	case c.Up && !c.Down:
		s.Vel = s.Vel.Add(s.Facing().Scale(shipAcceleration))
	case c.Down && !c.Up:
		s.Vel = s.Vel.Add(s.Facing().Scale(-shipAcceleration))
	}
	s.Vel = s.Vel.Scale(shipDeceleration)

	switch {
	case c.Left && !c.Right:
		s.Rotation -= shipTurnStep
	case c.Right && !c.Left:
		s.Rotation += shipTurnStep
	}

	s.Pos = b.Wrap(s.Pos.Add(s.Vel))
}

// modernThrust maps the four directional flags to a thrust vector. Diagonals
// are the raw (±1, ±1) combinations, not normalized. Only the eight clean
// combinations thrust; conflicting holds cancel out entirely.
func modernThrust(c Controls) geom.Vec2 {
	u, d, l, r := c.Up, c.Down, c.Left, c.Right
	switch {
	case u && !d && l && !r:
		return geom.Vec2{X: -1, Y: -1}
	case u && !d && !l && r:
		return geom.Vec2{X: 1, Y: -1}
	case !u && d && l && !r:
		return geom.Vec2{X: -1, Y: 1}
	case !u && d && !l && r:
		return geom.Vec2{X: 1, Y: 1}
	case u && !d && !l && !r:
		return geom.Vec2{Y: -1}
	case !u && d && !l && !r:
		return geom.Vec2{Y: 1}
	case !u && !d && l && !r:
		return geom.Vec2{X: -1}
	case !u && !d && !l && r:
		return geom.Vec2{X: 1}
	}
	return geom.Vec2{}
}

// AdvanceModern applies one tick of the modern control scheme: 8-directional
// thrust with the same acceleration and decay as classic mode. The ship has
// no rotation of its own; facing is derived from the pointer at draw time.
func (s *Ship) AdvanceModern(c Controls, b geom.Bounds) {
	s.Vel = s.Vel.Add(modernThrust(c).Scale(shipAcceleration))
	s.Vel = s.Vel.Scale(shipDeceleration)
	s.Pos = b.Wrap(s.Pos.Add(s.Vel))
}

// CheckShield registers a qualifying collision: if the invulnerability window
// has elapsed, it plays the collision sound, decrements the shield and stamps
// the collision time. Returns true iff the shield reached exactly 0 as a
// result. Calls inside the window are no-ops returning false.
func (s *Ship) CheckShield(now float64, sounds SoundSink) bool {
	if now-s.LastCollision >= shieldCooldown {
		sounds.Play(SoundCollision)
		s.Shield--
		s.LastCollision = now
		if s.Shield == 0 {
			return true
		}
	}
	return false
}

// Collides reports whether the ship overlaps an asteroid.
func (s *Ship) Collides(a *Asteroid) bool {
	return Overlaps(s, a)
}

// CollidesBlackHole reports whether the ship overlaps a black hole.
func (s *Ship) CollidesBlackHole(b *BlackHole) bool {
	return Overlaps(s, b)
}

// Position implements Kinematic.
func (s *Ship) Position() geom.Vec2 { return s.Pos }

// Velocity implements Kinematic.
func (s *Ship) Velocity() geom.Vec2 { return s.Vel }

// Radius implements Kinematic.
func (s *Ship) Radius() float64 { return s.Size }

// SetPosition implements Kinematic.
func (s *Ship) SetPosition(p geom.Vec2) { s.Pos = p }
