package entity

import "astrovoid/internal/geom"

// Missile geometry: rendered and collision-tested as a line segment of
// Length velocity-steps with the given stroke thickness.
const (
	MissileLength    = 5.0
	MissileThickness = 2.0
)

// Missile is a projectile fired by the ship. Missiles do not wrap; they are
// culled once they leave the play area.
type Missile struct {
	Pos       geom.Vec2
	Vel       geom.Vec2
	Length    float64
	Thickness float64
}

// NewMissile creates a missile at pos with the given velocity.
func NewMissile(pos, vel geom.Vec2) *Missile {
	return &Missile{Pos: pos, Vel: vel, Length: MissileLength, Thickness: MissileThickness}
}

// NewClassicMissile fires from the ship along its facing direction, scaled by
// factor.
func NewClassicMissile(ship *Ship, factor float64) *Missile {
	dir := ship.Facing()
	if dir == (geom.Vec2{}) {
		// Facing is always unit length, so this never triggers.
		dir = ship.Facing()
	}
	return NewMissile(ship.Pos, dir.Scale(factor))
}

// NewModernMissile fires from the ship toward the pointer, scaled by factor.
func NewModernMissile(ship *Ship, pointer geom.Vec2, factor float64) *Missile {
	return NewMissile(ship.Pos, ship.AimAt(pointer).Scale(factor))
}

// End returns the tail end of the missile segment.
func (m *Missile) End() geom.Vec2 {
	return m.Pos.Add(m.Vel.Scale(m.Length))
}

// Advance moves the missile by its raw velocity. Unlike asteroids, missiles
// ignore the difficulty speed factor.
func (m *Missile) Advance() {
	m.Pos = m.Pos.Add(m.Vel)
}

// Hits reports whether the missile segment touches the asteroid. The asteroid
// center is projected onto the segment, the projection parameter is clamped
// to [0,1], and the closest-point distance is compared against the radius
// with a closed boundary (<=).
func (m *Missile) Hits(asteroid *Asteroid) bool {
	a := m.Pos
	b := m.End()
	c := asteroid.Pos

	ab := b.Sub(a)
	ac := c.Sub(a)

	proj := ab.Dot(ac) / ab.Dot(ab)
	if proj < 0 {
		proj = 0
	} else if proj > 1 {
		proj = 1
	}

	closest := a.Add(ab.Scale(proj))
	return geom.Distance(closest, c) <= asteroid.Size
}

// Position implements Kinematic.
func (m *Missile) Position() geom.Vec2 { return m.Pos }

// Velocity implements Kinematic.
func (m *Missile) Velocity() geom.Vec2 { return m.Vel }

// Radius implements Kinematic.
func (m *Missile) Radius() float64 { return m.Thickness / 2 }

// SetPosition implements Kinematic.
func (m *Missile) SetPosition(p geom.Vec2) { m.Pos = p }
