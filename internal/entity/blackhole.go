package entity

import "astrovoid/internal/geom"

// BlackHoleSize is the fixed collision radius of every black hole.
const BlackHoleSize = 50.0

// BlackHole is a stationary hazard created when two asteroids fuse. It never
// leaves the field; touching it ends the round.
type BlackHole struct {
	Pos      geom.Vec2
	Size     float64
	Rotation float64
}

// NewBlackHole creates a black hole at the given position.
func NewBlackHole(pos geom.Vec2) *BlackHole {
	return &BlackHole{Pos: pos, Size: BlackHoleSize}
}

// AdvanceRotation spins the black hole. Cosmetic only; the angle grows
// without bound and is never wrapped.
func (b *BlackHole) AdvanceRotation() {
	b.Rotation += rotationStep
}

// Position implements Kinematic.
func (b *BlackHole) Position() geom.Vec2 { return b.Pos }

// Velocity implements Kinematic. Black holes do not move.
func (b *BlackHole) Velocity() geom.Vec2 { return geom.Vec2{} }

// Radius implements Kinematic.
func (b *BlackHole) Radius() float64 { return b.Size }

// SetPosition implements Kinematic.
func (b *BlackHole) SetPosition(p geom.Vec2) { b.Pos = p }
