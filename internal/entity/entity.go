// Package entity holds the simulation entities: asteroids, black holes,
// missiles and the player ship. Entities are plain data with synchronous
// methods; all randomness and time comes in through parameters so a round can
// be driven deterministically.
package entity

import "astrovoid/internal/geom"

// Kinematic is the behavior shared by every moving object: a position, a
// velocity and a collision radius.
type Kinematic interface {
	Position() geom.Vec2
	Velocity() geom.Vec2
	Radius() float64
	SetPosition(geom.Vec2)
}

// Overlaps reports whether two kinematic objects collide, using the
// circle-overlap rule (strict inequality on the sum of radii).
func Overlaps(a, b Kinematic) bool {
	return geom.CirclesOverlap(a.Position(), a.Radius(), b.Position(), b.Radius())
}

// Controls is a snapshot of the logical player inputs for one tick. The input
// layer owns the mapping from physical keys and mouse buttons to these flags.
type Controls struct {
	Up, Down, Left, Right bool
	Fire                  bool
	Pointer               geom.Vec2 // cursor position, modern-mode aim
}

// Sound effect names emitted by the simulation.
const (
	SoundShoot     = "shoot"
	SoundBoom      = "boom"
	SoundCollision = "collision"
)

// SoundSink receives fire-and-forget sound effect triggers.
type SoundSink interface {
	Play(name string)
}

// NopSink discards all sound effects. Used for tests and audio-less sessions.
type NopSink struct{}

// Play implements SoundSink.
func (NopSink) Play(string) {}
