package entity

import (
	"math"

	"astrovoid/internal/geom"
)

// Shape is the size category of an asteroid.
type Shape int

const (
	ShapeSmall Shape = iota
	ShapeMedium
	ShapeLarge
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSmall:
		return "small"
	case ShapeMedium:
		return "medium"
	case ShapeLarge:
		return "large"
	}
	return "unknown"
}

// Size bounds per shape. Split logic allows some overlap between ranges.
const (
	SmallMaxSize  = 30.0
	MediumMaxSize = 50.0
	LargeMaxSize  = 70.0

	smallMinSize      = 10.0
	splitSmallMinSize = 20.0
)

// rotationStep is the per-tick spin increment; the sign is fixed at creation
// by a coin flip and the magnitude grows while the asteroid moves.
const rotationStep = 0.01

// Asteroid is a destructible space rock.
type Asteroid struct {
	Pos       geom.Vec2
	Vel       geom.Vec2
	Shape     Shape
	Size      float64 // collision radius
	Rotation  float64
	BirthTime float64 // simulation clock at creation
}

// NewAsteroid creates an asteroid with an explicit position, velocity, shape
// and size. The spin direction is a fair coin flip.
func NewAsteroid(pos, vel geom.Vec2, shape Shape, size, now float64, rng Rand) *Asteroid {
	rotation := rotationStep
	if !rng.Bool() {
		rotation = -rotationStep
	}
	return &Asteroid{
		Pos:       pos,
		Vel:       vel,
		Shape:     shape,
		Size:      size,
		Rotation:  rotation,
		BirthTime: now,
	}
}

// NewRandomAsteroid creates an asteroid with a random shape, a size uniform
// within the shape's range, a position near one of the four screen edges and
// a unit velocity at a random angle.
func NewRandomAsteroid(b geom.Bounds, now float64, rng Rand) *Asteroid {
	shape := Shape(rng.IntN(3))
	var size float64
	switch shape {
	case ShapeLarge:
		size = rng.FloatInRange(MediumMaxSize, LargeMaxSize)
	case ShapeMedium:
		size = rng.FloatInRange(SmallMaxSize, MediumMaxSize)
	default:
		size = rng.FloatInRange(smallMinSize, SmallMaxSize)
	}
	return NewAsteroid(randomEdgePos(size, b, rng), randomUnitVel(rng), shape, size, now, rng)
}

// randomEdgePos picks a random edge, a coordinate within [size/2, size] of
// that edge, and a uniform coordinate along the orthogonal axis.
func randomEdgePos(size float64, b geom.Bounds, rng Rand) geom.Vec2 {
	near := rng.FloatInRange(size/2, size)
	var x, y float64
	switch rng.IntN(4) {
	case 0: // top
		x = rng.FloatInRange(0, b.Width)
		y = near
	case 1: // right
		x = b.Width - near
		y = rng.FloatInRange(0, b.Height)
	case 2: // bottom
		x = rng.FloatInRange(0, b.Width)
		y = b.Height - near
	default: // left
		x = near
		y = rng.FloatInRange(0, b.Height)
	}
	return geom.Vec2{X: x, Y: y}
}

// randomUnitVel returns a unit velocity at a uniform random angle.
func randomUnitVel(rng Rand) geom.Vec2 {
	return geom.FromAngle(rng.FloatInRange(0, 2*math.Pi))
}

// Split breaks the asteroid into smaller fragments at the parent's position:
// Large yields two Medium, Medium yields two Small, Small yields nothing.
// Fragments carry fresh random velocities and the current clock as birth time.
func (a *Asteroid) Split(now float64, rng Rand) []*Asteroid {
	switch a.Shape {
	case ShapeLarge:
		out := make([]*Asteroid, 0, 2)
		for range 2 {
			size := rng.FloatInRange(SmallMaxSize, MediumMaxSize)
			out = append(out, NewAsteroid(a.Pos, randomUnitVel(rng), ShapeMedium, size, now, rng))
		}
		return out
	case ShapeMedium:
		out := make([]*Asteroid, 0, 2)
		for range 2 {
			size := rng.FloatInRange(splitSmallMinSize, SmallMaxSize)
			out = append(out, NewAsteroid(a.Pos, randomUnitVel(rng), ShapeSmall, size, now, rng))
		}
		return out
	}
	return nil
}

// Advance moves the asteroid by its velocity scaled with the difficulty speed
// factor and wraps the position. When rotate is set, the spin magnitude grows
// by one step in its current direction.
func (a *Asteroid) Advance(rotate bool, factor float64, b geom.Bounds) {
	a.Pos = b.Wrap(a.Pos.Add(a.Vel.Scale(factor)))
	if !rotate {
		return
	}
	if a.Rotation > 0 {
		a.Rotation += rotationStep
	} else {
		a.Rotation -= rotationStep
	}
}

// Collides reports whether two asteroids overlap.
func (a *Asteroid) Collides(other *Asteroid) bool {
	return Overlaps(a, other)
}

// SpawnDue appends one randomly generated asteroid iff at least minInterval
// simulation seconds have passed since lastSpawn, updating lastSpawn on
// success. Reports whether a spawn occurred.
func SpawnDue(asteroids *[]*Asteroid, lastSpawn *float64, now, minInterval float64, b geom.Bounds, rng Rand) bool {
	if now-minInterval > *lastSpawn {
		*asteroids = append(*asteroids, NewRandomAsteroid(b, now, rng))
		*lastSpawn = now
		return true
	}
	return false
}

// Position implements Kinematic.
func (a *Asteroid) Position() geom.Vec2 { return a.Pos }

// Velocity implements Kinematic.
func (a *Asteroid) Velocity() geom.Vec2 { return a.Vel }

// Radius implements Kinematic.
func (a *Asteroid) Radius() float64 { return a.Size }

// SetPosition implements Kinematic.
func (a *Asteroid) SetPosition(p geom.Vec2) { a.Pos = p }
