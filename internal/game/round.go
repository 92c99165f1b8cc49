package game

import (
	"astrovoid/internal/entity"
	"astrovoid/internal/geom"
)

// Phase is the round's lifecycle state. Destroyed and Won are terminal; the
// presentation layer decides whether to start another round.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseDestroyed
	PhaseWon
)

// Round owns all mutable simulation state for one play session: the entity
// collections, the ship, and the spawn/shot timestamps. Collections are only
// ever touched inside Tick, one tick at a time.
type Round struct {
	Mode   Mode
	Bounds geom.Bounds

	Ship       *entity.Ship
	Asteroids  []*entity.Asteroid
	BlackHoles []*entity.BlackHole
	Missiles   []*entity.Missile

	LastSpawn float64
	LastShot  float64

	rng    entity.Rand
	sounds entity.SoundSink
	phase  Phase
}

// NewRound creates a fresh round for the given mode and play area. A nil rng
// falls back to the shared math/rand source; a nil sink discards all sounds.
func NewRound(mode Mode, b geom.Bounds, rng entity.Rand, sounds entity.SoundSink) *Round {
	if rng == nil {
		rng = entity.NewRand()
	}
	if sounds == nil {
		sounds = entity.NopSink{}
	}
	return &Round{
		Mode:   mode,
		Bounds: b,
		Ship:   entity.NewShip(b),
		rng:    rng,
		sounds: sounds,
	}
}

// Phase returns the round's current lifecycle state.
func (r *Round) Phase() Phase {
	return r.phase
}

// Tick advances the simulation by one step at the given round time with the
// given control snapshot. It returns true when the round has ended in defeat:
// the shield was exhausted by a qualifying collision or the ship touched a
// black hole. Victory is observable through Phase.
//
// The sequence per tick: ship kinematics, asteroid kinematics, the
// asteroid-asteroid pass (split or fuse), ship collision checks, missile
// spawn, missile kinematics, the missile-asteroid pass, missile culling, and
// finally the spawn-policy check.
func (r *Round) Tick(now float64, c entity.Controls) bool {
	if r.phase != PhasePlaying {
		return r.phase == PhaseDestroyed
	}

	r.Mode.advanceShip(r.Ship, c, r.Bounds)

	factor := SpeedMultiplier(now, r.Mode)
	for _, a := range r.Asteroids {
		a.Advance(true, factor, r.Bounds)
	}

	ResolveAsteroidCollisions(&r.Asteroids, &r.BlackHoles, now, r.rng)
	for _, h := range r.BlackHoles {
		h.AdvanceRotation()
	}

	if r.shipHitsAsteroid() && r.Ship.CheckShield(now, r.sounds) {
		r.phase = PhaseDestroyed
		return true
	}
	if r.shipHitsBlackHole() {
		r.phase = PhaseDestroyed
		return true
	}

	if c.Fire && now-r.LastShot > ShotCooldown {
		r.Missiles = append(r.Missiles, r.Mode.newMissile(r.Ship, c))
		r.LastShot = now
		r.sounds.Play(entity.SoundShoot)
	}
	for _, m := range r.Missiles {
		m.Advance()
	}

	ResolveMissileCollisions(&r.Missiles, &r.Asteroids, r.Ship, now, r.sounds, r.rng)
	CullMissiles(&r.Missiles, r.Bounds)

	if now < SpawnCutoff {
		entity.SpawnDue(&r.Asteroids, &r.LastSpawn, now, SpawnInterval(now, SpawnMidpoint), r.Bounds, r.rng)
	}

	if len(r.Asteroids) == 0 && now > r.Mode.WinTime() {
		r.phase = PhaseWon
	}
	return false
}

func (r *Round) shipHitsAsteroid() bool {
	for _, a := range r.Asteroids {
		if r.Ship.Collides(a) {
			return true
		}
	}
	return false
}

func (r *Round) shipHitsBlackHole() bool {
	for _, h := range r.BlackHoles {
		if r.Ship.CollidesBlackHole(h) {
			return true
		}
	}
	return false
}
