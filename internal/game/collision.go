package game

import (
	"sort"

	"astrovoid/internal/entity"
	"astrovoid/internal/geom"
)

// swapRemove deletes index i by swapping in the last element. Order is not
// preserved.
func swapRemove[T any](s []T, i int) []T {
	s[i] = s[len(s)-1]
	return s[:len(s)-1]
}

// ResolveAsteroidCollisions runs the pairwise asteroid collision pass. A pair
// is eligible once both members are older than the age guard. An eligible
// colliding pair fuses into a black hole at the first asteroid's position
// with 1-in-fusionOdds probability, otherwise both split. Each index
// participates in at most one resolution per pass. Removals use swap deletion
// over deduplicated indices in descending order; fragments are appended last.
func ResolveAsteroidCollisions(asteroids *[]*entity.Asteroid, holes *[]*entity.BlackHole, now float64, rng entity.Rand) {
	as := *asteroids
	var toRemove []int
	var fragments []*entity.Asteroid

	for i := 0; i < len(as); i++ {
		for j := i + 1; j < len(as); j++ {
			if !as[i].Collides(as[j]) ||
				now-as[i].BirthTime <= asteroidAgeGuard ||
				now-as[j].BirthTime <= asteroidAgeGuard {
				continue
			}
			if rng.IntN(fusionOdds) == 0 {
				// Fusion: the pair collapses into a black hole, no fragments.
				*holes = append(*holes, entity.NewBlackHole(as[i].Pos))
			} else {
				fragments = append(fragments, as[i].Split(now, rng)...)
				fragments = append(fragments, as[j].Split(now, rng)...)
			}
			toRemove = append(toRemove, i, j)
			break
		}
	}

	sort.Ints(toRemove)
	for k := len(toRemove) - 1; k >= 0; k-- {
		if k+1 < len(toRemove) && toRemove[k] == toRemove[k+1] {
			continue
		}
		as = swapRemove(as, toRemove[k])
	}

	*asteroids = append(as, fragments...)
}

// ResolveMissileCollisions scans each missile against the asteroid list in
// order. The first hit plays the boom effect, splits the struck asteroid,
// credits the ship's score, and swap-removes both the missile and the
// asteroid before appending the fragments. A missile resolves at most one
// hit per pass.
func ResolveMissileCollisions(missiles *[]*entity.Missile, asteroids *[]*entity.Asteroid, ship *entity.Ship, now float64, sounds entity.SoundSink, rng entity.Rand) {
	ms := *missiles
	as := *asteroids

	i := 0
	for i < len(ms) {
		for j := 0; j < len(as); j++ {
			if !ms[i].Hits(as[j]) {
				continue
			}
			sounds.Play(entity.SoundBoom)
			fragments := as[j].Split(now, rng)
			ship.Score += ScoreFor(as[j].Shape)

			as = swapRemove(as, j)
			ms = swapRemove(ms, i)
			as = append(as, fragments...)

			// Revisit the slot that now holds the swapped-in missile.
			if i > 0 {
				i--
			}
			break
		}
		i++
	}

	*missiles = ms
	*asteroids = as
}

// CullMissiles swap-removes every missile that has left the play area on
// either axis. Missiles never wrap.
func CullMissiles(missiles *[]*entity.Missile, b geom.Bounds) {
	ms := *missiles
	i := 0
	for i < len(ms) {
		if !b.Contains(ms[i].Pos) {
			ms = swapRemove(ms, i)
		}
		i++
	}
	*missiles = ms
}
