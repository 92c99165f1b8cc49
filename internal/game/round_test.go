package game

import (
	"testing"

	"astrovoid/internal/entity"
	"astrovoid/internal/geom"
)

var testBounds = geom.Bounds{Width: 800, Height: 600}

func countSound(sink *recordSink, name string) int {
	n := 0
	for _, p := range sink.played {
		if p == name {
			n++
		}
	}
	return n
}

func TestRoundBlackHoleDefeat(t *testing.T) {
	r := NewRound(ModeClassic, testBounds, stubRand{intN: 1}, nil)
	r.BlackHoles = append(r.BlackHoles, entity.NewBlackHole(r.Ship.Pos))

	if !r.Tick(0.5, entity.Controls{}) {
		t.Fatal("tick over a black hole must end the round")
	}
	if r.Phase() != PhaseDestroyed {
		t.Errorf("phase = %v, want destroyed", r.Phase())
	}
}

func TestRoundShieldDefeat(t *testing.T) {
	sink := &recordSink{}
	r := NewRound(ModeClassic, testBounds, stubRand{intN: 1}, sink)
	// A stationary asteroid parked on the ship, old enough to count.
	r.Asteroids = append(r.Asteroids, agedAsteroid(r.Ship.Pos, entity.ShapeMedium, 40))

	if r.Tick(0.5, entity.Controls{}) {
		t.Fatal("first hit must only drain the shield")
	}
	if r.Ship.Shield != 2 {
		t.Fatalf("shield = %d after first hit, want 2", r.Ship.Shield)
	}

	// Inside the invulnerability window nothing happens.
	if r.Tick(1.0, entity.Controls{}) || r.Ship.Shield != 2 {
		t.Fatal("hit inside the cooldown window must be a no-op")
	}

	if r.Tick(2.6, entity.Controls{}) || r.Ship.Shield != 1 {
		t.Fatal("second spaced hit must drain the shield to 1")
	}
	if !r.Tick(4.7, entity.Controls{}) {
		t.Fatal("third spaced hit must end the round")
	}
	if r.Phase() != PhaseDestroyed {
		t.Errorf("phase = %v, want destroyed", r.Phase())
	}
	if got := countSound(sink, entity.SoundCollision); got != 3 {
		t.Errorf("collision sound played %d times, want 3", got)
	}
}

func TestRoundVictory(t *testing.T) {
	for _, mode := range []Mode{ModeClassic, ModeModern} {
		r := NewRound(mode, testBounds, stubRand{intN: 1}, nil)

		// Early on an empty field is not yet a win.
		if r.Tick(0.5, entity.Controls{}); r.Phase() != PhasePlaying {
			t.Errorf("%v: phase = %v before the win threshold, want playing", mode, r.Phase())
		}

		// Past the spawn cutoff and both win thresholds.
		if r.Tick(46, entity.Controls{}) {
			t.Errorf("%v: victory tick must not report defeat", mode)
		}
		if r.Phase() != PhaseWon {
			t.Errorf("%v: phase = %v, want won", mode, r.Phase())
		}
	}
}

func TestRoundFireCooldown(t *testing.T) {
	sink := &recordSink{}
	r := NewRound(ModeClassic, testBounds, stubRand{intN: 1}, sink)
	fire := entity.Controls{Fire: true}

	r.Tick(1.0, fire)
	if len(r.Missiles) != 1 {
		t.Fatalf("got %d missiles after first shot, want 1", len(r.Missiles))
	}

	r.Tick(1.1, fire)
	if len(r.Missiles) != 1 {
		t.Fatalf("shot inside the cooldown must be swallowed, got %d missiles", len(r.Missiles))
	}

	r.Tick(1.35, fire)
	if len(r.Missiles) != 2 {
		t.Fatalf("got %d missiles after cooldown elapsed, want 2", len(r.Missiles))
	}
	if got := countSound(sink, entity.SoundShoot); got != 2 {
		t.Errorf("shoot sound played %d times, want 2", got)
	}
}

func TestRoundMissileFlight(t *testing.T) {
	sink := &recordSink{}
	r := NewRound(ModeClassic, testBounds, stubRand{intN: 1}, sink)
	// A small target straight up the ship's default facing.
	target := agedAsteroid(geom.Vec2{X: 400, Y: 200}, entity.ShapeSmall, 20)
	r.Asteroids = append(r.Asteroids, target)

	r.Tick(2.0, entity.Controls{Fire: true})
	if len(r.Missiles) != 1 {
		t.Fatalf("got %d missiles, want 1 in flight", len(r.Missiles))
	}

	for range 30 {
		r.Tick(2.0, entity.Controls{})
		if len(r.Missiles) == 0 {
			break
		}
	}

	if len(r.Missiles) != 0 {
		t.Fatal("missile never resolved against the target")
	}
	if r.Ship.Score != ScoreSmall {
		t.Errorf("score = %d, want %d", r.Ship.Score, ScoreSmall)
	}
	if got := countSound(sink, entity.SoundBoom); got != 1 {
		t.Errorf("boom played %d times, want 1", got)
	}
	for _, a := range r.Asteroids {
		if a == target {
			t.Error("struck asteroid still in the field")
		}
	}
}

func TestRoundSpawnPolicy(t *testing.T) {
	r := NewRound(ModeClassic, testBounds, stubRand{intN: 1}, nil)

	// Not enough round time has passed for the first spawn.
	r.Tick(0.5, entity.Controls{})
	if len(r.Asteroids) != 0 {
		t.Fatalf("got %d asteroids at t=0.5, want 0", len(r.Asteroids))
	}

	r.Tick(1.5, entity.Controls{})
	if len(r.Asteroids) != 1 {
		t.Fatalf("got %d asteroids at t=1.5, want 1", len(r.Asteroids))
	}
	if r.LastSpawn != 1.5 {
		t.Errorf("last spawn stamp = %v, want 1.5", r.LastSpawn)
	}
}
