package game

import (
	"testing"

	"astrovoid/internal/entity"
	"astrovoid/internal/geom"
)

// stubRand returns midpoints for ranges and a fixed value for IntN, so
// collision outcomes can be forced either way.
type stubRand struct {
	intN int
}

func (r stubRand) FloatInRange(min, max float64) float64 { return (min + max) / 2 }

func (r stubRand) IntN(n int) int {
	if r.intN >= n {
		return n - 1
	}
	return r.intN
}

func (r stubRand) Bool() bool { return true }

type recordSink struct {
	played []string
}

func (s *recordSink) Play(name string) { s.played = append(s.played, name) }

func agedAsteroid(pos geom.Vec2, shape entity.Shape, size float64) *entity.Asteroid {
	return entity.NewAsteroid(pos, geom.Vec2{}, shape, size, 0, stubRand{})
}

func TestAsteroidPairFusesIntoBlackHole(t *testing.T) {
	pos := geom.Vec2{X: 200, Y: 150}
	asteroids := []*entity.Asteroid{
		agedAsteroid(pos, entity.ShapeSmall, 25),
		agedAsteroid(pos, entity.ShapeSmall, 25),
	}
	var holes []*entity.BlackHole

	// intN 0 forces the fusion branch.
	ResolveAsteroidCollisions(&asteroids, &holes, 10, stubRand{intN: 0})

	if len(holes) != 1 {
		t.Fatalf("got %d black holes, want 1", len(holes))
	}
	if holes[0].Pos != pos {
		t.Errorf("black hole at %v, want %v", holes[0].Pos, pos)
	}
	if len(asteroids) != 0 {
		t.Errorf("fusion must consume both asteroids without fragments, got %d left", len(asteroids))
	}
}

func TestAsteroidPairSplits(t *testing.T) {
	pos := geom.Vec2{X: 200, Y: 150}
	asteroids := []*entity.Asteroid{
		agedAsteroid(pos, entity.ShapeLarge, 60),
		agedAsteroid(pos, entity.ShapeLarge, 60),
	}
	var holes []*entity.BlackHole

	ResolveAsteroidCollisions(&asteroids, &holes, 10, stubRand{intN: 1})

	if len(holes) != 0 {
		t.Fatalf("got %d black holes, want 0", len(holes))
	}
	if len(asteroids) != 4 {
		t.Fatalf("two large asteroids must yield 4 fragments, got %d", len(asteroids))
	}
	for _, a := range asteroids {
		if a.Shape != entity.ShapeMedium {
			t.Errorf("fragment shape = %v, want medium", a.Shape)
		}
		if a.Pos != pos {
			t.Errorf("fragment at %v, want parent position %v", a.Pos, pos)
		}
		if a.BirthTime != 10 {
			t.Errorf("fragment birth time = %v, want 10", a.BirthTime)
		}
	}
}

func TestYoungAsteroidsDoNotResolve(t *testing.T) {
	pos := geom.Vec2{X: 200, Y: 150}
	young := entity.NewAsteroid(pos, geom.Vec2{}, entity.ShapeLarge, 60, 9.5, stubRand{})
	asteroids := []*entity.Asteroid{agedAsteroid(pos, entity.ShapeLarge, 60), young}
	var holes []*entity.BlackHole

	ResolveAsteroidCollisions(&asteroids, &holes, 10, stubRand{intN: 0})

	if len(asteroids) != 2 || len(holes) != 0 {
		t.Errorf("pair with one young member must be untouched, got %d asteroids, %d holes",
			len(asteroids), len(holes))
	}
}

func TestEachAsteroidResolvesOncePerPass(t *testing.T) {
	pos := geom.Vec2{X: 200, Y: 150}
	asteroids := []*entity.Asteroid{
		agedAsteroid(pos, entity.ShapeSmall, 25),
		agedAsteroid(pos, entity.ShapeSmall, 25),
		agedAsteroid(pos, entity.ShapeSmall, 25),
	}
	var holes []*entity.BlackHole

	ResolveAsteroidCollisions(&asteroids, &holes, 10, stubRand{intN: 1})

	// The first pair resolves and the odd one out survives the pass.
	if len(asteroids) != 1 {
		t.Errorf("got %d asteroids, want 1 survivor", len(asteroids))
	}
}

func TestMissileDestroysAsteroid(t *testing.T) {
	ship := entity.NewShip(geom.Bounds{Width: 800, Height: 600})
	asteroids := []*entity.Asteroid{
		agedAsteroid(geom.Vec2{X: 100, Y: 100}, entity.ShapeLarge, 60),
	}
	missiles := []*entity.Missile{
		entity.NewMissile(geom.Vec2{X: 100, Y: 30}, geom.Vec2{X: 0, Y: 2}),
	}
	sink := &recordSink{}

	ResolveMissileCollisions(&missiles, &asteroids, ship, 10, sink, stubRand{intN: 1})

	if len(missiles) != 0 {
		t.Errorf("missile must be consumed by the hit, %d left", len(missiles))
	}
	if len(asteroids) != 2 {
		t.Fatalf("large asteroid must leave 2 fragments, got %d", len(asteroids))
	}
	if ship.Score != ScoreLarge {
		t.Errorf("score = %d, want %d", ship.Score, ScoreLarge)
	}
	if len(sink.played) != 1 || sink.played[0] != entity.SoundBoom {
		t.Errorf("played = %v, want one boom", sink.played)
	}
}

func TestMissileMissLeavesStateAlone(t *testing.T) {
	ship := entity.NewShip(geom.Bounds{Width: 800, Height: 600})
	asteroids := []*entity.Asteroid{
		agedAsteroid(geom.Vec2{X: 700, Y: 500}, entity.ShapeSmall, 20),
	}
	missiles := []*entity.Missile{
		entity.NewMissile(geom.Vec2{X: 100, Y: 30}, geom.Vec2{X: 0, Y: 2}),
	}
	sink := &recordSink{}

	ResolveMissileCollisions(&missiles, &asteroids, ship, 10, sink, stubRand{intN: 1})

	if len(missiles) != 1 || len(asteroids) != 1 || ship.Score != 0 || len(sink.played) != 0 {
		t.Error("miss must leave missiles, asteroids, score and sounds untouched")
	}
}

func TestCullMissiles(t *testing.T) {
	b := geom.Bounds{Width: 800, Height: 600}
	missiles := []*entity.Missile{
		entity.NewMissile(geom.Vec2{X: 400, Y: 300}, geom.Vec2{X: 0, Y: -5}),
		entity.NewMissile(geom.Vec2{X: 400, Y: -10}, geom.Vec2{X: 0, Y: -5}),
		entity.NewMissile(geom.Vec2{X: 900, Y: 300}, geom.Vec2{X: 5, Y: 0}),
	}

	CullMissiles(&missiles, b)

	if len(missiles) != 1 {
		t.Fatalf("got %d missiles, want 1", len(missiles))
	}
	if missiles[0].Pos != (geom.Vec2{X: 400, Y: 300}) {
		t.Errorf("wrong survivor at %v", missiles[0].Pos)
	}
}
