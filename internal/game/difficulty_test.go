package game

import (
	"math"
	"testing"

	"astrovoid/internal/entity"
)

func TestSpawnIntervalCurve(t *testing.T) {
	// Exactly the midpoint of the band at the inflection point.
	if got := SpawnInterval(SpawnMidpoint, SpawnMidpoint); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("SpawnInterval at midpoint = %v, want 0.7", got)
	}

	// Monotonically decreasing, bounded by (0.4, 1.0).
	prev := math.Inf(1)
	for time := 0.0; time <= 120; time += 5 {
		got := SpawnInterval(time, SpawnMidpoint)
		if got >= prev {
			t.Fatalf("SpawnInterval not decreasing at t=%v: %v >= %v", time, got, prev)
		}
		if got <= 0.4 || got >= 1.0 {
			t.Fatalf("SpawnInterval(%v) = %v outside (0.4, 1.0)", time, got)
		}
		prev = got
	}
}

func TestSpeedMultiplierCurve(t *testing.T) {
	// Half the amplitude at the inflection point (t=30).
	if got := SpeedMultiplier(30, ModeClassic); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("classic multiplier at t=30 = %v, want 1.5", got)
	}
	if got := SpeedMultiplier(30, ModeModern); math.Abs(got-2.25) > 1e-9 {
		t.Errorf("modern multiplier at t=30 = %v, want 2.25", got)
	}

	// Modern mode is strictly faster at every point in the round.
	for time := 0.0; time <= 120; time += 5 {
		classic := SpeedMultiplier(time, ModeClassic)
		modern := SpeedMultiplier(time, ModeModern)
		if modern <= classic {
			t.Fatalf("modern multiplier %v not above classic %v at t=%v", modern, classic, time)
		}
		if classic <= 1 || classic >= 2 || modern >= 3.5 {
			t.Fatalf("multiplier out of range at t=%v: classic=%v modern=%v", time, classic, modern)
		}
	}
}

func TestScoreTable(t *testing.T) {
	cases := []struct {
		shape entity.Shape
		want  int
	}{
		{entity.ShapeLarge, 25},
		{entity.ShapeMedium, 50},
		{entity.ShapeSmall, 100},
	}
	for _, c := range cases {
		if got := ScoreFor(c.shape); got != c.want {
			t.Errorf("ScoreFor(%v) = %d, want %d", c.shape, got, c.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("modern") != ModeModern {
		t.Error(`ParseMode("modern") != ModeModern`)
	}
	if ParseMode("classic") != ModeClassic || ParseMode("") != ModeClassic {
		t.Error("ParseMode must default to classic")
	}
}

func TestWinTimes(t *testing.T) {
	if ModeClassic.WinTime() != 10 || ModeModern.WinTime() != 45 {
		t.Errorf("win times = %v/%v, want 10/45", ModeClassic.WinTime(), ModeModern.WinTime())
	}
}
