package game

import (
	"math"

	"astrovoid/internal/entity"
)

// SpawnInterval returns the minimum delay before the next asteroid spawn at
// the given round time. The logistic curve falls from about one second toward
// a floor of 0.4s as the round progresses, so asteroids arrive faster.
func SpawnInterval(time, midpoint float64) float64 {
	const l = 1.0
	return spawnIntervalFloor + (l-spawnIntervalFloor)/(1+math.Exp(sigmoidSteepness*(time-midpoint)))
}

// SpeedMultiplier returns the asteroid velocity multiplier at the given round
// time. The curve rises from 1 toward 1+amplitude; modern mode's larger
// amplitude makes it the harder mode.
func SpeedMultiplier(time float64, m Mode) float64 {
	return 1 + m.speedAmplitude()/(1+math.Exp(-sigmoidSteepness*(time-speedMidpoint)))
}

// ScoreFor returns the points awarded for destroying an asteroid of the
// given shape.
func ScoreFor(shape entity.Shape) int {
	switch shape {
	case entity.ShapeLarge:
		return ScoreLarge
	case entity.ShapeMedium:
		return ScoreMedium
	case entity.ShapeSmall:
		return ScoreSmall
	}
	return 0
}
