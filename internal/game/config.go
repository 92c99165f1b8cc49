package game

// Round tuning constants.

// Scoring per destroyed asteroid. Smaller rocks are harder to hit.
const (
	ScoreLarge  = 25
	ScoreMedium = 50
	ScoreSmall  = 100
)

// Difficulty curve parameters.
const (
	// SpawnMidpoint is the inflection point of the spawn-interval curve.
	SpawnMidpoint = 22.5
	// spawnIntervalFloor is the shortest interval the curve approaches.
	spawnIntervalFloor = 0.4
	// sigmoidSteepness is shared by the spawn and speed curves.
	sigmoidSteepness = 0.05
	// speedMidpoint is the inflection point of the speed curve.
	speedMidpoint = 30.0
	// SpawnCutoff stops new asteroid spawns late in the round, letting the
	// player clear the field.
	SpawnCutoff = 45.0
)

// Combat timing.
const (
	// ShotCooldown is the minimum time between missiles, in seconds.
	ShotCooldown = 0.2
	// MissileSpeedFactor scales the missile's unit aim vector.
	MissileSpeedFactor = 5.0
	// asteroidAgeGuard keeps freshly spawned fragments from re-colliding
	// immediately, in seconds.
	asteroidAgeGuard = 1.0
	// fusionOdds is the 1-in-N chance that a colliding pair fuses into a
	// black hole instead of splitting.
	fusionOdds = 15
)

// Win-time thresholds: an empty field only wins the round once this much
// time has passed.
const (
	winTimeClassic = 10.0
	winTimeModern  = 45.0
)
