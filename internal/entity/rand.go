package entity

import "math/rand"

// Rand is the source of randomness for entity generation and the fusion
// event. Injecting it keeps the rare branches testable.
type Rand interface {
	// FloatInRange returns a uniform float64 in [min, max].
	FloatInRange(min, max float64) float64
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
	// Bool returns a fair coin flip.
	Bool() bool
}

type defaultRand struct{}

// NewRand returns a Rand backed by the shared math/rand source.
func NewRand() Rand {
	return defaultRand{}
}

func (defaultRand) FloatInRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func (defaultRand) IntN(n int) int {
	return rand.Intn(n)
}

func (defaultRand) Bool() bool {
	return rand.Intn(2) == 0
}
