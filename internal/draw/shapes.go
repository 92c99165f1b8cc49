package draw

// Point is a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters used by the half-block renderer.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
