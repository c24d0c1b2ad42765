package terminal

import "math/rand/v2"

// Picker chooses one of n items. Implementations return a value in [0, n).
type Picker interface {
	Pick(n int) int
}

// RandomPicker picks uniformly at random.
type RandomPicker struct{}

func (RandomPicker) Pick(n int) int {
	return rand.IntN(n)
}

// FixedPicker always returns the same index, clamped to [0, n).
// Useful for tests and deterministic demos.
type FixedPicker int

func (f FixedPicker) Pick(n int) int {
	return clamp(int(f), n)
}

// clamp bounds i to [0, n). n must be positive.
func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
