package lanes

import "math/rand/v2"

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource uses the math/rand/v2 top-level generator, which is safe for
// concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource is the process-wide random source.
var DefaultSource Source = globalSource{}

// Permutation returns a uniformly random permutation of [0, n) using the
// Fisher–Yates shuffle: walking from the last index down, each element is
// swapped with one drawn uniformly from [0, j].
func Permutation(n int, src Source) []int {
	if n <= 0 {
		return []int{}
	}
	if src == nil {
		src = DefaultSource
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for j := n - 1; j > 0; j-- {
		k := src.IntN(j + 1)
		p[j], p[k] = p[k], p[j]
	}
	return p
}
