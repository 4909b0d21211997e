package shuffle

import "math/rand/v2"

// Of returns a uniformly random permutation of items using Fisher-Yates.
// The input slice is left untouched; the permutation is made on a copy.
func Of[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
