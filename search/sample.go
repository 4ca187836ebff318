package search

import "golang.org/x/exp/rand"

// RandomSample returns n positions drawn uniformly at random without
// replacement from positions, using seed for reproducibility. If n
// exceeds len(positions), the full set is returned in shuffled order.
func RandomSample[P any](positions []P, n int, seed uint64) []P {
	r := rand.New(rand.NewSource(seed))
	shuffled := append([]P(nil), positions...)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n >= len(shuffled) {
		return shuffled
	}
	return shuffled[:n]
}
