package vocab

import "fmt"

// Retained reports whether a token with the given global frequency is kept at
// the given threshold: strictly more than minCount occurrences are required.
func Retained(frequency int64, minCount int) bool {
	return frequency > int64(minCount)
}

// Select returns the set of tokens retained at the given threshold. It is a
// pure predicate over the frequency map: raising minCount can only shrink the
// result, and a token retained at threshold T is retained at any lower one.
func Select(frequencies map[string]int64, minCount int) (map[string]bool, error) {
	if minCount < 0 {
		return nil, fmt.Errorf("vocab: minCount must be non-negative, got %d", minCount)
	}
	retained := make(map[string]bool)
	for token, freq := range frequencies {
		if Retained(freq, minCount) {
			retained[token] = true
		}
	}
	return retained, nil
}
