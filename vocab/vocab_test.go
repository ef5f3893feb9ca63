package vocab

import "testing"

func TestSelect(t *testing.T) {
	freqs := map[string]int64{
		"the": 100,
		"cat": 10,
		"sat": 9,
		"rim": 1,
	}

	retained, err := Select(freqs, 9)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(retained) != 2 {
		t.Fatalf("retained %d tokens, want 2: %v", len(retained), retained)
	}
	if !retained["the"] || !retained["cat"] {
		t.Fatalf("expected the and cat retained, got %v", retained)
	}
	// frequency == minCount is dropped: the predicate is strictly greater.
	if retained["sat"] {
		t.Fatalf("sat retained at threshold equal to its frequency")
	}
}

func TestSelect_ZeroThresholdKeepsAll(t *testing.T) {
	freqs := map[string]int64{"a": 1, "b": 2}
	retained, err := Select(freqs, 0)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(retained) != 2 {
		t.Fatalf("retained %d tokens, want 2", len(retained))
	}
}

func TestSelect_ThresholdMonotonicity(t *testing.T) {
	freqs := map[string]int64{
		"a": 1, "b": 3, "c": 5, "d": 7, "e": 20,
	}
	prev := len(freqs) + 1
	for minCount := 0; minCount <= 21; minCount++ {
		retained, err := Select(freqs, minCount)
		if err != nil {
			t.Fatalf("Select(%d) failed: %v", minCount, err)
		}
		if len(retained) > prev {
			t.Fatalf("raising minCount to %d grew vocabulary from %d to %d", minCount, prev, len(retained))
		}
		// Every token retained here must be retained at every lower threshold.
		for tok := range retained {
			for lower := 0; lower < minCount; lower++ {
				if !Retained(freqs[tok], lower) {
					t.Fatalf("token %q retained at %d but not at %d", tok, minCount, lower)
				}
			}
		}
		prev = len(retained)
	}
}

func TestSelect_NegativeThreshold(t *testing.T) {
	if _, err := Select(map[string]int64{"a": 1}, -1); err == nil {
		t.Fatalf("Select accepted negative minCount")
	}
}

func TestSelect_EmptyFrequencies(t *testing.T) {
	retained, err := Select(nil, 9)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(retained) != 0 {
		t.Fatalf("retained %d tokens from empty corpus, want 0", len(retained))
	}
}
