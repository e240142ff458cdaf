package matching

// MatchThreshold is the minimum similarity ratio for a query to be
// considered a match for a catalog key. Fixed policy, not configurable.
const MatchThreshold = 0.70

// Resolver maps free-text car names to the closest catalog key using a
// Ratcliff-Obershelp similarity ratio. Resolution is deterministic: keys
// are scored in catalog order and ties keep the first-seen key.
type Resolver struct {
	keys []string
}

// NewResolver creates a resolver over the given catalog keys.
// Keys are expected to be pre-normalized (lowercase, no accents).
func NewResolver(keys []string) *Resolver {
	return &Resolver{keys: keys}
}

// Resolve returns the closest catalog key for a query, or ok=false when no
// key scores at or above MatchThreshold.
func (r *Resolver) Resolve(query string) (string, bool) {
	key, score := r.BestMatch(query)
	if score < MatchThreshold {
		return "", false
	}
	return key, true
}

// BestMatch returns the highest-scoring catalog key and its similarity
// ratio, without applying the threshold.
func (r *Resolver) BestMatch(query string) (string, float64) {
	q := Normalize(query)

	best := ""
	bestScore := 0.0
	for _, key := range r.keys {
		score := Ratio(q, key)
		if score > bestScore {
			best = key
			bestScore = score
		}
	}
	return best, bestScore
}

// Ratio computes the Ratcliff-Obershelp similarity between two strings:
// twice the number of matching characters divided by the total length.
// Matching characters are found by recursively locating the longest
// common substring and descending into the unmatched pieces on each side.
func Ratio(a, b string) float64 {
	if len(a)+len(b) == 0 {
		return 1.0
	}
	return 2.0 * float64(matchedChars(a, b)) / float64(len(a)+len(b))
}

func matchedChars(a, b string) int {
	ai, bi, n := longestCommonSubstring(a, b)
	if n == 0 {
		return 0
	}
	return n + matchedChars(a[:ai], b[:bi]) + matchedChars(a[ai+n:], b[bi+n:])
}

// longestCommonSubstring returns the start offsets in a and b and the
// length of their longest common substring. Earlier offsets win ties so
// the result is deterministic.
func longestCommonSubstring(a, b string) (int, int, int) {
	bestA, bestB, bestLen := 0, 0, 0

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] != b[j-1] {
				curr[j] = 0
				continue
			}
			curr[j] = prev[j-1] + 1
			if curr[j] > bestLen {
				bestLen = curr[j]
				bestA = i - bestLen
				bestB = j - bestLen
			}
		}
		prev, curr = curr, prev
	}

	return bestA, bestB, bestLen
}
