// Package similarity implements the normalized string similarity measure used
// to rank books by how much their introductions overlap.
package similarity

// Dice returns the Sørensen–Dice coefficient over the bigram sets of a and b:
//
//	2 * |bigrams(a) ∩ bigrams(b)| / (|bigrams(a)| + |bigrams(b)|)
//
// Comparison is case-sensitive and each distinct bigram counts once regardless
// of how often it repeats. The result is in [0,1]; identical non-trivial
// strings score 1, strings with no shared bigram score 0. Strings shorter than
// two runes have no bigrams: two such strings score 0 as well.
func Dice(a, b string) float64 {
	ba := bigrams(a)
	bb := bigrams(b)

	if len(ba) == 0 && len(bb) == 0 {
		return 0
	}

	intersection := 0
	for g := range ba {
		if _, ok := bb[g]; ok {
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(len(ba)+len(bb))
}

// bigrams collects the set of adjacent rune pairs in s.
func bigrams(s string) map[string]struct{} {
	runes := []rune(s)
	set := make(map[string]struct{}, len(runes))
	for i := 0; i+1 < len(runes); i++ {
		set[string(runes[i:i+2])] = struct{}{}
	}
	return set
}
