package examgen

import "strings"

// DuplicateThreshold is the combined similarity score above which two
// questions in a batch are considered near-duplicates.
const DuplicateThreshold = 0.7

// overlapWeight discounts the overlap ratio before it competes with the
// Jaccard score, so subset-style matches need substantial overlap to flag.
const overlapWeight = 0.8

// Normalize prepares question text for comparison: lowercase, collapse
// whitespace runs to single spaces, trim. Idempotent.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Similarity scores two normalized question texts in [0,1]. It combines
// Jaccard similarity over unique words with an overlap ratio against the
// smaller word set: the Jaccard term catches rewordings, the overlap term
// catches questions whose wording is a near-subset of another's.
func Similarity(a, b string) float64 {
	wordsA := uniqueWords(a)
	wordsB := uniqueWords(b)

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	inter := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			inter++
		}
	}

	union := len(wordsA) + len(wordsB) - inter
	jaccard := float64(inter) / float64(union)

	minLen := len(wordsA)
	if len(wordsB) < minLen {
		minLen = len(wordsB)
	}
	overlap := float64(inter) / float64(minLen)

	if weighted := overlapWeight * overlap; weighted > jaccard {
		return weighted
	}
	return jaccard
}

func uniqueWords(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		words[w] = struct{}{}
	}
	return words
}
