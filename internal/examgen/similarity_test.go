package examgen

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "What Is A Mutex?", "what is a mutex?"},
		{"collapse whitespace", "what  is\ta\n\nmutex?", "what is a mutex?"},
		{"trim", "  what is a mutex?  ", "what is a mutex?"},
		{"empty", "", ""},
		{"whitespace only", "   \t\n ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("  Recursion  IN   Programming ")
	twice := Normalize(once)
	if once != twice {
		t.Errorf("not idempotent: %q vs %q", once, twice)
	}
}

func TestSimilarity_Identical(t *testing.T) {
	s := "explain the concept of recursion"
	if got := Similarity(s, s); got != 1.0 {
		t.Errorf("identical texts should score 1.0, got %v", got)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := "explain recursion in programming"
	b := "describe iterative algorithms and loops"
	if Similarity(a, b) != Similarity(b, a) {
		t.Error("similarity should be symmetric")
	}
}

func TestSimilarity_Empty(t *testing.T) {
	if got := Similarity("", "anything"); got != 0 {
		t.Errorf("empty text should score 0, got %v", got)
	}
	if got := Similarity("", ""); got != 0 {
		t.Errorf("two empty texts should score 0, got %v", got)
	}
}

// Questions sharing a few topic words but asking different things must stay
// below the duplicate threshold.
func TestSimilarity_RelatedButDistinct(t *testing.T) {
	a := Normalize("What is a hash table?")
	b := Normalize("How does a hash table work?")

	got := Similarity(a, b)
	if got <= 0 {
		t.Errorf("related questions should share some similarity, got %v", got)
	}
	if got > DuplicateThreshold {
		t.Errorf("distinct questions flagged as duplicates: score %v > %v", got, DuplicateThreshold)
	}
}

// The overlap term catches a question whose wording is a near-subset of
// another's even when Jaccard alone would pass it.
func TestSimilarity_SubsetOverlap(t *testing.T) {
	a := Normalize("explain recursion")
	b := Normalize("explain recursion in detail with examples")

	got := Similarity(a, b)
	if got <= DuplicateThreshold {
		t.Errorf("subset wording should flag as duplicate: score %v <= %v", got, DuplicateThreshold)
	}
}

func TestSimilarity_Unrelated(t *testing.T) {
	a := Normalize("describe the tcp three way handshake")
	b := Normalize("compare quicksort and mergesort complexity")

	if got := Similarity(a, b); got > 0.2 {
		t.Errorf("unrelated questions scored too high: %v", got)
	}
}
