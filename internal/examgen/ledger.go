package examgen

// Ledger is the accumulating set of normalized question texts already
// returned within one exam-authoring session. It only grows: every accepted
// or fallback question's normalized text is recorded so later calls in the
// same session cannot repeat it.
//
// A Ledger is not safe for concurrent use. Callers needing isolation between
// concurrent sessions must use one Ledger per session rather than sharing.
type Ledger struct {
	seen map[string]struct{}
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{seen: make(map[string]struct{})}
}

// Seen reports whether the normalized text was already returned.
func (l *Ledger) Seen(normalized string) bool {
	_, ok := l.seen[normalized]
	return ok
}

// Add records a normalized text as returned.
func (l *Ledger) Add(normalized string) {
	l.seen[normalized] = struct{}{}
}

// Len returns the number of recorded texts.
func (l *Ledger) Len() int {
	return len(l.seen)
}
