package examgen

import "testing"

func TestLedger(t *testing.T) {
	l := NewLedger()

	if l.Seen("what is a mutex?") {
		t.Error("fresh ledger should not have seen anything")
	}
	if l.Len() != 0 {
		t.Errorf("fresh ledger Len = %d, want 0", l.Len())
	}

	l.Add("what is a mutex?")
	if !l.Seen("what is a mutex?") {
		t.Error("added text should be seen")
	}
	if l.Seen("what is a semaphore?") {
		t.Error("unadded text should not be seen")
	}

	// Adding the same text again must not grow the ledger.
	l.Add("what is a mutex?")
	if l.Len() != 1 {
		t.Errorf("Len = %d after duplicate add, want 1", l.Len())
	}

	l.Add("what is a semaphore?")
	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2", l.Len())
	}
}
