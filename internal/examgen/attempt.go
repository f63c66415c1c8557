package examgen

import "context"

// outcome is the tagged result of one generation attempt. Retry control flow
// is explicit: an attempt either accepts a value (recorded by the closure),
// asks for another attempt, or declares further attempts pointless.
type outcome int

const (
	outcomeAccept outcome = iota
	outcomeRetry
	outcomeFatal
)

// runAttempts drives the shared attempt loop for both generators: invoke fn
// up to budget times, stopping early on accept or fatal. Reports whether an
// attempt accepted; on false the caller falls back.
func runAttempts(ctx context.Context, budget int, fn func(ctx context.Context, attempt int) outcome) bool {
	for attempt := range budget {
		switch fn(ctx, attempt) {
		case outcomeAccept:
			return true
		case outcomeFatal:
			return false
		}
	}
	return false
}
