package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// ErrLexiconNotFound is returned when the compiled lexicon artifact is absent.
	ErrLexiconNotFound = fmt.Errorf("lexicon artifact not found")
	// ErrLexiconMalformed is returned when the artifact misses "weights"/"categories" or holds non-numeric weights.
	ErrLexiconMalformed = fmt.Errorf("lexicon artifact is malformed")
	// ErrConfiguration is fatal: the process cannot score without a loaded lexicon.
	ErrConfiguration = fmt.Errorf("scoring core is not configured")
	// ErrLookupFailure wraps any error raised by the threshold lookup collaborator.
	ErrLookupFailure = fmt.Errorf("threshold lookup failed")

	ErrTooFewTerms      = fmt.Errorf("too few lemmas parsed")
	ErrEmptyLemmaSource = fmt.Errorf("lemma source is empty")
	ErrInvalidThreshold = fmt.Errorf("threshold must be a number")
	ErrUnknownLabel     = fmt.Errorf("unknown label")
	ErrInvalidScope     = fmt.Errorf("guild and channel are required")
)
