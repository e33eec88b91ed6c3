package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Caches and feed clients return
// these (optionally wrapped) so callers can decide between degrading and failing.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: no cached entry for the key
// - ErrUnavailable: feed or backing store temporarily unavailable
// - ErrCircuitOpen: the breaker in front of a dependency is refusing calls
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrCircuitOpen = errors.New("circuit open")
)
