// Package holidays acquires the holiday date set from the remote feed.
//
// A Source produces a Set; FailSoft wraps a Source so that feed outages never
// block a computation: callers always receive a Set, possibly empty, plus a
// Status describing how trustworthy it is.
package holidays

import (
	"context"
	"time"
)

// Source produces the current holiday set.
type Source interface {
	Fetch(ctx context.Context) (Set, error)
}

// Cache stores holiday sets by key. Load returns sentinel.ErrNotFound on a miss.
type Cache interface {
	Load(ctx context.Context, key string) (Set, error)
	Store(ctx context.Context, key string, set Set, ttl time.Duration) error
}

// Static is a Source returning a fixed set.
type Static Set

// Fetch returns the static set.
func (s Static) Fetch(context.Context) (Set, error) {
	return Set(s), nil
}

