package edit

import (
	"fmt"

	"github.com/katalvlaran/skinweights/influence"
)

// Sentinel errors, shared with the influence package.
var (
	// ErrOutOfRange indicates a vertex outside the storage or a negative group.
	ErrOutOfRange = influence.ErrOutOfRange

	// ErrInvalidParameter indicates a bad mode, factor, target or option.
	ErrInvalidParameter = influence.ErrInvalidParameter
)

// Option configures Apply and Binarize.
// An invalid Option is recorded and surfaced as ErrInvalidParameter.
type Option func(*Options)

// Options holds the tunables of one edit call.
type Options struct {
	// InfluenceLimit caps occupied slots per written vertex.
	InfluenceLimit int

	// History, when non-nil, receives a snapshot of the targets before the
	// first write.
	History *influence.History

	err error
}

// DefaultOptions returns the full influence limit and no history.
func DefaultOptions() Options {
	return Options{InfluenceLimit: influence.MaxInfluence}
}

// WithInfluenceLimit keeps at most n groups per written vertex (1..MaxInfluence).
func WithInfluenceLimit(n int) Option {
	return func(o *Options) {
		if n < 1 || n > influence.MaxInfluence {
			o.err = fmt.Errorf("%w: influence limit %d outside [1,%d]", ErrInvalidParameter, n, influence.MaxInfluence)
			return
		}
		o.InfluenceLimit = n
	}
}

// WithHistory records the target vertices into h before they are modified.
func WithHistory(h *influence.History) Option {
	return func(o *Options) {
		if h != nil {
			o.History = h
		}
	}
}

// Result summarizes one edit call.
type Result struct {
	Updated int // targets written with at least one surviving group
	Skipped int // targets left untouched
	Emptied int // targets whose every weight vanished
	Evicted int // targets that lost their weakest group to the active one
}
