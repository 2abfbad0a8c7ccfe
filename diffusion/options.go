package diffusion

import (
	"fmt"

	"github.com/katalvlaran/skinweights/influence"
)

// Sentinel errors, shared with the influence package so callers can match
// either name with errors.Is.
var (
	// ErrOutOfRange indicates a vertex outside the graph or storage.
	ErrOutOfRange = influence.ErrOutOfRange

	// ErrInvalidParameter indicates a bad factor, option or target list.
	ErrInvalidParameter = influence.ErrInvalidParameter
)

// Option configures Smooth via functional arguments.
// An invalid Option is recorded and surfaced as ErrInvalidParameter when
// Smooth is invoked.
type Option func(*Options)

// Options holds the tunables of one Smooth call.
type Options struct {
	// Iterations is the number of full passes (≥ 1).
	Iterations int

	// TargetFactors, when non-nil, scales factor per target. It must be
	// parallel to the target list and every entry must lie in [0,1].
	TargetFactors []float32

	// InfluenceLimit caps occupied slots per vertex (1..MaxInfluence).
	InfluenceLimit int

	// History, when non-nil, receives a snapshot of the targets taken
	// after validation and before the first write.
	History *influence.History

	err error
}

// DefaultOptions returns a single pass with the full influence limit,
// uniform factors and no history.
func DefaultOptions() Options {
	return Options{
		Iterations:     1,
		InfluenceLimit: influence.MaxInfluence,
	}
}

// WithIterations repeats the smoothing pass n times.
//
//	n ≥ 1: run n passes
//	n < 1: invalid option → ErrInvalidParameter
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: iterations must be at least 1 (%d)", ErrInvalidParameter, n)
			return
		}
		o.Iterations = n
	}
}

// WithTargetFactors sets per-target falloff factors, typically the output of
// adjacency.Graph.Rings.
func WithTargetFactors(fs []float32) Option {
	return func(o *Options) {
		o.TargetFactors = fs
	}
}

// WithInfluenceLimit keeps at most n groups per written vertex.
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

// Result summarizes one Smooth call. Counts describe the last pass.
type Result struct {
	Updated    int // targets written with at least one surviving group
	Skipped    int // targets left untouched (no neighbors or zero edge weight)
	Emptied    int // targets whose every candidate fell below the keep threshold
	Iterations int // passes executed
}
