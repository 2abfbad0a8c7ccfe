// SPDX-License-Identifier: MIT
// Package: skinweights/diffusion
//
// smooth.go — edge-weighted neighbor blending with simultaneous reads.
//
// Algorithm (per pass):
//  1. Compute: for every target i, read its own slots and its neighbors'
//     slots from the pre-pass storage, build the candidate set and Commit it
//     into arena row i (or mark the target skipped).
//  2. Write: copy each non-skipped arena row over the target's slots.
//
// Determinism:
//   • Candidates are gathered in neighbor CSR order, then self-only groups in
//     slot order; Commit sorts stably, so equal weights keep that order.

package diffusion

import (
	"fmt"

	"github.com/katalvlaran/skinweights"
	"github.com/katalvlaran/skinweights/adjacency"
	"github.com/katalvlaran/skinweights/influence"
)

const methodSmooth = "Smooth"

// outcome of one target in one pass.
type outcome uint8

const (
	outcomeSkipped outcome = iota
	outcomeUpdated
	outcomeEmptied
)

// Smooth blends each target's weights toward the edge-weighted average of its
// neighbors' weights by factor ∈ [0,1], then renormalizes.
//
// factor 0 keeps each target's own groups (renormalized); factor 1 replaces
// them with the pure neighbor average. Targets may be neighbors of each
// other: every pass reads the storage as it was when the pass began.
//
// Returns ErrInvalidParameter or ErrOutOfRange; s is unchanged on error.
// Graph range failures also match adjacency.ErrOutOfRange.
func Smooth(g *adjacency.Graph, s *influence.Storage, targets []int32, factor float32, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateSmooth(g, s, targets, factor, &o); err != nil {
		skinweights.Logger().Warn("diffusion: smooth rejected", "targets", len(targets), "err", err)
		return Result{}, err
	}
	if o.History != nil && len(targets) > 0 {
		if err := o.History.Record(s, targets); err != nil {
			return Result{}, fmt.Errorf("%s: %w", methodSmooth, err)
		}
	}

	arena := influence.Allocate(len(targets))
	outcomes := make([]outcome, len(targets))
	cur, acc, out := influence.NewSet(), influence.NewSet(), influence.NewSet()

	var res Result
	for pass := 0; pass < o.Iterations; pass++ {
		// 1) Compute every target against the pre-pass storage.
		for i, t := range targets {
			f := factor
			if o.TargetFactors != nil {
				f *= o.TargetFactors[i]
			}
			outcomes[i] = smoothVertex(g, s, int(t), f, cur, acc, out)
			if outcomes[i] == outcomeSkipped {
				continue
			}
			if !arena.Commit(i, out, o.InfluenceLimit) {
				outcomes[i] = outcomeEmptied
			}
		}

		// 2) Write the arena back.
		res = Result{Iterations: pass + 1}
		for i, t := range targets {
			switch outcomes[i] {
			case outcomeSkipped:
				res.Skipped++
				continue
			case outcomeEmptied:
				res.Emptied++
			default:
				res.Updated++
			}
			src, dst := i*influence.MaxStorage, int(t)*influence.MaxStorage
			copy(s.Indices[dst:dst+influence.MaxStorage], arena.Indices[src:src+influence.MaxStorage])
			copy(s.Values[dst:dst+influence.MaxStorage], arena.Values[src:src+influence.MaxStorage])
		}
	}

	skinweights.Logger().Debug("diffusion: smooth",
		"targets", len(targets),
		"factor", factor,
		"iterations", res.Iterations,
		"updated", res.Updated,
		"skipped", res.Skipped,
		"emptied", res.Emptied,
	)

	return res, nil
}

// smoothVertex fills out with the candidate weights of v, or reports
// outcomeSkipped when v has no usable neighbors. It only reads s.
func smoothVertex(g *adjacency.Graph, s *influence.Storage, v int, f float32, cur, acc, out *influence.Set) outcome {
	nbrs, ws := g.Neighbors(v)
	if len(nbrs) == 0 {
		return outcomeSkipped
	}
	var total float32
	for _, w := range ws {
		total += w
	}
	if total < influence.ZeroSumThreshold {
		return outcomeSkipped
	}

	acc.Reset()
	for i, nb := range nbrs {
		base := int(nb) * influence.MaxStorage
		for k := 0; k < influence.MaxStorage; k++ {
			slot := influence.Weight{Group: s.Indices[base+k], Value: s.Values[base+k]}
			if slot.Empty() {
				continue
			}
			acc.Add(slot.Group, slot.Value*ws[i])
		}
	}

	s.Read(v, cur)
	out.Reset()
	keep := 1 - f
	for _, a := range acc.Weights() {
		nw := cur.Weight(a.Group)*keep + (a.Value/total)*f
		if nw > influence.KeepThreshold {
			out.Append(influence.Weight{Group: a.Group, Value: nw})
		}
	}
	for _, c := range cur.Weights() {
		if acc.Find(c.Group) >= 0 || out.Find(c.Group) >= 0 {
			continue
		}
		if nw := c.Value * keep; nw > influence.KeepThreshold {
			out.Append(influence.Weight{Group: c.Group, Value: nw})
		}
	}

	return outcomeUpdated
}

// validateSmooth runs every check ahead of the first write.
func validateSmooth(g *adjacency.Graph, s *influence.Storage, targets []int32, factor float32, o *Options) error {
	if o.err != nil {
		return fmt.Errorf("%s: %w", methodSmooth, o.err)
	}
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", methodSmooth, ErrInvalidParameter)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodSmooth, err)
	}
	if err := influence.ValidateFactor("factor", factor, 0, 1); err != nil {
		return fmt.Errorf("%s: %w", methodSmooth, err)
	}
	if o.TargetFactors != nil {
		if len(o.TargetFactors) != len(targets) {
			return fmt.Errorf("%s: len(TargetFactors)=%d, len(targets)=%d: %w",
				methodSmooth, len(o.TargetFactors), len(targets), ErrInvalidParameter)
		}
		for i, tf := range o.TargetFactors {
			if err := influence.ValidateFactor(fmt.Sprintf("TargetFactors[%d]", i), tf, 0, 1); err != nil {
				return fmt.Errorf("%s: %w", methodSmooth, err)
			}
		}
	}

	n := s.NumVerts()
	if gn := g.NumVerts(); gn < n {
		n = gn
	}
	if err := influence.ValidateTargets(targets, n); err != nil {
		return fmt.Errorf("%s: %w", methodSmooth, err)
	}

	sn := s.NumVerts()
	for _, t := range targets {
		if err := g.CheckRange(int(t)); err != nil {
			return fmt.Errorf("%s: %w: %w", methodSmooth, ErrOutOfRange, err)
		}
		nbrs, _ := g.Neighbors(int(t))
		for _, nb := range nbrs {
			if nb < 0 || int(nb) >= sn {
				return fmt.Errorf("%s: neighbor %d of %d outside storage [0,%d): %w",
					methodSmooth, nb, t, sn, ErrOutOfRange)
			}
		}
	}

	return nil
}
