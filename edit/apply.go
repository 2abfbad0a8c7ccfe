// SPDX-License-Identifier: MIT
// Package: skinweights/edit
//
// apply.go — single-group weight edits with a shared commit tail.
//
// Per vertex:
//  1. Read occupied slots into a working set; cur = active weight or 0.
//  2. new = rule(mode, cur, target, factor); Harden and Add clamp to [0,1].
//  3. factor 0 or |new − cur| < NoOpThreshold → untouched.
//  4. Replace, append (with eviction when full), or remove the active group
//     once its weight reaches 0.
//  5. Commit: stable sort, truncate, renormalize or empty, zero-fill.
//
// Vertices never read one another, so writes happen in target order.

package edit

import (
	"fmt"

	"github.com/katalvlaran/skinweights"
	"github.com/katalvlaran/skinweights/influence"
)

const methodApply = "Apply"

// Apply edits the weight of group on every target vertex using mode and the
// per-target factors, then renormalizes each written vertex.
//
// target is the smear destination in [0,1] (negative skips the call) or the
// Add offset in [-1,1]; Harden ignores it.
//
// Returns ErrInvalidParameter or ErrOutOfRange; s is unchanged on error.
func Apply(s *influence.Storage, targets []int32, factors []float32, group int32, mode Mode, target float32, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateApply(s, targets, factors, group, mode, target, &o); err != nil {
		skinweights.Logger().Warn("edit: apply rejected", "mode", mode.String(), "targets", len(targets), "err", err)
		return Result{}, err
	}

	var res Result
	if mode == Smear && target < 0 {
		res.Skipped = len(targets)
		skinweights.Logger().Debug("edit: smear skipped", "targets", len(targets))
		return res, nil
	}
	if o.History != nil && len(targets) > 0 {
		if err := o.History.Record(s, targets); err != nil {
			return Result{}, fmt.Errorf("%s: %w", methodApply, err)
		}
	}

	set := influence.NewSet()
	for i, t := range targets {
		v := int(t)
		s.Read(v, set)

		cur := set.Weight(group)
		f := factors[i]
		nw := newWeight(mode, cur, target, f)
		if f == 0 || abs32(nw-cur) < influence.NoOpThreshold {
			res.Skipped++
			continue
		}

		switch idx := set.Find(group); {
		case idx >= 0 && nw <= 0:
			set.Remove(idx)
		case idx >= 0:
			set.Put(group, nw)
		case nw <= influence.KeepThreshold:
			// Nothing to add; the vertex is still renormalized below.
		case set.Len() >= influence.MaxStorage:
			low := set.Lowest()
			if nw <= set.At(low).Value {
				res.Skipped++
				continue
			}
			set.Remove(low)
			set.Append(influence.Weight{Group: group, Value: nw})
			res.Evicted++
		default:
			set.Append(influence.Weight{Group: group, Value: nw})
		}

		if mode == Add {
			fillOthers(set, group, nw)
		}

		if s.Commit(v, set, o.InfluenceLimit) {
			res.Updated++
		} else {
			res.Emptied++
		}
	}

	skinweights.Logger().Debug("edit: apply",
		"mode", mode.String(),
		"group", group,
		"targets", len(targets),
		"updated", res.Updated,
		"skipped", res.Skipped,
		"emptied", res.Emptied,
		"evicted", res.Evicted,
	)

	return res, nil
}

// newWeight applies the mode rule. Smear is a plain lerp and may overshoot
// for f > 1; Harden and Add are clamped to [0,1].
func newWeight(mode Mode, cur, target, f float32) float32 {
	switch mode {
	case Smear:
		return cur + (target-cur)*f
	case Harden:
		return clamp01(cur + (cur-0.5)*f)
	default:
		return clamp01(cur + target*f)
	}
}

func clamp01(f float32) float32 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// fillOthers scales every group but the active one to sum to 1 − nw, or
// drops them when the active group saturates.
func fillOthers(set *influence.Set, group int32, nw float32) {
	if nw >= 1 {
		set.Reset()
		set.Append(influence.Weight{Group: group, Value: 1})
		return
	}
	var others float32
	for _, w := range set.Weights() {
		if w.Group != group {
			others += w.Value
		}
	}
	if others <= influence.KeepThreshold {
		return
	}
	scale := (1 - nw) / others
	ws := set.Weights()
	for i := range ws {
		if ws[i].Group != group {
			ws[i].Value *= scale
		}
	}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// validateApply runs every check ahead of the first write.
func validateApply(s *influence.Storage, targets []int32, factors []float32, group int32, mode Mode, target float32, o *Options) error {
	if o.err != nil {
		return fmt.Errorf("%s: %w", methodApply, o.err)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodApply, err)
	}
	if !mode.Valid() {
		return fmt.Errorf("%s: mode %s: %w", methodApply, mode, ErrInvalidParameter)
	}
	if group < 0 {
		return fmt.Errorf("%s: group %d: %w", methodApply, group, ErrOutOfRange)
	}
	if len(factors) != len(targets) {
		return fmt.Errorf("%s: len(factors)=%d, len(targets)=%d: %w",
			methodApply, len(factors), len(targets), ErrInvalidParameter)
	}
	for i, f := range factors {
		if !influence.IsFinite(f) || f < 0 {
			return fmt.Errorf("%s: factors[%d]=%g: %w", methodApply, i, f, ErrInvalidParameter)
		}
	}
	if !influence.IsFinite(target) {
		return fmt.Errorf("%s: target=%g: %w", methodApply, target, ErrInvalidParameter)
	}
	switch mode {
	case Smear:
		if target > 1 {
			return fmt.Errorf("%s: smear target=%g above 1: %w", methodApply, target, ErrInvalidParameter)
		}
	case Add:
		if err := influence.ValidateFactor("add target", target, -1, 1); err != nil {
			return fmt.Errorf("%s: %w", methodApply, err)
		}
	}
	if err := influence.ValidateTargets(targets, s.NumVerts()); err != nil {
		return fmt.Errorf("%s: %w", methodApply, err)
	}

	return nil
}
