package edit

import (
	"fmt"

	"github.com/katalvlaran/skinweights"
	"github.com/katalvlaran/skinweights/influence"
)

// Binarize reduces every target vertex to its strongest group at weight 1.
// Ties go to the earliest slot. Empty vertices and vertices already holding a
// single group at weight 1 are skipped.
//
// Returns ErrInvalidParameter or ErrOutOfRange; s is unchanged on error.
// Complexity: O(len(targets) · MaxStorage).
func Binarize(s *influence.Storage, targets []int32, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, fmt.Errorf("Binarize: %w", o.err)
	}
	if err := s.Validate(); err != nil {
		return Result{}, fmt.Errorf("Binarize: %w", err)
	}
	if err := influence.ValidateTargets(targets, s.NumVerts()); err != nil {
		return Result{}, fmt.Errorf("Binarize: %w", err)
	}
	if o.History != nil && len(targets) > 0 {
		if err := o.History.Record(s, targets); err != nil {
			return Result{}, fmt.Errorf("Binarize: %w", err)
		}
	}

	var res Result
	set := influence.NewSet()
	for _, t := range targets {
		v := int(t)
		s.Read(v, set)
		if set.Len() == 0 {
			res.Skipped++
			continue
		}
		best := set.At(0)
		for _, w := range set.Weights()[1:] {
			if w.Value > best.Value {
				best = w
			}
		}
		if set.Len() == 1 && best.Value == 1 && s.Indices[v*influence.MaxStorage] == best.Group {
			res.Skipped++
			continue
		}
		set.Reset()
		set.Append(influence.Weight{Group: best.Group, Value: 1})
		s.Commit(v, set, 1)
		res.Updated++
	}

	skinweights.Logger().Debug("edit: binarize", "targets", len(targets), "updated", res.Updated, "skipped", res.Skipped)

	return res, nil
}
