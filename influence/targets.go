package influence

import (
	"fmt"
	"math"
)

// ValidateTargets checks a target list against numVerts vertices.
// Returns ErrOutOfRange for an index outside [0, numVerts) and
// ErrInvalidParameter for an index listed twice: one call writes each
// vertex at most once.
// Complexity: O(len(targets)) time, O(numVerts/64) space.
func ValidateTargets(targets []int32, numVerts int) error {
	if len(targets) == 0 {
		return nil
	}
	seen := make([]uint64, (numVerts+63)/64)
	for i, t := range targets {
		if t < 0 || int(t) >= numVerts {
			return fmt.Errorf("targets[%d]=%d outside [0,%d): %w", i, t, numVerts, ErrOutOfRange)
		}
		word, bit := t>>6, uint64(1)<<(uint(t)&63)
		if seen[word]&bit != 0 {
			return fmt.Errorf("targets[%d]=%d listed twice: %w", i, t, ErrInvalidParameter)
		}
		seen[word] |= bit
	}

	return nil
}

// ValidateFactor checks that f is finite and inside [lo, hi].
func ValidateFactor(name string, f, lo, hi float32) error {
	if !IsFinite(f) || f < lo || f > hi {
		return fmt.Errorf("%s=%g outside [%g,%g]: %w", name, f, lo, hi, ErrInvalidParameter)
	}

	return nil
}

// IsFinite reports whether f is neither NaN nor ±Inf.
func IsFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
