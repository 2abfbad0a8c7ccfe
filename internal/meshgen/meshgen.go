// SPDX-License-Identifier: MIT
// Package: skinweights/internal/meshgen
//
// meshgen.go — deterministic grid fixtures for the CLI, tests and benchmarks.
//
// Canonical model:
//   • rows×cols vertices in row-major order, vertex (r,c) = r*cols + c.
//   • Coordinates (c·spacing, r·spacing, z), z = 0 unless jitter is set.
//   • 4-neighborhood: for each (r,c) emit Right then Bottom when present.
//
// Weights:
//   • Groups are laid out as bands along the columns. A vertex between band
//     centers i and i+1 gets a linear split between groups i and i+1, so the
//     generated storage is normalized and sorted from the start.
//
// Determinism:
//   • Same inputs and seed → identical edges, coordinates and weights.

// Package meshgen generates regular grid meshes with gradient skin weights.
package meshgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/skinweights/influence"
)

const (
	methodGrid    = "Grid"
	methodWeights = "Weights"
	minGridDim    = 1
)

// ErrInvalidParameter indicates a non-positive dimension, spacing or group count.
var ErrInvalidParameter = errors.New("meshgen: invalid parameter")

// Mesh is a generated vertex cloud with an undirected edge list in the flat
// layout adjacency.Build consumes.
type Mesh struct {
	Rows, Cols int
	Edges      []int32   // pairs (u0,v0,u1,v1,…)
	Coords     []float32 // xyz per vertex
}

// NumVerts returns rows*cols.
func (m *Mesh) NumVerts() int { return m.Rows * m.Cols }

// NumEdges returns the number of undirected edges.
func (m *Mesh) NumEdges() int { return len(m.Edges) / 2 }

// Index returns the vertex id of cell (r,c).
func (m *Mesh) Index(r, c int) int32 { return int32(r*m.Cols + c) }

// Center returns the vertex closest to the middle of the grid.
func (m *Mesh) Center() int32 { return m.Index(m.Rows/2, m.Cols/2) }

// Option configures Grid.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	jitter float32
}

// WithSeed seeds the jitter source for reproducible fixtures.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter offsets each vertex along z by a uniform value in
// [-amount, amount), making edge weights non-uniform. Without WithSeed the
// source is seeded with 1.
func WithJitter(amount float32) Option {
	return func(c *config) {
		if amount > 0 {
			c.jitter = amount
		}
	}
}

// Grid builds a rows×cols 4-connected grid with the given spacing.
func Grid(rows, cols int, spacing float32, opts ...Option) (*Mesh, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrInvalidParameter)
	}
	if !influence.IsFinite(spacing) || spacing <= 0 {
		return nil, fmt.Errorf("%s: spacing=%g: %w", methodGrid, spacing, ErrInvalidParameter)
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.jitter > 0 && cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}

	m := &Mesh{
		Rows:   rows,
		Cols:   cols,
		Coords: make([]float32, 0, rows*cols*3),
		Edges:  make([]int32, 0, 2*(rows*(cols-1)+cols*(rows-1))),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var z float32
			if cfg.jitter > 0 {
				z = (cfg.rng.Float32()*2 - 1) * cfg.jitter
			}
			m.Coords = append(m.Coords, float32(c)*spacing, float32(r)*spacing, z)
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := m.Index(r, c)
			if c+1 < cols {
				m.Edges = append(m.Edges, u, m.Index(r, c+1))
			}
			if r+1 < rows {
				m.Edges = append(m.Edges, u, m.Index(r+1, c))
			}
		}
	}

	return m, nil
}

// Weights returns a freshly allocated storage holding a column-band gradient
// over groups influence groups.
func Weights(m *Mesh, groups int) (*influence.Storage, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: nil mesh: %w", methodWeights, ErrInvalidParameter)
	}
	if groups < 1 {
		return nil, fmt.Errorf("%s: groups=%d: %w", methodWeights, groups, ErrInvalidParameter)
	}
	s := influence.Allocate(m.NumVerts())
	set := influence.NewSet()
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			set.Reset()
			band, frac := bandOf(c, m.Cols, groups)
			set.Append(influence.Weight{Group: int32(band), Value: 1 - frac})
			if frac > influence.KeepThreshold && band+1 < groups {
				set.Append(influence.Weight{Group: int32(band + 1), Value: frac})
			}
			s.Commit(int(m.Index(r, c)), set, influence.MaxInfluence)
		}
	}

	return s, nil
}

// bandOf maps column c to its lower band and the fraction toward the next.
func bandOf(c, cols, groups int) (int, float32) {
	if groups == 1 || cols == 1 {
		return 0, 0
	}
	pos := float32(c) * float32(groups-1) / float32(cols-1)
	band := int(pos)
	if band >= groups-1 {
		return groups - 1, 0
	}

	return band, pos - float32(band)
}
