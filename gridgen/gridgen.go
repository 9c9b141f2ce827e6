// Package gridgen builds weight matrices for gridpath graphs:
// open fields, seeded random maps, walled corridors, and
// opensimplex-noise terrain.
package gridgen

import (
	"errors"
	"fmt"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sentinel errors for generator parameters.
var (
	// ErrBadDimensions indicates rows or cols below 1.
	ErrBadDimensions = errors.New("gridgen: rows and cols must each be ≥ 1")
	// ErrBadWeight indicates a maximum weight below 1.
	ErrBadWeight = errors.New("gridgen: maxWeight must be ≥ 1")
	// ErrBadRatio indicates a wall ratio outside [0, 1).
	ErrBadRatio = errors.New("gridgen: wallRatio must be in [0, 1)")
	// ErrBadScale indicates a non-positive noise scale.
	ErrBadScale = errors.New("gridgen: scale must be positive")
)

// waterCutoff is the normalized noise level below which Terrain cells
// become impassable.
const waterCutoff = 0.15

// Open returns a rows×cols matrix of all-1 weights: a fully passable
// field with uniform step cost.
func Open(rows, cols int) ([][]float64, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrBadDimensions, rows, cols)
	}

	m := make([][]float64, rows)
	for x := range m {
		m[x] = make([]float64, cols)
		for y := range m[x] {
			m[x][y] = 1
		}
	}

	return m, nil
}

// Walled returns an open rows×cols matrix with column col turned into a
// wall. If gap addresses a row (0 ≤ gap < rows) that cell stays
// passable, leaving a single corridor; gap < 0 builds a full barrier.
func Walled(rows, cols, col, gap int) ([][]float64, error) {
	m, err := Open(rows, cols)
	if err != nil {
		return nil, err
	}
	if col < 0 || col >= cols {
		return nil, fmt.Errorf("%w: col=%d outside %d columns", ErrBadDimensions, col, cols)
	}

	for x := 0; x < rows; x++ {
		if x == gap {
			continue
		}
		m[x][col] = 0
	}

	return m, nil
}

// Random returns a rows×cols matrix of seeded random weights in
// [1, maxWeight], with each cell independently turned into a wall with
// probability wallRatio. Deterministic for a fixed seed.
func Random(rows, cols int, seed int64, maxWeight int, wallRatio float64) ([][]float64, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrBadDimensions, rows, cols)
	}
	if maxWeight < 1 {
		return nil, fmt.Errorf("%w: maxWeight=%d", ErrBadWeight, maxWeight)
	}
	if wallRatio < 0 || wallRatio >= 1 {
		return nil, fmt.Errorf("%w: wallRatio=%v", ErrBadRatio, wallRatio)
	}

	rng := rand.New(rand.NewSource(seed))
	m := make([][]float64, rows)
	for x := range m {
		m[x] = make([]float64, cols)
		for y := range m[x] {
			if rng.Float64() < wallRatio {
				continue // wall: weight stays 0
			}
			m[x][y] = float64(1 + rng.Intn(maxWeight))
		}
	}

	return m, nil
}

// Terrain returns a rows×cols cost field sampled from opensimplex
// noise: low-lying cells (normalized noise below the water cutoff)
// become walls, the rest carry weights growing with elevation up to
// maxWeight. Deterministic for a fixed seed; scale controls feature
// size (smaller = smoother).
func Terrain(rows, cols int, seed int64, scale float64, maxWeight int) ([][]float64, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrBadDimensions, rows, cols)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale=%v", ErrBadScale, scale)
	}
	if maxWeight < 1 {
		return nil, fmt.Errorf("%w: maxWeight=%d", ErrBadWeight, maxWeight)
	}

	noise := opensimplex.New(seed)
	m := make([][]float64, rows)
	for x := range m {
		m[x] = make([]float64, cols)
		for y := range m[x] {
			// Eval2 yields [-1,1]; normalize to [0,1].
			t := (noise.Eval2(float64(x)*scale, float64(y)*scale) + 1) / 2
			if t < waterCutoff {
				continue // water: impassable
			}
			m[x][y] = 1 + t*float64(maxWeight-1)
		}
	}

	return m, nil
}
