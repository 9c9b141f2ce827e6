// Package astar defines core types and configuration options for the
// A* search driver on weighted grids.
package astar

import (
	"errors"
)

// Sentinel errors returned by the astar implementation.
var (
	// ErrNilGraph indicates a nil *grid.Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilNode indicates a nil start or end node was passed to Search.
	ErrNilNode = errors.New("astar: start and end nodes must be non-nil")

	// ErrNilHeuristic indicates WithHeuristic received a nil function.
	ErrNilHeuristic = errors.New("astar: heuristic must be non-nil")
)

// Options configures the behavior of a single search.
//
// Heuristic – estimate-to-goal function; must be admissible for the
// configured movement model to guarantee an optimal path (Manhattan for
// 4-directional grids, Octile for 8-directional). This is a caller
// contract, not enforced internally.
//
// Closest – when true and the goal is unreachable, return the path to
// the reachable node closest to the goal (smallest h, ties broken by
// smaller g) instead of an empty path.
type Options struct {
	Heuristic Heuristic
	Closest   bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic sets the estimate-to-goal function.
// Passing nil panics with ErrNilHeuristic: a search without a heuristic
// is an invalid configuration, caught early.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// WithClosest enables best-effort mode: if the goal is unreachable,
// Search returns the path to the closest reachable node rather than an
// empty path.
func WithClosest() Option {
	return func(o *Options) {
		o.Closest = true
	}
}

// DefaultOptions returns the baseline configuration: Manhattan
// heuristic, best-effort mode off.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		Closest:   false,
	}
}
