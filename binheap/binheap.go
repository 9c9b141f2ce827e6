// Package binheap implements a binary min-heap keyed by a live-read
// score function, supporting re-prioritization of elements in place.
package binheap

import (
	"errors"
)

// ErrEmptyHeap indicates Pop was called on an empty heap. The caller is
// expected to guard extraction with Size(); an empty Pop is a
// precondition violation, never a normal outcome.
var ErrEmptyHeap = errors.New("binheap: pop from empty heap")

// ScoreFunc reports the current priority of an element. It is evaluated
// at sift time against current state, never cached at insertion, so a
// caller that mutates the underlying score must follow up with Rescore
// (after a decrease) or Remove+Push to keep the heap consistent.
type ScoreFunc[T comparable] func(T) float64

// Heap is a binary min-heap over elements of type T.
//
// Invariant: for every non-root position i, score(items[i]) ≥
// score(parent(i)). There is no explicit tie-break key; equal-score
// elements land wherever the sift leaves them.
type Heap[T comparable] struct {
	items []T
	score ScoreFunc[T]
}

// New returns an empty heap ordered by the given score function.
func New[T comparable](score ScoreFunc[T]) *Heap[T] {
	return &Heap[T]{
		items: make([]T, 0),
		score: score,
	}
}

// Size returns the number of elements currently in the heap.
func (h *Heap[T]) Size() int { return len(h.items) }

// Push appends x and sinks it toward the root until the heap property
// holds. Complexity: O(log n).
func (h *Heap[T]) Push(x T) {
	h.items = append(h.items, x)
	h.sink(len(h.items) - 1)
}

// Pop removes and returns the minimum-scored element. The last element
// moves into the root slot and bubbles away from the root until the
// heap property is restored. Returns ErrEmptyHeap if the heap is empty.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, ErrEmptyHeap
	}

	root := h.items[0]
	last := h.items[len(h.items)-1]
	h.items[len(h.items)-1] = zero
	h.items = h.items[:len(h.items)-1]
	if len(h.items) > 0 {
		h.items[0] = last
		h.bubble(0)
	}

	return root, nil
}

// Remove locates x by identity (linear scan — acceptable at the grid
// sizes this structure targets), swaps it with the last element, then
// sinks or bubbles the replacement depending on whether its score is
// smaller or larger than the removed element's. No sift runs when the
// removed element was already last. Reports whether x was found.
func (h *Heap[T]) Remove(x T) bool {
	var zero T
	for i, it := range h.items {
		if it != x {
			continue
		}

		removed := h.score(it)
		last := h.items[len(h.items)-1]
		h.items[len(h.items)-1] = zero
		h.items = h.items[:len(h.items)-1]
		if i < len(h.items) {
			h.items[i] = last
			if h.score(last) < removed {
				h.sink(i)
			} else {
				h.bubble(i)
			}
		}

		return true
	}

	return false
}

// Rescore re-establishes the heap property for x after its score was
// lowered while it remains in the heap. Only a sink is required when
// scores only ever decrease, as they do during one A* search; a caller
// that raises a score must Remove and re-Push instead.
func (h *Heap[T]) Rescore(x T) {
	for i, it := range h.items {
		if it == x {
			h.sink(i)
			return
		}
	}
}

// sink moves items[i] toward the root while it scores below its parent.
func (h *Heap[T]) sink(i int) {
	s := h.score(h.items[i])
	for i > 0 {
		parent := (i - 1) / 2
		if s >= h.score(h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// bubble moves items[i] away from the root, swapping with the smaller
// child each step, until neither child scores below it.
func (h *Heap[T]) bubble(i int) {
	n := len(h.items)
	s := h.score(h.items[i])
	for {
		left := 2*i + 1
		right := left + 1
		swap := -1
		min := s

		if left < n {
			if ls := h.score(h.items[left]); ls < min {
				swap = left
				min = ls
			}
		}
		if right < n {
			if rs := h.score(h.items[right]); rs < min {
				swap = right
			}
		}
		if swap < 0 {
			break
		}

		h.items[i], h.items[swap] = h.items[swap], h.items[i]
		i = swap
	}
}
