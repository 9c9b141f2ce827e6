// Package binheap provides a generic binary min-heap keyed by a
// caller-supplied score function.
//
// What:
//
//   - Heap[T] maintains a dynamic set of elements with O(log n)
//     extraction of the minimum-scored element.
//   - The score function is evaluated live at sift time against current
//     state, never cached at insertion. Mutating the underlying score
//     and re-heapifying are therefore two separate, explicit calls:
//     mutate the field, then call Rescore (score lowered) or
//     Remove+Push (score raised).
//   - Remove is a general-purpose primitive that locates an element by
//     identity with a linear scan; it is not a hot path and carries no
//     push/pop-grade performance guarantee.
//
// Why:
//
//   - A* relaxes g/f values of nodes already sitting in the open set;
//     live scoring plus an explicit sink-only Rescore keeps the frontier
//     consistent without rebuilding or duplicating entries.
//
// Complexity:
//
//   - Push/Pop:  O(log n)
//   - Rescore:   O(n) locate + O(log n) sift
//   - Remove:    O(n) locate + O(log n) sift
//
// Errors:
//
//   - ErrEmptyHeap: Pop on an empty heap (precondition violation; guard
//     with Size()).
package binheap
