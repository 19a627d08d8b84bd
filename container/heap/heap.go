// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides a binary max-heap of keyed records embedded in a
// slice. The functions in this package operate on a caller supplied slice
// whose length is the physical capacity of the heap and a separate logical
// size; the first size records form the heap and the remainder are spare
// slots that Insert may use. Max wraps these functions to provide a
// self-contained priority queue.
//
// The tree is addressed using zero-based indices: the children of node i
// are at 2i+1 and 2i+2 and its parent is at (i-1)/2.
package heap

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/sorting/record"
	"golang.org/x/exp/constraints"
)

var (
	// ErrEmpty is returned when an element is requested from an empty heap.
	ErrEmpty = errors.New("heap is empty")
	// ErrFull is returned when inserting into a heap with no spare capacity.
	ErrFull = errors.New("heap has no spare capacity")
	// ErrIndexOutOfRange is returned when a node index is not within the heap.
	ErrIndexOutOfRange = errors.New("heap index out of range")
	// ErrSizeOutOfRange is returned when a heap size is negative or exceeds
	// the capacity of the slice it refers to.
	ErrSizeOutOfRange = errors.New("heap size out of range")
)

// Build reorders recs into a max heap of len(recs) records. Nodes with
// no children are already valid heaps and hence only the internal nodes,
// from the last one to the root, are sifted down.
func Build[K constraints.Ordered, P any](recs []record.Record[K, P]) {
	n := len(recs)
	for i := n/2 - 1; i >= 0; i-- {
		down(recs, i, n)
	}
}

// HeapifyDown restores the heap property for the subtree rooted at i
// within the first size records of recs. The subtrees rooted at i's
// children must already be valid heaps.
func HeapifyDown[K constraints.Ordered, P any](recs []record.Record[K, P], size, i int) error {
	if err := checkSize(recs, size); err != nil {
		return err
	}
	if i < 0 || i >= size {
		return fmt.Errorf("%w: %d is not in [0, %d)", ErrIndexOutOfRange, i, size)
	}
	down(recs, i, size)
	return nil
}

// PeekMax returns the record with the largest key without modifying the
// heap.
func PeekMax[K constraints.Ordered, P any](recs []record.Record[K, P], size int) (record.Record[K, P], error) {
	if err := checkSize(recs, size); err != nil {
		return record.Record[K, P]{}, err
	}
	if size == 0 {
		return record.Record[K, P]{}, ErrEmpty
	}
	return recs[0], nil
}

// PopMax removes the record with the largest key from the heap and
// returns it along with the new, reduced, size of the heap. The slot
// vacated at the end of the heap is not modified.
func PopMax[K constraints.Ordered, P any](recs []record.Record[K, P], size int) (record.Record[K, P], int, error) {
	if err := checkSize(recs, size); err != nil {
		return record.Record[K, P]{}, size, err
	}
	if size == 0 {
		return record.Record[K, P]{}, 0, ErrEmpty
	}
	top := recs[0]
	size--
	recs[0] = recs[size]
	down(recs, 0, size)
	return top, size, nil
}

// Insert adds a new record to a heap of the specified size and returns the
// new size. The slice must have at least one spare slot, that is,
// len(recs) must be greater than size.
func Insert[K constraints.Ordered, P any](recs []record.Record[K, P], size int, key K, payload P) (int, error) {
	if err := checkSize(recs, size); err != nil {
		return size, err
	}
	if size == len(recs) {
		return size, fmt.Errorf("%w: capacity %d", ErrFull, len(recs))
	}
	recs[size] = record.New(key, payload)
	up(recs, size)
	return size + 1, nil
}

// IsHeap returns true if the first size records of recs satisfy the max
// heap property, ie. no node has a key larger than its parent's.
func IsHeap[K constraints.Ordered, P any](recs []record.Record[K, P], size int) bool {
	if size < 0 || size > len(recs) {
		return false
	}
	for i := 1; i < size; i++ {
		if greater(recs, i, (i-1)/2) {
			return false
		}
	}
	return true
}

func checkSize[K constraints.Ordered, P any](recs []record.Record[K, P], size int) error {
	if size < 0 || size > len(recs) {
		return fmt.Errorf("%w: %d is not in [0, %d]", ErrSizeOutOfRange, size, len(recs))
	}
	return nil
}

func up[K constraints.Ordered, P any](h []record.Record[K, P], j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !greater(h, j, i) {
			break
		}
		record.Swap(h, i, j)
		j = i
	}
}

func down[K constraints.Ordered, P any](h []record.Record[K, P], i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && greater(h, j2, j1) {
			j = j2 // right child, only when strictly larger than the left
		}
		if !greater(h, j, i) {
			break
		}
		record.Swap(h, i, j)
		i = j
	}
	return i > i0
}

func greater[K constraints.Ordered, P any](h []record.Record[K, P], i, j int) bool {
	return h[i].Key > h[j].Key
}
