// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"slices"

	"cloudeng.io/sorting/record"
	"golang.org/x/exp/constraints"
)

// Max is a max-heap priority queue of keyed records. It is not safe for
// concurrent use.
type Max[K constraints.Ordered, P any] struct {
	recs  []record.Record[K, P] // len(recs) is the capacity of the heap.
	size  int
	fixed bool
}

// NewMax returns a new instance of Max.
func NewMax[K constraints.Ordered, P any](opts ...Option[K, P]) *Max[K, P] {
	var o options[K, P]
	for _, fn := range opts {
		fn(&o)
	}
	h := &Max[K, P]{fixed: o.fixed}
	if o.recs != nil {
		h.recs = o.recs
		h.size = len(o.recs)
		Build(h.recs)
	}
	if extra := o.capacity - len(h.recs); extra > 0 {
		h.recs = slices.Grow(h.recs, extra)[:o.capacity]
	}
	return h
}

// Len returns the number of records in the heap.
func (h *Max[K, P]) Len() int {
	return h.size
}

// Cap returns the number of records the heap can hold without growing.
func (h *Max[K, P]) Cap() int {
	return len(h.recs)
}

// Push adds a record to the heap, growing it if necessary and allowed.
func (h *Max[K, P]) Push(key K, payload P) error {
	if h.size == len(h.recs) && !h.fixed {
		h.recs = append(h.recs, record.Record[K, P]{})
		h.recs = h.recs[:cap(h.recs)]
	}
	size, err := Insert(h.recs, h.size, key, payload)
	if err != nil {
		return err
	}
	h.size = size
	return nil
}

// Peek returns the record with the largest key.
func (h *Max[K, P]) Peek() (record.Record[K, P], error) {
	return PeekMax(h.recs, h.size)
}

// Pop removes and returns the record with the largest key.
func (h *Max[K, P]) Pop() (record.Record[K, P], error) {
	r, size, err := PopMax(h.recs, h.size)
	if err != nil {
		return r, err
	}
	h.recs[size] = record.Record[K, P]{} // don't retain the payload.
	h.size = size
	return r, nil
}

// Records returns the records currently in the heap in heap order. The
// returned slice shares storage with the heap and is only valid until
// the next call to Push or Pop.
func (h *Max[K, P]) Records() []record.Record[K, P] {
	return h.recs[:h.size]
}
