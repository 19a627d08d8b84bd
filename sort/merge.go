// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sort

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/sorting/record"
	"golang.org/x/exp/constraints"
)

// ErrScratchAllocation is returned by MergeSort when a scratch buffer
// large enough to hold its input cannot be obtained. The input is not
// modified when this error is returned.
var ErrScratchAllocation = errors.New("merge sort scratch buffer unavailable")

type mergeOptions[K constraints.Ordered, P any] struct {
	scratch  []record.Record[K, P]
	limit    int
	hasLimit bool
}

// MergeOption represents the options that can be passed to MergeSort.
type MergeOption[K constraints.Ordered, P any] func(*mergeOptions[K, P])

// WithScratch provides the scratch buffer to be used by MergeSort, thus
// avoiding an allocation per call. The buffer must be at least as long as
// the slice being sorted.
func WithScratch[K constraints.Ordered, P any](buf []record.Record[K, P]) MergeOption[K, P] {
	return func(o *mergeOptions[K, P]) {
		o.scratch = buf
	}
}

// WithScratchLimit sets the maximum number of records that MergeSort may
// allocate for its scratch buffer.
func WithScratchLimit[K constraints.Ordered, P any](n int) MergeOption[K, P] {
	return func(o *mergeOptions[K, P]) {
		o.limit = n
		o.hasLimit = true
	}
}

// MergeSort sorts recs into ascending key order using a bottom-up merge
// sort. It is stable and takes O(n log n) time. A scratch buffer of
// len(recs) records is allocated once per call unless one is supplied via
// WithScratch. The only error returned is ErrScratchAllocation, in which
// case recs is unchanged.
func MergeSort[K constraints.Ordered, P any](recs []record.Record[K, P], opts ...MergeOption[K, P]) error {
	n := len(recs)
	if n <= 1 {
		return nil
	}
	var o mergeOptions[K, P]
	for _, fn := range opts {
		fn(&o)
	}
	scratch, err := o.scratchBuffer(n)
	if err != nil {
		return err
	}
	for span := 1; span < n; span *= 2 {
		// A trailing run with no partner is left for a later pass.
		for index := 0; index+span < n; index += 2 * span {
			right := min(span, n-index-span)
			merge(recs[index:index+span+right], span, scratch)
		}
	}
	return nil
}

// merge merges the sorted runs recs[:left] and recs[left:] via scratch.
// Ties are taken from the left run.
func merge[K constraints.Ordered, P any](recs []record.Record[K, P], left int, scratch []record.Record[K, P]) {
	n := len(recs)
	i, j, k := 0, left, 0
	for i < left && j < n {
		if recs[j].Key < recs[i].Key {
			scratch[k] = recs[j]
			j++
		} else {
			scratch[k] = recs[i]
			i++
		}
		k++
	}
	k += copy(scratch[k:], recs[i:left])
	k += copy(scratch[k:], recs[j:])
	copy(recs, scratch[:k])
}

func (o *mergeOptions[K, P]) scratchBuffer(n int) ([]record.Record[K, P], error) {
	if o.scratch != nil {
		if len(o.scratch) < n {
			return nil, fmt.Errorf("%w: buffer holds %d records, %d are required", ErrScratchAllocation, len(o.scratch), n)
		}
		return o.scratch[:n], nil
	}
	if o.hasLimit && n > o.limit {
		return nil, fmt.Errorf("%w: %d records exceeds the limit of %d", ErrScratchAllocation, n, o.limit)
	}
	return allocate[K, P](n)
}

func allocate[K constraints.Ordered, P any](n int) (buf []record.Record[K, P], err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrScratchAllocation, r)
		}
	}()
	return make([]record.Record[K, P], n), nil
}
