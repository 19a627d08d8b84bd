// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sort

import (
	"cloudeng.io/sorting/record"
	"golang.org/x/exp/constraints"
)

// InsertionSort sorts recs into ascending key order using O(1) extra space.
// It is stable. It takes O(n^2) time in general and O(n) for input that is
// already sorted.
func InsertionSort[K constraints.Ordered, P any](recs []record.Record[K, P]) {
	// recs[:cursor] is always sorted.
	for cursor := 1; cursor < len(recs); cursor++ {
		target := recs[cursor]
		i := cursor
		for ; i > 0 && recs[i-1].Key > target.Key; i-- {
			recs[i] = recs[i-1]
		}
		recs[i] = target
	}
}
