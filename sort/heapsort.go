// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sort

import (
	"cloudeng.io/sorting/container/heap"
	"cloudeng.io/sorting/record"
	"golang.org/x/exp/constraints"
)

// HeapSort sorts recs into ascending key order in place, in O(n log n) time.
// It is not stable. The records are first arranged into a max heap; the
// root, the largest remaining key, is then repeatedly swapped with the last
// record of the heap, which shrinks by one.
func HeapSort[K constraints.Ordered, P any](recs []record.Record[K, P]) {
	heap.Build(recs)
	for m := len(recs); m > 1; {
		record.Swap(recs, 0, m-1)
		m--
		// 0 < m <= len(recs) so this cannot fail.
		_ = heap.HeapifyDown(recs, m, 0)
	}
}
