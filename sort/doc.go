// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sort provides insertion sort, bottom-up merge sort and heap sort
// for slices of keyed records. All three sort their input in place into
// ascending key order:
//
//	recs := record.FromKeys([]int{3, 1, 2})
//	sort.InsertionSort(recs)
//	if err := sort.MergeSort(recs); err != nil {
//	    ...
//	}
//	sort.HeapSort(recs)
//
// InsertionSort and MergeSort are stable, equal keys retain their input
// order. HeapSort is not. Only MergeSort requires auxiliary storage, a
// scratch buffer the size of its input, and it is the only one that can
// fail: see ErrScratchAllocation.
package sort //nolint:revive // var-naming: avoid package names that conflict with Go standard library package names (revive)
