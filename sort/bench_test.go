// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sort_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"cloudeng.io/sorting/record"
	"cloudeng.io/sorting/sort"
)

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10000)
	}
	return r
}

func benchmarkSort(b *testing.B, n int, fn func([]record.Record[int, int])) {
	keys := uniformRand(0, n)
	recs := make([]record.Record[int, int], n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for j, k := range keys {
			recs[j] = record.New(k, j)
		}
		b.StartTimer()
		fn(recs)
	}
}

func BenchmarkInsertion_1000(b *testing.B) {
	benchmarkSort(b, 1000, sort.InsertionSort[int, int])
}

func BenchmarkMerge_100000(b *testing.B) {
	benchmarkSort(b, 100000, func(recs []record.Record[int, int]) {
		_ = sort.MergeSort(recs)
	})
}

func BenchmarkMergeScratch_100000(b *testing.B) {
	scratch := make([]record.Record[int, int], 100000)
	benchmarkSort(b, 100000, func(recs []record.Record[int, int]) {
		_ = sort.MergeSort(recs, sort.WithScratch(scratch))
	})
}

func BenchmarkHeap_100000(b *testing.B) {
	benchmarkSort(b, 100000, sort.HeapSort[int, int])
}

func BenchmarkStdStable_100000(b *testing.B) {
	benchmarkSort(b, 100000, func(recs []record.Record[int, int]) {
		slices.SortStableFunc(recs, func(x, y record.Record[int, int]) int {
			return cmp.Compare(x.Key, y.Key)
		})
	})
}
