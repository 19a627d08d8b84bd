// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sort //nolint:revive // intentional shadowing

import (
	"reflect"
	"testing"

	"cloudeng.io/errors"
	"cloudeng.io/sorting/record"
)

func TestMergeRuns(t *testing.T) {
	for i, tc := range []struct {
		keys []int
		left int
		want []int
	}{
		{[]int{1, 3, 5, 2, 4, 6}, 3, []int{0, 3, 1, 4, 2, 5}},
		{[]int{1, 1, 1, 1}, 2, []int{0, 1, 2, 3}},
		{[]int{2, 2, 1, 2}, 2, []int{2, 0, 1, 3}},
		{[]int{5, 6, 7, 1}, 3, []int{3, 0, 1, 2}},
		{[]int{4, 1, 2, 3}, 1, []int{1, 2, 3, 0}},
	} {
		recs := record.FromKeys(tc.keys)
		scratch := make([]record.Record[int, int], len(recs))
		merge(recs, tc.left, scratch)
		got := make([]int, len(recs))
		for j, r := range recs {
			got[j] = r.Payload
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%v: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestAllocationFailure(t *testing.T) {
	buf, err := allocate[int, int](-1)
	if !errors.Is(err, ErrScratchAllocation) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if buf != nil {
		t.Errorf("unexpected buffer: %v", buf)
	}
	buf, err = allocate[int, int](3)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(buf), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
