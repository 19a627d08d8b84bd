// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package record_test

import (
	"fmt"
	"reflect"
	"testing"

	"cloudeng.io/sorting/record"
)

func ExampleFromKeys() {
	recs := record.FromKeys([]int{30, 10, 20})
	record.Swap(recs, 0, 1)
	for _, r := range recs {
		fmt.Printf("%v:%v ", r.Key, r.Payload)
	}
	fmt.Println()
	// Output:
	// 10:1 30:0 20:2
}

func TestSwap(t *testing.T) {
	type handle struct{ name string }
	a, b := &handle{"a"}, &handle{"b"}
	recs := []record.Record[int, *handle]{record.New(1, a), record.New(2, b)}
	record.Swap(recs, 0, 1)
	if got, want := recs[0], record.New(2, b); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := recs[1].Payload, a; got != want {
		t.Errorf("got %p, want %p", got, want)
	}
}

func TestOrdering(t *testing.T) {
	for i, tc := range []struct {
		keys      []int
		asc, desc bool
	}{
		{nil, true, true},
		{[]int{1}, true, true},
		{[]int{1, 1, 1}, true, true},
		{[]int{1, 2, 2, 3}, true, false},
		{[]int{3, 2, 2, 1}, false, true},
		{[]int{2, 1, 3}, false, false},
	} {
		recs := record.FromKeys(tc.keys)
		if got, want := record.IsSorted(recs), tc.asc; got != want {
			t.Errorf("%v: IsSorted(%v): got %v, want %v", i, tc.keys, got, want)
		}
		if got, want := record.IsSortedDescending(recs), tc.desc; got != want {
			t.Errorf("%v: IsSortedDescending(%v): got %v, want %v", i, tc.keys, got, want)
		}
	}
}

func TestKeys(t *testing.T) {
	keys := []string{"c", "a", "b"}
	recs := record.FromKeys(keys)
	if got, want := record.Keys(recs), keys; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	for i, r := range recs {
		if got, want := r.Payload, i; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got := record.Keys[int, int](nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
