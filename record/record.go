// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package record provides the keyed record type that is rearranged by the
// sorting and heap packages. A record's position in any ordering is
// determined solely by its Key; its Payload is an opaque value owned by
// the caller that travels with the key through every swap, copy or move.
package record

import "golang.org/x/exp/constraints"

// Record represents a single keyed item.
type Record[K constraints.Ordered, P any] struct {
	Key     K
	Payload P
}

// New returns a new Record.
func New[K constraints.Ordered, P any](key K, payload P) Record[K, P] {
	return Record[K, P]{Key: key, Payload: payload}
}

// Swap exchanges the records at i and j.
func Swap[K constraints.Ordered, P any](recs []Record[K, P], i, j int) {
	recs[i], recs[j] = recs[j], recs[i]
}

// Keys returns the keys of recs in order.
func Keys[K constraints.Ordered, P any](recs []Record[K, P]) []K {
	keys := make([]K, len(recs))
	for i, r := range recs {
		keys[i] = r.Key
	}
	return keys
}

// IsSorted returns true if the keys in recs are in ascending order.
func IsSorted[K constraints.Ordered, P any](recs []Record[K, P]) bool {
	for i := 1; i < len(recs); i++ {
		if recs[i].Key < recs[i-1].Key {
			return false
		}
	}
	return true
}

// IsSortedDescending returns true if the keys in recs are in descending
// order.
func IsSortedDescending[K constraints.Ordered, P any](recs []Record[K, P]) bool {
	for i := 1; i < len(recs); i++ {
		if recs[i].Key > recs[i-1].Key {
			return false
		}
	}
	return true
}

// FromKeys returns a slice of records with the supplied keys, each tagged
// with its original position as its payload. The tags make it possible
// to determine where each record came from after it has been sorted.
func FromKeys[K constraints.Ordered](keys []K) []Record[K, int] {
	recs := make([]Record[K, int], len(keys))
	for i, k := range keys {
		recs[i] = Record[K, int]{Key: k, Payload: i}
	}
	return recs
}
