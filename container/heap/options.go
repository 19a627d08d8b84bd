// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"cloudeng.io/sorting/record"
	"golang.org/x/exp/constraints"
)

type options[K constraints.Ordered, P any] struct {
	capacity int
	recs     []record.Record[K, P]
	fixed    bool
}

// Option represents the options that can be passed to NewMax.
type Option[K constraints.Ordered, P any] func(*options[K, P])

// WithCapacity sets the number of slots allocated for the heap up front.
func WithCapacity[K constraints.Ordered, P any](n int) Option[K, P] {
	return func(o *options[K, P]) {
		o.capacity = n
	}
}

// WithRecords sets the initial contents of the heap. The heap takes
// ownership of recs and reorders them in place.
func WithRecords[K constraints.Ordered, P any](recs []record.Record[K, P]) Option[K, P] {
	return func(o *options[K, P]) {
		o.recs = recs
	}
}

// WithFixedCapacity prevents the heap from growing beyond its initial
// capacity, Push will return ErrFull instead.
func WithFixedCapacity[K constraints.Ordered, P any]() Option[K, P] {
	return func(o *options[K, P]) {
		o.fixed = true
	}
}
