// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sort

import (
	"fmt"
	"slices"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/sorting/record"
	"golang.org/x/exp/constraints"
)

// ErrUnknownAlgorithm is returned for an unrecognised algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// Algorithm identifies one of the sorts provided by this package.
type Algorithm int

// Supported algorithms.
const (
	Insertion Algorithm = iota
	Merge
	Heap
)

var algorithmNames = []string{"insertion", "merge", "heap"}

// Algorithms returns the names of all supported algorithms.
func Algorithms() []string {
	return slices.Clone(algorithmNames)
}

// ParseAlgorithm returns the Algorithm with the specified name, the
// comparison is case insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not one of: %s", ErrUnknownAlgorithm, name, strings.Join(algorithmNames, ", "))
}

func (a Algorithm) valid() bool {
	return a >= 0 && int(a) < len(algorithmNames)
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Stable returns true if the algorithm preserves the input order of
// records with equal keys.
func (a Algorithm) Stable() bool {
	return a == Insertion || a == Merge
}

// Sort sorts recs using the specified algorithm.
func Sort[K constraints.Ordered, P any](alg Algorithm, recs []record.Record[K, P]) error {
	switch alg {
	case Insertion:
		InsertionSort(recs)
	case Merge:
		return MergeSort(recs)
	case Heap:
		HeapSort(recs)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	return nil
}
