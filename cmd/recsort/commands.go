// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sorting/container/heap"
	"cloudeng.io/sorting/record"
	"cloudeng.io/sorting/sort"
)

type demoFlags struct {
	Algorithms string `subcmd:"algorithms,,'comma separated list of algorithms to run, all of them if not specified'"`
}

// demoLengths are the number of keys sorted by each algorithm in the
// demo command.
var demoLengths = map[sort.Algorithm]int{
	sort.Insertion: 10,
	sort.Merge:     15,
	sort.Heap:      11,
}

func runSort(ctx context.Context, values any, args []string) error {
	ctx, closer, err := withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	fv := values.(*inputFlags)
	alg, err := sort.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}
	keys, err := fv.keys()
	if err != nil {
		return err
	}
	return sortAndPrint(ctx, os.Stdout, alg, keys)
}

func runDemo(ctx context.Context, values any, _ []string) error {
	ctx, closer, err := withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	algs, err := parseAlgorithms(values.(*demoFlags).Algorithms)
	if err != nil {
		return err
	}
	return demo(ctx, os.Stdout, algs)
}

func runPQ(ctx context.Context, values any, _ []string) error {
	ctx, closer, err := withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	keys, err := values.(*inputFlags).keys()
	if err != nil {
		return err
	}
	return popAll(ctx, os.Stdout, keys)
}

func parseAlgorithms(v string) ([]sort.Algorithm, error) {
	if len(strings.TrimSpace(v)) == 0 {
		return []sort.Algorithm{sort.Insertion, sort.Merge, sort.Heap}, nil
	}
	commas := flags.Commas{
		Validate: func(s string) error {
			_, err := sort.ParseAlgorithm(strings.TrimSpace(s))
			return err
		},
	}
	if err := commas.Set(v); err != nil {
		return nil, err
	}
	algs := make([]sort.Algorithm, len(commas.Values))
	for i, s := range commas.Values {
		algs[i], _ = sort.ParseAlgorithm(strings.TrimSpace(s))
	}
	return algs, nil
}

func sortAndPrint(ctx context.Context, out io.Writer, alg sort.Algorithm, keys []int) error {
	recs := record.FromKeys(keys)
	fmt.Fprintf(out, "%v: input: %v\n", alg, keys)
	start := time.Now()
	if err := sort.Sort(alg, recs); err != nil {
		return fmt.Errorf("%v: %w", alg, err)
	}
	ctxlog.Logger(ctx).Info("sorted", "algorithm", alg.String(), "records", len(recs), "stable", alg.Stable(), "duration", time.Since(start))
	if !record.IsSorted(recs) {
		return fmt.Errorf("%v: output is not sorted: %v", alg, record.Keys(recs))
	}
	fmt.Fprintf(out, "%v: output: %v\n", alg, record.Keys(recs))
	return nil
}

// demo sorts a descending and then an ascending sequence of keys with
// each of the specified algorithms.
func demo(ctx context.Context, out io.Writer, algs []sort.Algorithm) error {
	errs := &errors.M{}
	for _, alg := range algs {
		n := demoLengths[alg]
		for _, order := range []string{"descending", "ascending"} {
			ctxlog.Logger(ctx).Debug("demo", "algorithm", alg.String(), "order", order, "records", n)
			errs.Append(sortAndPrint(ctx, out, alg, generateKeys(order, n, 0)))
		}
	}
	return errs.Err()
}

// popAll pushes the keys onto a max heap, payloads record each key's
// input position, and then pops them all.
func popAll(ctx context.Context, out io.Writer, keys []int) error {
	h := heap.NewMax(heap.WithCapacity[int, int](len(keys)), heap.WithFixedCapacity[int, int]())
	for i, k := range keys {
		if err := h.Push(k, i); err != nil {
			return err
		}
	}
	ctxlog.Logger(ctx).Info("heap built", "records", h.Len(), "capacity", h.Cap())
	fmt.Fprintf(out, "input: %v\n", keys)
	popped := make([]string, 0, len(keys))
	for h.Len() > 0 {
		r, err := h.Pop()
		if err != nil {
			return err
		}
		popped = append(popped, fmt.Sprintf("%v@%v", r.Key, r.Payload))
	}
	fmt.Fprintf(out, "popped: %v\n", strings.Join(popped, " "))
	return nil
}
