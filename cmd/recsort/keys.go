// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil/flags"
)

type inputFlags struct {
	Length int    `subcmd:"length,11,number of keys to generate"`
	Order  string `subcmd:"order,descending,'order of the generated keys: descending, ascending or random'"`
	Seed   int    `subcmd:"seed,1,seed used to generate randomly ordered keys"`
	Keys   string `subcmd:"keys,,'comma separated integer keys to use instead of generated ones'"`
}

// keys returns the keys specified by the flags, either those listed
// explicitly or generated ones.
func (fv *inputFlags) keys() ([]int, error) {
	if len(strings.TrimSpace(fv.Keys)) > 0 {
		return parseKeys(fv.Keys)
	}
	if err := flags.OneOf(fv.Order).Validate("descending", "ascending", "random"); err != nil {
		return nil, err
	}
	if fv.Length < 0 {
		return nil, fmt.Errorf("invalid length: %v", fv.Length)
	}
	return generateKeys(fv.Order, fv.Length, int64(fv.Seed)), nil
}

func parseKeys(v string) ([]int, error) {
	commas := flags.Commas{
		Validate: func(s string) error {
			_, err := strconv.Atoi(strings.TrimSpace(s))
			return err
		},
	}
	if err := commas.Set(v); err != nil {
		return nil, fmt.Errorf("invalid keys %q: %w", v, err)
	}
	keys := make([]int, len(commas.Values))
	for i, s := range commas.Values {
		keys[i], _ = strconv.Atoi(strings.TrimSpace(s))
	}
	return keys, nil
}

func generateKeys(order string, n int, seed int64) []int {
	keys := make([]int, n)
	switch order {
	case "ascending":
		for i := range keys {
			keys[i] = i + 1
		}
	case "random":
		rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
		for i := range keys {
			keys[i] = rnd.Intn(n * 10)
		}
	default:
		for i := range keys {
			keys[i] = n - i
		}
	}
	return keys
}
