// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command recsort exercises the sorts and the max heap provided by
// cloudeng.io/sorting on generated or user supplied keys.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

var (
	cmdSet      *subcmd.CommandSet
	globalFlags cmdutil.LoggingFlags
)

func init() {
	sortFlagSet := subcmd.NewFlagSet()
	sortFlagSet.MustRegisterFlagStruct(&inputFlags{}, nil, nil)
	demoFlagSet := subcmd.NewFlagSet()
	demoFlagSet.MustRegisterFlagStruct(&demoFlags{}, nil, nil)
	pqFlagSet := subcmd.NewFlagSet()
	pqFlagSet.MustRegisterFlagStruct(&inputFlags{}, nil, nil)

	sortCmd := subcmd.NewCommand("sort", sortFlagSet, runSort, subcmd.ExactlyNumArguments(1))
	sortCmd.Document("sort generated or supplied keys using the named algorithm", "<insertion|merge|heap>")

	demoCmd := subcmd.NewCommand("demo", demoFlagSet, runDemo, subcmd.WithoutArguments())
	demoCmd.Document("sort descending and then ascending keys with every algorithm")

	pqCmd := subcmd.NewCommand("pq", pqFlagSet, runPQ, subcmd.WithoutArguments())
	pqCmd.Document("push keys onto a max heap and pop them all")

	cmdSet = subcmd.NewCommandSet(sortCmd, demoCmd, pqCmd)
	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&globalFlags, nil, nil)
	cmdSet.WithGlobalFlags(globals)
}

// withLogger returns a context carrying the logger configured by the
// global logging flags and a function to close any log file.
func withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := globalFlags.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { _ = logger.Close() }, nil
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
