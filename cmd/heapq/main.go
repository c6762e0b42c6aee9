// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command heapq exercises the min-heap and queue containers from the
// command line.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const spec = `name: heapq
summary: exercise the min-heap and queue containers
commands:
  - name: sort
    summary: insert numbers into a min-heap and extract them in ascending order, numbers are read from stdin if none are given
    arguments:
      - ...
  - name: tree
    summary: insert numbers into a min-heap and display the resulting tree, numbers are read from stdin if none are given
    arguments:
      - ...
  - name: queue
    summary: enqueue items, report whether they form a palindrome and dequeue them in FIFO order
    arguments:
      - ...
`

type CommonFlags struct {
	cmdutil.LoggingFlags
}

type sortFlags struct {
	CommonFlags
	Trace bool `subcmd:"trace,false,'log every swap made while reordering the heap, implies --log-level=3'"`
}

type treeFlags struct {
	CommonFlags
}

type queueFlags struct {
	CommonFlags
	Linked bool `subcmd:"linked,false,'use the linked list queue rather than the array backed one'"`
}

func main() {
	cmdSet := subcmd.MustFromYAML(spec)
	app := &cli{in: os.Stdin, out: os.Stdout}
	cmdSet.Set("sort").MustRunnerAndFlags(app.sort, subcmd.MustRegisteredFlagSet(&sortFlags{}))
	cmdSet.Set("tree").MustRunnerAndFlags(app.tree, subcmd.MustRegisteredFlagSet(&treeFlags{}))
	cmdSet.Set("queue").MustRunnerAndFlags(app.queue, subcmd.MustRegisteredFlagSet(&queueFlags{}))
	subcmd.Dispatch(context.Background(), cmdSet)
}

type cli struct {
	in  io.Reader
	out io.Writer
}

// withLogger returns a context carrying the logger configured by the
// common logging flags, and a function to close any log file opened.
func (cf *CommonFlags) withLogger(ctx context.Context) (context.Context, func() error, error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), logger.Close, nil
}
