// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"cloudeng.io/containers/container/heap"
	"cloudeng.io/containers/container/queue"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

var errNaN = errors.New("NaN cannot be ordered")

// fields returns args, or if there are none, the whitespace separated
// fields read from the cli's input.
func (c *cli) fields(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var fields []string
	sc := bufio.NewScanner(c.in)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	return fields, sc.Err()
}

// parseNumbers parses every field as a float64 and reports all of the
// fields that could not be parsed.
func parseNumbers(fields []string) ([]float64, error) {
	errs := errors.M{}
	nums := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err == nil && math.IsNaN(v) {
			err = errNaN
		}
		if err != nil {
			errs.Append(errors.Annotate(fmt.Sprintf("argument %v", i+1), err))
			continue
		}
		nums = append(nums, v)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return nums, nil
}

func formatNumbers(nums []float64) string {
	out := make([]string, len(nums))
	for i, n := range nums {
		out[i] = strconv.FormatFloat(n, 'g', -1, 64)
	}
	return strings.Join(out, " ")
}

func (c *cli) numbers(args []string) ([]float64, error) {
	fields, err := c.fields(args)
	if err != nil {
		return nil, err
	}
	return parseNumbers(fields)
}

func (c *cli) sort(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*sortFlags)
	if fv.Trace {
		fv.Level = max(fv.Level, 3)
	}
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	nums, err := c.numbers(args)
	if err != nil {
		return err
	}
	return sortNumbers(ctx, c.out, nums, fv.Trace)
}

func sortNumbers(ctx context.Context, out io.Writer, nums []float64, trace bool) error {
	logger := ctxlog.Logger(ctx)
	opts := []heap.Option[float64]{heap.WithSliceCap[float64](len(nums))}
	if trace {
		opts = append(opts, heap.WithCallback(func(iv, jv float64, i, j int) {
			logger.Debug("swap", "i", i, "i.value", iv, "j", j, "j.value", jv)
		}))
	}
	h := heap.NewMin(opts...)
	for _, n := range nums {
		h.Insert(n)
	}
	logger.Info("inserted", "size", h.Len())
	sorted := heap.Drain(h)
	logger.Info("extracted", "count", len(sorted))
	_, err := fmt.Fprintln(out, formatNumbers(sorted))
	return err
}

func (c *cli) tree(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*treeFlags)
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	nums, err := c.numbers(args)
	if err != nil {
		return err
	}
	return showTree(ctx, c.out, nums)
}

func showTree(ctx context.Context, out io.Writer, nums []float64) error {
	h := heap.NewMin(heap.WithSliceCap[float64](len(nums)))
	for _, n := range nums {
		h.Insert(n)
	}
	h.Pretty(out)
	if err := h.Validate(); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("heap order verified", "size", h.Len())
	return nil
}

func (c *cli) queue(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*queueFlags)
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	items, err := c.fields(args)
	if err != nil {
		return err
	}
	return runQueue(ctx, c.out, items, fv.Linked)
}

func runQueue(ctx context.Context, out io.Writer, items []string, linked bool) error {
	var q queue.Interface[string]
	if linked {
		q = queue.NewLinked[string]()
	} else {
		q = queue.NewArray[string](len(items))
	}
	for _, it := range items {
		q.Enqueue(it)
	}
	ctxlog.Logger(ctx).Info("enqueued", "size", q.Len(), "linked", linked)
	if _, err := fmt.Fprintf(out, "palindrome: %v\n", queue.IsPalindrome(q)); err != nil {
		return err
	}
	dequeued := make([]string, 0, q.Len())
	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		dequeued = append(dequeued, v)
	}
	_, err := fmt.Fprintln(out, strings.Join(dequeued, " "))
	return err
}
