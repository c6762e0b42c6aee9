// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"
	"io"
	"strings"

	"cloudeng.io/errors"
)

// ErrHeapOrder is wrapped by every error returned by Validate.
var ErrHeapOrder = errors.New("heap order violated")

// Validate checks that every value in the heap is greater than or equal to
// its parent. All violations are reported, each wrapping ErrHeapOrder.
func (h *Min[T]) Validate() error {
	errs := errors.M{}
	for i := 1; i < len(h.values); i++ {
		p := Parent(i)
		if h.values[i] < h.values[p] {
			errs.Append(fmt.Errorf("[%v] %v < parent [%v] %v: %w", i, h.values[i], p, h.values[p], ErrHeapOrder))
		}
	}
	return errs.Err()
}

// Pretty writes the heap to w as a tree, one level per line. Each line is
// prefixed with the index of its first node.
func (h *Min[T]) Pretty(w io.Writer) {
	n := len(h.values)
	depth := 0
	for (1<<depth)-1 < n {
		depth++
	}
	for l, start := 0, 0; start < n; l, start = l+1, Left(start) {
		end := min(Left(start), n)
		fmt.Fprintf(w, "%4d:%s", start, strings.Repeat(" ", 2*(depth-l-1)))
		for _, v := range h.values[start:end] {
			fmt.Fprintf(w, " %v", v)
		}
		fmt.Fprintln(w)
	}
}
