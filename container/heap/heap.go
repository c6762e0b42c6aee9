// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides a binary min-heap over numeric values.
package heap

import "golang.org/x/exp/constraints"

// Number represents the set of types that can be stored in a Min heap.
type Number interface {
	constraints.Integer | constraints.Float
}

// Min represents a binary min-heap stored as a complete binary tree in
// a slice. For every index i > 0 the value at i is greater than or equal
// to the value at Parent(i). Min is not safe for concurrent use.
type Min[T Number] struct {
	values   []T
	callback func(iv, jv T, i, j int)
}

// NewMin creates a new instance of Min.
func NewMin[T Number](opts ...Option[T]) *Min[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	h := &Min[T]{callback: o.callback}
	if o.values != nil {
		h.values = o.values
		h.heapify()
		return h
	}
	h.values = make([]T, 0, o.sliceCap)
	return h
}

// Parent returns the index of the parent of the node at index i.
func Parent(i int) int { return (i - 1) / 2 }

// Left returns the index of the left child of the node at index i.
func Left(i int) int { return (i * 2) + 1 }

// Right returns the index of the right child of the node at index i.
func Right(i int) int { return (i * 2) + 2 }

// Len returns the number of values stored in the heap.
func (h *Min[T]) Len() int {
	return len(h.values)
}

// Top returns the smallest value in the heap without removing it. It
// returns false if the heap is empty.
func (h *Min[T]) Top() (T, bool) {
	if len(h.values) == 0 {
		var zero T
		return zero, false
	}
	return h.values[0], true
}

// Insert adds v to the heap.
func (h *Min[T]) Insert(v T) {
	h.values = append(h.values, v)
	h.siftUp(len(h.values) - 1)
}

// Extract removes and returns the smallest value in the heap. It returns
// false, and leaves the heap unchanged, if the heap is empty.
func (h *Min[T]) Extract() (T, bool) {
	n := len(h.values)
	if n == 0 {
		var zero T
		return zero, false
	}
	top := h.values[0]
	last := h.values[n-1]
	h.values = h.values[:n-1]
	if n == 1 {
		return top, true
	}
	h.values[0] = last
	h.siftDown(0, n-1)
	return top, true
}

// Values returns a copy of the heap's contents in heap (not sorted) order.
func (h *Min[T]) Values() []T {
	return append([]T(nil), h.values...)
}

func (h *Min[T]) heapify() {
	n := len(h.values)
	for i := n/2 - 1; i >= 0; i-- {
		h.siftDown(i, n)
	}
}

func (h *Min[T]) swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
	if h.callback != nil {
		h.callback(h.values[i], h.values[j], i, j)
	}
}

func (h *Min[T]) siftUp(i int) {
	for i > 0 {
		p := Parent(i)
		if !(h.values[i] < h.values[p]) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

// siftDown moves the value at i towards the leaves of the first n
// values. The left child is preferred unless the right child exists and
// is strictly smaller.
func (h *Min[T]) siftDown(i, n int) {
	for {
		l := Left(i)
		if l >= n || l < 0 { // l < 0 after int overflow
			break
		}
		c := l
		if r := Right(i); r < n && h.values[r] < h.values[l] {
			c = r
		}
		if !(h.values[c] < h.values[i]) {
			break
		}
		h.swap(i, c)
		i = c
	}
}

// Drain extracts every value from h and returns them in non-decreasing
// order, leaving h empty.
func Drain[T Number](h *Min[T]) []T {
	out := make([]T, 0, h.Len())
	for {
		v, ok := h.Extract()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
