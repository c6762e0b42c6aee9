// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package queue provides FIFO queues backed by either a growable ring
// buffer (Array) or a singly linked list (Linked). Neither is safe for
// concurrent use.
package queue

// Interface represents a FIFO queue.
type Interface[T any] interface {
	// Enqueue appends v to the back of the queue and returns the new
	// length of the queue.
	Enqueue(v T) int
	// Dequeue removes and returns the item at the front of the queue. It
	// returns false, and leaves the queue unchanged, if the queue is empty.
	Dequeue() (T, bool)
	// Front returns the item at the front of the queue without removing
	// it, or false if the queue is empty.
	Front() (T, bool)
	IsEmpty() bool
	Len() int
}

// rotate dequeues every item in q and enqueues it again, calling fn for
// each item in turn. q is unchanged on return.
func rotate[T any](q Interface[T], fn func(i int, v T)) {
	n := q.Len()
	for i := 0; i < n; i++ {
		v, _ := q.Dequeue()
		fn(i, v)
		q.Enqueue(v)
	}
}

// Equal returns true if a and b contain the same items in the same order.
// Both queues are unchanged on return.
func Equal[T comparable](a, b Interface[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	items := make([]T, 0, a.Len())
	rotate(a, func(_ int, v T) {
		items = append(items, v)
	})
	equal := true
	rotate(b, func(i int, v T) {
		if v != items[i] {
			equal = false
		}
	})
	return equal
}

// IsPalindrome returns true if the items in q read the same from front to
// back as from back to front. q is unchanged on return.
func IsPalindrome[T comparable](q Interface[T]) bool {
	items := make([]T, 0, q.Len())
	rotate(q, func(_ int, v T) {
		items = append(items, v)
	})
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		if items[i] != items[j] {
			return false
		}
	}
	return true
}
