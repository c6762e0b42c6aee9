// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[T Number] struct {
	sliceCap int
	values   []T
	callback func(iv, jv T, i, j int)
}

// Option represents the options that can be passed to NewMin.
type Option[T Number] func(*options[T])

// WithSliceCap sets the initial capacity of the slice used to hold values.
// Negative values are treated as zero.
func WithSliceCap[T Number](n int) Option[T] {
	return func(o *options[T]) {
		o.sliceCap = max(n, 0)
	}
}

// WithData sets the initial data for the heap. The heap takes ownership
// of values and reorders it in place.
func WithData[T Number](values []T) Option[T] {
	return func(o *options[T]) {
		o.values = values
	}
}

// WithCallback provides a callback function that is called after every
// swap with the values and indices of the elements that have changed
// location. Removal of the minimum is not reported and hence
// applications that need to track it must do so explicitly.
func WithCallback[T Number](fn func(iv, jv T, i, j int)) Option[T] {
	return func(o *options[T]) {
		o.callback = fn
	}
}
