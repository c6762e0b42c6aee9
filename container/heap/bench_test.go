// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	stdheap "container/heap"
	"math/rand"
	"testing"

	"cloudeng.io/containers/container/heap"
)

type stdSlice[T heap.Number] []T

func (h *stdSlice[T]) Less(i, j int) bool {
	return (*h)[i] < (*h)[j]
}

func (h *stdSlice[T]) Swap(i, j int) {
	(*h)[i], (*h)[j] = (*h)[j], (*h)[i]
}

func (h *stdSlice[T]) Len() int {
	return len(*h)
}

func (h *stdSlice[T]) Pop() (v any) {
	old := *h
	n := len(old)
	v = (*h)[n-1]
	*h = old[:n-1]
	return
}

func (h *stdSlice[T]) Push(v any) {
	*h = append(*h, v.(T))
}

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10000)
	}
	return r
}

func zipfRand(seed int64, n int) []uint64 {
	rnd := rand.New(rand.NewSource(seed))                // #nosec: G404
	gen := rand.NewZipf(rnd, 3.0, 1.1, 8*1024*1024*1024) // 8Gib
	r := make([]uint64, n)
	for i := range r {
		r[i] = gen.Uint64()
	}
	return r
}

func benchmarkStdHeap[T heap.Number](b *testing.B, h *stdSlice[T], keys []T) {
	for i := 0; i < b.N; i++ {
		for j := range keys {
			stdheap.Push(h, keys[j])
		}
		for h.Len() > 0 {
			_ = stdheap.Pop(h).(T)
		}
	}
}

func benchmarkMinHeap[T heap.Number](b *testing.B, h *heap.Min[T], keys []T) {
	for i := 0; i < b.N; i++ {
		for j := range keys {
			h.Insert(keys[j])
		}
		for h.Len() > 0 {
			h.Extract()
		}
	}
}

const benchmarkInputSize = 10000

func BenchmarkStdHeapDup(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, benchmarkInputSize)
	h := make(stdSlice[int], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys)
}

func BenchmarkStdHeapRand(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	h := make(stdSlice[int], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys)
}

func BenchmarkStdHeapZipf(b *testing.B) {
	b.ReportAllocs()
	keys := zipfRand(0, benchmarkInputSize)
	h := make(stdSlice[uint64], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys)
}

func BenchmarkMinHeapDup(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, benchmarkInputSize)
	h := heap.NewMin(heap.WithSliceCap[int](len(keys)))
	b.ResetTimer()
	benchmarkMinHeap(b, h, keys)
}

func BenchmarkMinHeapRand(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	h := heap.NewMin(heap.WithSliceCap[int](len(keys)))
	b.ResetTimer()
	benchmarkMinHeap(b, h, keys)
}

func BenchmarkMinHeapZipf(b *testing.B) {
	b.ReportAllocs()
	keys := zipfRand(0, benchmarkInputSize)
	h := heap.NewMin(heap.WithSliceCap[uint64](len(keys)))
	b.ResetTimer()
	benchmarkMinHeap(b, h, keys)
}
