// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

func SwapForTesting[T Number](h *Min[T], i, j int) {
	h.swap(i, j)
}
