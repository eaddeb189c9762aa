// Copyright 2025 go-bitonic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitonic

// direction is the target monotonic order of a merge or sort pass. It
// flips for the first half at every split of the sort recursion, which is
// what produces the bitonic shape the merge relies on.
type direction bool

const (
	ascending  direction = true
	descending direction = false
)

// compareAndExchange swaps data[i] and data[j] when they are out of order
// with respect to dir. The single rule (cmp > 0) == dir covers both
// directions: ascending passes swap toward increasing order, descending
// passes toward decreasing order.
func compareAndExchange[T any](data []T, i, j int, cmp func(a, b T) int, dir direction) {
	if (cmp(data[i], data[j]) > 0) == bool(dir) {
		data[i], data[j] = data[j], data[i]
	}
}

// largestPow2Below returns the largest power of two strictly less than n,
// or 0 for n <= 1.
func largestPow2Below(n int) int {
	k := 1
	for k > 0 && k < n {
		k <<= 1
	}
	// unsigned shift: k has wrapped negative when n exceeds the largest
	// positive power of two
	return int(uint(k) >> 1)
}

// mergeRange merges the range [offset, offset+count) into a single
// monotonic run in direction dir.
//
// Precondition: the range is a first run ordered against dir followed by
// a second run ordered with dir, either run possibly empty. The sort
// engines guarantee this structurally (opposite directions in sibling
// halves). At power-of-two counts any bitonic rotation merges correctly,
// but at other counts the opposite shape does not; violating the
// precondition silently produces an unsorted result. Bounds are likewise
// the caller's responsibility and are not re-checked per call.
//
// The tail pass is what generalizes the power-of-two network: every index
// in the overflow tail [offset, offset+count-n) is compared against its
// partner n positions ahead, after which both sub-ranges are independently
// bitonic-mergeable.
func mergeRange[T any](data []T, offset, count int, cmp func(a, b T) int, dir direction) {
	if count <= 1 {
		return
	}

	n := largestPow2Below(count)

	for i := offset; i < offset+count-n; i++ {
		compareAndExchange(data, i, i+n, cmp, dir)
	}

	mergeRange(data, offset, n, cmp, dir)
	mergeRange(data, offset+n, count-n, cmp, dir)
}

// sortRange sorts [offset, offset+count) in direction dir: the first half
// is sorted against dir and the second half with it, leaving the whole
// range bitonic, which mergeRange then resolves into one monotonic run.
// In place, no auxiliary storage.
func sortRange[T any](data []T, offset, count int, cmp func(a, b T) int, dir direction) {
	if count <= 1 {
		return
	}

	split := count / 2

	sortRange(data, offset, split, cmp, !dir)
	sortRange(data, offset+split, count-split, cmp, dir)

	mergeRange(data, offset, count, cmp, dir)
}
