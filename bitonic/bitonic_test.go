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

import (
	"math"
	"math/bits"
	"math/rand"
	"testing"

	"golang.org/x/exp/slices"
)

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// checkSortedPermutation verifies that got is ordered in the requested
// direction and holds the same multiset of elements as orig.
func checkSortedPermutation(t *testing.T, got, orig []int, desc bool) {
	t.Helper()

	for i := 1; i < len(got); i++ {
		inOrder := got[i-1] <= got[i]
		if desc {
			inOrder = got[i-1] >= got[i]
		}
		if !inOrder {
			t.Fatalf("out of order at %d: %d, %d", i, got[i-1], got[i])
		}
	}

	ref := slices.Clone(orig)
	slices.Sort(ref)
	perm := slices.Clone(got)
	slices.Sort(perm)
	if !slices.Equal(ref, perm) {
		t.Fatalf("result is not a permutation of the input")
	}
}

func TestLargestPow2Below(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 4},
		{8, 4},
		{9, 8},
		{1000, 512},
		{8192, 4096},
		{8193, 8192},
	}
	for _, tt := range tests {
		if got := largestPow2Below(tt.n); got != tt.want {
			t.Errorf("largestPow2Below(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

// TestLargestPow2BelowMaxInt drives the doubling loop past the largest
// positive power of two; the loop must terminate and still return it.
func TestLargestPow2BelowMaxInt(t *testing.T) {
	want := 1 << (bits.UintSize - 2)
	if got := largestPow2Below(math.MaxInt); got != want {
		t.Errorf("largestPow2Below(MaxInt) = %d, want %d", got, want)
	}
}

func TestMergeRangeBitonicAscending(t *testing.T) {
	data := []int{1, 3, 5, 7, 8, 6, 4, 2}
	mergeRange(data, 0, len(data), compareInt, ascending)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8}
	if !slices.Equal(data, want) {
		t.Errorf("mergeRange = %v, want %v", data, want)
	}
}

func TestMergeRangeBitonicDescending(t *testing.T) {
	data := []int{1, 3, 5, 7, 8, 6, 4, 2}
	mergeRange(data, 0, len(data), compareInt, descending)
	want := []int{8, 7, 6, 5, 4, 3, 2, 1}
	if !slices.Equal(data, want) {
		t.Errorf("mergeRange = %v, want %v", data, want)
	}
}

// TestMergeRangeNonPow2 exercises the overflow-tail fold on bitonic
// sequences whose length is not a power of two. At these lengths the
// merge requires the shape the sort recursion produces: first run ordered
// against the merge direction, second run with it.
func TestMergeRangeNonPow2(t *testing.T) {
	data := []int{9, 1, 3, 4, 7}
	mergeRange(data, 0, len(data), compareInt, ascending)
	want := []int{1, 3, 4, 7, 9}
	if !slices.Equal(data, want) {
		t.Errorf("mergeRange = %v, want %v", data, want)
	}
}

func TestMergeRangeNonPow2Descending(t *testing.T) {
	data := []int{2, 5, 9, 8, 3}
	mergeRange(data, 0, len(data), compareInt, descending)
	want := []int{9, 8, 5, 3, 2}
	if !slices.Equal(data, want) {
		t.Errorf("mergeRange = %v, want %v", data, want)
	}
}

// TestMergeRangeSubWindow checks that merging an interior window leaves
// the rest of the slice untouched.
func TestMergeRangeSubWindow(t *testing.T) {
	data := []int{99, 2, 6, 5, 1, 99}
	mergeRange(data, 1, 4, compareInt, ascending)
	want := []int{99, 1, 2, 5, 6, 99}
	if !slices.Equal(data, want) {
		t.Errorf("mergeRange = %v, want %v", data, want)
	}
}

func TestSortRangeAscending(t *testing.T) {
	data := []int{65, 23, 89, 1, 555555555}
	sortRange(data, 0, len(data), compareInt, ascending)
	want := []int{1, 23, 65, 89, 555555555}
	if !slices.Equal(data, want) {
		t.Errorf("sortRange = %v, want %v", data, want)
	}
}

func TestSortRangeDescending(t *testing.T) {
	data := []int{5, -3, 0, -3, 5}
	sortRange(data, 0, len(data), compareInt, descending)
	want := []int{5, 5, 0, -3, -3}
	if !slices.Equal(data, want) {
		t.Errorf("sortRange = %v, want %v", data, want)
	}
}

// TestSortSequentialLengths runs the serial engine across lengths that are
// not powers of two, the classic weak spot of bitonic networks.
func TestSortSequentialLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 2, 3, 5, 7, 31, 100, 1023, 4096, 10000} {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(1000) - 500
		}
		orig := slices.Clone(data)

		if err := SortSequentialFunc(data, compareInt); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		checkSortedPermutation(t, data, orig, false)
	}
}

func TestSortSequentialIdempotent(t *testing.T) {
	data := []int{1, 2, 2, 3, 5, 8, 13}
	want := slices.Clone(data)
	SortSequential(data)
	if !slices.Equal(data, want) {
		t.Errorf("sorting sorted input changed it: %v, want %v", data, want)
	}
}

func TestSortSequentialNatural(t *testing.T) {
	words := []string{"pear", "apple", "cherry"}
	SortSequential(words)
	want := []string{"apple", "cherry", "pear"}
	if !slices.Equal(words, want) {
		t.Errorf("SortSequential = %v, want %v", words, want)
	}
}
