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

// Package bitonic implements a generic, comparator-parameterized bitonic
// sort, in both a purely sequential recursive form and a parallel
// divide-and-conquer form over a bounded worker pool.
//
// # Algorithm
//
// Bitonic sort is a sorting network: it sorts by building a bitonic
// sequence (one monotonic run against the target direction followed by
// one with it) and merging it into a single monotonic run. The
// classic network requires power-of-two lengths; this implementation
// generalizes to arbitrary lengths by splitting each segment into the
// largest power-of-two prefix and the remainder, and folding the overflow
// tail into the power-of-two structure during the merge.
//
// The parallel form mirrors the sequential recursion as a fork/join task
// tree. Each task carries a parallelism budget, halved per level; when the
// budget is exhausted recursion continues synchronously, and segments
// below GranularityThreshold are handed to an off-the-shelf in-place sort
// instead of being split further. A task merges its range only after both
// child tasks have joined; sibling tasks touch disjoint index ranges, so
// the slice needs no locking.
//
// # Example Usage
//
//	import "github.com/laurencepettitt/go-bitonic/bitonic"
//
//	func Process(data []int64) {
//	    bitonic.Sort(data) // in-place ascending sort
//	}
//
//	func ByScore(players []Player) error {
//	    return bitonic.SortFunc(players, func(a, b Player) int {
//	        return a.Score - b.Score
//	    })
//	}
//
// # Guarantees
//
// Sorting is in place and allocates no auxiliary element storage in the
// core. The sort is not stable: elements that compare equal may appear in
// any relative order. Once started, a sort runs to completion; there is no
// cancellation contract.
package bitonic
