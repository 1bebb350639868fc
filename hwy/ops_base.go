// Copyright 2025 go-highway Authors
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

package hwy

// This file provides the load/store primitives. They are pure data movement:
// lanes are copied bit for bit, so float NaN payloads and signed zeros
// survive unchanged.

// LoadN creates a vector of exactly n lanes from src[:n].
// It panics if n is out of [0, MaxVecLanes] or src is shorter than n.
func LoadN[T Lanes](src []T, n int) Vec[T] {
	var v Vec[T]
	v.n = copy(v.data[:n], src[:n])
	return v
}

// Store writes the vector's lanes to dst. If dst is shorter than the
// vector, only len(dst) lanes are written.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}
