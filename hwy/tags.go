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

// CappedTag describes a vector of at most Cap lanes: the full runtime width
// when that is narrower, otherwise exactly Cap. It lets the same code run on
// a 4-wide sub-block of a 16x16 tile without asking the hardware for a
// 16-lane register.
//
// Usage:
//
//	lanes := hwy.CappedTag[float32]{Cap: 8}.MaxLanes()
type CappedTag[T Lanes] struct {
	Cap int
}

// MaxLanes returns min(Cap, MaxLanes[T]()), never negative.
func (t CappedTag[T]) MaxLanes() int {
	return max(min(t.Cap, MaxLanes[T]()), 0)
}
