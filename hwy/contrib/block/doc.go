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

// Package block provides the memory-access and transpose layer underneath a
// DCT block transform.
//
// Samples of a square block live in one of two layouts:
//
//   - packed: N*N contiguous float32, row stride N (FromBlock, ToBlock)
//   - lines: a sub-rectangle of a larger scanline buffer with a caller
//     supplied stride (FromLines, ToLines)
//
// The adapters hide the layout behind one capability set (Source, Sink), so
// CopyBlock8 and the 8x8 transposes are written once and instantiated for
// any pairing of layouts.
//
// Example usage:
//
//	// Transpose the 8x8 block at column 8 of a 16-wide scanline buffer
//	// into a packed scratch block.
//	lines := block.NewFromLines(plane, 8, 16).View(8, 0)
//	scratch := make([]float32, 64)
//	block.TransposeBlock8(lines, block.NewToBlock(scratch, 8))
//
// Two 8x8 transpose algorithms are provided, one for 4-lane and one for
// 8-lane vectors. TransposeBlock8 runs the one selected at startup as
// matching the detected vector width; TransposeBlock8V4 and
// TransposeBlock8V8 can be called directly and produce identical results.
//
// All operations are pure data movement. The adapters borrow the caller's
// slices and never retain them past a call; concurrent calls are safe as
// long as their destination regions are disjoint.
package block

//go:generate go run ../../../cmd/blockgen -output z_transpose_kernels.go
