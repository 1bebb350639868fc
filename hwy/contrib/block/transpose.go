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

package block

import (
	"os"
	"strings"

	"github.com/ajroetker/hwyblock/hwy"
)

// Variant identifies one of the interchangeable 8x8 transpose algorithms.
type Variant int

const (
	// VariantV4 transposes with 4-lane vectors (SSE2, NEON, scalar).
	VariantV4 Variant = iota
	// VariantV8 transposes with 8-lane vectors (AVX2 and wider).
	VariantV8
)

// String returns "v4" or "v8".
func (v Variant) String() string {
	switch v {
	case VariantV4:
		return "v4"
	case VariantV8:
		return "v8"
	default:
		return "unknown"
	}
}

// Lanes returns the vector width the variant is written for.
func (v Variant) Lanes() int {
	if v == VariantV8 {
		return 8
	}
	return 4
}

// SelectVariant returns the variant matching a vector of the given number
// of float32 lanes.
func SelectVariant(lanes int) Variant {
	if lanes >= 8 {
		return VariantV8
	}
	return VariantV4
}

// ParseVariant parses "v4" or "v8" (case-insensitive).
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v4":
		return VariantV4, true
	case "v8":
		return VariantV8, true
	default:
		return 0, false
	}
}

// Transpose returns the 8x8 transpose implementation of variant v as a
// function value over the Source/Sink interfaces. It pins a variant for
// tests and diagnostics; calls through it box the adapters, so hot paths
// use TransposeBlock8 or the variant kernels directly.
func Transpose(v Variant) func(from Source, to Sink) {
	if v == VariantV8 {
		return TransposeBlock8V8[Source, Sink]
	}
	return TransposeBlock8V4[Source, Sink]
}

// currentVariant is chosen once at startup from Lanes(8). Set
// HWY_BLOCK_VARIANT=v4 or v8 to pin one.
var currentVariant Variant

// CurrentVariant returns the variant TransposeBlock8 runs.
func CurrentVariant() Variant {
	return currentVariant
}

func init() {
	currentVariant = SelectVariant(Lanes(8))
	if v, ok := ParseVariant(os.Getenv("HWY_BLOCK_VARIANT")); ok {
		currentVariant = v
	}
}

// TransposeBlock8 writes the transpose of the 8x8 block at the origin of
// from to the origin of to: to[col][row] = from[row][col]. It runs the
// variant matching the vector width detected at startup and does not
// allocate.
//
// from and to may address the identical packed region (in-place) or
// disjoint regions, but must not partially overlap.
func TransposeBlock8[F Source, T Sink](from F, to T) {
	if currentVariant == VariantV8 {
		TransposeBlock8V8(from, to)
		return
	}
	TransposeBlock8V4(from, to)
}

// TransposeScalar8 is the reference 8x8 transpose, one sample at a time.
// Unlike the vector variants it is not safe in place.
func TransposeScalar8[F Source, T Sink](from F, to T) {
	for row := range 8 {
		for col := range 8 {
			to.Write(col, row, from.Read(row, col))
		}
	}
}

// TransposeBlock4 transposes the 4x4 block at the origin of from into the
// origin of to with one two-stage interleave network.
func TransposeBlock4[F Source, T Sink](from F, to T) {
	p0 := from.LoadPart(4, 0, 0)
	p1 := from.LoadPart(4, 1, 0)
	p2 := from.LoadPart(4, 2, 0)
	p3 := from.LoadPart(4, 3, 0)

	q0 := hwy.InterleaveLower(p0, p2)
	q1 := hwy.InterleaveLower(p1, p3)
	q2 := hwy.InterleaveUpper(p0, p2)
	q3 := hwy.InterleaveUpper(p1, p3)

	to.StorePart(4, 0, 0, hwy.InterleaveLower(q0, q1))
	to.StorePart(4, 1, 0, hwy.InterleaveUpper(q0, q1))
	to.StorePart(4, 2, 0, hwy.InterleaveLower(q2, q3))
	to.StorePart(4, 3, 0, hwy.InterleaveUpper(q2, q3))
}

// TransposeBlock16 transposes the 16x16 block at the origin of from into
// the origin of to as four 8x8 transposes, swapping the off-diagonal
// quadrants. from and to must not overlap.
func TransposeBlock16[F ViewSource[F], T ViewSink[T]](from F, to T) {
	for by := 0; by < 16; by += 8 {
		for bx := 0; bx < 16; bx += 8 {
			TransposeBlock8(from.View(bx, by), to.View(by, bx))
		}
	}
}
