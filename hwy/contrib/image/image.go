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

package image

import (
	"github.com/ajroetker/hwyblock/hwy"
)

// BlockSize is the edge length of the blocks an Image is padded to.
const BlockSize = 8

// Image is a single-channel 2D array padded to whole blocks.
// Each row holds Stride() elements, a multiple of both BlockSize and the
// SIMD vector width, and BlocksY()*BlockSize rows are allocated.
type Image[T hwy.Lanes] struct {
	data   []T
	width  int
	height int
	stride int // elements per row (includes padding)
	rows   int // allocated rows (includes padding)
}

func roundUp(n, m int) int {
	return (n + m - 1) / m * m
}

// NewImage creates a new image with the specified dimensions.
// Non-positive dimensions give an empty image.
func NewImage[T hwy.Lanes](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}

	stride := roundUp(width, max(BlockSize, hwy.MaxLanes[T]()))
	rows := roundUp(height, BlockSize)
	return &Image[T]{
		data:   make([]T, stride*rows),
		width:  width,
		height: height,
		stride: stride,
		rows:   rows,
	}
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements per row (including padding).
func (img *Image[T]) Stride() int {
	return img.stride
}

// BlocksX returns the number of block columns covering the image.
func (img *Image[T]) BlocksX() int {
	return (img.width + BlockSize - 1) / BlockSize
}

// BlocksY returns the number of block rows covering the image.
func (img *Image[T]) BlocksY() int {
	return img.rows / BlockSize
}

// NumBlocks returns BlocksX() * BlocksY().
func (img *Image[T]) NumBlocks() int {
	return img.BlocksX() * img.BlocksY()
}

// Data returns the backing slice, padding included.
func (img *Image[T]) Data() []T {
	return img.data
}

// Row returns a mutable slice for the specified row.
// The slice includes padding elements beyond the image width.
// Padding rows below the image are not reachable through Row.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.stride]
}

// RowSlice returns a mutable slice for the specified row,
// limited to the actual image width (excluding padding).
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// At returns the value at position (x, y).
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set sets the value at position (x, y).
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	img.data[y*img.stride+x] = value
}

// Clone creates a deep copy of the image.
func (img *Image[T]) Clone() *Image[T] {
	clone := *img
	if img.data != nil {
		clone.data = make([]T, len(img.data))
		copy(clone.data, img.data)
	}
	return &clone
}

// Fill sets all pixels, padding included, to the specified value.
func (img *Image[T]) Fill(value T) {
	for i := range img.data {
		img.data[i] = value
	}
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// ExtendEdges fills the padding that block operations read, the columns
// up to BlocksX()*BlockSize and the rows below the image, by repeating the
// nearest edge pixel.
func ExtendEdges[T hwy.Lanes](img *Image[T]) {
	if img.data == nil {
		return
	}
	blockWidth := img.BlocksX() * BlockSize
	for y := range img.rows {
		row := img.data[y*img.stride : y*img.stride+blockWidth]
		if y >= img.height {
			src := Clamp(y, img.height) * img.stride
			copy(row, img.data[src:src+blockWidth])
			continue
		}
		for x := img.width; x < blockWidth; x++ {
			row[x] = row[Clamp(x, img.width)]
		}
	}
}
