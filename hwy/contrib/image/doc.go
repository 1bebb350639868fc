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

// Package image provides single-channel 2D planes laid out for 8x8 block
// transforms.
//
// An Image[T] rounds its storage up to whole 8x8 blocks: rows are padded
// to a multiple of 8 samples (and of the SIMD vector width) and extra rows
// are allocated below the last one. Block operations cover the padded
// area, so a plane of any size can be cut into blocks without special
// cases at the right and bottom edges.
//
// # Block Operations
//
//	ExtendEdges(img)                // replicate the last column/row into the padding
//	ToBlocks(pool, img, blocks)     // scanlines -> packed block-major buffer
//	FromBlocks(pool, blocks, img)   // packed block-major buffer -> scanlines
//	TransposeBlocks(pool, img)      // transpose every 8x8 block in place
//
// # Usage Example
//
//	img := image.NewImage[float32](1920, 1080)
//	// ... fill img.RowSlice(y) ...
//	image.ExtendEdges(img)
//
//	blocks := make([]float32, img.NumBlocks()*64)
//	if err := image.ToBlocks(pool, img, blocks); err != nil {
//	    return err
//	}
package image
