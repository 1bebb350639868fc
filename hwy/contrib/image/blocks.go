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
	"github.com/ajroetker/hwyblock/hwy/contrib/block"
	"github.com/ajroetker/hwyblock/hwy/contrib/workerpool"
)

// ToBlocks copies every block of img, padding included, into blocks in
// block-major packed order: block (bx, by) starts at
// blocks[64*(by*img.BlocksX()+bx)]. Call ExtendEdges first if the padding
// should repeat the image edge.
func ToBlocks(pool *workerpool.Pool, img *Image[float32], blocks []float32) error {
	return block.GatherBlocks(pool, img.data, img.stride,
		img.BlocksX()*BlockSize, img.BlocksY()*BlockSize, blocks)
}

// FromBlocks is the inverse of ToBlocks.
func FromBlocks(pool *workerpool.Pool, blocks []float32, img *Image[float32]) error {
	return block.ScatterBlocks(pool, blocks,
		img.BlocksX()*BlockSize, img.BlocksY()*BlockSize, img.data, img.stride)
}

// TransposeBlocks transposes every 8x8 block of img in place.
func TransposeBlocks(pool *workerpool.Pool, img *Image[float32]) error {
	return block.TransposePlaneBlocks(pool, img.data, img.stride,
		img.BlocksX()*BlockSize, img.BlocksY()*BlockSize)
}
