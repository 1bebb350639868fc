package block

import (
	"errors"
	"fmt"

	"github.com/ajroetker/hwyblock/hwy/contrib/workerpool"
)

// Plane drivers walk every 8x8 block of a width x height plane stored as
// scanlines. Work is split by block rows, so workers never touch the same
// samples. A nil pool runs on the calling goroutine and allocates nothing.

var (
	// ErrBlockAlign is returned when plane dimensions are not multiples of 8.
	ErrBlockAlign = errors.New("block: plane dimensions must be multiples of 8")

	// ErrStride is returned when a row stride is smaller than the plane width.
	ErrStride = errors.New("block: stride smaller than plane width")

	// ErrShortBuffer is returned when a buffer cannot hold the plane.
	ErrShortBuffer = errors.New("block: buffer too short")
)

func checkPlane(bufLen, stride, width, height int) error {
	if width < 0 || height < 0 || width%8 != 0 || height%8 != 0 {
		return fmt.Errorf("%w: %dx%d", ErrBlockAlign, width, height)
	}
	if stride < width {
		return fmt.Errorf("%w: stride %d, width %d", ErrStride, stride, width)
	}
	if width == 0 || height == 0 {
		return nil
	}
	if need := (height-1)*stride + width; bufLen < need {
		return fmt.Errorf("%w: plane needs %d samples, have %d", ErrShortBuffer, need, bufLen)
	}
	return nil
}

// GatherBlocks copies every 8x8 block of the plane in src into dst in
// block-major packed order: block (bx, by) occupies dst[64*(by*(width/8)+bx):]
// as a packed 8x8 block. This is the staging step before a per-block
// transform.
func GatherBlocks(pool *workerpool.Pool, src []float32, stride, width, height int, dst []float32) error {
	if err := checkPlane(len(src), stride, width, height); err != nil {
		return fmt.Errorf("gather: %w", err)
	}
	if need := width * height; len(dst) < need {
		return fmt.Errorf("gather: %w: blocks need %d samples, have %d", ErrShortBuffer, need, len(dst))
	}

	if pool == nil {
		for by := range height / 8 {
			gatherRow(src, stride, width, dst, by)
		}
		return nil
	}
	pool.ForSpans(height/8, func(start, end int) {
		for by := start; by < end; by++ {
			gatherRow(src, stride, width, dst, by)
		}
	})
	return nil
}

func gatherRow(src []float32, stride, width int, dst []float32, by int) {
	blocksX := width / 8
	for bx := range blocksX {
		from := NewFromLines(src[by*8*stride+bx*8:], 8, stride)
		to := NewToBlock(dst[64*(by*blocksX+bx):], 8)
		CopyBlock8(from, to)
	}
}

// ScatterBlocks is the inverse of GatherBlocks: it writes the block-major
// packed blocks in src back into the plane in dst.
func ScatterBlocks(pool *workerpool.Pool, src []float32, width, height int, dst []float32, stride int) error {
	if err := checkPlane(len(dst), stride, width, height); err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	if need := width * height; len(src) < need {
		return fmt.Errorf("scatter: %w: blocks need %d samples, have %d", ErrShortBuffer, need, len(src))
	}

	if pool == nil {
		for by := range height / 8 {
			scatterRow(src, width, dst, stride, by)
		}
		return nil
	}
	pool.ForSpans(height/8, func(start, end int) {
		for by := start; by < end; by++ {
			scatterRow(src, width, dst, stride, by)
		}
	})
	return nil
}

func scatterRow(src []float32, width int, dst []float32, stride, by int) {
	blocksX := width / 8
	for bx := range blocksX {
		from := NewFromBlock(src[64*(by*blocksX+bx):], 8)
		to := NewToLines(dst[by*8*stride+bx*8:], 8, stride)
		CopyBlock8(from, to)
	}
}

// TransposePlaneBlocks transposes every 8x8 block of the plane in place,
// leaving the block grid itself unchanged.
func TransposePlaneBlocks(pool *workerpool.Pool, plane []float32, stride, width, height int) error {
	if err := checkPlane(len(plane), stride, width, height); err != nil {
		return fmt.Errorf("transpose: %w", err)
	}

	if pool == nil {
		for by := range height / 8 {
			transposeRow(plane, stride, width, by)
		}
		return nil
	}
	pool.ForEachRow(height/8, func(by int) {
		transposeRow(plane, stride, width, by)
	})
	return nil
}

func transposeRow(plane []float32, stride, width, by int) {
	for bx := range width / 8 {
		lines := plane[by*8*stride+bx*8:]
		TransposeBlock8(NewFromLines(lines, 8, stride), NewToLines(lines, 8, stride))
	}
}
