package block

import (
	"math/rand/v2"
	"slices"
)

const sentinel = -1000

// layout builds adapters of one kind over fresh buffers for tests.
type layout struct {
	name string
	// source returns a Source whose n x n block holds vals in row-major
	// order.
	source func(vals []float32, n int) Source
	// sink returns an empty n x n Sink and a function reading its block back
	// in row-major order.
	sink func(n int) (Sink, func() []float32)
}

var packedLayout = layout{
	name: "packed",
	source: func(vals []float32, n int) Source {
		return NewFromBlock(slices.Clone(vals), n)
	},
	sink: func(n int) (Sink, func() []float32) {
		buf := make([]float32, n*n)
		return NewToBlock(buf, n), func() []float32 {
			return slices.Clone(buf)
		}
	},
}

// linesLayout places the block at column 3, row 2 of a scanline buffer
// whose stride is wider than the block, surrounded by sentinels.
var linesLayout = layout{
	name: "lines",
	source: func(vals []float32, n int) Source {
		stride := n + 5
		buf := filled((n+3)*stride, sentinel)
		for row := range n {
			copy(buf[(row+2)*stride+3:], vals[row*n:(row+1)*n])
		}
		return NewFromLines(buf, n, stride).View(3, 2)
	},
	sink: func(n int) (Sink, func() []float32) {
		stride := n + 5
		buf := filled((n+3)*stride, sentinel)
		return NewToLines(buf, n, stride).View(3, 2), func() []float32 {
			return readAll(NewFromLines(buf, n, stride).View(3, 2), n)
		}
	},
}

var layouts = []layout{packedLayout, linesLayout}

func filled(n int, v float32) []float32 {
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = v
	}
	return buf
}

// iotaBlock returns the n x n block whose value at (row, col) is row*n+col.
func iotaBlock(n int) []float32 {
	vals := make([]float32, n*n)
	for i := range vals {
		vals[i] = float32(i)
	}
	return vals
}

func randomBlock(rng *rand.Rand, n int) []float32 {
	vals := make([]float32, n*n)
	for i := range vals {
		vals[i] = rng.Float32()*512 - 256
	}
	return vals
}

// naiveTranspose is the mathematical transpose of a row-major n x n block.
func naiveTranspose(vals []float32, n int) []float32 {
	out := make([]float32, n*n)
	for row := range n {
		for col := range n {
			out[col*n+row] = vals[row*n+col]
		}
	}
	return out
}

func readAll(src Source, n int) []float32 {
	out := make([]float32, n*n)
	for row := range n {
		for col := range n {
			out[row*n+col] = src.Read(row, col)
		}
	}
	return out
}
