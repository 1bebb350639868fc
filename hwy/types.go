// Package hwy provides the portable vector layer used by the block
// transform kernels.
//
// It follows the Highway C++ library's design: code is written once against
// an opaque vector value and a small set of primitives (load, store,
// interleave, concatenate), and the lane count is resolved at startup from
// the detected CPU. The primitives here are pure Go so every target shares
// one bit-exact backend; the lane count decides which algorithm variant a
// caller picks.
//
// Basic usage:
//
//	import "github.com/ajroetker/hwyblock/hwy"
//
//	a := hwy.LoadN(row0, 4)
//	b := hwy.LoadN(row1, 4)
//	lo := hwy.InterleaveLower(a, b)
//	hwy.Store(lo, out)
package hwy

// MaxVecLanes is the largest number of lanes a Vec can hold: one 512-bit
// register of float32.
const MaxVecLanes = 16

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is an opaque vector value holding up to MaxVecLanes contiguous
// elements. It is a plain value: copying a Vec copies its lanes and no
// operation allocates.
//
// Vec instances should not be created directly; use LoadN.
type Vec[T Lanes] struct {
	data [MaxVecLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the vector's lanes.
// This is for tests and diagnostics and allocates.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's lanes to dst.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
