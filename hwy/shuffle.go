package hwy

import "unsafe"

// This file provides the shuffle operations the transpose networks are
// built from. Interleaves follow x86 unpacklo/unpackhi and NEON zip1/zip2:
// they work independently inside each 128-bit block. Concatenations work on
// halves of the whole vector.

// blockLanes returns the number of lanes in one 128-bit block of an n-lane
// vector of T. Vectors narrower than 128 bits are a single block.
func blockLanes[T Lanes](n int) int {
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	return min(16/size, n)
}

// checkInterleave panics unless an n-lane vector splits into whole 128-bit
// blocks of an even number of lanes (or, below 128 bits, is itself even).
func checkInterleave[T Lanes](op string, n int) int {
	blk := blockLanes[T](n)
	if blk%2 != 0 || n%blk != 0 {
		panic("hwy: " + op + ": lane count must fill whole 128-bit blocks of an even number of lanes")
	}
	return blk
}

// checkHalves panics unless an n-lane vector has two equal halves.
func checkHalves(op string, n int) int {
	if n%2 != 0 {
		panic("hwy: " + op + ": lane count must be even")
	}
	return n / 2
}

// InterleaveLower interleaves the lower halves of each 128-bit block.
// The lane count must be even and, from 128 bits up, a whole number of
// blocks; anything else panics.
// 4 lanes: [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
// 8 lanes: [a0..a7], [b0..b7] -> [a0,b0,a1,b1,a4,b4,a5,b5]
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	result := Vec[T]{n: n}
	if n == 0 {
		return result
	}
	blk := checkInterleave[T]("InterleaveLower", n)
	half := blk / 2
	for base := 0; base+blk <= n; base += blk {
		for i := range half {
			result.data[base+2*i] = a.data[base+i]
			result.data[base+2*i+1] = b.data[base+i]
		}
	}
	return result
}

// InterleaveUpper interleaves the upper halves of each 128-bit block.
// It has the same lane-count precondition as InterleaveLower.
// 4 lanes: [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
// 8 lanes: [a0..a7], [b0..b7] -> [a2,b2,a3,b3,a6,b6,a7,b7]
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	result := Vec[T]{n: n}
	if n == 0 {
		return result
	}
	blk := checkInterleave[T]("InterleaveUpper", n)
	half := blk / 2
	for base := 0; base+blk <= n; base += blk {
		for i := range half {
			result.data[base+2*i] = a.data[base+half+i]
			result.data[base+2*i+1] = b.data[base+half+i]
		}
	}
	return result
}

// ConcatLowerLower concatenates the lower halves of two vectors.
// The lane count must be even.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,a1,b0,b1]
func ConcatLowerLower[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	half := checkHalves("ConcatLowerLower", n)
	result := Vec[T]{n: n}
	copy(result.data[:half], a.data[:half])
	copy(result.data[half:n], b.data[:half])
	return result
}

// ConcatUpperUpper concatenates the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,a3,b2,b3]
func ConcatUpperUpper[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	half := checkHalves("ConcatUpperUpper", n)
	result := Vec[T]{n: n}
	copy(result.data[:half], a.data[half:n])
	copy(result.data[half:n], b.data[half:n])
	return result
}
