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

import "github.com/ajroetker/hwyblock/hwy"

// Adapters map (row, col) of an N-wide block onto a borrowed float32 slice:
//
//	packed: buf[off + N*row + col]
//	lines:  buf[off + stride*row + col]
//
// A packed block is a lines block whose stride is fixed to N. Sources only
// read, sinks only write. Every adapter is a small value meant to be built
// right before use.

// Source is the read side of a block layout.
type Source interface {
	// N returns the block edge length the adapter was built for.
	N() int
	// Stride returns the distance in elements between rows.
	Stride() int
	// Address returns the index in the backing slice of (row, col).
	Address(row, col int) int
	// Read returns the sample at (row, col).
	Read(row, col int) float32
	// Load returns Lanes(N()) contiguous samples starting at (row, col).
	Load(row, col int) hwy.Vec[float32]
	// LoadPart returns exactly width contiguous samples starting at
	// (row, col).
	LoadPart(width, row, col int) hwy.Vec[float32]
}

// Sink is the write side of a block layout.
type Sink interface {
	N() int
	Stride() int
	Address(row, col int) int
	// Write sets the sample at (row, col).
	Write(row, col int, v float32)
	// Store writes the Lanes(N()) lanes of v starting at (row, col).
	Store(row, col int, v hwy.Vec[float32])
	// StorePart writes the first width lanes of v starting at (row, col).
	StorePart(width, row, col int, v hwy.Vec[float32])
}

// ViewSource is a Source that can address a sub-rectangle of itself as the
// same concrete type.
type ViewSource[S any] interface {
	Source
	View(dx, dy int) S
}

// ViewSink is a Sink that can address a sub-rectangle of itself as the same
// concrete type.
type ViewSink[S any] interface {
	Sink
	View(dx, dy int) S
}

// region is the addressing shared by all adapters.
type region struct {
	off    int // index of (0, 0) in the backing slice
	stride int // move to next line by adding this to the index
	n      int
	lanes  int // Lanes(n), resolved once
}

func newRegion(off, stride, n int) region {
	return region{off: off, stride: stride, n: n, lanes: Lanes(n)}
}

func (r region) index(row, col int) int {
	return r.off + row*r.stride + col
}

// view moves the origin dy rows down and dx columns right.
func (r region) view(dx, dy int) region {
	r.off = r.index(dy, dx)
	return r
}

// FromBlock reads a packed N x N block.
type FromBlock struct {
	buf []float32
	r   region
}

// NewFromBlock returns a Source over the packed n x n block at the start of
// block.
func NewFromBlock(block []float32, n int) FromBlock {
	f := FromBlock{buf: block, r: newRegion(0, n, n)}
	if debugChecks {
		checkRegion("FromBlock", len(block), f.r)
	}
	return f
}

// View returns the adapter whose origin is column dx, row dy of f.
func (f FromBlock) View(dx, dy int) FromBlock {
	return FromBlock{buf: f.buf, r: f.r.view(dx, dy)}
}

func (f FromBlock) N() int      { return f.r.n }
func (f FromBlock) Stride() int { return f.r.stride }

func (f FromBlock) Address(row, col int) int {
	return f.r.index(row, col)
}

func (f FromBlock) Read(row, col int) float32 {
	return f.buf[f.r.index(row, col)]
}

func (f FromBlock) Load(row, col int) hwy.Vec[float32] {
	return f.LoadPart(f.r.lanes, row, col)
}

func (f FromBlock) LoadPart(width, row, col int) hwy.Vec[float32] {
	if debugChecks {
		checkAccess("FromBlock.LoadPart", f.r, width, row, col)
	}
	return hwy.LoadN(f.buf[f.r.index(row, col):], width)
}

// ToBlock writes a packed N x N block.
type ToBlock struct {
	buf []float32
	r   region
}

// NewToBlock returns a Sink over the packed n x n block at the start of
// block.
func NewToBlock(block []float32, n int) ToBlock {
	t := ToBlock{buf: block, r: newRegion(0, n, n)}
	if debugChecks {
		checkRegion("ToBlock", len(block), t.r)
	}
	return t
}

// View returns the adapter whose origin is column dx, row dy of t.
func (t ToBlock) View(dx, dy int) ToBlock {
	return ToBlock{buf: t.buf, r: t.r.view(dx, dy)}
}

func (t ToBlock) N() int      { return t.r.n }
func (t ToBlock) Stride() int { return t.r.stride }

func (t ToBlock) Address(row, col int) int {
	return t.r.index(row, col)
}

func (t ToBlock) Write(row, col int, v float32) {
	t.buf[t.r.index(row, col)] = v
}

func (t ToBlock) Store(row, col int, v hwy.Vec[float32]) {
	t.StorePart(t.r.lanes, row, col, v)
}

func (t ToBlock) StorePart(width, row, col int, v hwy.Vec[float32]) {
	if debugChecks {
		checkAccess("ToBlock.StorePart", t.r, width, row, col)
	}
	i := t.r.index(row, col)
	hwy.Store(v, t.buf[i:i+width])
}

// FromLines reads an N x N block embedded in a scanline buffer.
type FromLines struct {
	buf []float32
	r   region
}

// NewFromLines returns a Source over the n x n block whose top-left sample
// is lines[0] and whose rows are stride elements apart. stride must be at
// least n.
func NewFromLines(lines []float32, n, stride int) FromLines {
	f := FromLines{buf: lines, r: newRegion(0, stride, n)}
	if debugChecks {
		checkRegion("FromLines", len(lines), f.r)
	}
	return f
}

// View returns the adapter whose origin is column dx, row dy of f.
func (f FromLines) View(dx, dy int) FromLines {
	return FromLines{buf: f.buf, r: f.r.view(dx, dy)}
}

func (f FromLines) N() int      { return f.r.n }
func (f FromLines) Stride() int { return f.r.stride }

func (f FromLines) Address(row, col int) int {
	return f.r.index(row, col)
}

func (f FromLines) Read(row, col int) float32 {
	return f.buf[f.r.index(row, col)]
}

func (f FromLines) Load(row, col int) hwy.Vec[float32] {
	return f.LoadPart(f.r.lanes, row, col)
}

func (f FromLines) LoadPart(width, row, col int) hwy.Vec[float32] {
	if debugChecks {
		checkAccess("FromLines.LoadPart", f.r, width, row, col)
	}
	return hwy.LoadN(f.buf[f.r.index(row, col):], width)
}

// ToLines writes an N x N block embedded in a scanline buffer.
type ToLines struct {
	buf []float32
	r   region
}

// NewToLines returns a Sink over the n x n block whose top-left sample is
// lines[0] and whose rows are stride elements apart. stride must be at
// least n.
func NewToLines(lines []float32, n, stride int) ToLines {
	t := ToLines{buf: lines, r: newRegion(0, stride, n)}
	if debugChecks {
		checkRegion("ToLines", len(lines), t.r)
	}
	return t
}

// View returns the adapter whose origin is column dx, row dy of t.
func (t ToLines) View(dx, dy int) ToLines {
	return ToLines{buf: t.buf, r: t.r.view(dx, dy)}
}

func (t ToLines) N() int      { return t.r.n }
func (t ToLines) Stride() int { return t.r.stride }

func (t ToLines) Address(row, col int) int {
	return t.r.index(row, col)
}

func (t ToLines) Write(row, col int, v float32) {
	t.buf[t.r.index(row, col)] = v
}

func (t ToLines) Store(row, col int, v hwy.Vec[float32]) {
	t.StorePart(t.r.lanes, row, col, v)
}

func (t ToLines) StorePart(width, row, col int, v hwy.Vec[float32]) {
	if debugChecks {
		checkAccess("ToLines.StorePart", t.r, width, row, col)
	}
	i := t.r.index(row, col)
	hwy.Store(v, t.buf[i:i+width])
}
