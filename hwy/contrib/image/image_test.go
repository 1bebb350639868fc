package image

import (
	"testing"

	"github.com/ajroetker/hwyblock/hwy"
	"github.com/ajroetker/hwyblock/hwy/contrib/workerpool"
)

func TestNewImage(t *testing.T) {
	img := NewImage[float32](100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}

	// Stride should be >= width and aligned to blocks and vector width
	lanes := hwy.MaxLanes[float32]()
	if img.Stride() < 100 {
		t.Errorf("Stride: got %d, want >= 100", img.Stride())
	}
	if img.Stride()%lanes != 0 || img.Stride()%BlockSize != 0 {
		t.Errorf("Stride not aligned: got %d, want multiple of %d and %d", img.Stride(), lanes, BlockSize)
	}

	if img.BlocksX() != 13 || img.BlocksY() != 7 || img.NumBlocks() != 91 {
		t.Errorf("Blocks: got %dx%d (%d), want 13x7 (91)", img.BlocksX(), img.BlocksY(), img.NumBlocks())
	}
	if want := img.Stride() * 56; len(img.Data()) != want {
		t.Errorf("Data length: got %d, want %d", len(img.Data()), want)
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	img := NewImage[float32](0, 0)
	if img.Width() != 0 || img.Height() != 0 || img.NumBlocks() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	img = NewImage[float32](-1, 10)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	if err := TransposeBlocks(nil, img); err != nil {
		t.Errorf("TransposeBlocks on empty image: %v", err)
	}
}

func TestImage_Row(t *testing.T) {
	img := NewImage[float32](10, 5)

	row0 := img.Row(0)
	for i := range 10 {
		row0[i] = float32(i)
	}
	for i := range 10 {
		if row0[i] != float32(i) {
			t.Errorf("Row[0][%d]: got %v, want %v", i, row0[i], float32(i))
		}
	}

	// Different row should be independent
	row1 := img.Row(1)
	row1[0] = 999
	if row0[0] == 999 {
		t.Error("Rows should be independent")
	}

	// Out of bounds, padding rows included
	if img.Row(-1) != nil {
		t.Error("Row(-1) should return nil")
	}
	if img.Row(5) != nil {
		t.Error("Row(5) should return nil")
	}

	if len(img.RowSlice(0)) != 10 {
		t.Errorf("RowSlice length: got %d, want 10", len(img.RowSlice(0)))
	}
}

func TestImage_AtSet(t *testing.T) {
	img := NewImage[float32](10, 10)

	img.Set(5, 7, 42.0)
	if got := img.At(5, 7); got != 42.0 {
		t.Errorf("At(5,7): got %v, want 42.0", got)
	}

	// Out of bounds should return zero
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if got := img.At(p[0], p[1]); got != 0 {
			t.Errorf("At(%d,%d): got %v, want 0", p[0], p[1], got)
		}
	}

	// Set out of bounds should be no-op
	img.Set(10, 0, 999)
	if img.Row(0)[10] != 0 {
		t.Error("Set(10, 0) wrote into the padding")
	}
}

func TestImage_CloneFill(t *testing.T) {
	img := NewImage[float32](10, 10)
	img.Fill(3)
	img.Set(5, 5, 42.0)

	clone := img.Clone()
	if clone.Width() != img.Width() || clone.Stride() != img.Stride() {
		t.Error("Clone dimensions differ")
	}
	if clone.At(5, 5) != 42.0 || clone.At(0, 0) != 3 {
		t.Errorf("Clone data: got %v, %v", clone.At(5, 5), clone.At(0, 0))
	}

	clone.Set(5, 5, 100.0)
	if img.At(5, 5) != 42.0 {
		t.Error("Clone should be independent")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		index, size, want int
	}{
		{-5, 10, 0},
		{0, 10, 0},
		{9, 10, 9},
		{10, 10, 9},
		{15, 10, 9},
	}
	for _, tt := range tests {
		if got := Clamp(tt.index, tt.size); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.want)
		}
	}
}

func TestExtendEdges(t *testing.T) {
	img := NewImage[float32](10, 5)
	for y := range 5 {
		for x := range 10 {
			img.Set(x, y, float32(10*y+x))
		}
	}
	ExtendEdges(img)

	data, stride := img.Data(), img.Stride()
	for y := range 8 {
		for x := range 16 {
			want := float32(10*min(y, 4) + min(x, 9))
			if got := data[y*stride+x]; got != want {
				t.Fatalf("(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBlocksRoundTrip(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	img := NewImage[float32](20, 12)
	for y := range 12 {
		for x := range 20 {
			img.Set(x, y, float32(100*y+x))
		}
	}
	ExtendEdges(img)

	blocks := make([]float32, img.NumBlocks()*64)
	if err := ToBlocks(pool, img, blocks); err != nil {
		t.Fatalf("ToBlocks: %v", err)
	}

	// Block (2, 1) covers x 16..23, y 8..15, clamped to the image edge.
	blk := blocks[64*(1*img.BlocksX()+2):][:64]
	for r := range 8 {
		for c := range 8 {
			want := float32(100*min(8+r, 11) + min(16+c, 19))
			if got := blk[r*8+c]; got != want {
				t.Fatalf("block (2, 1)[%d][%d] = %v, want %v", r, c, got, want)
			}
		}
	}

	out := NewImage[float32](20, 12)
	if err := FromBlocks(pool, blocks, out); err != nil {
		t.Fatalf("FromBlocks: %v", err)
	}
	for y := range 12 {
		for x := range 20 {
			if out.At(x, y) != img.At(x, y) {
				t.Fatalf("(%d, %d) = %v, want %v", x, y, out.At(x, y), img.At(x, y))
			}
		}
	}
}

func TestTransposeBlocks(t *testing.T) {
	img := NewImage[float32](16, 8)
	for y := range 8 {
		for x := range 16 {
			img.Set(x, y, float32(100*y+x))
		}
	}
	if err := TransposeBlocks(nil, img); err != nil {
		t.Fatalf("TransposeBlocks: %v", err)
	}
	for y := range 8 {
		for x := range 16 {
			bx := x / 8 * 8
			if got, want := img.At(x, y), float32(100*(x-bx)+bx+y); got != want {
				t.Fatalf("(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBlocksShortBuffer(t *testing.T) {
	img := NewImage[float32](16, 16)
	if err := ToBlocks(nil, img, make([]float32, 100)); err == nil {
		t.Error("ToBlocks into a short buffer succeeded")
	}
}

func BenchmarkTransposeBlocks(b *testing.B) {
	img := NewImage[float32](1920, 1080)
	pool := workerpool.New(0)
	defer pool.Close()
	for b.Loop() {
		_ = TransposeBlocks(pool, img)
	}
}
