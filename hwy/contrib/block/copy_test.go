package block

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCopyBlock8(t *testing.T) {
	rng := rand.New(rand.NewPCG(12, 13))
	for _, fl := range layouts {
		for _, tl := range layouts {
			t.Run(fl.name+"_to_"+tl.name, func(t *testing.T) {
				vals := randomBlock(rng, 8)
				to, read := tl.sink(8)
				CopyBlock8(fl.source(vals, 8), to)
				if diff := cmp.Diff(vals, read()); diff != "" {
					t.Errorf("copy mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestCopyBlock8InPlace(t *testing.T) {
	buf := iotaBlock(8)
	CopyBlock8(NewFromBlock(buf, 8), NewToBlock(buf, 8))
	if diff := cmp.Diff(iotaBlock(8), buf); diff != "" {
		t.Errorf("in-place copy changed the block (-want +got):\n%s", diff)
	}
}

// Copying to a packed block and transposing it must equal transposing
// straight from the scanlines and copying the result.
func TestCopyTransposeCommute(t *testing.T) {
	rng := rand.New(rand.NewPCG(14, 15))
	for _, v := range variants {
		t.Run(v.String(), func(t *testing.T) {
			transpose := Transpose(v)
			vals := randomBlock(rng, 8)
			src := linesLayout.source(vals, 8)

			packed := make([]float32, 64)
			copyThenTranspose := make([]float32, 64)
			CopyBlock8(src, NewToBlock(packed, 8))
			transpose(NewFromBlock(packed, 8), NewToBlock(copyThenTranspose, 8))

			transposed := make([]float32, 64)
			transposeThenCopy := make([]float32, 64)
			transpose(src, NewToBlock(transposed, 8))
			CopyBlock8(NewFromBlock(transposed, 8), NewToBlock(transposeThenCopy, 8))

			if diff := cmp.Diff(copyThenTranspose, transposeThenCopy); diff != "" {
				t.Errorf("copy and transpose do not commute (-copy first +transpose first):\n%s", diff)
			}
		})
	}
}

func TestCopyBlock(t *testing.T) {
	rng := rand.New(rand.NewPCG(16, 17))
	for _, n := range []int{4, 8, 16} {
		for _, fl := range layouts {
			for _, tl := range layouts {
				vals := randomBlock(rng, n)
				to, read := tl.sink(n)
				CopyBlock(fl.source(vals, n), to, n)
				if diff := cmp.Diff(vals, read()); diff != "" {
					t.Errorf("n=%d %s to %s: copy mismatch (-want +got):\n%s", n, fl.name, tl.name, diff)
				}
			}
		}
	}
}

func BenchmarkCopyBlock8(b *testing.B) {
	const stride = 64
	lines := make([]float32, 8*stride)
	packed := make([]float32, 64)
	from := NewFromLines(lines, 8, stride)
	to := NewToBlock(packed, 8)
	for b.Loop() {
		CopyBlock8(from, to)
	}
}
