//go:build hwydebug

package block

import "testing"

func TestDebugChecksEnabled(t *testing.T) {
	buf := make([]float32, 64)

	expectPanic(t, "stride 4 smaller", func() { NewFromLines(buf, 8, 4) })
	expectPanic(t, "exceeds buffer", func() { NewToBlock(buf[:60], 8) })
	expectPanic(t, "outside 8x8 block", func() { NewFromBlock(buf, 8).LoadPart(4, 0, 6) })
	expectPanic(t, "width 9 invalid", func() {
		NewToLines(make([]float32, 128), 8, 16).StorePart(9, 0, 0, NewFromBlock(buf, 8).LoadPart(8, 0, 0))
	})
}
