package block

import (
	"fmt"

	"github.com/ajroetker/hwyblock/hwy"
)

// Contract checks. They compile away unless the hwydebug build tag is set;
// Go's slice bounds checks still catch any access outside the buffer.

func checkRegion(kind string, bufLen int, r region) {
	if r.n <= 0 {
		panic(fmt.Sprintf("block: %s: block width %d must be positive", kind, r.n))
	}
	if r.stride < r.n {
		panic(fmt.Sprintf("block: %s: stride %d smaller than block width %d", kind, r.stride, r.n))
	}
	if last := r.index(r.n-1, r.n-1); r.off < 0 || last >= bufLen {
		panic(fmt.Sprintf("block: %s: %dx%d block at offset %d stride %d exceeds buffer of %d",
			kind, r.n, r.n, r.off, r.stride, bufLen))
	}
}

func checkAccess(kind string, r region, width, row, col int) {
	if width <= 0 || width > r.n || width > hwy.MaxVecLanes {
		panic(fmt.Sprintf("block: %s: width %d invalid for block width %d", kind, width, r.n))
	}
	if row < 0 || row >= r.n || col < 0 || col+width > r.n {
		panic(fmt.Sprintf("block: %s: %d lanes at (%d, %d) outside %dx%d block",
			kind, width, row, col, r.n, r.n))
	}
}
