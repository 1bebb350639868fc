package block

import "github.com/ajroetker/hwyblock/hwy"

// Lanes returns the number of float32 lanes used for a full-width operation
// on an n-wide block: min(n, W) where W is the runtime vector width. A
// 4-wide sub-block of a 16x16 tile therefore loads 4 lanes even on AVX2.
//
// When W does not divide n, callers must only request widths that do.
func Lanes(n int) int {
	return hwy.CappedTag[float32]{Cap: n}.MaxLanes()
}
