//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures use the scalar level: 16-byte vectors,
	// so 4 float32 lanes.
	setLevel(DispatchScalar)
}
