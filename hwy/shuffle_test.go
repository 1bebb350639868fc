package hwy

import (
	"reflect"
	"testing"
)

func iota32(start, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(start + i)
	}
	return out
}

func TestInterleaveLower_F32(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []float32
		expect []float32
	}{
		{
			name:   "4 lanes",
			a:      iota32(0, 4),
			b:      iota32(10, 4),
			expect: []float32{0, 10, 1, 11},
		},
		{
			name:   "8 lanes",
			a:      iota32(0, 8),
			b:      iota32(10, 8),
			expect: []float32{0, 10, 1, 11, 4, 14, 5, 15},
		},
		{
			name:   "16 lanes",
			a:      iota32(0, 16),
			b:      iota32(20, 16),
			expect: []float32{0, 20, 1, 21, 4, 24, 5, 25, 8, 28, 9, 29, 12, 32, 13, 33},
		},
		{
			name:   "2 lanes",
			a:      iota32(0, 2),
			b:      iota32(10, 2),
			expect: []float32{0, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := LoadN(tt.a, len(tt.a))
			b := LoadN(tt.b, len(tt.b))
			result := InterleaveLower(a, b)
			if !reflect.DeepEqual(result.Data(), tt.expect) {
				t.Errorf("InterleaveLower() = %v, want %v", result.Data(), tt.expect)
			}
		})
	}
}

func TestInterleaveUpper_F32(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []float32
		expect []float32
	}{
		{
			name:   "4 lanes",
			a:      iota32(0, 4),
			b:      iota32(10, 4),
			expect: []float32{2, 12, 3, 13},
		},
		{
			name:   "8 lanes",
			a:      iota32(0, 8),
			b:      iota32(10, 8),
			expect: []float32{2, 12, 3, 13, 6, 16, 7, 17},
		},
		{
			name:   "2 lanes",
			a:      iota32(0, 2),
			b:      iota32(10, 2),
			expect: []float32{1, 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := LoadN(tt.a, len(tt.a))
			b := LoadN(tt.b, len(tt.b))
			result := InterleaveUpper(a, b)
			if !reflect.DeepEqual(result.Data(), tt.expect) {
				t.Errorf("InterleaveUpper() = %v, want %v", result.Data(), tt.expect)
			}
		})
	}
}

func TestInterleave_F64(t *testing.T) {
	// float64 blocks hold 2 lanes, so a 4-lane vector is two blocks.
	a := LoadN([]float64{0, 1, 2, 3}, 4)
	b := LoadN([]float64{10, 11, 12, 13}, 4)

	if got, want := InterleaveLower(a, b).Data(), []float64{0, 10, 2, 12}; !reflect.DeepEqual(got, want) {
		t.Errorf("InterleaveLower() = %v, want %v", got, want)
	}
	if got, want := InterleaveUpper(a, b).Data(), []float64{1, 11, 3, 13}; !reflect.DeepEqual(got, want) {
		t.Errorf("InterleaveUpper() = %v, want %v", got, want)
	}
}

func TestConcat_F32(t *testing.T) {
	a := LoadN(iota32(0, 8), 8)
	b := LoadN(iota32(10, 8), 8)

	tests := []struct {
		name   string
		fn     func(a, b Vec[float32]) Vec[float32]
		expect []float32
	}{
		{"LowerLower", ConcatLowerLower[float32], []float32{0, 1, 2, 3, 10, 11, 12, 13}},
		{"UpperUpper", ConcatUpperUpper[float32], []float32{4, 5, 6, 7, 14, 15, 16, 17}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(a, b).Data(); !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("Concat%s() = %v, want %v", tt.name, got, tt.expect)
			}
		})
	}
}

func TestInterleaveDoesNotAllocate(t *testing.T) {
	a := LoadN(iota32(0, 8), 8)
	b := LoadN(iota32(10, 8), 8)
	var sink Vec[float32]
	allocs := testing.AllocsPerRun(100, func() {
		sink = ConcatLowerLower(InterleaveLower(a, b), InterleaveUpper(a, b))
	})
	if allocs != 0 {
		t.Errorf("shuffles allocated %v times per run", allocs)
	}
	_ = sink
}

func TestShufflesPanicOnPartialBlocks(t *testing.T) {
	six := LoadN(iota32(0, 6), 6)
	three := LoadN(iota32(0, 3), 3)
	tests := []struct {
		name string
		fn   func()
	}{
		{"InterleaveLower/6 lanes", func() { InterleaveLower(six, six) }},
		{"InterleaveUpper/6 lanes", func() { InterleaveUpper(six, six) }},
		{"InterleaveLower/3 lanes", func() { InterleaveLower(three, three) }},
		{"ConcatLowerLower/3 lanes", func() { ConcatLowerLower(three, three) }},
		{"ConcatUpperUpper/3 lanes", func() { ConcatUpperUpper(three, three) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestInterleaveEmpty(t *testing.T) {
	var empty Vec[float32]
	if got := InterleaveLower(empty, empty).NumLanes(); got != 0 {
		t.Errorf("InterleaveLower of empty vectors has %d lanes", got)
	}
	if got := InterleaveUpper(empty, empty).NumLanes(); got != 0 {
		t.Errorf("InterleaveUpper of empty vectors has %d lanes", got)
	}
}
