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

// Command hwyinfo prints the CPU features detected by Go, the vector width
// the hwy package dispatched to and the 8x8 transpose variant bound at
// startup. With -check it also verifies that every transpose variant agrees
// with the scalar reference on random blocks.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/hwyblock/hwy"
	"github.com/ajroetker/hwyblock/hwy/contrib/block"
)

var (
	check  = flag.Bool("check", true, "Run the transpose self-check")
	rounds = flag.Int("rounds", 1000, "Random blocks per self-check")
	seed   = flag.Uint64("seed", 1, "Self-check random seed")
)

func main() {
	flag.Parse()

	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Highway dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Printf("Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Printf("Highway dispatch name: %s\n", hwy.CurrentName())
	fmt.Printf("float32 lanes: %d\n", hwy.MaxLanes[float32]())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
	fmt.Println()

	fmt.Printf("Block Lanes(8): %d\n", block.Lanes(8))
	fmt.Printf("Block transpose variant: %s\n", block.CurrentVariant())

	if !*check {
		return
	}
	if err := selfCheck(*rounds, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Self-check: %d blocks OK\n", *rounds)
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
}

// selfCheck transposes random blocks with every variant, the dispatched
// binding and the scalar reference, in packed and strided layouts, and
// reports the first disagreement.
func selfCheck(rounds int, seed uint64) error {
	impls := []struct {
		name string
		fn   func(block.Source, block.Sink)
	}{
		{"v4", block.Transpose(block.VariantV4)},
		{"v8", block.Transpose(block.VariantV8)},
		{"dispatched", block.TransposeBlock8[block.Source, block.Sink]},
	}

	const stride = 12
	rng := rand.New(rand.NewPCG(seed, seed))
	src := make([]float32, 8*stride)
	want := make([]float32, 64)
	got := make([]float32, 64)
	for round := range rounds {
		for i := range src {
			src[i] = rng.Float32()
		}
		from := block.NewFromLines(src, 8, stride)
		block.TransposeScalar8(from, block.NewToBlock(want, 8))
		for _, impl := range impls {
			clear(got)
			impl.fn(from, block.NewToBlock(got, 8))
			if !slices.Equal(got, want) {
				return fmt.Errorf("round %d: %s transpose disagrees with scalar reference", round, impl.name)
			}
		}
	}
	return nil
}
