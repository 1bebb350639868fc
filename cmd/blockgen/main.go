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

// Command blockgen generates the unrolled 8x8 transpose kernels of package
// block from their butterfly schedules.
//
// Usage:
//
//	blockgen -output z_transpose_kernels.go -variants v4,v8
//
// Or via go:generate from the block package:
//
//	//go:generate go run ../../../cmd/blockgen -output z_transpose_kernels.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputFile = flag.String("output", "z_transpose_kernels.go", "Output Go file")
	packageOut = flag.String("pkg", "block", "Output package name")
	variants   = flag.String("variants", "v4,v8", "Comma-separated kernel variants ("+strings.Join(AvailableVariants(), ",")+")")
)

func main() {
	flag.Parse()

	variantList := parseVariants(*variants)
	if len(variantList) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid variants specified\n")
		os.Exit(1)
	}

	gen := &Generator{
		Package:  *packageOut,
		Variants: variantList,
	}

	src, err := gen.Generate(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated kernels for variants: %s\n", strings.Join(variantList, ", "))
}

func parseVariants(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 1 && result[0] == "all" {
		return AvailableVariants()
	}
	return result
}
