package main

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const hwyImport = "github.com/ajroetker/hwyblock/hwy"

// Variant describes one transpose kernel: the vector width it is written
// for and the emitter producing its body.
type Variant struct {
	Name  string // "v4", "v8"
	Lanes int    // float32 lanes per vector
	emit  func(w io.Writer, name string)
}

var variantTable = []Variant{
	{Name: "v4", Lanes: 4, emit: emitV4},
	{Name: "v8", Lanes: 8, emit: emitV8},
}

// AvailableVariants returns the names of all known variants.
func AvailableVariants() []string {
	names := make([]string, len(variantTable))
	for i, v := range variantTable {
		names[i] = v.Name
	}
	return names
}

// GetVariant returns the variant with the given name.
func GetVariant(name string) (Variant, error) {
	for _, v := range variantTable {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant %q (available: %v)", name, AvailableVariants())
}

// kernelName returns the exported kernel name for a variant, e.g.
// "TransposeBlock8V4".
func kernelName(variant string) string {
	return "TransposeBlock8" + cases.Title(language.English).String(variant)
}

// op is one shuffle of a butterfly stage: out = hwy.<fn>(in[a], in[b]).
type op struct {
	fn   string
	a, b int
}

// stage1 mixes rows two apart within each group of four.
func stage1() [8]op {
	var s [8]op
	for g := 0; g < 8; g += 4 {
		s[g+0] = op{"InterleaveLower", g, g + 2}
		s[g+1] = op{"InterleaveLower", g + 1, g + 3}
		s[g+2] = op{"InterleaveUpper", g, g + 2}
		s[g+3] = op{"InterleaveUpper", g + 1, g + 3}
	}
	return s
}

// stage2 mixes adjacent stage-1 results.
func stage2() [8]op {
	var s [8]op
	for g := 0; g < 8; g += 2 {
		s[g] = op{"InterleaveLower", g, g + 1}
		s[g+1] = op{"InterleaveUpper", g, g + 1}
	}
	return s
}

// Generator emits the kernels of the selected variants as one Go file.
type Generator struct {
	Package  string
	Variants []string
}

// Generate returns the formatted source of the kernel file. filename is
// only used for error messages and import grouping.
func (g *Generator) Generate(filename string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by blockgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.Package)
	fmt.Fprintf(&buf, "import %q\n", hwyImport)

	for _, name := range g.Variants {
		v, err := GetVariant(name)
		if err != nil {
			return nil, err
		}
		v.emit(&buf, kernelName(v.Name))
	}

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return formatted, nil
}

// emitV4 writes the 4-lane kernel: each row is two half-row vectors, the
// low and high column halves run through separate two-stage networks, and
// the cross-quadrant placement happens on store.
func emitV4(w io.Writer, name string) {
	fmt.Fprintf(w, "\n// %s transposes the 8x8 block at the origin of from into the\n", name)
	fmt.Fprintf(w, "// origin of to using 4-lane vectors. Each 4x4 quadrant is transposed by\n")
	fmt.Fprintf(w, "// a two-stage interleave network and the off-diagonal quadrants trade\n")
	fmt.Fprintf(w, "// places on store. All loads precede all stores.\n")
	fmt.Fprintf(w, "func %s[F Source, T Sink](from F, to T) {\n", name)

	halves := []struct {
		suffix string
		col    int
	}{{"L", 0}, {"H", 4}}

	for row := range 8 {
		for _, h := range halves {
			fmt.Fprintf(w, "\tp%d%s := from.LoadPart(4, %d, %d)\n", row, h.suffix, row, h.col)
		}
	}
	fmt.Fprintf(w, "\n")
	for i, o := range stage1() {
		for _, h := range halves {
			fmt.Fprintf(w, "\tq%d%s := hwy.%s(p%d%s, p%d%s)\n", i, h.suffix, o.fn, o.a, h.suffix, o.b, h.suffix)
		}
	}
	fmt.Fprintf(w, "\n")
	for i, o := range stage2() {
		for _, h := range halves {
			fmt.Fprintf(w, "\tr%d%s := hwy.%s(q%d%s, q%d%s)\n", i, h.suffix, o.fn, o.a, h.suffix, o.b, h.suffix)
		}
	}
	fmt.Fprintf(w, "\n")
	for _, h := range halves {
		for k := range 4 {
			outRow := k + h.col
			fmt.Fprintf(w, "\tto.StorePart(4, %d, 0, r%d%s)\n", outRow, k, h.suffix)
			fmt.Fprintf(w, "\tto.StorePart(4, %d, 4, r%d%s)\n", outRow, k+4, h.suffix)
		}
	}
	fmt.Fprintf(w, "}\n")
}

// emitV8 writes the 8-lane kernel: an in-register transpose of eight row
// vectors (two interleave stages, then a concatenate stage joining the
// 128-bit halves) and the adapter form around it.
func emitV8(w io.Writer, name string) {
	fmt.Fprintf(w, "\n// TransposeRows8 transposes, in place, the 8x8 block held as eight 8-lane\n")
	fmt.Fprintf(w, "// row vectors.\n")
	fmt.Fprintf(w, "func TransposeRows8(rows *[8]hwy.Vec[float32]) {\n")
	for i, o := range stage1() {
		fmt.Fprintf(w, "\tq%d := hwy.%s(rows[%d], rows[%d])\n", i, o.fn, o.a, o.b)
	}
	fmt.Fprintf(w, "\n")
	for i, o := range stage2() {
		fmt.Fprintf(w, "\tr%d := hwy.%s(q%d, q%d)\n", i, o.fn, o.a, o.b)
	}
	fmt.Fprintf(w, "\n")
	for k := range 4 {
		fmt.Fprintf(w, "\trows[%d] = hwy.ConcatLowerLower(r%d, r%d)\n", k, k, k+4)
	}
	for k := range 4 {
		fmt.Fprintf(w, "\trows[%d] = hwy.ConcatUpperUpper(r%d, r%d)\n", k+4, k, k+4)
	}
	fmt.Fprintf(w, "}\n")

	fmt.Fprintf(w, "\n// %s transposes the 8x8 block at the origin of from into the\n", name)
	fmt.Fprintf(w, "// origin of to using one 8-lane vector per row.\n")
	fmt.Fprintf(w, "func %s[F Source, T Sink](from F, to T) {\n", name)
	fmt.Fprintf(w, "\trows := [8]hwy.Vec[float32]{\n")
	for row := range 8 {
		fmt.Fprintf(w, "\t\tfrom.LoadPart(8, %d, 0),\n", row)
	}
	fmt.Fprintf(w, "\t}\n")
	fmt.Fprintf(w, "\tTransposeRows8(&rows)\n")
	for row := range 8 {
		fmt.Fprintf(w, "\tto.StorePart(8, %d, 0, rows[%d])\n", row, row)
	}
	fmt.Fprintf(w, "}\n")
}
