package block

// CopyBlock8 copies the 8x8 block at the origin of from to the origin of to
// without reordering, converting between layouts. Each row moves in chunks
// of Lanes(8) samples; all eight rows of a chunk are loaded before any is
// stored, so from and to may address the identical region.
func CopyBlock8[F Source, T Sink](from F, to T) {
	lanes := Lanes(8)
	for i := 0; i < 8; i += lanes {
		i0 := from.LoadPart(lanes, 0, i)
		i1 := from.LoadPart(lanes, 1, i)
		i2 := from.LoadPart(lanes, 2, i)
		i3 := from.LoadPart(lanes, 3, i)
		i4 := from.LoadPart(lanes, 4, i)
		i5 := from.LoadPart(lanes, 5, i)
		i6 := from.LoadPart(lanes, 6, i)
		i7 := from.LoadPart(lanes, 7, i)
		to.StorePart(lanes, 0, i, i0)
		to.StorePart(lanes, 1, i, i1)
		to.StorePart(lanes, 2, i, i2)
		to.StorePart(lanes, 3, i, i3)
		to.StorePart(lanes, 4, i, i4)
		to.StorePart(lanes, 5, i, i5)
		to.StorePart(lanes, 6, i, i6)
		to.StorePart(lanes, 7, i, i7)
	}
}

// CopyBlock copies the n x n block at the origin of from to the origin of
// to, one Lanes(n)-wide vector at a time. Lanes(n) must divide n, which
// holds for the power-of-two sizes a transform uses.
func CopyBlock[F Source, T Sink](from F, to T, n int) {
	lanes := Lanes(n)
	for row := range n {
		for col := 0; col < n; col += lanes {
			to.StorePart(lanes, row, col, from.LoadPart(lanes, row, col))
		}
	}
}
