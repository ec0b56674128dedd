package piece

// The offset tables below are lifted verbatim (as data, not code) from the
// two supported rotation systems. Each row is the sequence of kick offsets
// tried, in order, when leaving a given rotation state; a placement is
// legal at the first offset that lands without a collision.

// srsIOffsets, srsOOffsets and srsOtherOffsets are per-rotation offset
// sequences for the guideline SRS kick table (piece.cpp: Factory::create).
var (
	srsIOffsets = [4][]Offset{
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 0}, {2, 0}},
		{{-1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, -2}},
		{{-1, 1}, {1, 1}, {-2, 1}, {1, 0}, {-2, 0}},
		{{0, 1}, {0, 1}, {0, 1}, {0, -1}, {0, 2}},
	}
	srsOOffsets = [4][]Offset{
		{{0, 0}},
		{{0, -1}},
		{{-1, -1}},
		{{-1, 0}},
	}
	srsOtherOffsets = [4][]Offset{
		{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	}
)

// SRS+ replaces the I piece's kicks with an explicit CW/CCW table (rather
// than deriving both directions from one offsets table) and adds 180°
// kicks for every piece.
var (
	srsPlusICWOffsets = [4][]Offset{
		{{1, 0}, {2, 0}, {-1, 0}, {-1, -1}, {2, 2}},
		{{0, -1}, {-1, -1}, {2, -1}, {-1, 1}, {2, -2}},
		{{-1, 0}, {1, 0}, {-2, 0}, {1, 1}, {-2, -2}},
		{{0, 1}, {1, 1}, {-2, 1}, {2, -1}, {-2, 2}},
	}
	srsPlusICCWOffsets = [4][]Offset{
		{{0, -1}, {-1, -1}, {2, -1}, {2, -2}, {-1, 2}},
		{{-1, 0}, {-2, 0}, {1, 0}, {-2, -2}, {1, 1}},
		{{0, 1}, {-2, 1}, {1, 1}, {-2, 2}, {1, -1}},
		{{1, 0}, {2, 0}, {-1, 0}, {2, 2}, {-1, -1}},
	}
	srsPlusORotate180Offsets = [4][]Offset{
		{{1, 1}},
		{{1, -1}},
		{{-1, -1}},
		{{-1, 1}},
	}
	srsPlusOtherRotate180Offsets = [4][]Offset{
		{{0, 0}, {0, 1}, {1, 1}, {-1, 1}, {1, 0}, {-1, 0}},
		{{0, 0}, {1, 0}, {1, 2}, {1, 1}, {0, 2}, {0, 1}},
		{{0, 0}, {0, -1}, {-1, -1}, {1, -1}, {-1, 0}, {1, 0}},
		{{0, 0}, {-1, 0}, {-1, 2}, {-1, 1}, {0, 2}, {0, 1}},
	}
)

var (
	i0To2Offset  = Offset{1, -1}
	iRToLOffset  = Offset{-1, -1}
)

func srsPlusIRotate180Offsets() [4][]Offset {
	var out [4][]Offset
	out[0] = shiftAll(srsPlusOtherRotate180Offsets[0], i0To2Offset)
	out[1] = shiftAll(srsPlusOtherRotate180Offsets[1], iRToLOffset)
	out[2] = shiftAll(srsPlusOtherRotate180Offsets[2], negOffset(i0To2Offset))
	out[3] = shiftAll(srsPlusOtherRotate180Offsets[3], negOffset(iRToLOffset))
	return out
}

func shiftAll(offsets []Offset, by Offset) []Offset {
	out := make([]Offset, len(offsets))
	for i, o := range offsets {
		out[i] = addOffset(o, by)
	}
	return out
}

func negOffset(o Offset) Offset { return Offset{-o.X, -o.Y} }

// kickPad pads (or truncates) an offset row to exactly n entries, filling
// missing entries with the zero offset the way piece.cpp's create<>
// leaves rightOffsets/leftOffsets at {0,0} past a table's declared size.
func kickPad(offsets []Offset, n int) []Offset {
	out := make([]Offset, n)
	copy(out, offsets)
	return out
}

// deriveCWOffsets and deriveCCWOffsets turn a per-rotation "from spawn
// orientation" offset table into the pairwise CW/CCW deltas the kick walk
// actually needs, following piece.cpp Piece::create's rightOffsets /
// leftOffsets construction: offset(rotate -> rotate+1) = from[i] - to[i].
func deriveCWOffsets(offsets [4][]Offset, rowLen int) [4][]Offset {
	var out [4][]Offset
	for rotate := 0; rotate < 4; rotate++ {
		from := offsets[rotate]
		to := offsets[(rotate+1)%4]
		row := make([]Offset, rowLen)
		for i := 0; i < rowLen; i++ {
			if i < len(from) && i < len(to) {
				row[i] = subOffset(from[i], to[i])
			}
		}
		out[rotate] = row
	}
	return out
}

func deriveCCWOffsets(offsets [4][]Offset, rowLen int) [4][]Offset {
	var out [4][]Offset
	for rotate := 0; rotate < 4; rotate++ {
		from := offsets[rotate]
		to := offsets[(rotate+3)%4]
		row := make([]Offset, rowLen)
		for i := 0; i < rowLen; i++ {
			if i < len(from) && i < len(to) {
				row[i] = subOffset(from[i], to[i])
			}
		}
		out[rotate] = row
	}
	return out
}
