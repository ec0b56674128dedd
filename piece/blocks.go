package piece

const (
	FieldWidth     = 10
	MaxFieldHeight = 24
	rowsPerWord    = 6
	// validBoardRange masks off the 60 bits (6 rows * 10 cols) a single
	// word actually uses.
	validBoardRange = (uint64(1) << (rowsPerWord * FieldWidth)) - 1
)

// Collider is the hard-drop collision mask for one candidate landing row,
// spanning the whole playfield as four 64-bit words of 6 rows each —
// mirrors the field's own bit-board layout so a collider can be ANDed
// directly against a Field.
type Collider struct {
	Words [4]uint64
}

func (c Collider) shifted(leftX int) Collider {
	return Collider{[4]uint64{
		c.Words[0] << uint(leftX),
		c.Words[1] << uint(leftX),
		c.Words[2] << uint(leftX),
		c.Words[3] << uint(leftX),
	}}
}

func mergeCollider(prev Collider, mask uint64, height, lowerY int) Collider {
	c := prev
	index := lowerY / rowsPerWord
	localY := lowerY - rowsPerWord*index
	if rowsPerWord < localY+height {
		c.Words[index] |= (mask << uint(localY*FieldWidth)) & validBoardRange
		c.Words[index+1] |= mask >> uint((rowsPerWord-localY)*FieldWidth)
	} else {
		c.Words[index] |= mask << uint(localY*FieldWidth)
	}
	return c
}

// BlocksMask is the local (not-yet-positioned) two-word patch a Blocks
// occupies within a single 6-row window, used by Field.Put.
type BlocksMask struct {
	Low, High uint64
}

// Blocks is one (piece, rotation) pair's immutable geometry: its 4 cells,
// left/bottom-aligned bitmask, bounding box, and per-row hard-drop
// colliders. Built once by Factory.
type Blocks struct {
	Rotate    Rotate
	Points    [4]Point
	mask      uint64
	Width     int
	Height    int
	colliders [MaxFieldHeight]Collider
}

func buildBlocks(rotate Rotate, points [4]Point) Blocks {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	var mask uint64
	aligned := points
	for i, p := range points {
		aligned[i] = Point{p.X - minX, p.Y - minY}
		mask |= uint64(1) << uint(aligned[i].X+aligned[i].Y*FieldWidth)
	}

	width := maxX - minX + 1
	height := maxY - minY + 1

	b := Blocks{Rotate: rotate, Points: aligned, mask: mask, Width: width, Height: height}

	top := MaxFieldHeight - height
	b.colliders[top] = mergeCollider(Collider{}, mask, height, top)
	for y := top - 1; y >= 0; y-- {
		b.colliders[y] = mergeCollider(b.colliders[y+1], mask, height, y)
	}
	return b
}

// Mask returns the two-word local patch for placing this Blocks with its
// left edge at column leftX and bottom edge at row (within a 6-row window)
// lowerY — used by Field.Put once the absolute row has been split into
// (wordIndex, lowerY).
func (b Blocks) Mask(leftX, lowerY int) BlocksMask {
	if rowsPerWord < lowerY+b.Height {
		slide := b.mask << uint(leftX)
		return BlocksMask{
			Low:  (slide << uint(lowerY*FieldWidth)) & validBoardRange,
			High: slide >> uint((rowsPerWord-lowerY)*FieldWidth),
		}
	}
	return BlocksMask{Low: b.mask << uint(lowerY*FieldWidth+leftX), High: 0}
}

// HardDrop returns the whole-field collider for dropping this Blocks with
// its left edge at column leftX, bottom candidate row lowerY (absolute,
// 0..MaxFieldHeight-height).
func (b Blocks) HardDrop(leftX, lowerY int) Collider {
	return b.colliders[lowerY].shifted(leftX)
}

// RawMask is the left/bottom-aligned 4-bit mask within a 10x6 window,
// exposed for testable-property checks (mask has exactly 4 bits set).
func (b Blocks) RawMask() uint64 { return b.mask }
