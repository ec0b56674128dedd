package piece

// RotationSystem selects which kick table a Factory is built from.
type RotationSystem int

const (
	SRS RotationSystem = iota
	SRSPlus
)

// Piece bundles one tetromino's four Blocks with its kick tables and the
// rotation-equivalence metadata used to skip redundant rotation states
// (e.g. O never needs to try more than one rotation).
type Piece struct {
	Type             Type
	Blocks           [4]Blocks
	CWOffsets        [4][]Offset
	CCWOffsets       [4][]Offset
	Rotate180Offsets [4][]Offset
	UniqueRotate     int32
	SameShapeRotates [4]int32
}

// Factory is the immutable, once-built table of all seven Pieces and
// their twenty-eight (piece, rotation) Blocks, indexed flat the way piece.cpp's
// Factory keeps a single `blocks` array addressed by `piece*4+rotate`.
type Factory struct {
	pieces [7]Piece
	blocks [28]Blocks
}

// Get returns the Piece for t.
func (f *Factory) Get(t Type) *Piece { return &f.pieces[t] }

// GetBlocks returns the Blocks for (t, r) via the flat index piece.cpp uses.
func (f *Factory) GetBlocks(t Type, r Rotate) *Blocks {
	return &f.blocks[int(t)*4+int(r)]
}

var pointsT = [4]Point{{0, 0}, {-1, 0}, {1, 0}, {0, 1}}
var pointsI = [4]Point{{0, 0}, {-1, 0}, {1, 0}, {2, 0}}
var pointsL = [4]Point{{0, 0}, {-1, 0}, {1, 0}, {1, 1}}
var pointsJ = [4]Point{{0, 0}, {-1, 0}, {1, 0}, {-1, 1}}
var pointsS = [4]Point{{0, 0}, {-1, 0}, {0, 1}, {1, 1}}
var pointsZ = [4]Point{{0, 0}, {1, 0}, {0, 1}, {-1, 1}}
var pointsO = [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

func buildPiece(t Type, points [4]Point, cw, ccw, rotate180 [4][]Offset, transforms [4]transform) Piece {
	spawn := buildBlocks(Spawn, points)
	right := buildBlocks(Right, rotateRightPoints(points))
	reverse := buildBlocks(Reverse, rotateReversePoints(points))
	left := buildBlocks(Left, rotateLeftPoints(points))

	var uniqueRotate int32
	for _, tr := range transforms {
		uniqueRotate |= 1 << uint(tr.toRotate)
	}

	var sameShapeRotates [4]int32
	for rotate := 0; rotate < 4; rotate++ {
		var same int32
		for target := 0; target < 4; target++ {
			if Rotate(rotate) == transforms[target].toRotate {
				same |= 1 << uint(target)
			}
		}
		sameShapeRotates[rotate] = same
	}
	for rotate := 0; rotate < 4; rotate++ {
		after := transforms[rotate].toRotate
		if Rotate(rotate) != after {
			sameShapeRotates[rotate] = sameShapeRotates[after]
		}
	}

	return Piece{
		Type:             t,
		Blocks:           [4]Blocks{spawn, right, reverse, left},
		CWOffsets:        cw,
		CCWOffsets:       ccw,
		Rotate180Offsets: rotate180,
		UniqueRotate:     uniqueRotate,
		SameShapeRotates: sameShapeRotates,
	}
}

// NewFactory builds the table for the requested rotation system. This is
// meant to run once at process start and be shared by reference — never
// rebuilt per search.
func NewFactory(system RotationSystem) *Factory {
	switch system {
	case SRSPlus:
		return newSRSPlusFactory()
	default:
		return newSRSFactory()
	}
}

func newSRSFactory() *Factory {
	iCW := deriveCWOffsets(srsIOffsets, 5)
	iCCW := deriveCCWOffsets(srsIOffsets, 5)
	oCW := deriveCWOffsets(srsOOffsets, 1)
	oCCW := deriveCCWOffsets(srsOOffsets, 1)
	otherCW := deriveCWOffsets(srsOtherOffsets, 5)
	otherCCW := deriveCCWOffsets(srsOtherOffsets, 5)

	var none [4][]Offset

	t := buildPiece(T, pointsT, otherCW, otherCCW, none, tTransforms)
	i := buildPiece(I, pointsI, iCW, iCCW, none, iTransforms)
	l := buildPiece(L, pointsL, otherCW, otherCCW, none, tTransforms)
	j := buildPiece(J, pointsJ, otherCW, otherCCW, none, tTransforms)
	s := buildPiece(S, pointsS, otherCW, otherCCW, none, sTransforms)
	z := buildPiece(Z, pointsZ, otherCW, otherCCW, none, zTransforms)
	o := buildPiece(O, pointsO, oCW, oCCW, none, oTransforms)

	return assembleFactory(t, i, l, j, s, z, o)
}

func newSRSPlusFactory() *Factory {
	otherCW := deriveCWOffsets(srsOtherOffsets, 5)
	otherCCW := deriveCCWOffsets(srsOtherOffsets, 5)
	oCW := deriveCWOffsets(srsOOffsets, 1)
	oCCW := deriveCCWOffsets(srsOOffsets, 1)

	iRotate180 := srsPlusIRotate180Offsets()

	t := buildPiece(T, pointsT, otherCW, otherCCW, srsPlusOtherRotate180Offsets, tTransforms)
	i := buildPiece(I, pointsI, srsPlusICWOffsets, srsPlusICCWOffsets, iRotate180, iTransforms)
	l := buildPiece(L, pointsL, otherCW, otherCCW, srsPlusOtherRotate180Offsets, tTransforms)
	j := buildPiece(J, pointsJ, otherCW, otherCCW, srsPlusOtherRotate180Offsets, tTransforms)
	s := buildPiece(S, pointsS, otherCW, otherCCW, srsPlusOtherRotate180Offsets, sTransforms)
	z := buildPiece(Z, pointsZ, otherCW, otherCCW, srsPlusOtherRotate180Offsets, zTransforms)
	o := buildPiece(O, pointsO, oCW, oCCW, srsPlusORotate180Offsets, oTransforms)

	return assembleFactory(t, i, l, j, s, z, o)
}

func assembleFactory(t, i, l, j, s, z, o Piece) *Factory {
	f := &Factory{pieces: [7]Piece{t, i, l, j, s, z, o}}
	for idx, p := range f.pieces {
		for r := 0; r < 4; r++ {
			f.blocks[idx*4+r] = p.Blocks[r]
		}
	}
	return f
}
