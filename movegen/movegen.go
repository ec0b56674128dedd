// Package movegen enumerates legal hard-drop landings for a piece against
// a field, walking each rotation's precomputed colliders the way the
// teacher's board-square move generator walks cross-sets behind a small
// Generator interface rather than hand-inlining the search at every call
// site (movegen/movegen.go's MoveGenerator).
package movegen

import (
	"github.com/tetris-pc/pcsolve/field"
	"github.com/tetris-pc/pcsolve/piece"
)

// Move is one committed placement: piece type, rotation, left column and
// landing row (bottom-left of the bounding box). Search only produces
// hard-drop landings, so a Move carries no separate hard-drop flag.
type Move struct {
	Type   piece.Type
	Rotate piece.Rotate
	X      int
	Y      int
}

// Generator produces every legal placement of piece p against f, never
// descending above maxLine (rows at or above maxLine are never part of a
// placement's bounding box, matching the driver's per-height search
// window).
type Generator interface {
	Search(f field.Field, factory *piece.Factory, t piece.Type, maxLine int) []Move
}

// BitboardGenerator is the concrete Generator used everywhere in this
// module; satisfies Generator the same way macondo's board-square
// generator satisfies MoveGenerator.
type BitboardGenerator struct{}

// Search enumerates, for every rotation the piece has (skipping rotations
// that are shape-duplicates of one already produced, via
// Piece.SameShapeRotates), every column's topmost legal hard-drop row.
func (BitboardGenerator) Search(f field.Field, factory *piece.Factory, t piece.Type, maxLine int) []Move {
	p := factory.Get(t)
	var moves []Move
	seenRotate := int32(0)

	for r := 0; r < 4; r++ {
		bit := int32(1) << uint(r)
		if seenRotate&bit != 0 {
			continue
		}
		seenRotate |= p.SameShapeRotates[r]

		blocks := &p.Blocks[r]
		maxX := piece.FieldWidth - blocks.Width
		for x := 0; x <= maxX; x++ {
			y := dropY(f, blocks, x, maxLine)
			if y < 0 {
				continue
			}
			moves = append(moves, Move{Type: t, Rotate: piece.Rotate(r), X: x, Y: y})
		}
	}
	return moves
}

// dropY finds the hard-drop resting row for blocks at column x, never
// landing with any cell at row >= maxLine, or -1 when the piece collides
// already at the highest allowed row. Colliders are monotonic in y
// (collider(y) superset of collider(y+1)), so scanning down from that row,
// the resting row is the one just above the first colliding row (row 0
// when nothing collides).
func dropY(f field.Field, blocks *piece.Blocks, x, maxLine int) int {
	top := maxLine - blocks.Height
	if top < 0 {
		return -1
	}
	if top > piece.MaxFieldHeight-blocks.Height {
		top = piece.MaxFieldHeight - blocks.Height
	}
	for y := top; y >= 0; y-- {
		if f.Collide(blocks.HardDrop(x, y)) {
			if y == top {
				return -1
			}
			return y + 1
		}
	}
	return 0
}
