// Package spin classifies a just-landed placement as a spin (and, for the
// T piece, distinguishes mini from full) using the standard 3-corner test:
// a placement counts as a spin when at least 3 of the 4 cells diagonally
// adjacent to the piece's rotation center are occupied or out of bounds.
// This is a deliberate simplification of sfinder's actual approach, which
// reconstructs the exact kick used from the piece's offset table.
package spin

import (
	"github.com/tetris-pc/pcsolve/field"
	"github.com/tetris-pc/pcsolve/movegen"
	"github.com/tetris-pc/pcsolve/piece"
)

// Mode selects which pieces are eligible for spin credit.
type Mode int

const (
	// NoSpin never credits a spin, whatever the placement.
	NoSpin Mode = iota
	// TSpinOnly credits spins for the T piece only.
	TSpinOnly
	// AllSpins credits spins for every piece type.
	AllSpins
)

// Kind is the spin classification of a landed placement.
type Kind int

const (
	None Kind = iota
	Mini
	Full
)

// Classify reports the spin Kind of move m, landed on fieldBefore (the
// field state before m's cells were merged in).
func Classify(mode Mode, fieldBefore field.Field, factory *piece.Factory, m movegen.Move) Kind {
	if mode == NoSpin {
		return None
	}
	if mode == TSpinOnly && m.Type != piece.T {
		return None
	}

	blocks := factory.GetBlocks(m.Type, m.Rotate)
	// The rotation center is the cell every rotation turns about: the
	// spawn-coordinate origin, stored as Points[0] after alignment. For T
	// this is the true SRS center; for I and O it is a cell beside it.
	cx := m.X + blocks.Points[0].X
	cy := m.Y + blocks.Points[0].Y

	filled := 0
	corners := [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	frontCorners := frontCornerSet(m.Rotate)
	frontFilled := 0
	for _, d := range corners {
		x, y := cx+d[0], cy+d[1]
		occ := outOfBounds(x, y) || fieldBefore.Occupied(x, y)
		if occ {
			filled++
			if frontCorners[d] {
				frontFilled++
			}
		}
	}

	if filled < 3 {
		return None
	}
	if m.Type != piece.T {
		return Full
	}
	if frontFilled == 2 {
		return Full
	}
	return Mini
}

// Attack returns the garbage-line value of landing m and clearing
// numCleared lines, crediting the back-to-back bonus when b2b is true.
// Values follow the common guideline attack table: a non-spin single/
// double/triple/tetris sends 0/1/2/4, a spin sends more per line and an
// extra point under back-to-back.
func Attack(mode Mode, fieldBefore field.Field, factory *piece.Factory, m movegen.Move, numCleared int, b2b bool) int {
	if numCleared == 0 {
		return 0
	}
	kind := Classify(mode, fieldBefore, factory, m)

	var base int
	switch {
	case kind == Full:
		switch numCleared {
		case 1:
			base = 2
		case 2:
			base = 4
		case 3:
			base = 6
		}
	case kind == Mini:
		switch numCleared {
		case 1:
			base = 0
		case 2:
			base = 1
		}
	default:
		switch numCleared {
		case 1:
			base = 0
		case 2:
			base = 1
		case 3:
			base = 2
		case 4:
			base = 4
		}
	}

	if b2b && (kind != None || numCleared == 4) && base > 0 {
		base++
	}
	return base
}

func outOfBounds(x, y int) bool {
	return x < 0 || x >= piece.FieldWidth || y < 0 || y >= piece.MaxFieldHeight
}

// frontCornerSet returns the two corner deltas that face the direction the
// T piece's flat side points after rotation r — a full T-spin requires
// both front corners (as opposed to just the back two) to be occupied.
func frontCornerSet(r piece.Rotate) map[[2]int]bool {
	switch r {
	case piece.Spawn:
		return map[[2]int]bool{{-1, 1}: true, {1, 1}: true}
	case piece.Right:
		return map[[2]int]bool{{1, -1}: true, {1, 1}: true}
	case piece.Reverse:
		return map[[2]int]bool{{-1, -1}: true, {1, -1}: true}
	default: // Left
		return map[[2]int]bool{{-1, -1}: true, {-1, 1}: true}
	}
}
