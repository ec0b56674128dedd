// Package field implements the playfield bit-board: four 64-bit words of
// six rows each, spanning the 10-wide by 24-tall board the search kernel
// operates on. Field is a small value type, copied by value at every
// recursion level the same way the teacher's tinymove.SmallMove is copied
// through move generation rather than passed by pointer and mutated.
package field

import (
	"math/bits"

	"github.com/tetris-pc/pcsolve/piece"
)

const (
	Width       = piece.FieldWidth
	MaxHeight   = piece.MaxFieldHeight
	rowsPerWord = 6
	fullRow     = (uint64(1) << Width) - 1
)

// Field is the board state: four words, bottom-to-top, six rows each.
type Field struct {
	words [4]uint64
}

// Empty returns a field with no occupied cells.
func Empty() Field { return Field{} }

// FromRows builds a field from bottom-up row strings, each exactly Width
// runes long, '_' empty and anything else filled — convenient for tests
// and for the §6 field-string external interface.
func FromRows(rows []string) Field {
	var f Field
	for y, row := range rows {
		for x := 0; x < Width && x < len(row); x++ {
			if row[x] != '_' {
				f.words[y/rowsPerWord] |= uint64(1) << uint((y%rowsPerWord)*Width+x)
			}
		}
	}
	return f
}

// Clone returns an independent copy (Field is already a value type, so
// this is just `f` — kept as a named method so call sites read the same
// way the teacher's board.Clone() call sites do).
func (f Field) Clone() Field { return f }

// Put merges a piece.BlocksMask positioned at word index wordIdx into the
// field, spilling into the next word when the mask straddles a boundary.
func (f *Field) Put(wordIdx int, m piece.BlocksMask) {
	f.words[wordIdx] |= m.Low
	if m.High != 0 && wordIdx+1 < 4 {
		f.words[wordIdx+1] |= m.High
	}
}

// Collide reports whether c overlaps any occupied cell.
func (f Field) Collide(c piece.Collider) bool {
	for i := 0; i < 4; i++ {
		if f.words[i]&c.Words[i] != 0 {
			return true
		}
	}
	return false
}

// Merge ORs every bit of c into the field. A hard-drop collider covers
// every row from its landing row up to the ceiling, so merging one fills
// that whole span, not only the piece's resting cells (Put does that).
func (f *Field) Merge(c piece.Collider) {
	for i := 0; i < 4; i++ {
		f.words[i] |= c.Words[i]
	}
}

func (f Field) rowBits(y int) uint64 {
	word := f.words[y/rowsPerWord]
	shift := uint((y % rowsPerWord) * Width)
	return (word >> shift) & fullRow
}

// Occupied reports whether cell (x, y) is filled. x, y must be in bounds.
func (f Field) Occupied(x, y int) bool {
	return f.rowBits(y)&(uint64(1)<<uint(x)) != 0
}

// IsRowFilled reports whether row y has every column occupied.
func (f Field) IsRowFilled(y int) bool { return f.rowBits(y) == fullRow }

// ClearLines removes every filled row, drops the rows above down to fill
// the gaps, and returns how many lines were cleared.
func (f *Field) ClearLines() int {
	rows := make([]uint64, 0, MaxHeight)
	cleared := 0
	for y := 0; y < MaxHeight; y++ {
		bits := f.rowBits(y)
		if bits == fullRow {
			cleared++
			continue
		}
		rows = append(rows, bits)
	}
	var nf Field
	for y, bits := range rows {
		nf.words[y/rowsPerWord] |= bits << uint((y%rowsPerWord)*Width)
	}
	*f = nf
	return cleared
}

// NumBlocks returns the total occupied cell count across the field.
func (f Field) NumBlocks() int {
	n := 0
	for _, w := range f.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// BlocksOnColumn returns how many occupied cells sit in column x from row
// 0 up to and including row maxY — used by the wall-parity validator.
func (f Field) BlocksOnColumn(x, maxY int) int {
	n := 0
	for y := 0; y <= maxY && y < MaxHeight; y++ {
		if f.rowBits(y)&(uint64(1)<<uint(x)) != 0 {
			n++
		}
	}
	return n
}

// HoleCount counts empty cells that have an occupied cell somewhere above
// them in the same column, up to maxY.
func (f Field) HoleCount(maxY int) int {
	holes := 0
	for x := 0; x < Width; x++ {
		seenBlock := false
		for y := maxY; y >= 0; y-- {
			occupied := f.rowBits(y)&(uint64(1)<<uint(x)) != 0
			if occupied {
				seenBlock = true
				continue
			}
			if seenBlock {
				holes++
			}
		}
	}
	return holes
}

// IsWallBetween reports whether, scanning up from row 0 to maxY, column x
// is never open at the same row as column x+1 — i.e. cells on both sides
// of the x|x+1 boundary never both vacant at once. This feeds the
// wall-parity validator, which reasons about fully separated regions.
func (f Field) IsWallBetween(x, maxY int) bool {
	for y := 0; y <= maxY; y++ {
		rowLeft := f.rowBits(y)&(uint64(1)<<uint(x)) != 0
		rowRight := f.rowBits(y)&(uint64(1)<<uint(x+1)) != 0
		if !rowLeft && !rowRight {
			return false
		}
	}
	return true
}

// HeightOf returns the height of the topmost occupied cell in column x,
// i.e. one past the highest filled row, 0 if the column is empty.
func (f Field) HeightOf(x int) int {
	for y := MaxHeight - 1; y >= 0; y-- {
		if f.rowBits(y)&(uint64(1)<<uint(x)) != 0 {
			return y + 1
		}
	}
	return 0
}

// IsEmptyAbove reports whether every cell at or above row y in the whole
// field is vacant — used to confirm a perfect clear up to maxLine.
func (f Field) IsEmptyAbove(y int) bool {
	for row := y; row < MaxHeight; row++ {
		if f.rowBits(row) != 0 {
			return false
		}
	}
	return true
}

// CanPut reports whether blocks at (leftX, wordIdx-local lowerY) fits
// without colliding, given the Collider precomputed for (leftX, lowerY).
func (f Field) CanPut(c piece.Collider) bool { return !f.Collide(c) }
