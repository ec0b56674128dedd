package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tetris-pc/pcsolve/field"
	"github.com/tetris-pc/pcsolve/piece"
)

func TestSearchOnEmptyFieldLandsAtFloor(t *testing.T) {
	factory := piece.NewFactory(piece.SRS)
	gen := BitboardGenerator{}
	moves := gen.Search(field.Empty(), factory, piece.O, 4)
	assert.NotEmpty(t, moves)
	for _, m := range moves {
		assert.Equal(t, 0, m.Y)
	}
}

func TestSearchSkipsShapeDuplicateRotations(t *testing.T) {
	factory := piece.NewFactory(piece.SRS)
	gen := BitboardGenerator{}
	moves := gen.Search(field.Empty(), factory, piece.O, 4)
	seen := map[piece.Rotate]bool{}
	for _, m := range moves {
		seen[m.Rotate] = true
	}
	assert.Len(t, seen, 1, "O should only ever produce one distinct rotation's placements")
}

func TestSearchRespectsMaxLine(t *testing.T) {
	factory := piece.NewFactory(piece.SRS)
	gen := BitboardGenerator{}
	moves := gen.Search(field.Empty(), factory, piece.O, 1)
	assert.Empty(t, moves, "O is 2 rows tall and can never fit under a 1-row ceiling")
}

func TestSearchStacksOnExistingBlocks(t *testing.T) {
	factory := piece.NewFactory(piece.SRS)
	gen := BitboardGenerator{}
	f := field.FromRows([]string{"XXXXXXXXX_"})
	moves := gen.Search(f, factory, piece.O, 4)
	for _, m := range moves {
		if m.X == 8 {
			assert.Equal(t, 1, m.Y, "the O piece must rest on top of the filled row 0")
		}
	}
}
