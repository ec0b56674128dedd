package search

import (
	"testing"

	"github.com/matryer/is"

	"github.com/tetris-pc/pcsolve/field"
)

func TestValidateAcceptsEmptyField(t *testing.T) {
	is := is.New(t)
	is.True(validate(field.Empty(), 4))
}

func TestValidateRejectsNonMultipleOfFourIsolatedRegion(t *testing.T) {
	is := is.New(t)
	// A single filled cell in column 0 forms a wall against column 1, so
	// column 0 is an isolated region whose block count (1) is not a
	// multiple of 4 and can never be finished.
	f := field.FromRows([]string{"X_________"})
	is.True(!validate(f, 1))
}

func TestValidateAcceptsIsolatedRegionOfExactlyFour(t *testing.T) {
	is := is.New(t)
	// Column 0 is filled at every row up to maxY, so no row has both it and
	// column 1 vacant: a wall splits it off as its own region, which
	// carries exactly 4 occupied cells across 4 rows - a single I piece
	// dropped vertically.
	f := field.FromRows([]string{"X_________", "X_________", "X_________", "X_________"})
	is.True(validate(f, 4))
}
