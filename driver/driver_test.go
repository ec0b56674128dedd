package driver

import (
	"testing"

	"github.com/matryer/is"

	"github.com/tetris-pc/pcsolve/piece"
)

func TestSolveRejectsOddBlockCountWithoutError(t *testing.T) {
	is := is.New(t)
	req := Request{
		FieldRows: []string{"X_________"},
		Queue:     "O",
		Hold:      'E',
		Height:    2,
		MaxHeight: 2,
		System:    piece.SRS,
	}
	result, err := Solve(req)
	is.NoErr(err)
	is.True(!result.Solved)
}

func TestSolveRejectsInvalidHoldByte(t *testing.T) {
	is := is.New(t)
	req := Request{
		FieldRows: []string{"__________"},
		Queue:     "O",
		Hold:      '?',
		Height:    2,
		MaxHeight: 2,
		System:    piece.SRS,
	}
	_, err := Solve(req)
	is.True(err != nil)
}

func TestSolveRejectsInvalidQueueByte(t *testing.T) {
	is := is.New(t)
	req := Request{
		FieldRows: []string{"__________"},
		Queue:     "?",
		Hold:      'E',
		Height:    2,
		MaxHeight: 2,
		System:    piece.SRS,
	}
	_, err := Solve(req)
	is.True(err != nil)
}

func TestSolveFindsFinishWithinHeightWindow(t *testing.T) {
	is := is.New(t)
	req := Request{
		FieldRows:  []string{"XXXXXXXX__", "XXXXXXXX__"},
		Queue:      "OO",
		Hold:       'E',
		Height:     2,
		MaxHeight:  2,
		SearchType: Fast,
		System:     piece.SRS,
	}
	result, err := Solve(req)
	is.NoErr(err)
	is.True(result.Solved)
	is.True(len(result.Solution) >= 1)
}

func TestSolveRespectsAbortedSignal(t *testing.T) {
	is := is.New(t)
	req := Request{
		FieldRows:  []string{"XXXXXXXX__", "XXXXXXXX__"},
		Queue:      "OO",
		Hold:       'E',
		Height:     2,
		MaxHeight:  2,
		SearchType: Fast,
		System:     piece.SRS,
		Aborted:    func() bool { return true },
	}
	result, err := Solve(req)
	is.NoErr(err)
	is.True(!result.Solved)
}

func TestSolveGivesUpWhenQueueTooShortForWindow(t *testing.T) {
	is := is.New(t)
	// Only one queued piece, but the height-2 window needs two to reach
	// maxPieces - the outer loop must break before ever calling search.
	req := Request{
		FieldRows:  []string{"XXXXXXXX__", "XXXXXXXX__"},
		Queue:      "O",
		Hold:       'E',
		Height:     2,
		MaxHeight:  2,
		SearchType: Fast,
		System:     piece.SRS,
	}
	result, err := Solve(req)
	is.NoErr(err)
	is.True(!result.Solved)
}
