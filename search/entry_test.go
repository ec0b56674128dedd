package search

import (
	"testing"

	"github.com/matryer/is"

	"github.com/tetris-pc/pcsolve/field"
	"github.com/tetris-pc/pcsolve/movegen"
	"github.com/tetris-pc/pcsolve/piece"
	"github.com/tetris-pc/pcsolve/record"
)

func TestRunFastFindsSingleOPieceFinish(t *testing.T) {
	is := is.New(t)
	factory := piece.NewFactory(piece.SRS)
	gen := movegen.BitboardGenerator{}

	f := field.FromRows([]string{"XXXXXXXX__", "XXXXXXXX__"})
	params := Params{
		Field: f, Pieces: []piece.Type{piece.O}, HoldIndex: -1,
		LeftLine: 2, MaxLine: 2,
	}

	result := RunFast(record.Configure{}, factory, gen, params)
	is.Equal(len(result.Solution), 1)
	is.Equal(result.Solution[0], record.Operation{Type: piece.O, Rotate: piece.Spawn, X: 8, Y: 0})
}

func TestRunFastReportsNoSolutionWhenTooFewPieces(t *testing.T) {
	is := is.New(t)
	factory := piece.NewFactory(piece.SRS)
	gen := movegen.BitboardGenerator{}

	params := Params{
		Field: field.Empty(), Pieces: []piece.Type{piece.O}, HoldIndex: -1,
		LeftLine: 2, MaxLine: 2,
	}

	result := RunFast(record.Configure{}, factory, gen, params)
	is.Equal(len(result.Solution), 0)
}

func TestRunFastRespectsAbortedSignal(t *testing.T) {
	is := is.New(t)
	factory := piece.NewFactory(piece.SRS)
	gen := movegen.BitboardGenerator{}

	f := field.FromRows([]string{"XXXXXXXX__", "XXXXXXXX__"})
	params := Params{
		Field: f, Pieces: []piece.Type{piece.O}, HoldIndex: -1,
		LeftLine: 2, MaxLine: 2, Aborted: func() bool { return true },
	}

	result := RunFast(record.Configure{}, factory, gen, params)
	is.Equal(len(result.Solution), 0)
}

func TestRunTSpinFindsFinishWithoutCreditingAttack(t *testing.T) {
	is := is.New(t)
	factory := piece.NewFactory(piece.SRS)
	gen := movegen.BitboardGenerator{}

	f := field.FromRows([]string{"XXXXXXXX__", "XXXXXXXX__"})
	params := Params{
		Field: f, Pieces: []piece.Type{piece.O}, HoldIndex: -1,
		LeftLine: 2, MaxLine: 2,
	}

	result := RunTSpin(record.Configure{}, factory, gen, params)
	is.Equal(len(result.Solution), 1)
	is.Equal(result.TSpinAttack, 0)
}

func TestRunAllSpinsFindsFinishWithoutCreditingAttack(t *testing.T) {
	is := is.New(t)
	factory := piece.NewFactory(piece.SRS)
	gen := movegen.BitboardGenerator{}

	f := field.FromRows([]string{"XXXXXXXX__", "XXXXXXXX__"})
	params := Params{
		Field: f, Pieces: []piece.Type{piece.O}, HoldIndex: -1,
		LeftLine: 2, MaxLine: 2,
	}

	result := RunAllSpins(record.Configure{}, factory, gen, params)
	is.Equal(len(result.Solution), 1)
	is.Equal(result.SpinAttack, 0)
}

func TestRunTETRIOS2FlatSingleFinishIsNotClean(t *testing.T) {
	is := is.New(t)
	factory := piece.NewFactory(piece.SRS)
	gen := movegen.BitboardGenerator{}

	// A flat horizontal I piece dropped into the one open 4-wide gap
	// finishes the board with an ordinary, non-spin single - "flat-I" safe,
	// but never "clean".
	f := field.FromRows([]string{"XXXXXX____"})
	params := Params{
		Field: f, Pieces: []piece.Type{piece.I}, HoldIndex: -1,
		LeftLine: 1, MaxLine: 1,
	}

	result := RunTETRIOS2(record.Configure{}, factory, gen, params)
	is.Equal(len(result.Solution), 1)
	is.True(!result.IsClean)
	is.True(result.IsFlatI)
}

func TestRunTETRIOS2RejectsDoubleAsOnlyClearInTwoLinePC(t *testing.T) {
	is := is.New(t)
	factory := piece.NewFactory(piece.SRS)
	gen := movegen.BitboardGenerator{}

	// The only legal finish here is one O piece clearing both remaining
	// lines at once - exactly the double-as-opening-clear a two-line PC
	// must never take, so TETRIOS2 must report no solution even though
	// RunFast finds one for this identical fixture.
	f := field.FromRows([]string{"XXXXXXXX__", "XXXXXXXX__"})
	params := Params{
		Field: f, Pieces: []piece.Type{piece.O}, HoldIndex: -1,
		LeftLine: 2, MaxLine: 2,
	}

	result := RunTETRIOS2(record.Configure{}, factory, gen, params)
	is.Equal(len(result.Solution), 0)
}
