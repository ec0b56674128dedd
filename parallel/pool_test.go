package parallel

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/tetris-pc/pcsolve/field"
	"github.com/tetris-pc/pcsolve/movegen"
	"github.com/tetris-pc/pcsolve/piece"
	"github.com/tetris-pc/pcsolve/record"
	"github.com/tetris-pc/pcsolve/search"
)

func newTestPool(threads int) *Pool {
	factory := piece.NewFactory(piece.SRS)
	gen := movegen.BitboardGenerator{}
	return NewPool(threads, factory, gen)
}

func TestNewPoolDefaultsToAtLeastOneToken(t *testing.T) {
	is := is.New(t)
	p := newTestPool(0)
	is.True(cap(p.tokens) >= 1)
	is.Equal(len(p.tokens), cap(p.tokens))
}

func TestNewPoolHonorsExplicitThreadCount(t *testing.T) {
	is := is.New(t)
	p := newTestPool(3)
	is.Equal(cap(p.tokens), 3)
}

func TestChangeThreadCountResizesWithoutLosingTokens(t *testing.T) {
	is := is.New(t)
	p := newTestPool(2)
	p.ChangeThreadCount(5)
	is.Equal(cap(p.tokens), 5)
	is.Equal(len(p.tokens), 5)
}

func TestChangeThreadCountFloorsAtOne(t *testing.T) {
	is := is.New(t)
	p := newTestPool(2)
	p.ChangeThreadCount(0)
	is.Equal(cap(p.tokens), 1)
}

func TestPremoveEnumeratesEveryFirstPieceLanding(t *testing.T) {
	is := is.New(t)
	p := newTestPool(1)
	base := search.Params{
		Field: field.Empty(), Pieces: []piece.Type{piece.O}, HoldIndex: -1,
		HoldDisabled: true, LeftLine: 4, MaxLine: 4,
	}
	subs := p.premove(base)
	is.True(len(subs) > 0)
	for _, s := range subs {
		is.Equal(len(s.Pieces), 0)
	}
}

func TestPremoveAddsHoldSwapBranchWhenHoldAllowed(t *testing.T) {
	is := is.New(t)
	p := newTestPool(1)
	base := search.Params{
		Field: field.Empty(), Pieces: []piece.Type{piece.O, piece.T}, HoldIndex: -1,
		HoldDisabled: false, LeftLine: 4, MaxLine: 4,
	}
	subs := p.premove(base)

	var sawDirect, sawHoldSwap bool
	for _, s := range subs {
		if s.HoldCount == 0 {
			sawDirect = true
			is.Equal(len(s.Pieces), 1)
			is.Equal(s.Pieces[0], piece.T)
		}
		if s.HoldCount == 1 {
			sawHoldSwap = true
			is.Equal(s.HoldIndex, -1)
			is.Equal(len(s.Pieces), 1)
			is.Equal(s.Pieces[0], piece.O)
		}
	}
	is.True(sawDirect)
	is.True(sawHoldSwap)
}

func TestPremoveSkipsHoldSwapWhenHoldDisabled(t *testing.T) {
	is := is.New(t)
	p := newTestPool(1)
	base := search.Params{
		Field: field.Empty(), Pieces: []piece.Type{piece.O, piece.T}, HoldIndex: -1,
		HoldDisabled: true, LeftLine: 4, MaxLine: 4,
	}
	subs := p.premove(base)
	for _, s := range subs {
		is.True(s.HoldCount == 0)
	}
}

func TestSolveFastFindsFinishAcrossPremoveBranches(t *testing.T) {
	is := is.New(t)
	p := newTestPool(2)
	base := search.Params{
		Field:        field.FromRows([]string{"XXXXXXXX__", "XXXXXXXX__"}),
		Pieces:       []piece.Type{piece.O, piece.O},
		HoldIndex:    -1,
		HoldDisabled: true,
		LeftLine:     2, MaxLine: 2,
	}
	rec, err := SolveFast(context.Background(), p, record.Configure{}, base)
	is.NoErr(err)
	is.True(len(rec.Solution) >= 1)
}

func TestSolveFastReportsNoSolutionWhenUnreachable(t *testing.T) {
	is := is.New(t)
	p := newTestPool(1)
	base := search.Params{
		Field:        field.Empty(),
		Pieces:       []piece.Type{piece.O},
		HoldIndex:    -1,
		HoldDisabled: true,
		LeftLine:     2, MaxLine: 2,
	}
	rec, err := SolveFast(context.Background(), p, record.Configure{}, base)
	is.NoErr(err)
	is.Equal(len(rec.Solution), 0)
}
