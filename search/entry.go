package search

import (
	"github.com/tetris-pc/pcsolve/field"
	"github.com/tetris-pc/pcsolve/movegen"
	"github.com/tetris-pc/pcsolve/piece"
	"github.com/tetris-pc/pcsolve/record"
)

// Params bundles everything a Run call needs beyond the recorder itself:
// the starting field, the piece queue (already including a resolved hold
// as pieces[0] when the caller starts with one), how many lines still
// need clearing, and the search bound.
type Params struct {
	Field     field.Field
	Pieces    []piece.Type
	HoldIndex    int // -1 if nothing is held at the start
	HoldCount    int // holds already spent getting here
	HoldDisabled bool
	LeftLine     int
	MaxLine      int
	B2B          bool
	Aborted      Aborted
}

func newWalker(factory *piece.Factory, gen movegen.Generator, mode Mode, maxLine, maxDepth int, aborted Aborted) *walker {
	return &walker{factory: factory, gen: gen, mode: mode, maxLine: maxLine, maxDepth: maxDepth, aborted: aborted}
}

func initialState(p Params) state {
	numT := 0
	for _, t := range p.Pieces {
		if t == piece.T {
			numT++
		}
	}
	b2bCount := 0
	if p.B2B {
		b2bCount = 1
	}
	return state{
		field:        p.Field,
		leftLine:     p.LeftLine,
		holdIndex:    p.HoldIndex,
		holdCount:    p.HoldCount,
		holdDisabled: p.HoldDisabled,
		b2b:          p.B2B,
		b2bCount:     b2bCount,
		leftNumOfT:   numT,
	}
}

// RunFast searches for the fastest (fewest soft-drops) perfect clear.
func RunFast(cfg record.Configure, factory *piece.Factory, gen movegen.Generator, p Params) record.FastRecord {
	rec := &record.FastRecorder{}
	rec.Clear()
	w := newWalker(factory, gen, ModeFast, p.MaxLine, len(p.Pieces), p.Aborted)
	w.onLeaf = func(s state) {
		c := record.FastCandidate{
			CurrentIndex: s.currentIndex, HoldIndex: s.holdIndex, LeftLine: s.leftLine, Depth: s.depth,
			SoftdropCount: s.softdropCount, HoldCount: s.holdCount, LineClearCount: s.lineClearCount,
			CurrentCombo: s.currentCombo, MaxCombo: s.maxCombo, Frames: s.frames,
		}
		if rec.IsWorseThanBest(cfg.LeastLineClears, c) {
			return
		}
		if rec.ShouldUpdate(cfg, p.Pieces, c) {
			rec.Update(cfg, p.Pieces, c, toSolution(s.solution))
		}
	}
	w.run(p.Pieces, initialState(p))
	return rec.Best()
}

// RunTSpin searches for the highest-value perfect clear crediting T-spins
// only.
func RunTSpin(cfg record.Configure, factory *piece.Factory, gen movegen.Generator, p Params) record.TSpinRecord {
	rec := &record.TSpinRecorder{}
	rec.Clear()
	w := newWalker(factory, gen, ModeTSpin, p.MaxLine, len(p.Pieces), p.Aborted)
	w.onLeaf = func(s state) {
		c := record.TSpinCandidate{
			CurrentIndex: s.currentIndex, HoldIndex: s.holdIndex, LeftLine: s.leftLine, Depth: s.depth,
			SoftdropCount: s.softdropCount, HoldCount: s.holdCount, LineClearCount: s.lineClearCount,
			CurrentCombo: s.currentCombo, MaxCombo: s.maxCombo, TSpinAttack: s.spinAttack,
			B2B: s.b2b, LeftNumOfT: s.leftNumOfT, Frames: s.frames,
		}
		if rec.IsWorseThanBest(cfg.LeastLineClears, c) {
			return
		}
		if rec.ShouldUpdate(cfg, p.Pieces, c) {
			rec.Update(cfg, p.Pieces, c, toSolution(s.solution))
		}
	}
	w.run(p.Pieces, initialState(p))
	return rec.Best()
}

// RunAllSpins searches for the highest-value perfect clear crediting
// spins from any piece type.
func RunAllSpins(cfg record.Configure, factory *piece.Factory, gen movegen.Generator, p Params) record.AllSpinsRecord {
	rec := &record.AllSpinsRecorder{}
	rec.Clear()
	w := newWalker(factory, gen, ModeAllSpins, p.MaxLine, len(p.Pieces), p.Aborted)
	w.onLeaf = func(s state) {
		c := record.AllSpinsCandidate{
			CurrentIndex: s.currentIndex, HoldIndex: s.holdIndex, LeftLine: s.leftLine, Depth: s.depth,
			SoftdropCount: s.softdropCount, HoldCount: s.holdCount, LineClearCount: s.lineClearCount,
			CurrentCombo: s.currentCombo, MaxCombo: s.maxCombo, SpinAttack: s.spinAttack,
			B2B: s.b2b, Frames: s.frames,
		}
		if rec.IsWorseThanBest(cfg.LeastLineClears, c) {
			return
		}
		if rec.ShouldUpdate(cfg, p.Pieces, c) {
			rec.Update(cfg, p.Pieces, c, toSolution(s.solution))
		}
	}
	w.run(p.Pieces, initialState(p))
	return rec.Best()
}

// RunTETRIOS2 searches under the TETR.IO Season 2 composite score: safe
// endings (clean or flat-I) dominate, then back-to-back, then spin
// attack.
func RunTETRIOS2(cfg record.Configure, factory *piece.Factory, gen movegen.Generator, p Params) record.TETRIOS2Record {
	rec := &record.TETRIOS2Recorder{}
	rec.Clear()
	w := newWalker(factory, gen, ModeTETRIOS2, p.MaxLine, len(p.Pieces), p.Aborted)
	w.onLeaf = func(s state) {
		c := record.TETRIOS2Candidate{
			CurrentIndex: s.currentIndex, HoldIndex: s.holdIndex, LeftLine: s.leftLine, Depth: s.depth,
			SoftdropCount: s.softdropCount, HoldCount: s.holdCount, LineClearCount: s.lineClearCount,
			CurrentCombo: s.currentCombo, MaxCombo: s.maxCombo, SpinAttack: s.spinAttack,
			B2B: s.b2bCount, Frames: s.frames, IsClean: s.isClean, IsFlatI: s.isFlatI,
		}
		if rec.IsWorseThanBest(cfg.LeastLineClears, c) {
			return
		}
		if rec.ShouldUpdate(cfg, p.Pieces, c) {
			rec.Update(cfg, p.Pieces, c, toSolution(s.solution))
		}
	}
	w.run(p.Pieces, initialState(p))
	return rec.Best()
}

func toSolution(ops []record.Operation) record.Solution {
	out := make(record.Solution, len(ops))
	copy(out, ops)
	return out
}
