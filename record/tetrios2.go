package record

import "github.com/tetris-pc/pcsolve/piece"

// TETRIOS2Candidate is the composite-scoring family: on top of spin
// attack and a back-to-back streak counter (unlike TSpin/AllSpins's flag,
// this counts consecutive clears and never resets), it tracks whether the
// finishing clear was a genuine spin ("clean") or a flat single ("flat-I"),
// the two endings judged safe enough to leave for the opponent.
type TETRIOS2Candidate struct {
	CurrentIndex   int
	HoldIndex      int
	LeftLine       int
	Depth          int
	SoftdropCount  int
	HoldCount      int
	LineClearCount int
	CurrentCombo   int
	MaxCombo       int
	SpinAttack     int
	B2B            int
	Frames         int
	IsClean        bool
	IsFlatI        bool
}

type TETRIOS2Record struct {
	Solution       Solution
	Hold           piece.Type
	HoldPriority   int
	CurrentIndex   int
	HoldIndex      int
	LeftLine       int
	Depth          int
	SoftdropCount  int
	HoldCount      int
	LineClearCount int
	CurrentCombo   int
	MaxCombo       int
	SpinAttack     int
	B2B            int
	Frames         int
	IsClean        bool
	IsFlatI        bool
}

type TETRIOS2Recorder struct {
	best TETRIOS2Record
}

func (r *TETRIOS2Recorder) Clear() {
	r.best = TETRIOS2Record{
		Hold: piece.Empty, HoldPriority: inf, CurrentIndex: inf, HoldIndex: inf,
		LeftLine: 0, Depth: inf, SoftdropCount: inf, HoldCount: inf, LineClearCount: inf,
		CurrentCombo: 0, MaxCombo: 0, SpinAttack: 0, B2B: 0, Frames: 0,
		IsClean: false, IsFlatI: false,
	}
}

func (r *TETRIOS2Recorder) Update(cfg Configure, pieces []piece.Type, c TETRIOS2Candidate, solution Solution) {
	hold := holdOf(pieces, c.HoldIndex)
	r.best = TETRIOS2Record{
		Solution: solution, Hold: hold, HoldPriority: ExtractLastHoldPriority(cfg.LastHoldPriority, hold),
		CurrentIndex: c.CurrentIndex, HoldIndex: c.HoldIndex, LeftLine: c.LeftLine, Depth: c.Depth,
		SoftdropCount: c.SoftdropCount, HoldCount: c.HoldCount, LineClearCount: c.LineClearCount,
		CurrentCombo: c.CurrentCombo, MaxCombo: c.MaxCombo, SpinAttack: c.SpinAttack,
		B2B: c.B2B, Frames: c.Frames, IsClean: c.IsClean, IsFlatI: c.IsFlatI,
	}
}

func (r *TETRIOS2Recorder) UpdateFrom(rec TETRIOS2Record) { r.best = rec }
func (r *TETRIOS2Recorder) Best() TETRIOS2Record          { return r.best }

func (rec TETRIOS2Record) ToCandidate() TETRIOS2Candidate {
	return TETRIOS2Candidate{
		CurrentIndex: rec.CurrentIndex, HoldIndex: rec.HoldIndex, LeftLine: rec.LeftLine, Depth: rec.Depth,
		SoftdropCount: rec.SoftdropCount, HoldCount: rec.HoldCount, LineClearCount: rec.LineClearCount,
		CurrentCombo: rec.CurrentCombo, MaxCombo: rec.MaxCombo, SpinAttack: rec.SpinAttack,
		B2B: rec.B2B, Frames: rec.Frames, IsClean: rec.IsClean, IsFlatI: rec.IsFlatI,
	}
}

// IsWorseThanBest never prunes, for the same reason as AllSpins: the
// composite score can still swing on the last piece placed.
func (r *TETRIOS2Recorder) IsWorseThanBest(leastLineClears bool, c TETRIOS2Candidate) bool {
	return false
}

func tetrios2ShouldUpdateFrames(old TETRIOS2Record, c TETRIOS2Candidate) bool {
	newFrames := c.HoldCount + c.Frames
	oldFrames := old.HoldCount + old.Frames
	if newFrames == oldFrames {
		return c.HoldCount < old.HoldCount
	}
	return newFrames < oldFrames
}

// tetrios2ShouldUpdateMostLineClear is the only comparator TETRIOS2 uses —
// unlike the other three families it never offers a "least line clears"
// variant, since the composite score already encodes what TETR.IO Season
// 2 rewards. Non-spin, non-flat-I endings ("unsafe") are dominated by any
// safe ending regardless of every other field, because they leave a board
// shape that is extremely costly to dig out of under incoming garbage.
func tetrios2ShouldUpdateMostLineClear(old TETRIOS2Record, c TETRIOS2Candidate) bool {
	newSafe := c.IsClean || c.IsFlatI
	oldSafe := old.IsClean || old.IsFlatI
	if newSafe != oldSafe {
		return newSafe
	}

	if c.B2B != old.B2B {
		return old.B2B < c.B2B
	}

	newScore := c.SpinAttack
	if c.IsClean {
		newScore += 2
	}
	oldScore := old.SpinAttack
	if old.IsClean {
		oldScore += 2
	}
	if newScore != oldScore {
		return oldScore < newScore
	}

	if c.IsClean != old.IsClean {
		return c.IsClean
	}
	if c.SpinAttack != old.SpinAttack {
		return old.SpinAttack < c.SpinAttack
	}
	if c.MaxCombo != old.MaxCombo {
		return old.MaxCombo < c.MaxCombo
	}
	if c.LineClearCount != old.LineClearCount {
		return old.LineClearCount < c.LineClearCount
	}
	return tetrios2ShouldUpdateFrames(old, c)
}

func (r *TETRIOS2Recorder) ShouldUpdate(cfg Configure, pieces []piece.Type, c TETRIOS2Candidate) bool {
	if len(r.best.Solution) == 0 {
		return true
	}
	newHold := holdOf(pieces, c.HoldIndex)
	if cmp := CompareToLastHoldPriority(cfg.LastHoldPriority, r.best.HoldPriority, newHold); cmp != 0 {
		return cmp > 0
	}
	return tetrios2ShouldUpdateMostLineClear(r.best, c)
}
