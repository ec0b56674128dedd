package record

import "github.com/tetris-pc/pcsolve/piece"

// AllSpinsCandidate is the all-spin-flavors counterpart of TSpinCandidate:
// since any piece can spin, there is no "pieces left that can still spin"
// pruning signal, so IsWorseThanBest never prunes for this family (the
// kernel must walk every branch to the end to know the final attack).
type AllSpinsCandidate struct {
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
	B2B            bool
	Frames         int
}

type AllSpinsRecord struct {
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
	B2B            bool
	Frames         int
}

type AllSpinsRecorder struct {
	best AllSpinsRecord
}

func (r *AllSpinsRecorder) Clear() {
	r.best = AllSpinsRecord{
		Hold: piece.Empty, HoldPriority: inf, CurrentIndex: inf, HoldIndex: inf,
		LeftLine: 0, Depth: inf, SoftdropCount: inf, HoldCount: inf, LineClearCount: inf,
		CurrentCombo: 0, MaxCombo: 0, SpinAttack: 0, B2B: false, Frames: 0,
	}
}

func (r *AllSpinsRecorder) Update(cfg Configure, pieces []piece.Type, c AllSpinsCandidate, solution Solution) {
	hold := holdOf(pieces, c.HoldIndex)
	r.best = AllSpinsRecord{
		Solution: solution, Hold: hold, HoldPriority: ExtractLastHoldPriority(cfg.LastHoldPriority, hold),
		CurrentIndex: c.CurrentIndex, HoldIndex: c.HoldIndex, LeftLine: c.LeftLine, Depth: c.Depth,
		SoftdropCount: c.SoftdropCount, HoldCount: c.HoldCount, LineClearCount: c.LineClearCount,
		CurrentCombo: c.CurrentCombo, MaxCombo: c.MaxCombo, SpinAttack: c.SpinAttack,
		B2B: c.B2B, Frames: c.Frames,
	}
}

func (r *AllSpinsRecorder) UpdateFrom(rec AllSpinsRecord) { r.best = rec }
func (r *AllSpinsRecorder) Best() AllSpinsRecord          { return r.best }

func (rec AllSpinsRecord) ToCandidate() AllSpinsCandidate {
	return AllSpinsCandidate{
		CurrentIndex: rec.CurrentIndex, HoldIndex: rec.HoldIndex, LeftLine: rec.LeftLine, Depth: rec.Depth,
		SoftdropCount: rec.SoftdropCount, HoldCount: rec.HoldCount, LineClearCount: rec.LineClearCount,
		CurrentCombo: rec.CurrentCombo, MaxCombo: rec.MaxCombo, SpinAttack: rec.SpinAttack,
		B2B: rec.B2B, Frames: rec.Frames,
	}
}

// IsWorseThanBest never prunes: a spin attack is possible right up to the
// last piece placed, so there is no partial state from which the kernel
// can prove a branch cannot beat the current best.
func (r *AllSpinsRecorder) IsWorseThanBest(leastLineClears bool, c AllSpinsCandidate) bool {
	return false
}

func allSpinsShouldUpdateFrames(old AllSpinsRecord, c AllSpinsCandidate) bool {
	newFrames := c.HoldCount + c.Frames
	oldFrames := old.HoldCount + old.Frames
	if newFrames == oldFrames {
		return c.HoldCount < old.HoldCount
	}
	return newFrames < oldFrames
}

func allSpinsShouldUpdateLeastLineClear(old AllSpinsRecord, c AllSpinsCandidate) bool {
	if c.SpinAttack != old.SpinAttack {
		return old.SpinAttack < c.SpinAttack
	}
	if c.SoftdropCount != old.SoftdropCount {
		return c.SoftdropCount < old.SoftdropCount
	}
	if c.LineClearCount != old.LineClearCount {
		return c.LineClearCount < old.LineClearCount
	}
	return allSpinsShouldUpdateFrames(old, c)
}

func allSpinsShouldUpdateMostLineClear(old AllSpinsRecord, c AllSpinsCandidate) bool {
	if c.SpinAttack != old.SpinAttack {
		return old.SpinAttack < c.SpinAttack
	}
	if c.SoftdropCount != old.SoftdropCount {
		return c.SoftdropCount < old.SoftdropCount
	}
	if c.MaxCombo != old.MaxCombo {
		return old.MaxCombo < c.MaxCombo
	}
	if c.LineClearCount != old.LineClearCount {
		return old.LineClearCount < c.LineClearCount
	}
	return allSpinsShouldUpdateFrames(old, c)
}

func (r *AllSpinsRecorder) ShouldUpdate(cfg Configure, pieces []piece.Type, c AllSpinsCandidate) bool {
	if len(r.best.Solution) == 0 {
		return true
	}
	newHold := holdOf(pieces, c.HoldIndex)
	if cmp := CompareToLastHoldPriority(cfg.LastHoldPriority, r.best.HoldPriority, newHold); cmp != 0 {
		return cmp > 0
	}
	if cfg.LeastLineClears {
		return allSpinsShouldUpdateLeastLineClear(r.best, c)
	}
	return allSpinsShouldUpdateMostLineClear(r.best, c)
}
