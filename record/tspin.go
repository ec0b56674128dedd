package record

import "github.com/tetris-pc/pcsolve/piece"

// TSpinCandidate additionally tracks T-spin attack value, back-to-back
// state, and how many T pieces remain in the queue — once LeftNumOfT
// reaches zero the final attack value is fixed and pruning can kick in.
type TSpinCandidate struct {
	CurrentIndex   int
	HoldIndex      int
	LeftLine       int
	Depth          int
	SoftdropCount  int
	HoldCount      int
	LineClearCount int
	CurrentCombo   int
	MaxCombo       int
	TSpinAttack    int
	B2B            bool
	LeftNumOfT     int
	Frames         int
}

type TSpinRecord struct {
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
	TSpinAttack    int
	B2B            bool
	LeftNumOfT     int
	Frames         int
}

type TSpinRecorder struct {
	best TSpinRecord
}

func (r *TSpinRecorder) Clear() {
	r.best = TSpinRecord{
		Hold: piece.Empty, HoldPriority: inf, CurrentIndex: inf, HoldIndex: inf,
		LeftLine: 0, Depth: inf, SoftdropCount: inf, HoldCount: inf, LineClearCount: inf,
		CurrentCombo: 0, MaxCombo: 0, TSpinAttack: 0, B2B: false, LeftNumOfT: 0, Frames: 0,
	}
}

func (r *TSpinRecorder) Update(cfg Configure, pieces []piece.Type, c TSpinCandidate, solution Solution) {
	hold := holdOf(pieces, c.HoldIndex)
	r.best = TSpinRecord{
		Solution: solution, Hold: hold, HoldPriority: ExtractLastHoldPriority(cfg.LastHoldPriority, hold),
		CurrentIndex: c.CurrentIndex, HoldIndex: c.HoldIndex, LeftLine: c.LeftLine, Depth: c.Depth,
		SoftdropCount: c.SoftdropCount, HoldCount: c.HoldCount, LineClearCount: c.LineClearCount,
		CurrentCombo: c.CurrentCombo, MaxCombo: c.MaxCombo, TSpinAttack: c.TSpinAttack,
		B2B: c.B2B, LeftNumOfT: c.LeftNumOfT, Frames: c.Frames,
	}
}

func (r *TSpinRecorder) UpdateFrom(rec TSpinRecord) { r.best = rec }
func (r *TSpinRecorder) Best() TSpinRecord          { return r.best }

func (rec TSpinRecord) ToCandidate() TSpinCandidate {
	return TSpinCandidate{
		CurrentIndex: rec.CurrentIndex, HoldIndex: rec.HoldIndex, LeftLine: rec.LeftLine, Depth: rec.Depth,
		SoftdropCount: rec.SoftdropCount, HoldCount: rec.HoldCount, LineClearCount: rec.LineClearCount,
		CurrentCombo: rec.CurrentCombo, MaxCombo: rec.MaxCombo, TSpinAttack: rec.TSpinAttack,
		B2B: rec.B2B, LeftNumOfT: rec.LeftNumOfT, Frames: rec.Frames,
	}
}

func (r *TSpinRecorder) IsWorseThanBest(leastLineClears bool, c TSpinCandidate) bool {
	if r.best.HoldPriority == 0 {
		return false
	}
	if c.LeftNumOfT == 0 {
		if c.TSpinAttack != r.best.TSpinAttack {
			return c.TSpinAttack < r.best.TSpinAttack
		}
		return r.best.SoftdropCount < c.SoftdropCount
	}
	return false
}

// tSpinShouldUpdateFrames is the final tie-break once attack, softdrop and
// line-clear counts all match: fewest HoldCount+Frames wins, HoldCount alone
// breaking a tie on that sum, mirroring the other three families.
func tSpinShouldUpdateFrames(old TSpinRecord, c TSpinCandidate) bool {
	newFrames := c.HoldCount + c.Frames
	oldFrames := old.HoldCount + old.Frames
	if newFrames == oldFrames {
		return c.HoldCount < old.HoldCount
	}
	return newFrames < oldFrames
}

func tSpinShouldUpdateLeastLineClear(old TSpinRecord, c TSpinCandidate) bool {
	if c.TSpinAttack != old.TSpinAttack {
		return old.TSpinAttack < c.TSpinAttack
	}
	if c.SoftdropCount != old.SoftdropCount {
		return c.SoftdropCount < old.SoftdropCount
	}
	if c.LineClearCount != old.LineClearCount {
		return c.LineClearCount < old.LineClearCount
	}
	return tSpinShouldUpdateFrames(old, c)
}

func tSpinShouldUpdateMostLineClear(old TSpinRecord, c TSpinCandidate) bool {
	if c.TSpinAttack != old.TSpinAttack {
		return old.TSpinAttack < c.TSpinAttack
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
	return tSpinShouldUpdateFrames(old, c)
}

func (r *TSpinRecorder) ShouldUpdate(cfg Configure, pieces []piece.Type, c TSpinCandidate) bool {
	if len(r.best.Solution) == 0 {
		return true
	}
	newHold := holdOf(pieces, c.HoldIndex)
	if cmp := CompareToLastHoldPriority(cfg.LastHoldPriority, r.best.HoldPriority, newHold); cmp != 0 {
		return cmp > 0
	}
	if cfg.LeastLineClears {
		return tSpinShouldUpdateLeastLineClear(r.best, c)
	}
	return tSpinShouldUpdateMostLineClear(r.best, c)
}
