package record

import "github.com/tetris-pc/pcsolve/piece"

// FastCandidate is carried by value through the DFS kernel's "fast search"
// traversal, which only cares about reaching a perfect clear with the
// fewest soft-drops and, secondarily, the fewest or most line clears.
type FastCandidate struct {
	CurrentIndex   int
	HoldIndex      int
	LeftLine       int
	Depth          int
	SoftdropCount  int
	HoldCount      int
	LineClearCount int
	CurrentCombo   int
	MaxCombo       int
	Frames         int
}

// FastRecord is the best FastCandidate reached so far, plus the solution
// path and hold metadata needed to report it.
type FastRecord struct {
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
	Frames         int
}

// FastRecorder is the Recorder[FastCandidate, FastRecord] implementation.
type FastRecorder struct {
	best FastRecord
}

func (r *FastRecorder) Clear() {
	r.best = FastRecord{
		Hold: piece.Empty, HoldPriority: inf, CurrentIndex: inf, HoldIndex: inf,
		LeftLine: 0, Depth: inf, SoftdropCount: inf, HoldCount: inf, LineClearCount: inf,
		CurrentCombo: 0, MaxCombo: 0, Frames: 0,
	}
}

func (r *FastRecorder) Update(cfg Configure, pieces []piece.Type, c FastCandidate, solution Solution) {
	hold := holdOf(pieces, c.HoldIndex)
	r.best = FastRecord{
		Solution: solution, Hold: hold, HoldPriority: ExtractLastHoldPriority(cfg.LastHoldPriority, hold),
		CurrentIndex: c.CurrentIndex, HoldIndex: c.HoldIndex, LeftLine: c.LeftLine, Depth: c.Depth,
		SoftdropCount: c.SoftdropCount, HoldCount: c.HoldCount, LineClearCount: c.LineClearCount,
		CurrentCombo: c.CurrentCombo, MaxCombo: c.MaxCombo, Frames: c.Frames,
	}
}

func (r *FastRecorder) UpdateFrom(rec FastRecord) { r.best = rec }
func (r *FastRecorder) Best() FastRecord          { return r.best }

// ToCandidate rebuilds the Candidate fields a Record carries, letting a
// merge step (parallel package) treat one worker's finished Record as a
// challenger against another worker's Recorder using the same
// ShouldUpdate/Update path a live search node would.
func (rec FastRecord) ToCandidate() FastCandidate {
	return FastCandidate{
		CurrentIndex: rec.CurrentIndex, HoldIndex: rec.HoldIndex, LeftLine: rec.LeftLine, Depth: rec.Depth,
		SoftdropCount: rec.SoftdropCount, HoldCount: rec.HoldCount, LineClearCount: rec.LineClearCount,
		CurrentCombo: rec.CurrentCombo, MaxCombo: rec.MaxCombo, Frames: rec.Frames,
	}
}

func (r *FastRecorder) IsWorseThanBest(leastLineClears bool, c FastCandidate) bool {
	if r.best.HoldPriority == 0 {
		return false
	}
	return r.best.SoftdropCount < c.SoftdropCount
}

func fastShouldUpdateFrames(old FastRecord, c FastCandidate) bool {
	newFrames := c.HoldCount + c.Frames
	oldFrames := old.HoldCount + old.Frames
	if newFrames == oldFrames {
		return c.HoldCount < old.HoldCount
	}
	return newFrames < oldFrames
}

func fastShouldUpdateLeastLineClear(old FastRecord, c FastCandidate) bool {
	if c.SoftdropCount != old.SoftdropCount {
		return c.SoftdropCount < old.SoftdropCount
	}
	if c.LineClearCount != old.LineClearCount {
		return c.LineClearCount < old.LineClearCount
	}
	return fastShouldUpdateFrames(old, c)
}

func fastShouldUpdateMostLineClear(old FastRecord, c FastCandidate) bool {
	if c.SoftdropCount != old.SoftdropCount {
		return c.SoftdropCount < old.SoftdropCount
	}
	if c.MaxCombo != old.MaxCombo {
		return old.MaxCombo < c.MaxCombo
	}
	if c.LineClearCount != old.LineClearCount {
		return old.LineClearCount < c.LineClearCount
	}
	return fastShouldUpdateFrames(old, c)
}

func (r *FastRecorder) ShouldUpdate(cfg Configure, pieces []piece.Type, c FastCandidate) bool {
	if len(r.best.Solution) == 0 {
		return true
	}
	newHold := holdOf(pieces, c.HoldIndex)
	if cmp := CompareToLastHoldPriority(cfg.LastHoldPriority, r.best.HoldPriority, newHold); cmp != 0 {
		return cmp > 0
	}
	if cfg.LeastLineClears {
		return fastShouldUpdateLeastLineClear(r.best, c)
	}
	return fastShouldUpdateMostLineClear(r.best, c)
}
