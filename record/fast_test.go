package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tetris-pc/pcsolve/piece"
)

func TestFastRecorderAcceptsFirstCandidateUnconditionally(t *testing.T) {
	r := &FastRecorder{}
	r.Clear()
	assert.True(t, r.ShouldUpdate(Configure{}, nil, FastCandidate{SoftdropCount: 99}))
}

func TestFastRecorderPrefersFewerSoftdrops(t *testing.T) {
	r := &FastRecorder{}
	r.Clear()
	r.Update(Configure{}, nil, FastCandidate{SoftdropCount: 5}, Solution{{}})
	assert.False(t, r.ShouldUpdate(Configure{}, nil, FastCandidate{SoftdropCount: 6}))
	assert.True(t, r.ShouldUpdate(Configure{}, nil, FastCandidate{SoftdropCount: 4}))
}

func TestFastRecorderLeastVsMostLineClearsDisagree(t *testing.T) {
	pieces := []piece.Type{piece.T}
	base := FastCandidate{SoftdropCount: 3, LineClearCount: 2}
	challenger := FastCandidate{SoftdropCount: 3, LineClearCount: 4}

	least := &FastRecorder{}
	least.Clear()
	least.Update(Configure{LeastLineClears: true}, pieces, base, Solution{{}})
	assert.False(t, least.ShouldUpdate(Configure{LeastLineClears: true}, pieces, challenger))

	most := &FastRecorder{}
	most.Clear()
	most.Update(Configure{LeastLineClears: false}, pieces, base, Solution{{}})
	assert.True(t, most.ShouldUpdate(Configure{LeastLineClears: false}, pieces, challenger))
}

func TestFastRecorderHoldPriorityDominatesLineClears(t *testing.T) {
	pieces := []piece.Type{piece.T}
	cfg := Configure{LastHoldPriority: 1 << 7} // only "no hold" (bit 7) is marked admissible
	r := &FastRecorder{}
	r.Clear()
	// Holding T (bit 0 unset in priority) is the worse bucket regardless of
	// how good its line-clear metrics look.
	r.Update(cfg, pieces, FastCandidate{HoldIndex: 0, SoftdropCount: 0}, Solution{{}})
	assert.True(t, r.ShouldUpdate(cfg, pieces, FastCandidate{HoldIndex: -1, SoftdropCount: 99}))
}

func TestFastRecordToCandidateRoundTrips(t *testing.T) {
	r := &FastRecorder{}
	r.Clear()
	want := FastCandidate{CurrentIndex: 2, HoldIndex: -1, LeftLine: 4, Depth: 1, SoftdropCount: 3, HoldCount: 1, LineClearCount: 2, CurrentCombo: 1, MaxCombo: 2, Frames: 10}
	r.Update(Configure{}, []piece.Type{piece.T}, want, Solution{{}})
	assert.Equal(t, want, r.Best().ToCandidate())
}
