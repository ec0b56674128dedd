package record

import (
	"testing"

	"github.com/matryer/is"

	"github.com/tetris-pc/pcsolve/piece"
)

func TestAllSpinsRecorderNeverPrunes(t *testing.T) {
	is := is.New(t)
	r := &AllSpinsRecorder{}
	r.Clear()
	r.Update(Configure{}, nil, AllSpinsCandidate{SpinAttack: 100}, Solution{{}})
	is.True(!r.IsWorseThanBest(false, AllSpinsCandidate{SpinAttack: 0}))
	is.True(!r.IsWorseThanBest(true, AllSpinsCandidate{SpinAttack: -1}))
}

func TestAllSpinsRecorderPrefersHigherSpinAttack(t *testing.T) {
	is := is.New(t)
	r := &AllSpinsRecorder{}
	r.Clear()
	r.Update(Configure{}, nil, AllSpinsCandidate{SpinAttack: 2}, Solution{{}})
	is.True(r.ShouldUpdate(Configure{}, nil, AllSpinsCandidate{SpinAttack: 3}))
	is.True(!r.ShouldUpdate(Configure{}, nil, AllSpinsCandidate{SpinAttack: 1}))
}

func TestAllSpinsToCandidateRoundTrips(t *testing.T) {
	is := is.New(t)
	want := AllSpinsCandidate{CurrentIndex: 1, HoldIndex: -1, SpinAttack: 5, B2B: true, Frames: 40}
	r := &AllSpinsRecorder{}
	r.Clear()
	r.Update(Configure{}, []piece.Type{piece.T}, want, Solution{{}})
	is.Equal(r.Best().ToCandidate(), want)
}
