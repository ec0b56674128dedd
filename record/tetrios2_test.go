package record

import (
	"testing"

	"github.com/matryer/is"
)

func TestTETRIOS2RecorderSafeEndingDominatesSpinAttack(t *testing.T) {
	is := is.New(t)
	r := &TETRIOS2Recorder{}
	r.Clear()
	// An "unsafe" ending with a huge spin attack value...
	r.Update(Configure{}, nil, TETRIOS2Candidate{SpinAttack: 50, IsClean: false, IsFlatI: false}, Solution{{}})
	// ...still loses to any safe (clean or flat-I) ending, however modest.
	is.True(r.ShouldUpdate(Configure{}, nil, TETRIOS2Candidate{SpinAttack: 0, IsClean: true}))
}

func TestTETRIOS2RecorderB2BTieBreakPrefersLongerStreak(t *testing.T) {
	is := is.New(t)
	r := &TETRIOS2Recorder{}
	r.Clear()
	r.Update(Configure{}, nil, TETRIOS2Candidate{SpinAttack: 1, B2B: 1}, Solution{{}})
	is.True(r.ShouldUpdate(Configure{}, nil, TETRIOS2Candidate{SpinAttack: 1, B2B: 3}))
	is.True(!r.ShouldUpdate(Configure{}, nil, TETRIOS2Candidate{SpinAttack: 1, B2B: 1}))
	is.True(!r.ShouldUpdate(Configure{}, nil, TETRIOS2Candidate{SpinAttack: 1, B2B: 0}))
}

func TestTETRIOS2RecorderCleanBonusBreaksCompositeTie(t *testing.T) {
	is := is.New(t)
	r := &TETRIOS2Recorder{}
	r.Clear()
	// old: SpinAttack 2, clean (safe) -> composite score 2+2 = 4
	r.Update(Configure{}, nil, TETRIOS2Candidate{SpinAttack: 2, IsClean: true}, Solution{{}})
	// new: SpinAttack 4, flat-I (also safe, not clean) -> composite score
	// 4+0 = 4, a genuine tie; IsClean breaks it in the old candidate's favor.
	is.True(!r.ShouldUpdate(Configure{}, nil, TETRIOS2Candidate{SpinAttack: 4, IsFlatI: true}))
}

func TestTETRIOS2RecorderNeverPrunes(t *testing.T) {
	is := is.New(t)
	r := &TETRIOS2Recorder{}
	r.Clear()
	r.Update(Configure{}, nil, TETRIOS2Candidate{SpinAttack: 10, IsClean: true}, Solution{{}})
	is.True(!r.IsWorseThanBest(false, TETRIOS2Candidate{SpinAttack: -10}))
}
