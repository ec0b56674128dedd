// Package record implements the four candidate/record families the search
// kernel threads through its recursion — Fast, TSpin, AllSpins and
// TETRIOS2 — each a value-typed Candidate plus a single mutable best
// Record kept behind a Recorder. This mirrors the teacher's
// endgame/alphabeta package: a Solver holds one mutable best-node slot
// (gamenode.go's nodeValue) and every recursive call either improves it or
// walks away, rather than returning values up the call stack.
package record

import (
	"math"

	"github.com/tetris-pc/pcsolve/piece"
)

// Operation is one placement in a solution path: the piece placed, its
// rotation, and its landing column/row.
type Operation struct {
	Type   piece.Type
	Rotate piece.Rotate
	X, Y   int
}

// Solution is an ordered list of Operations, empty until a Recorder's
// best has actually been set at least once.
type Solution []Operation

const inf = math.MaxInt32

// Configure bundles the search-wide constants every Recorder's
// shouldUpdate/isWorseThanBest decision depends on, rather than each
// Candidate carrying its own copy.
type Configure struct {
	LastHoldPriority byte
	LeastLineClears  bool
}

// ExtractLastHoldPriority returns bit (hold, or 7 for Empty) of priority.
func ExtractLastHoldPriority(priority byte, hold piece.Type) int {
	slide := int(hold)
	if hold == piece.Empty {
		slide = 7
	}
	return int((priority >> uint(slide)) & 1)
}

// CompareToLastHoldPriority reports whether newHold's priority bit outranks
// (1), ties (0), or loses to (-1) bestBit.
func CompareToLastHoldPriority(priority byte, bestBit int, newHold piece.Type) int {
	newBit := ExtractLastHoldPriority(priority, newHold)
	if newBit != bestBit {
		if newBit > bestBit {
			return 1
		}
		return -1
	}
	return 0
}

// Recorder is the interface every candidate family's best-tracker
// satisfies: Clear resets to the "nothing found yet" sentinel, Update
// commits a new best either from a live Candidate or a previously
// recorded Record (used when merging worker-local bests), ShouldUpdate
// decides whether a freshly reached Candidate beats the current best, and
// IsWorseThanBest lets the search kernel prune a branch early once it
// provably cannot beat the best already on record.
type Recorder[C any, R any] interface {
	Clear()
	Update(cfg Configure, pieces []piece.Type, current C, solution Solution)
	UpdateFrom(r R)
	ShouldUpdate(cfg Configure, pieces []piece.Type, newCandidate C) bool
	IsWorseThanBest(leastLineClears bool, current C) bool
	Best() R
}

func holdOf(pieces []piece.Type, holdIndex int) piece.Type {
	if holdIndex < 0 || holdIndex >= len(pieces) {
		return piece.Empty
	}
	return pieces[holdIndex]
}
