// Package twoline recognizes residual queues that admit a two-line
// perfect clear over the standard 10-wide field — a 2-row PC consumes
// exactly 20 cells, i.e. 5 tetrominoes, so only a handful of piece-type
// multisets can ever fill both rows flush. This mirrors the way the
// teacher's preendgame/combos.go enumerates which tile-in-bag
// combinations are even worth trying before paying for a full solve.
package twoline

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/tetris-pc/pcsolve/piece"
)

// openers is the known set of 5-piece type multisets (sorted by Type
// value) that admit a two-line perfect clear, independent of bag order.
// Encoded as sorted type-index strings for cheap map lookup.
var openers = buildOpeners([][5]piece.Type{
	{piece.T, piece.I, piece.L, piece.J, piece.O},
	{piece.T, piece.I, piece.L, piece.J, piece.S},
	{piece.T, piece.I, piece.L, piece.J, piece.Z},
	{piece.T, piece.I, piece.L, piece.S, piece.Z},
	{piece.T, piece.I, piece.J, piece.S, piece.Z},
	{piece.L, piece.J, piece.S, piece.Z, piece.O},
	{piece.T, piece.L, piece.J, piece.S, piece.Z},
})

func key(ts [5]piece.Type) string {
	sorted := ts
	sort.Slice(sorted[:], func(i, j int) bool { return sorted[i] < sorted[j] })
	buf := make([]byte, 5)
	for i, t := range sorted {
		buf[i] = byte('0' + t)
	}
	return string(buf)
}

func buildOpeners(sets [][5]piece.Type) map[string]bool {
	m := make(map[string]bool, len(sets))
	for _, s := range sets {
		m[key(s)] = true
	}
	return m
}

// Admits reports whether the first 5 of the given piece types form a known
// two-line PC opener.
func Admits(types []piece.Type) bool {
	if len(types) < 5 {
		return false
	}
	var window [5]piece.Type
	copy(window[:], types[:5])
	return openers[key(window)]
}

// LastHoldPriority computes the hold-priority dominance byte described by
// the candidate/record lattice: bit t set means "holding a piece of type t
// at this depth still leaves some admissible two-line continuation," bit 7
// means "holding nothing (keeping the field empty of a held piece) still
// admits one." It substitutes the held piece into each of the 5 window
// slots in turn, walking every combination via combin.Combinations the way
// the teacher walks tile-in-bag combinations in preendgame/combos.go.
func LastHoldPriority(queue []piece.Type, hold piece.Type, hasHold bool) byte {
	if len(queue) < 4 {
		return 0
	}
	var priority byte

	candidateHolds := make([]piece.Type, 0, 8)
	if hasHold {
		candidateHolds = append(candidateHolds, hold)
	} else {
		for t := piece.T; t < 7; t++ {
			candidateHolds = append(candidateHolds, t)
		}
	}

	window := make([]piece.Type, 0, 5)
	window = append(window, queue[:min(4, len(queue))]...)

	for _, h := range candidateHolds {
		if admitsWithHeld(window, h) {
			priority |= 1 << uint(h)
		}
	}
	// Bit 7: never holding anything, using only the first 5 queue pieces.
	if len(queue) >= 5 && Admits(queue) {
		priority |= 1 << 7
	}
	return priority
}

// admitsWithHeld tries inserting h at every position within the 4-piece
// window (using combin.Combinations to choose where) and reports whether
// any resulting 5-piece arrangement is a known opener.
func admitsWithHeld(window []piece.Type, h piece.Type) bool {
	n := len(window) + 1
	positions := combin.Combinations(n, 1)
	for _, pos := range positions {
		candidate := make([]piece.Type, 0, 5)
		inserted := false
		slot := pos[0]
		for i := 0; i <= len(window); i++ {
			if i == slot {
				candidate = append(candidate, h)
				inserted = true
			}
			if i < len(window) {
				candidate = append(candidate, window[i])
			}
		}
		if !inserted {
			candidate = append(candidate, h)
		}
		if len(candidate) == 5 {
			var arr [5]piece.Type
			copy(arr[:], candidate)
			if openers[key(arr)] {
				return true
			}
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
