// Package search implements the depth-first perfect-clear kernel: node
// dispatch between the current piece and the held piece, per-placement
// expansion through movegen, the wall-parity validate() filter, and leaf
// detection once the field is empty. Structured the way the teacher's
// endgame/alphabeta.go recursion is structured — clone state, play a move,
// recurse, account for the result, backtrack — rather than building an
// explicit game tree in memory.
package search

import (
	"github.com/tetris-pc/pcsolve/field"
	"github.com/tetris-pc/pcsolve/movegen"
	"github.com/tetris-pc/pcsolve/piece"
	"github.com/tetris-pc/pcsolve/record"
	"github.com/tetris-pc/pcsolve/spin"
)

// Mode selects which attack bookkeeping a walk does; the kernel itself
// stays identical across modes, mirroring the way sfinder's Mover
// template specializes only the per-candidate field computation, not the
// tree-walk shape.
type Mode int

const (
	ModeFast Mode = iota
	ModeTSpin
	ModeAllSpins
	ModeTETRIOS2
)

// Aborted is set by the caller (typically via the parallel package's
// context cancellation) to stop the walk early; checked once per node so
// an abort is observed promptly without needing per-placement overhead.
type Aborted func() bool

// state is the single mutable accumulator threaded through the recursion.
// It is copied by value at every recursive call — the same
// field-cloning discipline the Field type itself follows — so backtracking
// is simply "let the modified copy go out of scope."
type state struct {
	field field.Field

	leftLine     int
	depth        int
	currentIndex int
	holdIndex    int // -1 when nothing is held

	softdropCount  int
	holdCount      int
	lineClearCount int
	currentCombo   int
	maxCombo       int
	frames         int

	b2b        bool
	spinAttack int
	leftNumOfT int

	// b2bCount, isClean and isFlatI are TETRIOS2-only: a monotonic
	// back-to-back streak counter (rather than the TSpin/AllSpins boolean)
	// and the safe-ending classification of the last line clear made.
	b2bCount int
	isClean  bool
	isFlatI  bool

	holdDisabled bool

	solution []record.Operation
}

func (s state) currentPiece(pieces []piece.Type) (piece.Type, bool) {
	if s.currentIndex >= len(pieces) {
		return 0, false
	}
	return pieces[s.currentIndex], true
}

func (s state) holdPiece(pieces []piece.Type) (piece.Type, bool) {
	if s.holdIndex < 0 || s.holdIndex >= len(pieces) {
		return 0, false
	}
	return pieces[s.holdIndex], true
}

// walker carries everything constant across one Run call: the factory,
// generator, search bound and mode-specific hooks.
type walker struct {
	factory  *piece.Factory
	gen      movegen.Generator
	mode     Mode
	maxLine  int
	maxDepth int
	aborted  Aborted

	onLeaf func(state)
}

// run explores both the "play current piece" and "play held piece"
// branches from s, plus (when the hold slot is empty) the one move that
// banks the current piece into hold without placing anything, and
// recurses on every legal placement of whichever piece was chosen.
func (w *walker) run(pieces []piece.Type, s state) {
	if w.aborted != nil && w.aborted() {
		return
	}
	if s.leftLine <= 0 {
		w.onLeaf(s)
		return
	}

	cur, curOk := s.currentPiece(pieces)
	held, heldOk := s.holdPiece(pieces)
	if s.holdDisabled {
		heldOk = false
	}

	if curOk {
		w.expand(pieces, s, cur, false)
	}
	if heldOk {
		w.expand(pieces, s, held, true)
	} else if curOk && !s.holdDisabled {
		// Nothing held yet: bank the current piece and promote the next
		// queued piece into play, the same first-hold transition
		// perfect_clear.hpp's Mover performs once at the root.
		next := s
		next.holdIndex = s.currentIndex
		next.currentIndex = s.currentIndex + 1
		next.holdCount++
		w.run(pieces, next)
	}
}

// expand tries every legal placement of piece t (drawn from either the
// current-piece or held-piece branch) and recurses on each.
func (w *walker) expand(pieces []piece.Type, s state, t piece.Type, usedHold bool) {
	moves := w.gen.Search(s.field, w.factory, t, w.maxLine)
	for _, m := range moves {
		next := s
		if !w.place(pieces, &next, t, m, usedHold) {
			continue
		}
		if !validate(next.field, w.maxLine) {
			continue
		}
		w.run(pieces, next)
	}
}

// place commits move m to the state in place: merges the piece, clears
// filled lines, swaps the hold slot if the held piece was the one played,
// and updates every bookkeeping counter including, for spin-aware modes,
// the attack total. It reports false when the mode's own accounting
// rejects the move outright (TETRIOS2 only), in which case the caller must
// not recurse into the resulting state.
func (w *walker) place(pieces []piece.Type, s *state, t piece.Type, m movegen.Move, usedHold bool) bool {
	before := s.field
	leftLineBefore := s.leftLine
	blocks := w.factory.GetBlocks(t, m.Rotate)
	// Only the piece's own four cells land; the hard-drop collider spans
	// every row up to the ceiling. Fields pack six rows per word.
	s.field.Put(m.Y/6, blocks.Mask(m.X, m.Y%6))
	cleared := s.field.ClearLines()

	if usedHold {
		// Playing the held piece swaps it with whatever is currently in
		// hand — the hand piece takes over the hold slot.
		if _, curOk := s.currentPiece(pieces); curOk {
			s.holdIndex = s.currentIndex
			s.currentIndex++
		} else {
			s.holdIndex = -1
		}
	} else {
		s.currentIndex++
	}

	s.leftLine -= cleared
	s.lineClearCount += cleared
	s.depth++
	s.frames++
	if cleared > 0 {
		s.currentCombo++
		if s.currentCombo > s.maxCombo {
			s.maxCombo = s.currentCombo
		}
	} else {
		s.currentCombo = 0
	}

	if t == piece.T {
		s.leftNumOfT--
	}

	valid := true
	switch w.mode {
	case ModeTSpin:
		w.placeTSpin(s, before, m, cleared)
	case ModeAllSpins:
		w.placeAllSpins(s, before, m, cleared)
	case ModeTETRIOS2:
		valid = w.placeTETRIOS2(s, before, m, cleared, leftLineBefore)
	}
	if !valid {
		return false
	}

	s.solution = append(append([]record.Operation(nil), s.solution...), record.Operation{
		Type: t, Rotate: m.Rotate, X: m.X, Y: m.Y,
	})
	return true
}

// isLastDepth reports whether no further piece remains to place after the
// one just committed — neither the queue nor the hold slot holds anything
// s.maxDepth hasn't already consumed. TSpin and AllSpins credit no attack
// for the placement made at this point, the same way sfinder's Mover
// treats the deepest ply specially since no future piece can still
// complete an in-progress setup.
func isLastDepth(s *state, maxDepth int) bool {
	if maxDepth <= 0 {
		return false
	}
	curOk := s.currentIndex < maxDepth
	heldOk := !s.holdDisabled && s.holdIndex >= 0 && s.holdIndex < maxDepth
	return !curOk && !heldOk
}

// placeTSpin tracks back-to-back state as usual but zeroes the attack
// credit for this placement on the last depth, since a T-spin's value is
// only trustworthy once there's a further piece to confirm the setup held.
func (w *walker) placeTSpin(s *state, before field.Field, m movegen.Move, cleared int) {
	kind := spin.Classify(spin.TSpinOnly, before, w.factory, m)
	if kind != spin.None || cleared == 4 {
		s.b2b = true
	} else if cleared > 0 {
		s.b2b = false
	}
	if isLastDepth(s, w.maxDepth) {
		return
	}
	s.spinAttack += spin.Attack(spin.TSpinOnly, before, w.factory, m, cleared, s.b2b)
}

// placeAllSpins mirrors placeTSpin with the all-spin classifier: back-to-back
// state is tracked as usual and the last depth's attack credit is zeroed.
func (w *walker) placeAllSpins(s *state, before field.Field, m movegen.Move, cleared int) {
	kind := spin.Classify(spin.AllSpins, before, w.factory, m)
	if kind != spin.None || cleared == 4 {
		s.b2b = true
	} else if cleared > 0 {
		s.b2b = false
	}
	if isLastDepth(s, w.maxDepth) {
		return
	}
	s.spinAttack += spin.Attack(spin.AllSpins, before, w.factory, m, cleared, s.b2b)
}

// nonTSpinAttackTable re-quantizes any clear that isn't a genuine T-spin —
// a T-spin mini, or an all-spin corner-fill from a non-T piece — down to
// the value a flat, non-spin clear of that size would earn on its own.
var nonTSpinAttackTable = [5]int{0, 0, 1, 2, 4}

// placeTETRIOS2 gives the TETR.IO Season 2 composite score its own
// move-accounting path: T-spins are detected and scored first, any other
// spin falls back to the flat re-quantization table, a tetris always
// overrides to 4 (+1 under back-to-back), sloppy non-spin clears that
// don't finish the board are rejected outright, and a two-line perfect
// clear may never take a double as its opening clear. b2b here is a
// monotonic streak counter rather than TSpin/AllSpins's boolean — it
// increments on every clear, spin or not, and never resets.
func (w *walker) placeTETRIOS2(s *state, before field.Field, m movegen.Move, cleared int, leftLineBefore int) bool {
	if cleared == 0 {
		s.isClean, s.isFlatI = false, false
		return true
	}

	if leftLineBefore == 2 && cleared == 2 && s.lineClearCount == cleared {
		return false
	}

	tKind := spin.Classify(spin.TSpinOnly, before, w.factory, m)
	isTSpin := tKind == spin.Full
	var attack int
	var isSpin bool
	if isTSpin {
		attack = spin.Attack(spin.TSpinOnly, before, w.factory, m, cleared, s.b2bCount > 0)
		isSpin = true
	} else {
		isSpin = spin.Classify(spin.AllSpins, before, w.factory, m) != spin.None
		attack = nonTSpinAttackTable[cleared]
		if isSpin && s.b2bCount > 0 && attack > 0 {
			attack++
		}
	}

	if cleared == 4 {
		attack = 4
		if s.b2bCount > 0 {
			attack++
		}
	}

	isFinal := cleared == leftLineBefore
	if !isSpin && !isFinal {
		return false
	}

	if cleared > 0 {
		s.b2bCount++
	}
	s.spinAttack += attack

	if isFinal {
		s.isClean = isSpin && attack > 0
		s.isFlatI = !isSpin && cleared == 1
	}
	return true
}

// validate is the wall-parity filter: the field is first partitioned into
// maximal column ranges separated by a full wall (no row below maxLine
// has both columns of the pair vacant), then every partition's
// occupied-cell count must be
// a multiple of 4, since each remaining piece contributes exactly 4
// cells and a clean clear can never leave a sub-multiple-of-4 remainder
// isolated behind a wall it can never cross.
func validate(f field.Field, maxLine int) bool {
	start := 0
	for x := 0; x < field.Width; x++ {
		isBoundary := x == field.Width-1 || f.IsWallBetween(x, maxLine-1)
		if isBoundary {
			sum := 0
			for c := start; c <= x; c++ {
				sum += f.BlocksOnColumn(c, maxLine-1)
			}
			if sum%4 != 0 {
				return false
			}
			start = x + 1
		}
	}
	return true
}
