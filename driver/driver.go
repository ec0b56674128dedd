// Package driver is the engine's single entry point: it parses the §6
// external-interface fields, runs the height-stepping outer loop around
// the search kernel, and reports the first accepted solution. Grounded on
// the teacher's endgame/alphabeta/iterative_deepening.go, which wraps a
// single-shot solve in an outer loop stepping a bound until a result is
// accepted — there the bound is ply depth, here it is the target clear
// height.
package driver

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tetris-pc/pcsolve/field"
	"github.com/tetris-pc/pcsolve/logging"
	"github.com/tetris-pc/pcsolve/movegen"
	"github.com/tetris-pc/pcsolve/piece"
	"github.com/tetris-pc/pcsolve/record"
	"github.com/tetris-pc/pcsolve/search"
	"github.com/tetris-pc/pcsolve/twoline"
	"github.com/tetris-pc/pcsolve/zobrist"
)

var fingerprintTable = zobrist.NewTable()

// SearchType selects which candidate/record family the kernel runs.
type SearchType int

const (
	Fast SearchType = iota
	TSpin
	AllSpins
	TETRIOS2
)

// Request mirrors the §6 external-interface fields exactly.
type Request struct {
	FieldRows  []string
	Queue      string
	Hold       byte // 'E' = empty, 'X' = hold disabled, else a piece letter
	Height     int
	MaxHeight  int
	Swap       bool
	SearchType SearchType
	Combo      int
	B2B        bool
	TwoLine    bool
	System     piece.RotationSystem
	Aborted    search.Aborted
}

// Result is what the driver reports back across the §6 boundary.
type Result struct {
	Solved   bool
	Solution record.Solution
}

// Solve runs the full height-stepping search described by req.
func Solve(req Request) (Result, error) {
	f := field.FromRows(req.FieldRows)
	minosPlaced := f.NumBlocks()

	logger, searchID := logging.WithSearchID()
	logger.Debug().
		Uint64("position-hash", fingerprintTable.Fingerprint(f, req.Queue, req.Hold)).
		Msg("solve-start")
	defer func() {
		log.Debug().Str("search-id", searchID).Msg("solve-done")
	}()

	if minosPlaced%2 != 0 {
		// An odd block count can never reach a flush multiple-of-10 fill;
		// no height will ever admit a perfect clear.
		return Result{Solved: false}, nil
	}

	maxHeight := req.MaxHeight
	if maxHeight < 0 {
		maxHeight = 0
	}
	if maxHeight > 20 {
		maxHeight = 20
	}

	holdAllowed := req.Hold != 'X'
	holdEmpty := req.Hold == 'E' || !holdAllowed

	var pieces []piece.Type
	holdIndex := -1
	if !holdEmpty {
		t, ok := piece.ByteToType(req.Hold)
		if !ok {
			return Result{}, fmt.Errorf("driver: invalid hold piece %q", req.Hold)
		}
		pieces = append(pieces, t)
		holdIndex = 0
	}

	maxPieces := (maxHeight*10-minosPlaced)/4 + 1
	for i := 0; i < maxPieces && i < len(req.Queue); i++ {
		t, ok := piece.ByteToType(req.Queue[i])
		if !ok {
			return Result{}, fmt.Errorf("driver: invalid queue piece %q at %d", req.Queue[i], i)
		}
		pieces = append(pieces, t)
	}

	height := req.Height
	switch minosPlaced % 4 {
	case 2:
		if height%2 == 0 {
			height++
		}
	default:
		if height%2 == 1 {
			height++
		}
	}
	if height == 0 {
		height = 2
	}

	factory := piece.NewFactory(req.System)
	gen := movegen.BitboardGenerator{}

	for ; height <= maxHeight; height += 2 {
		if (height*10-minosPlaced)/4+1 > len(pieces) {
			break
		}

		var priority byte
		if req.TwoLine {
			queueOnly := pieces
			if !holdEmpty {
				queueOnly = pieces[1:]
			}
			hold := piece.Empty
			if !holdEmpty {
				hold = pieces[0]
			}
			priority = twoline.LastHoldPriority(queueOnly, hold, !holdEmpty)
		}

		cfg := record.Configure{LastHoldPriority: priority, LeastLineClears: req.Combo >= 0 && !req.Swap}

		params := search.Params{
			Field: f, Pieces: pieces, HoldIndex: holdIndex, HoldCount: 0,
			HoldDisabled: !holdAllowed, LeftLine: height, MaxLine: height,
			B2B: req.B2B, Aborted: req.Aborted,
		}

		sol, ok := runFamily(req.SearchType, cfg, factory, gen, params)
		if ok {
			return Result{Solved: true, Solution: sol}, nil
		}
	}

	return Result{Solved: false}, nil
}

func runFamily(st SearchType, cfg record.Configure, factory *piece.Factory, gen movegen.Generator, p search.Params) (record.Solution, bool) {
	switch st {
	case TSpin:
		r := search.RunTSpin(cfg, factory, gen, p)
		return r.Solution, len(r.Solution) > 0
	case AllSpins:
		r := search.RunAllSpins(cfg, factory, gen, p)
		return r.Solution, len(r.Solution) > 0
	case TETRIOS2:
		r := search.RunTETRIOS2(cfg, factory, gen, p)
		return r.Solution, len(r.Solution) > 0
	default:
		r := search.RunFast(cfg, factory, gen, p)
		return r.Solution, len(r.Solution) > 0
	}
}
