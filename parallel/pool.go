// Package parallel fans a single perfect-clear search out across a fixed
// worker pool: the very first piece's legal placements (and the
// equivalent hold-swap placements) become independent root subproblems,
// each solved to completion by a worker, with every worker's local best
// merged into one mutex-guarded global best. Grounded directly on the
// teacher's preendgame/peg.go job-channel solver: a buffered job channel,
// golang.org/x/sync/errgroup driving the worker group, and
// runtime.NumCPU()-1 default thread sizing.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"github.com/pbnjay/memory"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/tetris-pc/pcsolve/movegen"
	"github.com/tetris-pc/pcsolve/piece"
	"github.com/tetris-pc/pcsolve/record"
	"github.com/tetris-pc/pcsolve/search"
)

// perWorkerScratchBytes estimates the field-clone recursion overhead one
// worker's DFS stack needs at typical search depths; it bounds thread
// count against total system memory the way the teacher's
// TranspositionTable.Reset sizes its table as a fraction of
// memory.TotalMemory() rather than a fixed constant.
const perWorkerScratchBytes = 64 << 20

// memoryWorkerCeiling returns the most worker slots system memory can
// support, or 0 (no constraint) when total memory can't be determined.
func memoryWorkerCeiling() int {
	total := memory.TotalMemory()
	if total == 0 {
		return 0
	}
	n := int(total / perWorkerScratchBytes)
	if n < 1 {
		n = 1
	}
	return n
}

// Pool runs premove-expanded root subproblems across a resizable set of
// worker slots.
type Pool struct {
	factory *piece.Factory
	gen     movegen.Generator

	mu     sync.RWMutex
	tokens chan struct{}
}

// NewPool builds a pool sized to threads (or runtime.NumCPU()-1, at
// least 1, when threads <= 0), the same default the teacher's
// preendgame solver uses to leave a core free for the OS scheduler.
func NewPool(threads int, factory *piece.Factory, gen movegen.Generator) *Pool {
	if threads <= 0 {
		threads = runtime.NumCPU() - 1
		if threads < 1 {
			threads = 1
		}
	}
	if ceiling := memoryWorkerCeiling(); ceiling > 0 && threads > ceiling {
		threads = ceiling
	}
	p := &Pool{factory: factory, gen: gen}
	p.tokens = make(chan struct{}, threads)
	for i := 0; i < threads; i++ {
		p.tokens <- struct{}{}
	}
	return p
}

// ChangeThreadCount drains every in-flight token before reallocating the
// pool at the new size, so no worker is torn down mid-job.
func (p *Pool) ChangeThreadCount(n int) {
	if n < 1 {
		n = 1
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	old := cap(p.tokens)
	for i := 0; i < old; i++ {
		<-p.tokens
	}
	p.tokens = make(chan struct{}, n)
	for i := 0; i < n; i++ {
		p.tokens <- struct{}{}
	}
}

func (p *Pool) acquire(ctx context.Context) error {
	p.mu.RLock()
	tokens := p.tokens
	p.mu.RUnlock()
	select {
	case <-tokens:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) release() {
	p.mu.RLock()
	tokens := p.tokens
	p.mu.RUnlock()
	select {
	case tokens <- struct{}{}:
	default:
		// pool was resized while this token was checked out; drop it
	}
}

// premove enumerates every root subproblem: one per legal placement of
// the first queued piece, plus one per legal placement of the piece one
// further down the queue with the first piece banked into hold (only
// when hold starts empty and is allowed).
func (p *Pool) premove(base search.Params) []search.Params {
	if len(base.Pieces) == 0 {
		return nil
	}

	var out []search.Params
	appendFor := func(t piece.Type, remaining []piece.Type, holdIdx, holdCount int) {
		for _, m := range p.gen.Search(base.Field, p.factory, t, base.MaxLine) {
			blocks := p.factory.GetBlocks(t, m.Rotate)
			nf := base.Field
			nf.Put(m.Y/6, blocks.Mask(m.X, m.Y%6))
			cleared := nf.ClearLines()

			sub := base
			sub.Field = nf
			sub.Pieces = remaining
			sub.HoldIndex = holdIdx
			sub.HoldCount = holdCount
			sub.LeftLine = base.LeftLine - cleared
			out = append(out, sub)
		}
	}

	first := base.Pieces[0]
	appendFor(first, base.Pieces[1:], base.HoldIndex, base.HoldCount)

	if base.HoldIndex < 0 && !base.HoldDisabled && len(base.Pieces) > 1 {
		second := base.Pieces[1]
		appendFor(second, base.Pieces[2:], 0, base.HoldCount+1)
		// held piece stays index 0 relative to the (dropped) first piece;
		// reconstruct that in the sub-problem's own Pieces slice.
		for i := range out {
			if out[i].HoldCount == base.HoldCount+1 {
				out[i].Pieces = append([]piece.Type{first}, out[i].Pieces...)
				out[i].HoldIndex = -1
			}
		}
	}

	// Shuffle dispatch order so that, under an early Aborted signal, the
	// surviving work sample isn't biased toward one corner of the board -
	// the same reasoning the teacher's negamax solver shuffles its
	// initial move order under before committing to iterative deepening.
	frand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// SolveFast fans base out and returns the best FastRecord across every
// premove branch.
func SolveFast(ctx context.Context, p *Pool, cfg record.Configure, base search.Params) (record.FastRecord, error) {
	subs := p.premove(base)
	var mu sync.Mutex
	global := &record.FastRecorder{}
	global.Clear()

	g, gctx := errgroup.WithContext(ctx)
	for _, sub := range subs {
		sub := sub
		g.Go(func() error {
			if err := p.acquire(gctx); err != nil {
				return err
			}
			defer p.release()

			localAborted := func() bool { return gctx.Err() != nil }
			sub.Aborted = localAborted
			result := search.RunFast(cfg, p.factory, p.gen, sub)

			if len(result.Solution) == 0 {
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			c := result.ToCandidate()
			if global.ShouldUpdate(cfg, base.Pieces, c) {
				global.Update(cfg, base.Pieces, c, result.Solution)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil && err != context.Canceled {
		return global.Best(), err
	}
	return global.Best(), nil
}
