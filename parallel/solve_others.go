package parallel

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tetris-pc/pcsolve/record"
	"github.com/tetris-pc/pcsolve/search"
)

// SolveTSpin fans base out and returns the best TSpinRecord across every
// premove branch.
func SolveTSpin(ctx context.Context, p *Pool, cfg record.Configure, base search.Params) (record.TSpinRecord, error) {
	subs := p.premove(base)
	var mu sync.Mutex
	global := &record.TSpinRecorder{}
	global.Clear()

	g, gctx := errgroup.WithContext(ctx)
	for _, sub := range subs {
		sub := sub
		g.Go(func() error {
			if err := p.acquire(gctx); err != nil {
				return err
			}
			defer p.release()

			sub.Aborted = func() bool { return gctx.Err() != nil }
			result := search.RunTSpin(cfg, p.factory, p.gen, sub)
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

// SolveAllSpins fans base out and returns the best AllSpinsRecord across
// every premove branch.
func SolveAllSpins(ctx context.Context, p *Pool, cfg record.Configure, base search.Params) (record.AllSpinsRecord, error) {
	subs := p.premove(base)
	var mu sync.Mutex
	global := &record.AllSpinsRecorder{}
	global.Clear()

	g, gctx := errgroup.WithContext(ctx)
	for _, sub := range subs {
		sub := sub
		g.Go(func() error {
			if err := p.acquire(gctx); err != nil {
				return err
			}
			defer p.release()

			sub.Aborted = func() bool { return gctx.Err() != nil }
			result := search.RunAllSpins(cfg, p.factory, p.gen, sub)
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

// SolveTETRIOS2 fans base out and returns the best TETRIOS2Record across
// every premove branch.
func SolveTETRIOS2(ctx context.Context, p *Pool, cfg record.Configure, base search.Params) (record.TETRIOS2Record, error) {
	subs := p.premove(base)
	var mu sync.Mutex
	global := &record.TETRIOS2Recorder{}
	global.Clear()

	g, gctx := errgroup.WithContext(ctx)
	for _, sub := range subs {
		sub := sub
		g.Go(func() error {
			if err := p.acquire(gctx); err != nil {
				return err
			}
			defer p.release()

			sub.Aborted = func() bool { return gctx.Err() != nil }
			result := search.RunTETRIOS2(cfg, p.factory, p.gen, sub)
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
