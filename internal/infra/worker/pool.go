// File: internal/infra/worker/pool.go
package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"pokeinfo-bot/internal/infra/metrics"

	"github.com/rs/zerolog"
)

var (
	ErrNilTask     = errors.New("nil task")
	ErrPoolStopped = errors.New("worker pool stopped")
)

// Task is one unit of work. Each incoming update becomes one task.
type Task func(ctx context.Context) error

// Pool runs tasks on a fixed number of goroutines. Submit blocks while all workers
// are busy so updates are never dropped.
type Pool struct {
	wg   sync.WaitGroup
	jobs chan Task
	quit chan struct{}
	stop sync.Once
	n    int
	log  *zerolog.Logger
}

func NewPool(workers int, logger *zerolog.Logger) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Pool{jobs: make(chan Task), quit: make(chan struct{}), n: workers, log: logger}
}

func (p *Pool) Size() int { return p.n }

func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.n; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case <-p.quit:
					return
				case task := <-p.jobs:
					p.run(ctx, id, task)
				}
			}
		}(i)
	}
}

// run executes one task. A panicking task is logged and does not take the worker down.
func (p *Pool) run(ctx context.Context, id int, task Task) {
	defer func() {
		if rec := recover(); rec != nil {
			metrics.IncWorkerTask("panicked")
			p.log.Error().Int("worker", id).Str("panic", fmt.Sprint(rec)).Msg("task panicked")
		}
	}()
	if err := task(ctx); err != nil {
		metrics.IncWorkerTask("failed")
		p.log.Warn().Int("worker", id).Err(err).Msg("task error")
		return
	}
	metrics.IncWorkerTask("completed")
}

// Submit hands task to an idle worker, waiting until one is free, ctx is done, or the
// pool is stopped.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	if task == nil {
		return ErrNilTask
	}
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}
	select {
	case p.jobs <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Stop signals the workers and waits for in-flight tasks to finish. Safe to call twice.
func (p *Pool) Stop() {
	p.stop.Do(func() { close(p.quit) })
	p.wg.Wait()
}
