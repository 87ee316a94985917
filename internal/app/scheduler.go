package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"fhcleanup/internal/domain"
	appErrors "fhcleanup/internal/errors"
)

// Task is one unit of work, typically a single directory.
type Task func(ctx context.Context) (domain.Summary, error)

// Scheduler runs tasks on a bounded goroutine pool. Tasks may submit further
// tasks; Join returns once every task, including transitively submitted ones,
// has finished.
//
// Submissions go to an unbounded queue drained by a dispatcher goroutine, so
// a running task never blocks on a full pool while holding a worker.
type Scheduler struct {
	pool   *ants.Pool
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []Task
	closed bool
	total  domain.Summary
	err    error

	pending   sync.WaitGroup
	submitted atomic.Int64
	completed atomic.Int64
	done      chan struct{}

	OnProgress ProgressFunc
}

func NewScheduler(ctx context.Context, workers int) (*Scheduler, error) {
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, appErrors.Wrap(appErrors.Internal, "pool", "", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Scheduler{
		pool:   pool,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	go s.dispatch()
	return s, nil
}

// Submit queues task. It never blocks on pool capacity.
func (s *Scheduler) Submit(task Task) {
	s.pending.Add(1)
	s.submitted.Add(1)

	s.mu.Lock()
	s.queue = append(s.queue, task)
	s.mu.Unlock()
	s.cond.Signal()
}

func (s *Scheduler) dispatch() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		task := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]
		s.mu.Unlock()

		if err := s.pool.Submit(func() { s.run(task) }); err != nil {
			s.finish(domain.Summary{}, appErrors.Wrap(appErrors.Internal, "submit", "", err))
		}
	}
}

func (s *Scheduler) run(task Task) {
	var (
		summary domain.Summary
		err     error
	)
	defer func() {
		if r := recover(); r != nil {
			err = appErrors.Wrap(appErrors.Internal, "worker", "", fmt.Errorf("panic: %v", r))
		}
		s.finish(summary, err)
	}()

	// After a fatal error queued units drain without doing any work.
	if s.ctx.Err() != nil {
		return
	}
	summary, err = task(s.ctx)
}

func (s *Scheduler) finish(summary domain.Summary, err error) {
	s.mu.Lock()
	s.total = s.total.Add(summary)
	if err != nil && s.err == nil {
		s.err = err
		s.cancel()
	}
	s.mu.Unlock()

	completed := s.completed.Add(1)
	if s.OnProgress != nil {
		s.OnProgress(int(completed), int(s.submitted.Load()))
	}
	s.pending.Done()
}

// Join waits for all outstanding tasks, releases the pool and returns the
// aggregated summary together with the first error any task reported.
func (s *Scheduler) Join() (domain.Summary, error) {
	s.pending.Wait()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cond.Broadcast()
	<-s.done

	s.pool.Release()
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total, s.err
}
