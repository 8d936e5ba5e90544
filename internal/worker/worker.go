package worker

import (
	"context"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func(ctx context.Context) error

// Pool defines a simple worker pool. The first failing task cancels the
// context handed to the remaining tasks; Stop reports that error.
type Pool interface {
	Submit(Task)
	Stop() error
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(ctx context.Context, n int) Pool {
	if n <= 0 {
		n = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	p := &pool{jobs: make(chan Task), ctx: ctx, cancel: cancel}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

type pool struct {
	jobs   chan Task
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	once sync.Once
	err  error
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	// 已取消時直接略過剩餘工作
	if p.ctx.Err() != nil {
		p.fail(p.ctx.Err())
		return
	}
	if err := job(p.ctx); err != nil {
		p.fail(err)
	}
}

func (p *pool) fail(err error) {
	p.once.Do(func() {
		p.err = err
		p.cancel()
	})
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Stop() error {
	close(p.jobs)
	p.wg.Wait()
	p.cancel()
	return p.err
}
