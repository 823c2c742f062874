package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// Submit blocks until a worker picks the task up; Stop drains the
// queue before returning.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{tasks: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

type pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

func (p *pool) work() {
	defer p.wg.Done()
	for task := range p.tasks {
		if task != nil {
			task()
		}
	}
}

func (p *pool) Submit(t Task) {
	p.tasks <- t
}

func (p *pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}
