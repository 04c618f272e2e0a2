package packed

import (
	"runtime"
	"sync"
)

// Executor runs the parts of one generation and returns once every part has
// finished. Implementations must call fn exactly once for each part in
// [0, parts).
type Executor interface {
	Workers() int
	Run(parts int, fn func(part int))
	Close()
}

// DefaultWorkers returns the host parallelism, or 2 when it cannot be
// determined.
func DefaultWorkers() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 2
}

// NewExecutor returns a sequential executor for workers <= 1 and a fixed
// pool otherwise.
func NewExecutor(workers int) Executor {
	if workers <= 1 {
		return Sequential{}
	}
	return newPool(workers)
}

// Sequential runs every part on the calling goroutine.
type Sequential struct{}

// Workers always reports one.
func (Sequential) Workers() int { return 1 }

// Run calls fn for each part in order.
func (Sequential) Run(parts int, fn func(part int)) {
	for p := 0; p < parts; p++ {
		fn(p)
	}
}

// Close is a no-op.
func (Sequential) Close() {}

type job struct {
	fn   func(part int)
	part int
}

// pool is a fixed set of goroutines started once and fed through a channel.
type pool struct {
	workers int
	jobs    chan job
	wg      sync.WaitGroup
	once    sync.Once
}

func newPool(workers int) *pool {
	p := &pool{workers: workers, jobs: make(chan job, workers)}
	for i := 0; i < workers; i++ {
		go p.loop()
	}
	return p
}

func (p *pool) loop() {
	for j := range p.jobs {
		j.fn(j.part)
		p.wg.Done()
	}
}

func (p *pool) Workers() int { return p.workers }

// Run must not be called concurrently or after Close.
func (p *pool) Run(parts int, fn func(part int)) {
	p.wg.Add(parts)
	for i := 0; i < parts; i++ {
		p.jobs <- job{fn: fn, part: i}
	}
	p.wg.Wait()
}

func (p *pool) Close() {
	p.once.Do(func() { close(p.jobs) })
}
