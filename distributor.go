package fastmat

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of recursive work handed to a Distributor: a closure
// over a disjoint output sub-buffer and its input sub-buffers (spec.md's
// Tasklet, §3). Tasks within a single call to Run always write disjoint
// output regions, which is what makes running them concurrently safe
// (spec.md §5).
type Task func()

// Distributor runs a short list of Tasks, either in order on the calling
// goroutine or spread across a shared worker pool. It is stateless; any
// pool it uses is a lazily-initialised, process-wide resource (spec.md
// §4.F, §5).
type Distributor interface {
	Run(size int, tasks []Task)
}

// SequentialDistributor executes tasks in list order on the calling
// goroutine. It is always available and never allocates.
type SequentialDistributor struct{}

// Run implements Distributor.
func (SequentialDistributor) Run(_ int, tasks []Task) {
	for _, t := range tasks {
		t()
	}
}

// ParallelDistributor dispatches tasks to a shared, process-wide
// work-stealing pool once the current recursion size reaches Cutoff, and
// falls back to SequentialDistributor below it — parallel overhead
// dominates below a tile size that depends on the hardware (spec.md §4.F
// names F and 256 as typical useful cutoffs).
type ParallelDistributor struct {
	Cutoff int
}

// NewParallelDistributor returns a ParallelDistributor with the given
// cutoff.
func NewParallelDistributor(cutoff int) ParallelDistributor {
	return ParallelDistributor{Cutoff: cutoff}
}

var (
	poolOnce sync.Once
	poolSize int
)

// workerPoolSize lazily fixes the process-wide worker pool's width to the
// number of schedulable OS threads, the first time any ParallelDistributor
// actually dispatches. It never shrinks or grows after that, matching
// spec.md §5's "created on first parallel invocation and lives until
// process exit".
func workerPoolSize() int {
	poolOnce.Do(func() {
		poolSize = runtime.GOMAXPROCS(0)
		if poolSize < 1 {
			poolSize = 1
		}
	})
	return poolSize
}

// Run implements Distributor. Tasks are fork-joined: Run does not return
// until every task has completed, so a parent recursion frame never
// consolidates before its children finish (spec.md §5).
func (p ParallelDistributor) Run(size int, tasks []Task) {
	if size < p.Cutoff || len(tasks) <= 1 {
		SequentialDistributor{}.Run(size, tasks)
		return
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workerPoolSize())
	for _, t := range tasks {
		g.Go(func() error {
			t()
			return nil
		})
	}
	_ = g.Wait() // tasks never fail; errgroup here is purely a fork-join primitive.
}
