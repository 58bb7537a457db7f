package fastmat

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialDistributorPreservesOrder(t *testing.T) {
	var order []int
	tasks := make([]Task, 5)
	for i := 0; i < 5; i++ {
		i := i
		tasks[i] = func() { order = append(order, i) }
	}
	SequentialDistributor{}.Run(1, tasks)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestParallelDistributorRunsAllTasks(t *testing.T) {
	var count int64
	tasks := make([]Task, 64)
	for i := range tasks {
		tasks[i] = func() { atomic.AddInt64(&count, 1) }
	}
	NewParallelDistributor(1).Run(1024, tasks)
	assert.Equal(t, int64(64), count)
}

func TestParallelDistributorFallsBackBelowCutoff(t *testing.T) {
	var order []int
	tasks := make([]Task, 4)
	for i := 0; i < 4; i++ {
		i := i
		tasks[i] = func() { order = append(order, i) }
	}
	NewParallelDistributor(256).Run(16, tasks)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}
