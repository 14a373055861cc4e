package common

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestParallelExecutorRunsAllTasks(t *testing.T) {
	executor := NewParallelExecutor(3)

	var executed int32
	for i := 0; i < 20; i++ {
		executor.Execute(func() {
			atomic.AddInt32(&executed, 1)
		})
	}
	executor.Wait()

	if executed != 20 {
		t.Errorf("実行されたタスク数 = %d, want 20", executed)
	}
}

func TestParallelExecutorLimitsConcurrency(t *testing.T) {
	const maxWorkers = 3
	executor := NewParallelExecutor(maxWorkers)

	var current, peak int32
	for i := 0; i < 15; i++ {
		executor.Execute(func() {
			n := atomic.AddInt32(&current, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&current, -1)
		})
	}
	executor.Wait()

	if peak > maxWorkers {
		t.Errorf("同時実行数のピーク = %d, want <= %d", peak, maxWorkers)
	}
}

func TestClampWorkers(t *testing.T) {
	if got := ClampWorkers(10, 3); got != 3 {
		t.Errorf("ClampWorkers(10, 3) = %d, want 3", got)
	}
	if got := ClampWorkers(10, 100); got != 10 {
		t.Errorf("ClampWorkers(10, 100) = %d, want 10", got)
	}
}
