package parallel

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestPool(t *testing.T, workers int) *WorkerPool {
	t.Helper()
	pool, err := NewWorkerPool(workers)
	if err != nil {
		t.Fatalf("NewWorkerPool(%d) failed: %v", workers, err)
	}
	return pool
}

// TestWorkerPoolBasicOperations tests basic worker pool functionality
func TestWorkerPoolBasicOperations(t *testing.T) {
	pool := newTestPool(t, 4)

	executed := false
	if !pool.Submit(func() error {
		executed = true
		return nil
	}) {
		t.Error("Task submission failed")
	}

	if err := pool.Wait(); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if !executed {
		t.Error("Task was not executed")
	}
}

// TestWorkerPoolDefaultWorkers tests that a non-positive count uses GOMAXPROCS
func TestWorkerPoolDefaultWorkers(t *testing.T) {
	pool := newTestPool(t, 0)
	defer pool.Close()

	if pool.Workers() < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.Workers())
	}
}

// TestWorkerPoolTooManyWorkers tests the overflow guard
func TestWorkerPoolTooManyWorkers(t *testing.T) {
	_, err := NewWorkerPool(MaxWorkers + 1)
	if !errors.Is(err, ErrTooManyWorkers) {
		t.Errorf("Expected ErrTooManyWorkers, got %v", err)
	}
}

// TestWorkerPoolConcurrentSubmissions tests concurrent task submissions
func TestWorkerPoolConcurrentSubmissions(t *testing.T) {
	pool := newTestPool(t, 10)

	numTasks := 100
	var counter int64

	var wg sync.WaitGroup
	for i := 0; i < numTasks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Submit(func() error {
				atomic.AddInt64(&counter, 1)
				return nil
			})
		}()
	}

	wg.Wait()
	if err := pool.Wait(); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}

	if counter != int64(numTasks) {
		t.Errorf("Expected counter %d, got %d", numTasks, counter)
	}
}

// TestWorkerPoolSubmitAfterClose tests that submissions after close return false
func TestWorkerPoolSubmitAfterClose(t *testing.T) {
	pool := newTestPool(t, 4)

	if !pool.Submit(func() error {
		time.Sleep(10 * time.Millisecond)
		return nil
	}) {
		t.Error("Task submission before close should succeed")
	}

	pool.Close()

	if pool.Submit(func() error {
		t.Error("This task should never execute")
		return nil
	}) {
		t.Error("Task submission after close should return false")
	}
}

// TestWorkerPoolConcurrentClose tests concurrent close calls
func TestWorkerPoolConcurrentClose(t *testing.T) {
	pool := newTestPool(t, 4)

	for i := 0; i < 20; i++ {
		pool.Submit(func() error {
			time.Sleep(time.Millisecond)
			return nil
		})
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Close()
		}()
	}
	wg.Wait()
}

// TestWorkerPoolCollectsErrors tests that task errors are reported by Wait
func TestWorkerPoolCollectsErrors(t *testing.T) {
	pool := newTestPool(t, 3)
	errBoom := errors.New("boom")

	for i := 0; i < 6; i++ {
		fail := i%2 == 0
		pool.Submit(func() error {
			if fail {
				return errBoom
			}
			return nil
		})
	}

	err := pool.Wait()
	if !errors.Is(err, errBoom) {
		t.Fatalf("Expected joined error to contain errBoom, got %v", err)
	}
}

// TestWorkerPoolWithPanic tests that panics in tasks don't crash the pool
func TestWorkerPoolWithPanic(t *testing.T) {
	pool := newTestPool(t, 4)

	var counter int64
	for i := 0; i < 5; i++ {
		pool.Submit(func() error {
			panic("intentional panic")
		})
	}
	for i := 0; i < 5; i++ {
		pool.Submit(func() error {
			atomic.AddInt64(&counter, 1)
			return nil
		})
	}

	err := pool.Wait()
	if !errors.Is(err, ErrTaskPanic) {
		t.Errorf("Expected ErrTaskPanic, got %v", err)
	}
	if counter != 5 {
		t.Errorf("Expected 5 successful tasks, got %d", counter)
	}
}
