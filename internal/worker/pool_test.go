package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type testJob struct {
	id      int
	delay   time.Duration
	err     error
	running *int32
	peak    *int32
}

type testResult struct {
	id  int
	err error
}

func (r *testResult) GetError() error { return r.err }

func (j *testJob) Execute(ctx context.Context) Result {
	if j.running != nil {
		now := atomic.AddInt32(j.running, 1)
		for {
			peak := atomic.LoadInt32(j.peak)
			if now <= peak || atomic.CompareAndSwapInt32(j.peak, peak, now) {
				break
			}
		}
		defer atomic.AddInt32(j.running, -1)
	}

	if j.delay > 0 {
		select {
		case <-time.After(j.delay):
		case <-ctx.Done():
			return &testResult{id: j.id, err: ctx.Err()}
		}
	}
	return &testResult{id: j.id, err: j.err}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(3)
	pool.Start()

	for i := 0; i < 10; i++ {
		pool.Submit(&testJob{id: i})
	}

	results := pool.Wait()
	if len(results) != 10 {
		t.Fatalf("Expected 10 results, got %d", len(results))
	}

	seen := map[int]bool{}
	for _, r := range results {
		seen[r.(*testResult).id] = true
	}
	if len(seen) != 10 {
		t.Errorf("Expected 10 distinct job IDs, got %d", len(seen))
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	var running, peak int32

	pool := NewPool(2)
	pool.Start()

	go func() {
		for i := 0; i < 8; i++ {
			pool.Submit(&testJob{id: i, delay: 20 * time.Millisecond, running: &running, peak: &peak})
		}
		pool.Close()
	}()

	count := 0
	for range pool.Results() {
		count++
	}

	if count != 8 {
		t.Fatalf("Expected 8 results, got %d", count)
	}
	if p := atomic.LoadInt32(&peak); p > 2 {
		t.Errorf("Expected at most 2 concurrent jobs, saw %d", p)
	}
}

func TestPool_CarriesJobErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	wantErr := errors.New("job failed")
	pool.Submit(&testJob{id: 1, err: wantErr})
	pool.Submit(&testJob{id: 2})

	failed := 0
	for _, r := range pool.Wait() {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("Expected 1 failed result, got %d", failed)
	}
}

func TestPool_LargeBatchDoesNotDeadlock(t *testing.T) {
	// Far more jobs than the channel buffers can hold
	pool := NewPool(2)
	pool.Start()

	const jobs = 100
	go func() {
		for i := 0; i < jobs; i++ {
			pool.Submit(&testJob{id: i})
		}
		pool.Close()
	}()

	done := make(chan int)
	go func() {
		count := 0
		for range pool.Results() {
			count++
		}
		done <- count
	}()

	select {
	case count := <-done:
		if count != jobs {
			t.Errorf("Expected %d results, got %d", jobs, count)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Pool deadlocked on a large batch")
	}
}

func TestPool_ShutdownStopsWorkers(t *testing.T) {
	pool := NewPool(1)
	pool.Start()

	pool.Submit(&testJob{id: 1, delay: time.Hour})
	time.Sleep(20 * time.Millisecond)

	start := time.Now()
	pool.Shutdown()
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Expected prompt shutdown, took %v", elapsed)
	}
}
