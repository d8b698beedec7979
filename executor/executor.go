// Package executor is the asynchronous unit-of-work gateway. The default
// executor runs one goroutine per submission with no pooling or
// backpressure; Bounded offers a semaphore-limited alternative. Like the
// logger, the implementation is chosen through a process-wide factory or
// injected per facade instance.
package executor

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Executor accepts units of work. Go must never block the caller; the task
// runs on some other execution context.
type Executor interface {
	Go(task func())
}

type goExecutor struct{}

func (goExecutor) Go(task func()) {
	go task()
}

// Default returns the goroutine-per-submission executor. There is no cap on
// in-flight tasks.
func Default() Executor {
	return goExecutor{}
}

type boundedExecutor struct {
	sem *semaphore.Weighted
}

// Bounded returns an executor that allows at most n tasks to run
// concurrently. Submission still never blocks; queued tasks wait on the
// semaphore from their own goroutine.
func Bounded(n int64) Executor {
	return &boundedExecutor{sem: semaphore.NewWeighted(n)}
}

func (b *boundedExecutor) Go(task func()) {
	go func() {
		if err := b.sem.Acquire(context.Background(), 1); err != nil {
			return
		}
		defer b.sem.Release(1)
		task()
	}()
}

// Factory produces Executor instances for newly constructed facades.
type Factory func() Executor

var (
	factoryMu sync.Mutex
	factory   Factory = Default
)

// SetFactory installs a custom executor factory for subsequently created
// instances. Instances already handed out keep their executor.
func SetFactory(f Factory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factory = f
}

// ResetFactory restores the goroutine-per-submission default.
func ResetFactory() {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factory = Default
}

// New creates an Executor through the currently installed factory.
func New() Executor {
	factoryMu.Lock()
	f := factory
	factoryMu.Unlock()
	return f()
}

// Future holds the eventual result of a submitted unit of work.
type Future[T any] struct {
	done  chan struct{}
	value T
}

// Get blocks until the result is available.
func (f *Future[T]) Get() T {
	<-f.done
	return f.value
}

// GetContext blocks until the result is available or ctx is done.
func (f *Future[T]) GetContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done reports without blocking whether the result is available.
func (f *Future[T]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Submit runs fn on e and returns a Future for its result.
func Submit[T any](e Executor, fn func() T) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	e.Go(func() {
		f.value = fn()
		close(f.done)
	})
	return f
}
