// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package workerspool caps the parallelism of background tasks, and provides
// "maybe-owning" pool handles: a caller that sometimes receives a pool from
// its own caller and sometimes has to create one can hold a Handle and not
// care which case it is in.
package workerspool

import (
	"runtime"
	"sync"

	"github.com/gomlx/exceptions"
)

// Pool runs tasks in goroutines, keeping the number of concurrently running
// tasks at or under a parallelism cap.
type Pool struct {
	maxParallelism int

	mu         sync.Mutex
	cond       sync.Cond // Signaled whenever numRunning is decreased.
	numRunning int
}

// New returns a new Pool with the given parallelism cap.
// If maxParallelism <= 0 it defaults to runtime.NumCPU().
func New(maxParallelism int) *Pool {
	if maxParallelism <= 0 {
		maxParallelism = runtime.NumCPU()
	}
	p := &Pool{maxParallelism: maxParallelism}
	p.cond = sync.Cond{L: &p.mu}
	return p
}

// MaxParallelism returns the parallelism cap the pool was created with.
func (p *Pool) MaxParallelism() int {
	return p.maxParallelism
}

// lockedIsFull returns whether all available workers are in use.
//
// It must be called with p.mu acquired.
func (p *Pool) lockedIsFull() bool {
	return p.numRunning >= p.maxParallelism
}

// lockedRunTaskInGoroutine runs task and keeps tabs on p.numRunning.
//
// It must be called with p.mu acquired.
func (p *Pool) lockedRunTaskInGoroutine(task func()) {
	p.numRunning++
	go func() {
		task()
		p.mu.Lock()
		p.numRunning--
		p.cond.Signal()
		p.mu.Unlock()
	}()
}

// WaitToStart blocks until a worker is available and then runs the task in
// its own goroutine. It does not wait for the task to finish.
func (p *Pool) WaitToStart(task func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.lockedIsFull() {
		p.cond.Wait()
	}
	p.lockedRunTaskInGoroutine(task)
}

// StartIfAvailable runs the task in a separate goroutine if there are workers
// left, and returns whether it did.
//
// It's up to the client to synchronize the end of the task execution.
func (p *Pool) StartIfAvailable(task func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lockedIsFull() {
		return false
	}
	p.lockedRunTaskInGoroutine(task)
	return true
}

// Handle refers to a Pool that may or may not be owned by the holder.
// A zero Handle (nil pool) means tasks should be run inline, sequentially.
type Handle struct {
	pool  *Pool
	owned bool
}

// GetOrCreate returns a Handle configured by parallelism:
//
//   - parallelism == 0: borrow defaultPool; if defaultPool is nil and
//     defaultParallelism > 1, create (and own) a pool of defaultParallelism
//     workers instead.
//   - parallelism == 1: a nil Handle -- the caller runs its work inline.
//   - parallelism > 1: create (and own) a pool of parallelism workers.
//
// Contract: parallelism >= 0 and defaultParallelism >= 1; violations panic.
func GetOrCreate(parallelism int, defaultPool *Pool, defaultParallelism int) Handle {
	if parallelism < 0 {
		exceptions.Panicf("workerspool.GetOrCreate: parallelism must be >= 0, got %d", parallelism)
	}
	if defaultParallelism < 1 {
		exceptions.Panicf("workerspool.GetOrCreate: defaultParallelism must be >= 1, got %d", defaultParallelism)
	}
	switch parallelism {
	case 0:
		if defaultPool == nil && defaultParallelism > 1 {
			return Handle{pool: New(defaultParallelism), owned: true}
		}
		return Handle{pool: defaultPool}
	case 1:
		return Handle{}
	default:
		return Handle{pool: New(parallelism), owned: true}
	}
}

// Pool returns the underlying pool, which is nil for an inline Handle.
func (h Handle) Pool() *Pool { return h.pool }

// IsNil returns whether the Handle holds no pool, in which case work should
// run inline.
func (h Handle) IsNil() bool { return h.pool == nil }

// IsOwned returns whether the pool was created by GetOrCreate, as opposed to
// borrowed from the caller.
func (h Handle) IsOwned() bool { return h.owned }
