// Copyright 2025 go-lattice Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pool implements a fixed-size worker pool with a spin-wait
// rendezvous hand-off. There is no task queue and no work stealing: at most
// one work item is live pool-wide, and all workers execute the same item
// concurrently over disjoint index ranges. The caller of Parallel and
// LoopSplit participates as the master worker (thread id 0).
//
// The hand-off avoids locks and condition variables so that dispatch
// latency stays in the sub-microsecond range for short, regular numeric
// kernels. Idle workers spin on an atomic work-sequence counter; the master
// spins on the idle-worker counter. Spin loops yield to the Go scheduler
// after a bounded burst.
package pool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// MasterThreadID is the thread id of the dispatching caller.
const MasterThreadID = 0

// spinBurst is how many spins to perform before yielding the processor.
const spinBurst = 1 << 10

// Pool is a fixed set of workers plus the controlling caller. The zero
// value is not usable; construct with New. All dispatch goes through
// Parallel or LoopSplit from a single controlling goroutine.
type Pool struct {
	n int

	// nWaiting counts workers parked waiting for work.
	nWaiting atomic.Int32

	// worksAssigned increases once per dispatched work item. Workers spin
	// on it to detect new work; the increment publishes the work field.
	worksAssigned atomic.Int64

	started     atomic.Bool
	dispatching atomic.Bool

	// workers tracks running worker goroutines so Stop can wait for them
	// to exit before the pool is restarted.
	workers sync.WaitGroup

	work func(threadID int)
}

// New returns a pool of nThreads workers, including the caller. Workers are
// not started until the first dispatch.
func New(nThreads int) *Pool {
	if nThreads < 1 {
		panic(fmt.Sprintf("pool: invalid worker count %d", nThreads))
	}
	return &Pool{n: nThreads}
}

// NumThreads returns the number of workers, including the master.
func (p *Pool) NumThreads() int {
	return p.n
}

// Started reports whether the worker goroutines are running.
func (p *Pool) Started() bool {
	return p.started.Load()
}

// AssertMasterOnly panics unless threadID is the master. Contract check for
// code that must run on the dispatching thread only.
func AssertMasterOnly(threadID int) {
	if threadID != MasterThreadID {
		panic(fmt.Sprintf("pool: master-only path entered by worker %d", threadID))
	}
}

// AssertWorkerOnly panics if threadID is the master. Contract check for
// code that must never run on the dispatching thread.
func AssertWorkerOnly(threadID int) {
	if threadID == MasterThreadID {
		panic("pool: worker-only path entered by the master thread")
	}
}

func spinPause(spins *int) {
	*spins++
	if *spins%spinBurst == 0 {
		runtime.Gosched()
	}
}

// WaitAllIdle blocks the master until every non-master worker is parked
// waiting for work. This is the sole synchronization point: writes made by
// workers during a dispatch are guaranteed visible to the master only after
// WaitAllIdle returns. Returns immediately when the pool is not started.
func (p *Pool) WaitAllIdle() {
	var spins int
	for p.started.Load() && int(p.nWaiting.Load()) != p.n-1 {
		spinPause(&spins)
	}
}

// dispatch installs f as the live work item and runs the master's share.
// Hand-off protocol: wait for all workers parked, install the work, zero
// the idle counter, bump the sequence counter (the publishing edge), then
// run f(0) locally.
func (p *Pool) dispatch(f func(threadID int)) {
	if !p.dispatching.CompareAndSwap(false, true) {
		panic("pool: dispatch while another work item is live")
	}
	defer p.dispatching.Store(false)

	p.WaitAllIdle()
	p.work = f
	p.nWaiting.Store(0)
	p.worksAssigned.Add(1)

	f(MasterThreadID)
}

// waitForWork parks the calling worker until the master signals a new work
// item. The worker records the current sequence value before announcing
// itself idle, so a signal can never be missed.
func (p *Pool) waitForWork() {
	prev := p.worksAssigned.Load()
	p.nWaiting.Add(1)
	var spins int
	for p.worksAssigned.Load() == prev {
		spinPause(&spins)
	}
}

// workerLoop is the body of each non-master worker. Workers are pinned to
// OS threads: the spin hand-off assumes each worker owns a hardware thread.
func (p *Pool) workerLoop(threadID int) {
	defer p.workers.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		p.waitForWork()
		p.work(threadID)
		if !p.started.Load() {
			return
		}
	}
}

// start spawns the workers and dispatches the first work item.
func (p *Pool) start(f func(threadID int)) {
	if !p.started.CompareAndSwap(false, true) {
		panic("pool: cannot start the pool twice")
	}
	p.workers.Add(p.n - 1)
	for id := 1; id < p.n; id++ {
		go p.workerLoop(id)
	}
	p.dispatch(f)
}

// Parallel runs f once per worker, including the caller as thread id 0,
// and returns once the master's share is done. Use WaitAllIdle to wait for
// the remaining workers. The pool is started lazily on first use; calling
// Parallel from inside a live work item is a fatal error.
func (p *Pool) Parallel(f func(threadID int)) {
	if p.started.Load() {
		p.dispatch(f)
	} else {
		p.start(f)
	}
}

// LoopSplit partitions [beg, end) into NumThreads contiguous near-equal
// chunks and runs one chunk per worker. Every index is visited exactly
// once, in order within a chunk; there is no ordering across workers.
func (p *Pool) LoopSplit(beg, end int, f func(threadID, i int)) {
	p.Parallel(func(threadID int) {
		chunk := (end - beg + p.n - 1) / p.n
		tBeg := beg + chunk*threadID
		tEnd := tBeg + chunk
		if tEnd > end {
			tEnd = end
		}
		for i := tBeg; i < tEnd; i++ {
			f(threadID, i)
		}
	})
}

// Stop drains the pool and dispatches a final no-op work item with the
// started flag already cleared, so workers fall out of their loop. The pool
// can be started again afterwards. No-op when not started.
func (p *Pool) Stop() {
	if !p.started.Load() {
		return
	}
	p.WaitAllIdle()
	p.started.Store(false)
	p.dispatch(func(int) {})
	p.workers.Wait()
}
