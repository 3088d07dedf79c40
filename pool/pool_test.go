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

package pool

import (
	"sync/atomic"
	"testing"
)

func TestNewRejectsNonPositiveWorkerCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", n)
				}
			}()
			New(n)
		}()
	}
}

func TestLoopSplitVisitsEveryIndexExactlyOnce(t *testing.T) {
	cases := []struct {
		workers  int
		beg, end int
	}{
		{1, 0, 100},
		{2, 0, 1},
		{4, 0, 1000},
		{4, 5, 5},
		{4, 3, 17},
		{7, 0, 101},
		{8, 2, 10},
	}
	for _, tc := range cases {
		p := New(tc.workers)
		visits := make([]int32, tc.end-tc.beg)
		p.LoopSplit(tc.beg, tc.end, func(_, i int) {
			if i < tc.beg || i >= tc.end {
				t.Errorf("workers=%d [%d,%d): visited out-of-range index %d", tc.workers, tc.beg, tc.end, i)
				return
			}
			atomic.AddInt32(&visits[i-tc.beg], 1)
		})
		p.WaitAllIdle()
		for i, n := range visits {
			if n != 1 {
				t.Errorf("workers=%d [%d,%d): index %d visited %d times, want 1", tc.workers, tc.beg, tc.end, tc.beg+i, n)
			}
		}
		p.Stop()
	}
}

func TestLoopSplitInOrderWithinChunk(t *testing.T) {
	p := New(3)
	defer p.Stop()

	last := make([]int, p.NumThreads())
	for i := range last {
		last[i] = -1
	}
	p.LoopSplit(0, 300, func(threadID, i int) {
		if last[threadID] >= i {
			t.Errorf("worker %d visited %d after %d", threadID, i, last[threadID])
		}
		last[threadID] = i
	})
	p.WaitAllIdle()
}

// The squares scenario: writes from all workers must be visible to the
// caller after the drain barrier.
func TestLoopSplitSquaresVisibleAfterDrain(t *testing.T) {
	p := New(4)
	defer p.Stop()

	out := make([]int, 1000)
	p.LoopSplit(0, len(out), func(_, i int) {
		out[i] = i * i
	})
	p.WaitAllIdle()

	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestParallelRunsEveryWorkerOnce(t *testing.T) {
	p := New(4)
	defer p.Stop()

	var ran [4]int32
	p.Parallel(func(threadID int) {
		atomic.AddInt32(&ran[threadID], 1)
	})
	p.WaitAllIdle()

	for id, n := range ran {
		if n != 1 {
			t.Errorf("worker %d ran %d times, want 1", id, n)
		}
	}
}

func TestParallelMasterIsThreadZero(t *testing.T) {
	p := New(2)
	defer p.Stop()

	var sawMaster atomic.Bool
	p.Parallel(func(threadID int) {
		if threadID == MasterThreadID {
			sawMaster.Store(true)
		}
	})
	p.WaitAllIdle()
	if !sawMaster.Load() {
		t.Error("master did not participate in the dispatch")
	}
}

func TestSequentialDispatchesSeePreviousWrites(t *testing.T) {
	p := New(4)
	defer p.Stop()

	in := make([]int, 400)
	out := make([]int, 400)
	p.LoopSplit(0, len(in), func(_, i int) { in[i] = i + 1 })
	p.LoopSplit(0, len(in), func(_, i int) { out[i] = 2 * in[i] })
	p.WaitAllIdle()

	for i := range out {
		if out[i] != 2*(i+1) {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], 2*(i+1))
		}
	}
}

func TestNestedDispatchIsFatal(t *testing.T) {
	p := New(2)
	defer p.Stop()

	defer func() {
		if recover() == nil {
			t.Error("nested dispatch did not panic")
		}
	}()
	p.Parallel(func(threadID int) {
		// Only the master re-enters: a worker panic would crash the
		// process instead of reaching the recover above.
		if threadID == MasterThreadID {
			p.Parallel(func(int) {})
		}
	})
}

func TestStopAndRestart(t *testing.T) {
	p := New(3)

	var first atomic.Int32
	p.LoopSplit(0, 30, func(_, _ int) { first.Add(1) })
	p.WaitAllIdle()
	p.Stop()
	if p.Started() {
		t.Fatal("pool still started after Stop")
	}
	if first.Load() != 30 {
		t.Fatalf("first run visited %d indices, want 30", first.Load())
	}

	var second atomic.Int32
	p.LoopSplit(0, 40, func(_, _ int) { second.Add(1) })
	p.WaitAllIdle()
	p.Stop()
	if second.Load() != 40 {
		t.Fatalf("second run visited %d indices, want 40", second.Load())
	}
}

func TestStopWithoutStartIsNoop(t *testing.T) {
	p := New(2)
	p.Stop()
	p.Stop()
}

func TestWaitAllIdleBeforeStartReturns(t *testing.T) {
	p := New(4)
	p.WaitAllIdle()
}

func TestAssertions(t *testing.T) {
	AssertMasterOnly(MasterThreadID)
	AssertWorkerOnly(1)

	for name, f := range map[string]func(){
		"master on worker path": func() { AssertWorkerOnly(MasterThreadID) },
		"worker on master path": func() { AssertMasterOnly(2) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", name)
				}
			}()
			f()
		}()
	}
}

func BenchmarkDispatch(b *testing.B) {
	p := New(4)
	defer p.Stop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parallel(func(int) {})
	}
	p.WaitAllIdle()
}
