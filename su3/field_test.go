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

package su3

import (
	"testing"

	"github.com/ajroetker/go-lattice/mem"
	"github.com/ajroetker/go-lattice/pool"
)

// fillDebug writes the deterministic pattern used throughout the tests:
// value(site,c1,c2,ri) = (ri + 2*(c2 + 3*(c1 + 3*site))) / (18*(site+1)).
func fillDebug[T Float](f *CPUField[T]) {
	for site := 0; site < f.Vol(); site++ {
		for c1 := 0; c1 < NCol; c1++ {
			for c2 := 0; c2 < NCol; c2++ {
				for ri := 0; ri < NReIm; ri++ {
					num := ri + NReIm*(c2+NCol*(c1+NCol*site))
					f.Set(site, c1, c2, ri, T(num)/T(SiteLen*(site+1)))
				}
			}
		}
	}
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func TestCPUFieldAddressingIsSiteMajor(t *testing.T) {
	f := NewCPUField[float64](mem.OnCPU, 4)
	defer f.Release()

	// Walking (site, c1, c2, ri) with ri innermost must touch the buffer
	// in strictly increasing order with stride one.
	want := 0
	for site := 0; site < 4; site++ {
		for c1 := 0; c1 < NCol; c1++ {
			for c2 := 0; c2 < NCol; c2++ {
				for ri := 0; ri < NReIm; ri++ {
					if got := cpuIndex(site, c1, c2, ri); got != want {
						t.Fatalf("cpuIndex(%d,%d,%d,%d) = %d, want %d", site, c1, c2, ri, got, want)
					}
					want++
				}
			}
		}
	}
}

func TestGPUFieldAddressingIsColourMajor(t *testing.T) {
	const vol = 4
	// Same walk, colour indices outermost and the site innermost.
	want := 0
	for c1 := 0; c1 < NCol; c1++ {
		for c2 := 0; c2 < NCol; c2++ {
			for site := 0; site < vol; site++ {
				for ri := 0; ri < NReIm; ri++ {
					if got := gpuIndex(vol, site, c1, c2, ri); got != want {
						t.Fatalf("gpuIndex(%d,%d,%d,%d) = %d, want %d", site, c1, c2, ri, got, want)
					}
					want++
				}
			}
		}
	}
}

func TestSimdFieldAddressingFoldsLanes(t *testing.T) {
	f := NewSimdFieldLanes[float32](8, 4)
	defer f.Release()

	if f.FusedVol() != 2 || f.LaneCount() != 4 || f.Vol() != 8 {
		t.Fatalf("fusedVol=%d lanes=%d vol=%d, want 2, 4, 8", f.FusedVol(), f.LaneCount(), f.Vol())
	}

	// The lane index is the innermost stride; one (c1,c2,ri) slot of a
	// fused site holds laneWidth consecutive original sites.
	want := 0
	for fs := 0; fs < f.FusedVol(); fs++ {
		for c1 := 0; c1 < NCol; c1++ {
			for c2 := 0; c2 < NCol; c2++ {
				for ri := 0; ri < NReIm; ri++ {
					for lane := 0; lane < 4; lane++ {
						if got := f.index(fs, c1, c2, ri, lane); got != want {
							t.Fatalf("index(%d,%d,%d,%d,%d) = %d, want %d", fs, c1, c2, ri, lane, got, want)
						}
						want++
					}
				}
			}
		}
	}
}

func TestSiteViewsMatchFieldAccess(t *testing.T) {
	f := NewCPUField[float64](mem.OnCPU, 6)
	defer f.Release()
	fillDebug(f)

	for site := 0; site < f.Vol(); site++ {
		s := f.Site(site)
		if s.Lanes() != 1 {
			t.Fatalf("CPUSite.Lanes() = %d, want 1", s.Lanes())
		}
		for c1 := 0; c1 < NCol; c1++ {
			for c2 := 0; c2 < NCol; c2++ {
				for ri := 0; ri < NReIm; ri++ {
					if got, want := s.At(c1, c2, ri, 0), f.At(site, c1, c2, ri); got != want {
						t.Fatalf("site %d (%d,%d,%d): view %v, field %v", site, c1, c2, ri, got, want)
					}
				}
			}
		}
	}

	g := NewGPUField[float64](mem.OnCPU, 6)
	defer g.Release()
	for site := 0; site < g.Vol(); site++ {
		g.Set(site, 1, 2, IM, float64(site)+0.5)
		if got := g.Site(site).At(1, 2, IM, 0); got != float64(site)+0.5 {
			t.Fatalf("GPUSite at %d: got %v, want %v", site, got, float64(site)+0.5)
		}
	}
}

func TestSiteViewWritesReachTheField(t *testing.T) {
	f := NewSimdFieldLanes[float32](8, 4)
	defer f.Release()

	s := f.Site(1)
	s.Set(2, 0, RE, 3, 42)
	if got := f.At(1, 2, 0, RE, 3); got != 42 {
		t.Fatalf("write through SimdSite not visible: got %v, want 42", got)
	}
}

func TestFieldOwnership(t *testing.T) {
	f := NewCPUField[float32](mem.OnCPU, 2)

	// Destroying a reference never touches the owner's buffer, and the
	// owner still releases exactly once afterwards.
	r := f.Ref()
	r.Release()
	f.Set(1, 0, 0, RE, 7)
	if got := f.At(1, 0, 0, RE); got != 7 {
		t.Fatalf("owner buffer unusable after releasing a ref: got %v, want 7", got)
	}
	f.Release()

	mustPanic(t, "double release", f.Release)
}

func TestGPUAndSimdOwnership(t *testing.T) {
	g := NewGPUField[float64](mem.OnDevice, 4)
	g.Ref().Release()
	g.Release()
	mustPanic(t, "gpu double release", g.Release)

	s := NewSimdFieldLanes[float64](8, 2)
	s.Ref().Release()
	s.Release()
	mustPanic(t, "simd double release", s.Release)
}

func TestSimdFieldRejectsNonMultipleVolume(t *testing.T) {
	mustPanic(t, "vol=10 lanes=4", func() { NewSimdFieldLanes[float32](10, 4) })
	mustPanic(t, "vol=0", func() { NewSimdFieldLanes[float32](0, 4) })
	mustPanic(t, "lanes=0", func() { NewSimdFieldLanes[float32](8, 0) })
}

func TestNewFieldRejectsNonPositiveVolume(t *testing.T) {
	mustPanic(t, "cpu vol=0", func() { NewCPUField[float32](mem.OnCPU, 0) })
	mustPanic(t, "gpu vol=-1", func() { NewGPUField[float64](mem.OnCPU, -1) })
}

func TestLaneWidthMatchesVectorWidth(t *testing.T) {
	if got, want := LaneWidth[float32](), VectorWidth()/4; got != want {
		t.Errorf("LaneWidth[float32] = %d, want %d", got, want)
	}
	if got, want := LaneWidth[float64](), VectorWidth()/8; got != want {
		t.Errorf("LaneWidth[float64] = %d, want %d", got, want)
	}
}

func TestSitesLoopVisitsEverySite(t *testing.T) {
	p := pool.New(3)
	defer p.Stop()

	f := NewCPUField[float32](mem.OnCPU, 12)
	defer f.Release()
	seen := make([]int, f.NSites())
	f.SitesLoop(p, func(site int) { seen[site]++ })
	p.WaitAllIdle()
	for site, n := range seen {
		if n != 1 {
			t.Errorf("site %d visited %d times, want 1", site, n)
		}
	}

	s := NewSimdFieldLanes[float32](12, 2)
	defer s.Release()
	seenFused := make([]int, s.NSites())
	s.SitesLoop(p, func(fs int) { seenFused[fs]++ })
	p.WaitAllIdle()
	for fs, n := range seenFused {
		if n != 1 {
			t.Errorf("fused site %d visited %d times, want 1", fs, n)
		}
	}

	g := NewGPUField[float32](mem.OnDevice, 9)
	defer g.Release()
	seenGPU := make([]int, g.NSites())
	g.SitesLoop(p, func(site int) { seenGPU[site]++ })
	p.WaitAllIdle()
	for site, n := range seenGPU {
		if n != 1 {
			t.Errorf("device site %d visited %d times, want 1", site, n)
		}
	}
}
