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
	"math"
	"testing"

	"github.com/ajroetker/go-lattice/mem"
	"github.com/ajroetker/go-lattice/pool"
)

// sumProdRef is the obvious serial reference: dst += a*b as 3x3 complex
// matrix products, accumulated in float64 regardless of T.
func sumProdRef[T Float](dst, a, b *CPUField[T]) [][SiteLen]float64 {
	out := make([][SiteLen]float64, dst.Vol())
	for site := 0; site < dst.Vol(); site++ {
		for i := 0; i < NCol; i++ {
			for j := 0; j < NCol; j++ {
				re := float64(dst.At(site, i, j, RE))
				im := float64(dst.At(site, i, j, IM))
				for k := 0; k < NCol; k++ {
					br := float64(a.At(site, i, k, RE))
					bi := float64(a.At(site, i, k, IM))
					cr := float64(b.At(site, k, j, RE))
					ci := float64(b.At(site, k, j, IM))
					re += br*cr - bi*ci
					im += br*ci + bi*cr
				}
				out[site][cpuIndex(0, i, j, RE)] = re
				out[site][cpuIndex(0, i, j, IM)] = im
			}
		}
	}
	return out
}

func checkAgainstRef[T Float](t *testing.T, layout string, got *CPUField[T], want [][SiteLen]float64, tol float64) {
	t.Helper()
	for site := range want {
		for i := 0; i < NCol; i++ {
			for j := 0; j < NCol; j++ {
				for ri := 0; ri < NReIm; ri++ {
					g := float64(got.At(site, i, j, ri))
					w := want[site][cpuIndex(0, i, j, ri)]
					if math.Abs(g-w) > tol {
						t.Fatalf("%s site %d (%d,%d,%d): got %v, want %v", layout, site, i, j, ri, g, w)
					}
				}
			}
		}
	}
}

// seedOperands builds three distinct deterministic scalar fields. The
// accumulator gets the debug pattern; the operands are shifted copies so
// the product has no accidental symmetry.
func seedOperands[T Float](vol int) (dst, a, b *CPUField[T]) {
	dst = NewCPUField[T](mem.OnCPU, vol)
	a = NewCPUField[T](mem.OnCPU, vol)
	b = NewCPUField[T](mem.OnCPU, vol)
	fillDebug(dst)
	for site := 0; site < vol; site++ {
		for c1 := 0; c1 < NCol; c1++ {
			for c2 := 0; c2 < NCol; c2++ {
				for ri := 0; ri < NReIm; ri++ {
					num := ri + NReIm*(c2+NCol*(c1+NCol*site))
					a.Set(site, c1, c2, ri, T(num+1)/T(SiteLen*(site+2)))
					b.Set(site, c1, c2, ri, T(num+7)/T(SiteLen*(site+3)))
				}
			}
		}
	}
	return dst, a, b
}

func TestSumProdCPUMatchesReference(t *testing.T) {
	p := pool.New(4)
	defer p.Stop()

	dst, a, b := seedOperands[float64](12)
	defer dst.Release()
	defer a.Release()
	defer b.Release()
	want := sumProdRef(dst, a, b)

	SumProdCPU(p, dst, a, b)
	p.WaitAllIdle()

	checkAgainstRef(t, "cpu", dst, want, 1e-12)
}

// Running the same inputs through each layout must give the same answer:
// the layouts change memory order, never the arithmetic.
func TestSumProdIsLayoutInvariant(t *testing.T) {
	const vol = 16
	p := pool.New(3)
	defer p.Stop()

	dst, a, b := seedOperands[float64](vol)
	defer dst.Release()
	defer a.Release()
	defer b.Release()
	want := sumProdRef(dst, a, b)

	t.Run("simd", func(t *testing.T) {
		sd := CopyCPUToSimd(NewSimdFieldLanes[float64](vol, 4), dst)
		defer sd.Release()
		sa := CopyCPUToSimd(NewSimdFieldLanes[float64](vol, 4), a)
		defer sa.Release()
		sb := CopyCPUToSimd(NewSimdFieldLanes[float64](vol, 4), b)
		defer sb.Release()

		SumProdSimd(p, sd, sa, sb)
		p.WaitAllIdle()

		got := CopySimdToCPU(NewCPUField[float64](mem.OnCPU, vol), sd)
		defer got.Release()
		checkAgainstRef(t, "simd", got, want, 1e-12)
	})

	t.Run("gpu", func(t *testing.T) {
		gd := CopyCPUToGPU(p, NewGPUField[float64](mem.OnDevice, vol), dst)
		defer gd.Release()
		ga := CopyCPUToGPU(p, NewGPUField[float64](mem.OnDevice, vol), a)
		defer ga.Release()
		gb := CopyCPUToGPU(p, NewGPUField[float64](mem.OnDevice, vol), b)
		defer gb.Release()

		SumProdGPU(p, gd, ga, gb)
		p.WaitAllIdle()

		got := CopyGPUToCPU(p, NewCPUField[float64](mem.OnCPU, vol), gd)
		defer got.Release()
		checkAgainstRef(t, "gpu", got, want, 1e-12)
	})
}

func TestSumProdFloat32(t *testing.T) {
	p := pool.New(2)
	defer p.Stop()

	dst, a, b := seedOperands[float32](8)
	defer dst.Release()
	defer a.Release()
	defer b.Release()
	want := sumProdRef(dst, a, b)

	SumProdCPU(p, dst, a, b)
	p.WaitAllIdle()

	checkAgainstRef(t, "cpu32", dst, want, 1e-5)
}

// The unrolled specializations in sumprod_gen.go must be arithmetically
// identical to the portable body, not just close.
func TestGeneratedSpecializationsMatchPortableBody(t *testing.T) {
	dst, a, b := seedOperands[float64](4)
	defer dst.Release()
	defer a.Release()
	defer b.Release()

	ref, ra, rb := seedOperands[float64](4)
	defer ref.Release()
	defer ra.Release()
	defer rb.Release()

	for site := 0; site < 4; site++ {
		mulAccSite[float64](dst.Site(site), a.Site(site), b.Site(site))
		MulAccSite[float64](ref.Site(site), ra.Site(site), rb.Site(site))
	}
	fieldsEqual(t, dst, ref)

	sd := CopyCPUToSimd(NewSimdFieldLanes[float64](4, 2), ref)
	defer sd.Release()
	sa := CopyCPUToSimd(NewSimdFieldLanes[float64](4, 2), ra)
	defer sa.Release()
	sb := CopyCPUToSimd(NewSimdFieldLanes[float64](4, 2), rb)
	defer sb.Release()

	gen := CopyCPUToSimd(NewSimdFieldLanes[float64](4, 2), dst)
	defer gen.Release()
	ga := CopyCPUToSimd(NewSimdFieldLanes[float64](4, 2), a)
	defer ga.Release()
	gb := CopyCPUToSimd(NewSimdFieldLanes[float64](4, 2), b)
	defer gb.Release()

	for fs := 0; fs < 2; fs++ {
		mulAccSite[float64](gen.Site(fs), ga.Site(fs), gb.Site(fs))
		MulAccSite[float64](sd.Site(fs), sa.Site(fs), sb.Site(fs))
	}

	back := CopySimdToCPU(NewCPUField[float64](mem.OnCPU, 4), gen)
	defer back.Release()
	wantBack := CopySimdToCPU(NewCPUField[float64](mem.OnCPU, 4), sd)
	defer wantBack.Release()
	fieldsEqual(t, back, wantBack)
}

func TestSumProdRejectsVolumeMismatch(t *testing.T) {
	p := pool.New(1)
	defer p.Stop()

	dst := NewCPUField[float32](mem.OnCPU, 4)
	defer dst.Release()
	a := NewCPUField[float32](mem.OnCPU, 4)
	defer a.Release()
	b := NewCPUField[float32](mem.OnCPU, 8)
	defer b.Release()

	mustPanic(t, "mismatched operand", func() { SumProdCPU(p, dst, a, b) })
}

func BenchmarkSumProdCPU(b *testing.B) {
	p := pool.New(4)
	defer p.Stop()

	dst, x, y := seedOperands[float64](256)
	defer dst.Release()
	defer x.Release()
	defer y.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SumProdCPU(p, dst, x, y)
		p.WaitAllIdle()
	}
}

func BenchmarkSumProdSimd(b *testing.B) {
	p := pool.New(4)
	defer p.Stop()

	lanes := LaneWidth[float64]()
	vol := 64 * lanes
	dst := NewSimdFieldLanes[float64](vol, lanes)
	defer dst.Release()
	x := NewSimdFieldLanes[float64](vol, lanes)
	defer x.Release()
	y := NewSimdFieldLanes[float64](vol, lanes)
	defer y.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SumProdSimd(p, dst, x, y)
		p.WaitAllIdle()
	}
}
