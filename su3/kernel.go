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

//go:generate go run ../cmd/latgen -output sumprod_gen.go

package su3

import (
	"fmt"

	"github.com/ajroetker/go-lattice/pool"
)

// SiteView is the addressing contract one site exposes to kernels: the
// (col1, col2, reIm) indexing of the parent field with the site index
// already folded out, plus the lane dimension of the fused layout (1 for
// the scalar and accelerator layouts).
type SiteView[T Float] interface {
	Lanes() int
	At(c1, c2, ri, lane int) T
	Set(c1, c2, ri, lane int, v T)
}

// SiteField is the contract kernels are driven against. S is the concrete
// site view type of the layout, so generic kernels monomorphize per layout
// instead of dispatching through interface values on the hot path.
type SiteField[T Float, S SiteView[T]] interface {
	NSites() int
	Site(site int) S
	SitesLoop(p *pool.Pool, kern func(site int))
}

// MulAccSite accumulates the complex matrix product into a:
//
//	a(i,j) += sum_k b(i,k) * c(k,j)
//
// over every lane of the site. This is the portable body; latgen emits
// unrolled per-layout specializations into sumprod_gen.go.
func MulAccSite[T Float, S SiteView[T]](a, b, c S) {
	for l := 0; l < a.Lanes(); l++ {
		for i := 0; i < NCol; i++ {
			for k := 0; k < NCol; k++ {
				br := b.At(i, k, RE, l)
				bi := b.At(i, k, IM, l)
				for j := 0; j < NCol; j++ {
					cr := c.At(k, j, RE, l)
					ci := c.At(k, j, IM, l)
					a.Set(i, j, RE, l, a.At(i, j, RE, l)+br*cr-bi*ci)
					a.Set(i, j, IM, l, a.At(i, j, IM, l)+br*ci+bi*cr)
				}
			}
		}
	}
}

// mulAccSite routes a site triple to the unrolled specialization for its
// concrete view type, falling back to the portable body.
func mulAccSite[T Float, S SiteView[T]](a, b, c S) {
	switch av := any(a).(type) {
	case CPUSite[float32]:
		mulAccCPUSiteFloat32(av, any(b).(CPUSite[float32]), any(c).(CPUSite[float32]))
	case CPUSite[float64]:
		mulAccCPUSiteFloat64(av, any(b).(CPUSite[float64]), any(c).(CPUSite[float64]))
	case SimdSite[float32]:
		mulAccSimdSiteFloat32(av, any(b).(SimdSite[float32]), any(c).(SimdSite[float32]))
	case SimdSite[float64]:
		mulAccSimdSiteFloat64(av, any(b).(SimdSite[float64]), any(c).(SimdSite[float64]))
	case GPUSite[float32]:
		mulAccGPUSiteFloat32(av, any(b).(GPUSite[float32]), any(c).(GPUSite[float32]))
	case GPUSite[float64]:
		mulAccGPUSiteFloat64(av, any(b).(GPUSite[float64]), any(c).(GPUSite[float64]))
	default:
		MulAccSite[T](a, b, c)
	}
}

// SumProd accumulates dst += a*b site by site, dispatching the per-site
// work across the pool. All three fields must share layout and volume; the
// kernel sees every site exactly once and writes only to dst cells of its
// own chunk, so workers never share a destination cell within a dispatch.
// Returns only after the caller's share is done; use p.WaitAllIdle before
// inspecting dst.
func SumProd[T Float, S SiteView[T], F SiteField[T, S]](p *pool.Pool, dst, a, b F) F {
	if a.NSites() != dst.NSites() || b.NSites() != dst.NSites() {
		panic(fmt.Sprintf("su3: sumProd volume mismatch: dst %d, a %d, b %d",
			dst.NSites(), a.NSites(), b.NSites()))
	}
	dst.SitesLoop(p, func(site int) {
		mulAccSite[T](dst.Site(site), a.Site(site), b.Site(site))
	})
	return dst
}

// Per-layout wrappers: Go cannot infer the site view type from the field
// type alone, so these pin it down for the common calls.

// SumProdCPU accumulates dst += a*b over scalar-layout fields.
func SumProdCPU[T Float](p *pool.Pool, dst, a, b *CPUField[T]) *CPUField[T] {
	return SumProd[T, CPUSite[T]](p, dst, a, b)
}

// SumProdSimd accumulates dst += a*b over SIMD-fused fields.
func SumProdSimd[T Float](p *pool.Pool, dst, a, b *SimdField[T]) *SimdField[T] {
	return SumProd[T, SimdSite[T]](p, dst, a, b)
}

// SumProdGPU accumulates dst += a*b over accelerator-layout fields.
func SumProdGPU[T Float](p *pool.Pool, dst, a, b *GPUField[T]) *GPUField[T] {
	return SumProd[T, GPUSite[T]](p, dst, a, b)
}
