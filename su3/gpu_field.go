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
	"fmt"

	"github.com/ajroetker/go-lattice/device"
	"github.com/ajroetker/go-lattice/mem"
	"github.com/ajroetker/go-lattice/pool"
)

// gpuIndex is the colour-major, site-minor addressing of the accelerator
// layout: reim + 2*(site + vol*(col2 + NCol*col1)). Sites are contiguous
// within a colour slot so wide parallel execution contexts touching the
// same colour component hit adjacent memory.
func gpuIndex(vol, site, c1, c2, ri int) int {
	return ri + NReIm*(site+vol*(c2+NCol*c1))
}

// GPUField is the accelerator layout. Same site count as the scalar layout
// but a different stride order, so the two are never byte-compatible. The
// buffer may live in host or device memory; device residency routes site
// loops through the device backend.
type GPUField[T Float] struct {
	vol      int
	loc      mem.Location
	data     []T
	isRef    bool
	released bool
}

// NewGPUField allocates an accelerator-layout field of vol sites at loc.
func NewGPUField[T Float](loc mem.Location, vol int) *GPUField[T] {
	if vol <= 0 {
		panic(fmt.Sprintf("su3: invalid volume %d", vol))
	}
	return &GPUField[T]{
		vol:  vol,
		loc:  loc,
		data: mem.Provide[T](loc, SiteLen*vol),
	}
}

// Vol returns the number of sites.
func (f *GPUField[T]) Vol() int { return f.vol }

// NSites returns the number of loopable sites.
func (f *GPUField[T]) NSites() int { return f.vol }

// Loc returns where the buffer resides.
func (f *GPUField[T]) Loc() mem.Location { return f.loc }

// Ref returns a non-owning alias of f.
func (f *GPUField[T]) Ref() *GPUField[T] {
	c := *f
	c.isRef = true
	return &c
}

// Release frees the underlying buffer; see CPUField.Release.
func (f *GPUField[T]) Release() {
	if f.isRef {
		return
	}
	if f.released {
		panic("su3: field buffer released twice")
	}
	mem.Release(f.loc, f.data)
	f.data = nil
	f.released = true
}

// At returns the element at (site, col1, col2, reIm).
func (f *GPUField[T]) At(site, c1, c2, ri int) T {
	return f.data[gpuIndex(f.vol, site, c1, c2, ri)]
}

// Set stores the element at (site, col1, col2, reIm).
func (f *GPUField[T]) Set(site, c1, c2, ri int, v T) {
	f.data[gpuIndex(f.vol, site, c1, c2, ri)] = v
}

// Site returns a strided view anchored at one site.
func (f *GPUField[T]) Site(site int) GPUSite[T] {
	return GPUSite[T]{m: f.data, vol: f.vol, site: site}
}

// SitesLoop drives kern over every site. Device-resident fields loop
// through the device backend (which visits each index exactly once and
// falls back to a host loop when no runtime is configured); host-resident
// fields use the pool's chunked loop.
func (f *GPUField[T]) SitesLoop(p *pool.Pool, kern func(site int)) {
	if f.loc == mem.OnDevice {
		device.Loop(0, f.vol, kern)
		return
	}
	p.LoopSplit(0, f.vol, func(_, site int) {
		kern(site)
	})
}

// GPUSite is a non-owning view of one accelerator-layout site. Unlike the
// other site views it must carry the whole buffer and the volume, because
// the site index is interleaved into every colour stride.
type GPUSite[T Float] struct {
	m         []T
	vol, site int
}

// Lanes is 1: the accelerator layout carries one site per slot.
func (GPUSite[T]) Lanes() int { return 1 }

// At returns the (col1, col2, reIm) element. The lane index is ignored.
func (s GPUSite[T]) At(c1, c2, ri, _ int) T {
	return s.m[gpuIndex(s.vol, s.site, c1, c2, ri)]
}

// Set stores the (col1, col2, reIm) element. The lane index is ignored.
func (s GPUSite[T]) Set(c1, c2, ri, _ int, v T) {
	s.m[gpuIndex(s.vol, s.site, c1, c2, ri)] = v
}
