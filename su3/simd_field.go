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

	"github.com/ajroetker/go-lattice/mem"
	"github.com/ajroetker/go-lattice/pool"
)

// SimdField is the vector-fused layout: lanes consecutive original sites
// are packed into one fused super-site, one full vector register per
// (row, col, re/im) slot. Always host-resident.
//
// The flat element offset of (fusedSite fs, col1, col2, reIm, lane) is
// lane + lanes*(reIm + 2*(col2 + NCol*(col1 + NCol*fs))): the scalar
// addressing scheme in units of whole vectors.
type SimdField[T Float] struct {
	fusedVol int
	lanes    int
	data     []T
	isRef    bool
	released bool
}

// NewSimdField allocates a fused field covering vol original sites using
// the machine lane width for T. vol must be an exact multiple of the lane
// width; a non-multiple is a configuration error, never truncated.
func NewSimdField[T Float](vol int) *SimdField[T] {
	return NewSimdFieldLanes[T](vol, LaneWidth[T]())
}

// NewSimdFieldLanes is NewSimdField with an explicit lane count, for
// reproducing a fixed fusing independent of the host vector width.
func NewSimdFieldLanes[T Float](vol, lanes int) *SimdField[T] {
	if lanes < 1 {
		panic(fmt.Sprintf("su3: invalid lane width %d", lanes))
	}
	if vol <= 0 || vol%lanes != 0 {
		panic(fmt.Sprintf("su3: volume %d is not a positive multiple of the lane width %d", vol, lanes))
	}
	return &SimdField[T]{
		fusedVol: vol / lanes,
		lanes:    lanes,
		data:     mem.Provide[T](mem.OnCPU, SiteLen*vol),
	}
}

// Vol returns the number of original (unfused) sites.
func (f *SimdField[T]) Vol() int { return f.fusedVol * f.lanes }

// FusedVol returns the number of fused super-sites.
func (f *SimdField[T]) FusedVol() int { return f.fusedVol }

// NSites returns the number of loopable sites: the fused volume.
func (f *SimdField[T]) NSites() int { return f.fusedVol }

// LaneCount returns how many original sites one fused site packs.
func (f *SimdField[T]) LaneCount() int { return f.lanes }

// Ref returns a non-owning alias of f.
func (f *SimdField[T]) Ref() *SimdField[T] {
	c := *f
	c.isRef = true
	return &c
}

// Release frees the underlying buffer; see CPUField.Release.
func (f *SimdField[T]) Release() {
	if f.isRef {
		return
	}
	if f.released {
		panic("su3: field buffer released twice")
	}
	mem.Release(mem.OnCPU, f.data)
	f.data = nil
	f.released = true
}

func (f *SimdField[T]) index(fs, c1, c2, ri, lane int) int {
	return lane + f.lanes*(ri+NReIm*(c2+NCol*(c1+NCol*fs)))
}

// At returns the element at (fusedSite, col1, col2, reIm, lane).
func (f *SimdField[T]) At(fs, c1, c2, ri, lane int) T {
	return f.data[f.index(fs, c1, c2, ri, lane)]
}

// Set stores the element at (fusedSite, col1, col2, reIm, lane).
func (f *SimdField[T]) Set(fs, c1, c2, ri, lane int, v T) {
	f.data[f.index(fs, c1, c2, ri, lane)] = v
}

// Site returns a view anchored at one fused super-site.
func (f *SimdField[T]) Site(fs int) SimdSite[T] {
	base := SiteLen * f.lanes * fs
	return SimdSite[T]{m: f.data[base : base+SiteLen*f.lanes], lanes: f.lanes}
}

// SitesLoop drives kern over every fused site through the pool.
func (f *SimdField[T]) SitesLoop(p *pool.Pool, kern func(site int)) {
	p.LoopSplit(0, f.fusedVol, func(_, fs int) {
		kern(fs)
	})
}

// SimdSite is a non-owning view of one fused super-site.
type SimdSite[T Float] struct {
	m     []T
	lanes int
}

// Lanes returns the number of original sites fused into this slot.
func (s SimdSite[T]) Lanes() int { return s.lanes }

// At returns the (col1, col2, reIm) element of lane lane.
func (s SimdSite[T]) At(c1, c2, ri, lane int) T {
	return s.m[lane+s.lanes*(ri+NReIm*(c2+NCol*c1))]
}

// Set stores the (col1, col2, reIm) element of lane lane.
func (s SimdSite[T]) Set(c1, c2, ri, lane int, v T) {
	s.m[lane+s.lanes*(ri+NReIm*(c2+NCol*c1))] = v
}
