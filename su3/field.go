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

// cpuIndex is the site-major, colour-minor addressing of the scalar layout:
// reim + 2*(col2 + NCol*(col1 + NCol*site)).
func cpuIndex(site, c1, c2, ri int) int {
	return ri + NReIm*(c2+NCol*(c1+NCol*site))
}

// CPUField is the scalar layout: one element per site per
// (row, col, re/im) slot, site-major. It is the reference layout every
// other layout converts from and to.
//
// A field constructed with NewCPUField owns its buffer and must be
// released exactly once. A field obtained from Ref aliases the original
// buffer and never releases it.
type CPUField[T Float] struct {
	vol      int
	loc      mem.Location
	data     []T
	isRef    bool
	released bool
}

// NewCPUField allocates a scalar-layout field of vol sites at loc.
func NewCPUField[T Float](loc mem.Location, vol int) *CPUField[T] {
	if vol <= 0 {
		panic(fmt.Sprintf("su3: invalid volume %d", vol))
	}
	return &CPUField[T]{
		vol:  vol,
		loc:  loc,
		data: mem.Provide[T](loc, SiteLen*vol),
	}
}

// Vol returns the number of sites.
func (f *CPUField[T]) Vol() int { return f.vol }

// NSites returns the number of loopable sites; for the scalar layout this
// equals Vol.
func (f *CPUField[T]) NSites() int { return f.vol }

// Loc returns where the buffer resides.
func (f *CPUField[T]) Loc() mem.Location { return f.loc }

// Ref returns a non-owning alias of f. Releasing the alias is a no-op; the
// alias is valid only while f is alive.
func (f *CPUField[T]) Ref() *CPUField[T] {
	c := *f
	c.isRef = true
	return &c
}

// Release frees the underlying buffer. Owners release exactly once;
// releasing twice is a fatal error. No-op on references.
func (f *CPUField[T]) Release() {
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
func (f *CPUField[T]) At(site, c1, c2, ri int) T {
	return f.data[cpuIndex(site, c1, c2, ri)]
}

// Set stores the element at (site, col1, col2, reIm).
func (f *CPUField[T]) Set(site, c1, c2, ri int, v T) {
	f.data[cpuIndex(site, c1, c2, ri)] = v
}

// Site returns a view anchored at one site, with the site index folded
// out. The view is valid only while f is alive.
func (f *CPUField[T]) Site(site int) CPUSite[T] {
	base := SiteLen * site
	return CPUSite[T]{m: f.data[base : base+SiteLen]}
}

// SitesLoop drives kern over every site through the pool's chunked loop.
func (f *CPUField[T]) SitesLoop(p *pool.Pool, kern func(site int)) {
	p.LoopSplit(0, f.vol, func(_, site int) {
		kern(site)
	})
}

// CPUSite is a non-owning view of one scalar-layout site.
type CPUSite[T Float] struct {
	m []T
}

// Lanes is 1: the scalar layout carries one site per slot.
func (CPUSite[T]) Lanes() int { return 1 }

// At returns the (col1, col2, reIm) element. The lane index is ignored.
func (s CPUSite[T]) At(c1, c2, ri, _ int) T {
	return s.m[ri+NReIm*(c2+NCol*c1)]
}

// Set stores the (col1, col2, reIm) element. The lane index is ignored.
func (s CPUSite[T]) Set(c1, c2, ri, _ int, v T) {
	s.m[ri+NReIm*(c2+NCol*c1)] = v
}
