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

// Package su3 implements storage-layout-polymorphic fields of 3x3 complex
// matrices, the site data of lattice gauge-theory simulations.
//
// A field is a 1-D array of sites; each site holds an SU(3)-like 3x3 matrix
// of complex numbers, stored as adjacent real and imaginary components
// (never a native complex type, so layouts are free to interleave precision
// and vector lanes differently). Three layouts share one addressing
// contract:
//
//   - CPUField: one scalar per (row, col, re/im) slot, site-major. The
//     reference layout.
//   - SimdField: laneWidth consecutive sites fused into one vector slot per
//     (row, col, re/im), so the innermost stride runs over sites.
//   - GPUField: colour-major, site-minor; host- or device-resident.
//
// Kernels are written once against the SiteView contract and instantiated
// per concrete layout through generics, so the hot path carries no
// interface dispatch. Conversions between layouts live in the copy matrix
// (CopyCPUToCPU, CopyCPUToSimd, ...); they reproduce site values exactly up
// to explicit precision narrowing and are never raw memory copies except in
// the identical-layout, identical-precision case.
package su3

// NCol is the number of colours: fields hold NCol x NCol complex matrices.
const NCol = 3

// NReIm is the number of real components per complex number.
const NReIm = 2

// SiteLen is the number of fundamental elements per site.
const SiteLen = NCol * NCol * NReIm

// Indices of the real and imaginary parts within a complex pair.
const (
	RE = 0
	IM = 1
)

// Float constrains the fundamental scalar type of a field.
type Float interface {
	~float32 | ~float64
}
