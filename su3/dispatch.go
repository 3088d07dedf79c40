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
	"os"
	"unsafe"
)

// Set by the per-architecture init in dispatch_*.go.
var (
	vectorWidth = 16
	vectorName  = "scalar"
)

// VectorWidth returns the vector register width in bytes used to size the
// SIMD-fused layout on this machine.
func VectorWidth() int {
	return vectorWidth
}

// VectorName returns a short name for the detected vector extension
// ("avx512", "avx2", "sse2", "neon" or "scalar").
func VectorName() string {
	return vectorName
}

// NoSimdEnv reports whether SIMD sizing is disabled via the environment.
// When set, the fused layout falls back to the 16-byte baseline width.
func NoSimdEnv() bool {
	v := os.Getenv("LATTICE_NO_SIMD")
	return v == "1" || v == "true"
}

// LaneWidth returns the number of T lanes per vector register, i.e. how
// many consecutive sites the SIMD-fused layout packs into one slot.
func LaneWidth[T Float]() int {
	var t T
	return vectorWidth / int(unsafe.Sizeof(t))
}
