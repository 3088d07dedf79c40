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

//go:build amd64

package su3

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		// Keep the 16-byte baseline width even without SIMD so layouts
		// stay consistent across machines.
		vectorWidth = 16
		vectorName = "scalar"
		return
	}
	switch {
	case cpu.X86.HasAVX512F:
		vectorWidth = 64
		vectorName = "avx512"
	case cpu.X86.HasAVX2:
		vectorWidth = 32
		vectorName = "avx2"
	default:
		// SSE2 is baseline for all amd64 CPUs.
		vectorWidth = 16
		vectorName = "sse2"
	}
}
