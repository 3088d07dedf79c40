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

//go:build arm64

package su3

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		vectorWidth = 16
		vectorName = "scalar"
		return
	}
	if cpu.ARM64.HasASIMD {
		// NEON: 128-bit vectors. SVE widths would need runtime probing;
		// NEON sizing is always valid on machines that also have SVE.
		vectorWidth = 16
		vectorName = "neon"
	}
}
