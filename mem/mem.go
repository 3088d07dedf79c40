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

// Package mem provides typed buffers per storage location. Host buffers come
// from the Go allocator; device buffers come from the active device backend.
// Provide and Release are safe for concurrent use.
package mem

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-lattice/device"
)

// Location is where a buffer physically resides.
type Location int

const (
	OnCPU Location = iota
	OnDevice
)

func (l Location) String() string {
	switch l {
	case OnCPU:
		return "cpu"
	case OnDevice:
		return "device"
	}
	return "unknown"
}

// Provide returns a zeroed buffer of n elements of T at loc.
// Failure to allocate is a fatal resource error, reported with the
// requested size.
func Provide[T any](loc Location, n int) []T {
	if n <= 0 {
		panic(fmt.Sprintf("mem: non-positive element count %d", n))
	}
	switch loc {
	case OnCPU:
		return make([]T, n)
	case OnDevice:
		var t T
		bytes := n * int(unsafe.Sizeof(t))
		p, err := device.Active.Alloc(bytes)
		if err != nil {
			panic(fmt.Sprintf("mem: cannot provide %d elements (%d bytes) on device: %v", n, bytes, err))
		}
		return unsafe.Slice((*T)(p), n)
	}
	panic(fmt.Sprintf("mem: unsupported storage location %d", int(loc)))
}

// Release returns a buffer obtained from Provide. The caller must release a
// buffer at most once; double release is forbidden by the field ownership
// invariant and is not detected here.
func Release[T any](loc Location, buf []T) {
	if len(buf) == 0 {
		return
	}
	switch loc {
	case OnCPU:
		// Host buffers are garbage collected.
	case OnDevice:
		device.Active.Free(unsafe.Pointer(&buf[0]))
	default:
		panic(fmt.Sprintf("mem: unsupported storage location %d", int(loc)))
	}
}
