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

package device

import (
	"testing"
	"unsafe"
)

func TestHostFallbackAllocFree(t *testing.T) {
	h := newHostFallback()

	p, err := h.Alloc(128)
	if err != nil {
		t.Fatalf("Alloc(128): %v", err)
	}
	if p == nil {
		t.Fatal("Alloc(128) returned nil pointer")
	}
	buf := unsafe.Slice((*byte)(p), 128)
	for i := range buf {
		buf[i] = byte(i)
	}
	h.Free(p)

	if _, err := h.Alloc(0); err == nil {
		t.Error("Alloc(0) did not fail")
	}
	h.Free(nil)
}

func TestHostFallbackMemcpy(t *testing.T) {
	h := newHostFallback()

	src := make([]byte, 64)
	for i := range src {
		src[i] = byte(64 - i)
	}
	dst := make([]byte, 64)

	for _, dir := range []Direction{HostToDevice, DeviceToHost, DeviceToDevice} {
		clear(dst)
		if err := h.Memcpy(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), 64, dir); err != nil {
			t.Fatalf("Memcpy %s: %v", dir, err)
		}
		for i := range dst {
			if dst[i] != src[i] {
				t.Fatalf("Memcpy %s: dst[%d] = %d, want %d", dir, i, dst[i], src[i])
			}
		}
	}

	if err := h.Memcpy(nil, unsafe.Pointer(&src[0]), 1, HostToDevice); err == nil {
		t.Error("Memcpy with nil dst did not fail")
	}
	if err := h.Memcpy(nil, nil, 0, HostToDevice); err != nil {
		t.Errorf("zero-byte Memcpy failed: %v", err)
	}
}

func TestLoopVisitsRangeInOrder(t *testing.T) {
	var got []int
	Loop(3, 9, func(i int) { got = append(got, i) })

	want := []int{3, 4, 5, 6, 7, 8}
	if len(got) != len(want) {
		t.Fatalf("visited %d indices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visit %d: got %d, want %d", i, got[i], want[i])
		}
	}

	Loop(5, 5, func(int) { t.Error("empty range visited an index") })
}

func TestDirectionString(t *testing.T) {
	cases := map[Direction]string{
		HostToDevice:   "host-to-device",
		DeviceToHost:   "device-to-host",
		DeviceToDevice: "device-to-device",
		Direction(42):  "unknown",
	}
	for dir, want := range cases {
		if got := dir.String(); got != want {
			t.Errorf("Direction(%d) = %q, want %q", int(dir), got, want)
		}
	}
}
