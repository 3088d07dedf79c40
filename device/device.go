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

// Package device abstracts the accelerator runtime behind a small backend
// contract. The default backend keeps "device" buffers in ordinary host
// memory and runs device loops on the calling goroutine, so the library
// builds and runs without any accelerator runtime installed. A real runtime
// replaces Active during its init.
package device

import (
	"errors"
	"sync"
	"unsafe"
)

// Direction identifies which way a Memcpy crosses the host/device boundary.
type Direction int

const (
	HostToDevice Direction = iota
	DeviceToHost
	DeviceToDevice
)

func (d Direction) String() string {
	switch d {
	case HostToDevice:
		return "host-to-device"
	case DeviceToHost:
		return "device-to-host"
	case DeviceToDevice:
		return "device-to-device"
	}
	return "unknown"
}

// ErrNoDevice is returned by backends that have no accelerator available
// for an operation they cannot satisfy on the host.
var ErrNoDevice = errors.New("device: no accelerator runtime configured")

// Backend is the accelerator runtime contract. Loop must visit every index
// in [begin, end) exactly once; ordering is unspecified.
type Backend interface {
	Alloc(bytes int) (unsafe.Pointer, error)
	Free(p unsafe.Pointer)
	Memcpy(dst, src unsafe.Pointer, bytes int, dir Direction) error
	Loop(begin, end int, f func(i int))
}

// Active is the backend used for all device allocations, transfers and
// loops. The host fallback is installed by default.
var Active Backend = newHostFallback()

// hostFallback satisfies the Backend contract with plain host memory.
// Allocations are kept in a registry so the garbage collector does not
// reclaim buffers that are only reachable through raw pointers.
type hostFallback struct {
	mu   sync.Mutex
	live map[uintptr][]byte
}

func newHostFallback() *hostFallback {
	return &hostFallback{live: make(map[uintptr][]byte)}
}

func (h *hostFallback) Alloc(bytes int) (unsafe.Pointer, error) {
	if bytes <= 0 {
		return nil, errors.New("device: non-positive allocation size")
	}
	buf := make([]byte, bytes)
	p := unsafe.Pointer(&buf[0])
	h.mu.Lock()
	h.live[uintptr(p)] = buf
	h.mu.Unlock()
	return p, nil
}

func (h *hostFallback) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	h.mu.Lock()
	delete(h.live, uintptr(p))
	h.mu.Unlock()
}

func (h *hostFallback) Memcpy(dst, src unsafe.Pointer, bytes int, dir Direction) error {
	if bytes == 0 {
		return nil
	}
	if dst == nil || src == nil {
		return errors.New("device: nil pointer in memcpy")
	}
	d := unsafe.Slice((*byte)(dst), bytes)
	s := unsafe.Slice((*byte)(src), bytes)
	copy(d, s)
	return nil
}

func (h *hostFallback) Loop(begin, end int, f func(i int)) {
	for i := begin; i < end; i++ {
		f(i)
	}
}

// Loop runs f over [begin, end) on the active backend.
func Loop(begin, end int, f func(i int)) {
	Active.Loop(begin, end, f)
}
