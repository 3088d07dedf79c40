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

// The cross-layout copy matrix. One function per supported
// (destination, source) combination; combinations that would need a device
// kernel are rejected, and combinations that make no sense (for example a
// cross-precision flat device transfer) have no function at all. Every
// conversion reads the source without mutating it and returns the
// destination. A conversion is a raw memory copy only in the
// identical-layout, identical-location, identical-precision case; flat
// host/device transfers additionally require identical layout and
// precision.

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-lattice/device"
	"github.com/ajroetker/go-lattice/mem"
	"github.com/ajroetker/go-lattice/pool"
)

func checkVols(dstVol, srcVol int) {
	if dstVol != srcVol {
		panic(fmt.Sprintf("su3: conversion volume mismatch: dst %d, src %d", dstVol, srcVol))
	}
}

// sameElem reports whether D and S are the same fundamental type.
func sameElem[D, S Float]() bool {
	var d D
	_, ok := any(d).(S)
	return ok
}

func panicDeviceKernel() {
	panic("su3: cross-precision conversion involving device memory must be done with a device kernel")
}

// transferFlat moves a same-precision, same-layout buffer across locations.
// A failed backend transfer is fatal, reported with the byte count and
// direction.
func transferFlat[T Float](dstLoc, srcLoc mem.Location, dst, src []T) {
	if dstLoc == mem.OnCPU && srcLoc == mem.OnCPU {
		copy(dst, src)
		return
	}
	var dir device.Direction
	switch {
	case srcLoc == mem.OnCPU:
		dir = device.HostToDevice
	case dstLoc == mem.OnCPU:
		dir = device.DeviceToHost
	default:
		dir = device.DeviceToDevice
	}
	var t T
	bytes := len(src) * int(unsafe.Sizeof(t))
	if err := device.Active.Memcpy(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), bytes, dir); err != nil {
		panic(fmt.Sprintf("su3: %s transfer of %d bytes failed: %v", dir, bytes, err))
	}
}

// CopyCPUToCPU converts between two scalar-layout fields, casting the
// precision element by element. Same-precision copies are flat; a
// cross-precision copy with either end in device memory is rejected.
func CopyCPUToCPU[D, S Float](dst *CPUField[D], src *CPUField[S]) *CPUField[D] {
	checkVols(dst.vol, src.vol)
	if sameElem[D, S]() {
		transferFlat(dst.loc, src.loc, dst.data, any(src.data).([]D))
		return dst
	}
	if dst.loc == mem.OnDevice || src.loc == mem.OnDevice {
		panicDeviceKernel()
	}
	for i, v := range src.data {
		dst.data[i] = D(v)
	}
	return dst
}

// CopyCPUToSimd de-interleaves laneWidth consecutive scalar sites into the
// lanes of one fused super-site. The source must be host-resident.
func CopyCPUToSimd[D, S Float](dst *SimdField[D], src *CPUField[S]) *SimdField[D] {
	checkVols(dst.Vol(), src.vol)
	if src.loc != mem.OnCPU {
		panicDeviceKernel()
	}
	lanes := dst.lanes
	for site := 0; site < src.vol; site++ {
		fs, lane := site/lanes, site%lanes
		for c1 := 0; c1 < NCol; c1++ {
			for c2 := 0; c2 < NCol; c2++ {
				for ri := 0; ri < NReIm; ri++ {
					dst.Set(fs, c1, c2, ri, lane, D(src.At(site, c1, c2, ri)))
				}
			}
		}
	}
	return dst
}

// CopySimdToCPU re-interleaves fused super-sites back into consecutive
// scalar sites. The destination must be host-resident.
func CopySimdToCPU[D, S Float](dst *CPUField[D], src *SimdField[S]) *CPUField[D] {
	checkVols(dst.vol, src.Vol())
	if dst.loc != mem.OnCPU {
		panicDeviceKernel()
	}
	lanes := src.lanes
	for fs := 0; fs < src.fusedVol; fs++ {
		for c1 := 0; c1 < NCol; c1++ {
			for c2 := 0; c2 < NCol; c2++ {
				for ri := 0; ri < NReIm; ri++ {
					for lane := 0; lane < lanes; lane++ {
						dst.Set(lane+lanes*fs, c1, c2, ri, D(src.At(fs, c1, c2, ri, lane)))
					}
				}
			}
		}
	}
	return dst
}

// TransferGPU moves an accelerator-layout field across the host/device
// boundary (or between two buffers on the same side) as one flat transfer.
// Both ends share stride order and precision, so the cost is proportional
// to the byte size; a cross-precision transfer is not expressible.
func TransferGPU[T Float](dst, src *GPUField[T]) *GPUField[T] {
	checkVols(dst.vol, src.vol)
	transferFlat(dst.loc, src.loc, dst.data, src.data)
	return dst
}

// CopyGPUToCPU re-strides an accelerator-layout field into the scalar
// layout, element by element through the pool's site loop. A
// device-resident end is first staged through a same-precision flat
// transfer; with differing precision that staging is impossible and the
// conversion is rejected.
func CopyGPUToCPU[D, S Float](p *pool.Pool, dst *CPUField[D], src *GPUField[S]) *CPUField[D] {
	checkVols(dst.vol, src.vol)
	if dst.loc == mem.OnDevice || src.loc == mem.OnDevice {
		if !sameElem[D, S]() {
			panicDeviceKernel()
		}
	}

	gsrc := src
	if src.loc == mem.OnDevice {
		stage := NewGPUField[S](mem.OnCPU, src.vol)
		defer stage.Release()
		TransferGPU(stage, src)
		gsrc = stage
	}

	cdst := dst
	if dst.loc == mem.OnDevice {
		stage := NewCPUField[D](mem.OnCPU, dst.vol)
		defer func() {
			transferFlat(dst.loc, stage.loc, dst.data, stage.data)
			stage.Release()
		}()
		cdst = stage
	}

	restrideGPUToCPU(p, cdst, gsrc)
	return dst
}

// CopyCPUToGPU re-strides a scalar-layout field into the accelerator
// layout; the mirror of CopyGPUToCPU, including the staged device paths
// (a device-resident scalar source is flat-copied to the host, and a
// device-resident accelerator destination receives the host-restrided
// intermediate as one flat transfer).
func CopyCPUToGPU[D, S Float](p *pool.Pool, dst *GPUField[D], src *CPUField[S]) *GPUField[D] {
	checkVols(dst.vol, src.vol)
	if dst.loc == mem.OnDevice || src.loc == mem.OnDevice {
		if !sameElem[D, S]() {
			panicDeviceKernel()
		}
	}

	csrc := src
	if src.loc == mem.OnDevice {
		stage := NewCPUField[S](mem.OnCPU, src.vol)
		defer stage.Release()
		transferFlat(stage.loc, src.loc, stage.data, src.data)
		csrc = stage
	}

	gdst := dst
	if dst.loc == mem.OnDevice {
		stage := NewGPUField[D](mem.OnCPU, dst.vol)
		defer func() {
			TransferGPU(dst, stage)
			stage.Release()
		}()
		gdst = stage
	}

	restrideCPUToGPU(p, gdst, csrc)
	return dst
}

func restrideGPUToCPU[D, S Float](p *pool.Pool, dst *CPUField[D], src *GPUField[S]) {
	p.LoopSplit(0, src.vol, func(_, site int) {
		for c1 := 0; c1 < NCol; c1++ {
			for c2 := 0; c2 < NCol; c2++ {
				for ri := 0; ri < NReIm; ri++ {
					dst.Set(site, c1, c2, ri, D(src.At(site, c1, c2, ri)))
				}
			}
		}
	})
	p.WaitAllIdle()
}

func restrideCPUToGPU[D, S Float](p *pool.Pool, dst *GPUField[D], src *CPUField[S]) {
	p.LoopSplit(0, src.vol, func(_, site int) {
		for c1 := 0; c1 < NCol; c1++ {
			for c2 := 0; c2 < NCol; c2++ {
				for ri := 0; ri < NReIm; ri++ {
					dst.Set(site, c1, c2, ri, D(src.At(site, c1, c2, ri)))
				}
			}
		}
	})
	p.WaitAllIdle()
}
