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

// latbench drives the SU(3) multiply-accumulate kernel across the three
// field layouts and both precisions, over a range of volumes, and reports
// sustained GFlop/s per combination plus a check value from the first site.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lattice/mem"
	"github.com/ajroetker/go-lattice/pool"
	"github.com/ajroetker/go-lattice/su3"
)

// flopsPerSite counts the real operations of one site's complex 3x3
// multiply-accumulate: 8 per (i,k,j) triple.
const flopsPerSite = 8 * su3.NCol * su3.NCol * su3.NCol

var (
	minVolLog2  int
	maxVolLog2  int
	workReducer int
	nThreads    int
)

func main() {
	root := &cobra.Command{
		Use:          "latbench",
		Short:        "Benchmark the SU(3) multiply-accumulate kernel across field layouts",
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().IntVar(&minVolLog2, "min-vol-log2", 4, "smallest volume, as a power of two")
	root.Flags().IntVar(&maxVolLog2, "max-vol-log2", 10, "largest volume (exclusive), as a power of two")
	root.Flags().IntVar(&workReducer, "work-reducer", 1, "divide the iteration count, for quick runs")
	root.Flags().IntVar(&nThreads, "threads", runtime.NumCPU(), "worker count, including the caller")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if workReducer < 1 {
		return fmt.Errorf("work-reducer must be at least 1, got %d", workReducer)
	}
	p := pool.New(nThreads)
	defer p.Stop()

	fmt.Printf("threads: %d  vector: %s (%d bytes)\n\n", nThreads, su3.VectorName(), su3.VectorWidth())
	runPrecision[float32](p, "float32")
	runPrecision[float64](p, "float64")
	return nil
}

func runPrecision[T su3.Float](p *pool.Pool, name string) {
	fmt.Printf("///// %s version /////\n", name)
	for k := minVolLog2; k < maxVolLog2; k++ {
		vol := 1 << k
		nIters := 400_000_000 / vol / workReducer
		if nIters < 1 {
			nIters = 1
		}

		ref := su3.NewCPUField[T](mem.OnCPU, vol)
		fillField(ref)

		var t T
		datasetMB := 3 * float64(vol) * su3.SiteLen * float64(unsafe.Sizeof(t)) / (1 << 20)
		fmt.Printf("volume: %d  dataset: %.3f MB\n", vol, datasetMB)

		benchCPU(p, ref, nIters, name)
		if vol%su3.LaneWidth[T]() == 0 {
			benchSimd(p, ref, nIters, name)
		}
		benchGPU(p, ref, nIters, name)

		ref.Release()
		fmt.Println()
	}
}

// fillField writes the deterministic per-element pattern the check value
// is derived from: (ri + 2*(c2 + 3*(c1 + 3*site))) / (18*(site+1)).
func fillField[T su3.Float](f *su3.CPUField[T]) {
	for site := 0; site < f.Vol(); site++ {
		for c1 := 0; c1 < su3.NCol; c1++ {
			for c2 := 0; c2 < su3.NCol; c2++ {
				for ri := 0; ri < su3.NReIm; ri++ {
					num := ri + su3.NReIm*(c2+su3.NCol*(c1+su3.NCol*site))
					f.Set(site, c1, c2, ri, T(num)/T(su3.SiteLen*(site+1)))
				}
			}
		}
	}
}

func report[T su3.Float](layout, prec string, vol, nIters int, elapsed time.Duration, re, im T) {
	gFlops := flopsPerSite * float64(nIters) * float64(vol) / float64(1<<30)
	fmt.Printf("  %-5s %s  GFlops/s: %8.3f  check: %v %v  time: %v\n",
		layout, prec, gFlops/elapsed.Seconds(), re, im, elapsed)
}

func benchCPU[T su3.Float](p *pool.Pool, ref *su3.CPUField[T], nIters int, prec string) {
	vol := ref.Vol()
	f1 := su3.CopyCPUToCPU(su3.NewCPUField[T](mem.OnCPU, vol), ref)
	f2 := su3.CopyCPUToCPU(su3.NewCPUField[T](mem.OnCPU, vol), ref)
	f3 := su3.CopyCPUToCPU(su3.NewCPUField[T](mem.OnCPU, vol), ref)
	defer f1.Release()
	defer f2.Release()
	defer f3.Release()

	start := time.Now()
	for i := 0; i < nIters; i++ {
		su3.SumProdCPU(p, f1, f2, f3)
	}
	p.WaitAllIdle()
	elapsed := time.Since(start)

	report("cpu", prec, vol, nIters, elapsed, f1.At(0, 0, 0, su3.RE), f1.At(0, 0, 0, su3.IM))
}

func benchSimd[T su3.Float](p *pool.Pool, ref *su3.CPUField[T], nIters int, prec string) {
	vol := ref.Vol()
	f1 := su3.CopyCPUToSimd(su3.NewSimdField[T](vol), ref)
	f2 := su3.CopyCPUToSimd(su3.NewSimdField[T](vol), ref)
	f3 := su3.CopyCPUToSimd(su3.NewSimdField[T](vol), ref)
	defer f1.Release()
	defer f2.Release()
	defer f3.Release()

	start := time.Now()
	for i := 0; i < nIters; i++ {
		su3.SumProdSimd(p, f1, f2, f3)
	}
	p.WaitAllIdle()
	elapsed := time.Since(start)

	res := su3.CopySimdToCPU(su3.NewCPUField[T](mem.OnCPU, vol), f1)
	defer res.Release()
	report("simd", prec, vol, nIters, elapsed, res.At(0, 0, 0, su3.RE), res.At(0, 0, 0, su3.IM))
}

func benchGPU[T su3.Float](p *pool.Pool, ref *su3.CPUField[T], nIters int, prec string) {
	vol := ref.Vol()
	f1 := su3.CopyCPUToGPU(p, su3.NewGPUField[T](mem.OnDevice, vol), ref)
	f2 := su3.CopyCPUToGPU(p, su3.NewGPUField[T](mem.OnDevice, vol), ref)
	f3 := su3.CopyCPUToGPU(p, su3.NewGPUField[T](mem.OnDevice, vol), ref)
	defer f1.Release()
	defer f2.Release()
	defer f3.Release()

	start := time.Now()
	for i := 0; i < nIters; i++ {
		su3.SumProdGPU(p, f1, f2, f3)
	}
	p.WaitAllIdle()
	elapsed := time.Since(start)

	res := su3.CopyGPUToCPU(p, su3.NewCPUField[T](mem.OnCPU, vol), f1)
	defer res.Release()
	report("gpu", prec, vol, nIters, elapsed, res.At(0, 0, 0, su3.RE), res.At(0, 0, 0, su3.IM))
}
