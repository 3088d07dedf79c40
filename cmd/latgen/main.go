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

// latgen emits the unrolled per-layout specializations of the site-local
// complex multiply-accumulate kernel. The portable body in su3/kernel.go
// loops over (lane, i, k, j); the emitted specializations unroll the
// colour indices completely, the shape the original hand-tuned kernels
// take, and leave only the lane loop of the fused layout as a runtime
// loop so the compiler can vectorize it.
//
// Usage (from the su3 package directory, wired via go:generate):
//
//	go run ../cmd/latgen -output sumprod_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// siteKind describes one concrete site view type to specialize for.
type siteKind struct {
	typeName string
	// laned site views carry a runtime lane count; the others address a
	// single site and get a literal 0 lane index.
	laned bool
}

var siteKinds = []siteKind{
	{typeName: "CPUSite"},
	{typeName: "SimdSite", laned: true},
	{typeName: "GPUSite"},
}

var elemTypes = []string{"float32", "float64"}

const nCol = 3

func main() {
	output := flag.String("output", "sumprod_gen.go", "output file, relative to the su3 package directory")
	flag.Parse()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by latgen -output %s. DO NOT EDIT.\n\n", *output)
	fmt.Fprintf(&buf, "package su3\n\n")

	title := cases.Title(language.English)
	for _, kind := range siteKinds {
		for _, elem := range elemTypes {
			emitFunc(&buf, kind, elem, title.String(elem))
		}
	}

	src, err := imports.Process(*output, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("latgen: formatting %s: %v", *output, err)
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatalf("latgen: %v", err)
	}
}

// emitFunc writes one specialization: a += b*c over the 3x3 complex
// matrix, colour indices fully unrolled.
func emitFunc(buf *bytes.Buffer, kind siteKind, elem, suffix string) {
	name := fmt.Sprintf("mulAcc%s%s", kind.typeName, suffix)
	fmt.Fprintf(buf, "// %s is the unrolled complex multiply-accumulate a += b*c\n", name)
	fmt.Fprintf(buf, "// specialized for %s[%s].\n", kind.typeName, elem)
	fmt.Fprintf(buf, "func %s(a, b, c %s[%s]) {\n", name, kind.typeName, elem)

	lane, indent := "0", "\t"
	if kind.laned {
		fmt.Fprintf(buf, "\tfor l := 0; l < a.lanes; l++ {\n")
		lane, indent = "l", "\t\t"
	}
	for i := 0; i < nCol; i++ {
		for k := 0; k < nCol; k++ {
			emitBlock(buf, i, k, lane, indent)
		}
	}
	if kind.laned {
		fmt.Fprintf(buf, "\t}\n")
	}
	fmt.Fprintf(buf, "}\n\n")
}

// emitBlock writes the contribution of one b(i,k) element to row i of the
// destination: a(i,j) += b(i,k)*c(k,j) for every column j.
func emitBlock(buf *bytes.Buffer, i, k int, lane, indent string) {
	fmt.Fprintf(buf, "%s// (i,k) = (%d,%d)\n", indent, i, k)
	fmt.Fprintf(buf, "%s{\n", indent)
	in := indent + "\t"
	fmt.Fprintf(buf, "%sbr, bi := b.At(%d, %d, RE, %s), b.At(%d, %d, IM, %s)\n", in, i, k, lane, i, k, lane)
	for j := 0; j < nCol; j++ {
		op := ":="
		if j > 0 {
			op = "="
		}
		fmt.Fprintf(buf, "%scr, ci %s c.At(%d, %d, RE, %s), c.At(%d, %d, IM, %s)\n", in, op, k, j, lane, k, j, lane)
		fmt.Fprintf(buf, "%sa.Set(%d, %d, RE, %s, a.At(%d, %d, RE, %s)+br*cr-bi*ci)\n", in, i, j, lane, i, j, lane)
		fmt.Fprintf(buf, "%sa.Set(%d, %d, IM, %s, a.At(%d, %d, IM, %s)+br*ci+bi*cr)\n", in, i, j, lane, i, j, lane)
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}
