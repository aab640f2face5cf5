// Copyright 2023 the fasterqc authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seqsimd_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/grailbio/base/simd"
)

type multiBenchFunc func(dst, src []byte, nIter int) int

type taggedMultiBenchFunc struct {
	f   multiBenchFunc
	tag string
}

type bytesInitFunc func(main []byte)

type multiBenchmarkOpts struct {
	dstInit bytesInitFunc
	srcInit bytesInitFunc
}

// multiBenchmark reports <subtype>{1Cpu,HalfCpu,AllCpu} timings for bf.
// Each worker goroutine gets its own dst/src buffer pair (allocated with
// extra capacity so unsafe functions may also be benchmarked) and runs its
// share of nJob calls.
func multiBenchmark(bf multiBenchFunc, benchmarkSubtype string, nDstByte, nSrcByte, nJob int, b *testing.B, opts ...multiBenchmarkOpts) {
	totalCpu := runtime.NumCPU()
	var dstInit, srcInit bytesInitFunc
	if len(opts) > 0 {
		dstInit = opts[0].dstInit
		srcInit = opts[0].srcInit
	}
	cases := []struct {
		desc string
		nCpu int
	}{
		{desc: "1Cpu", nCpu: 1},
		{desc: "HalfCpu", nCpu: (totalCpu + 1) >> 1},
		{desc: "AllCpu", nCpu: totalCpu},
	}
	for _, c := range cases {
		nCpu := c.nCpu
		b.Run(benchmarkSubtype+c.desc, func(b *testing.B) {
			dsts := make([][]byte, nCpu)
			srcs := make([][]byte, nCpu)
			for i := range dsts {
				dsts[i] = simd.MakeUnsafe(nDstByte)
				if dstInit != nil {
					dstInit(dsts[i])
				}
				srcs[i] = simd.MakeUnsafe(nSrcByte)
				if srcInit != nil {
					srcInit(srcs[i])
				} else {
					for j := range srcs[i] {
						srcs[i][j] = byte(j * 3)
					}
				}
			}
			nJobPerCpu := (nJob + nCpu - 1) / nCpu
			b.ResetTimer()
			for iter := 0; iter < b.N; iter++ {
				var wg sync.WaitGroup
				for i := 0; i < nCpu; i++ {
					wg.Add(1)
					go func(taskIdx int) {
						defer wg.Done()
						bf(dsts[taskIdx], srcs[taskIdx], nJobPerCpu)
					}(i)
				}
				wg.Wait()
			}
		})
	}
}

func bytesInitMax93(main []byte) {
	for i := range main {
		main[i] = byte(i % 94)
	}
}
