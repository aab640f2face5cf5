// Copyright 2023 the fasterqc authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine

package seqsimd

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// bytesPerVec is the size of the vectors used by the assembly below.
const bytesPerVec = 16

// *** the following functions are defined in seq_amd64.s

//go:noescape
func unpackAndDecodeSeqSSSE3Asm(dst, src, tablePtr unsafe.Pointer, nSrcByte int)

// *** end assembly function signatures

// decodeSeqBlocks is bound exactly once, before main() starts, so
// concurrent DecodeSeq callers can never observe a partially published
// selector, and the binding never changes afterwards.  The chosen
// implementation affects throughput only, never output.
var decodeSeqBlocks = resolveDecodeSeqBlocks()

func resolveDecodeSeqBlocks() func(dst, src []byte, nSrcFullByte int) int {
	if !cpu.X86.HasSSSE3 {
		return decodeSeqBlocksGeneric
	}
	return decodeSeqBlocksSSSE3
}

// decodeSeqBlocksSSSE3 decodes whole 16-byte source blocks, 32 bases per
// vector iteration, and returns the number of source bytes consumed.  The
// caller's scalar loop finishes the remainder, so no store ever lands past
// dst[2 * nSrcFullByte - 1].
func decodeSeqBlocksSSSE3(dst, src []byte, nSrcFullByte int) int {
	nBlockByte := nSrcFullByte &^ (bytesPerVec - 1)
	if nBlockByte == 0 {
		return 0
	}
	// Note that unsafe.Pointer(&src[0]) breaks when len(src) == 0, but
	// nBlockByte >= 16 guarantees nonempty slices here.
	unpackAndDecodeSeqSSSE3Asm(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), unsafe.Pointer(&SeqASCIITable), nBlockByte)
	return nBlockByte
}
