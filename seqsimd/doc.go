// Copyright 2023 the fasterqc authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package seqsimd provides SIMD-accelerated decoding of packed
// 2-nucleotides-per-byte sequence buffers and Phred-offset quality buffers
// into printable ASCII, for use in per-read hot loops where the compiler
// cannot be trusted to autovectorize.
//
// All functions here are pure transformations over caller-owned buffers:
// no allocation, no retention, no I/O.  The only process-lifetime state is
// the decoder implementation choice, resolved once at package init.
package seqsimd
