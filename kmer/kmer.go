// Copyright 2023 the fasterqc authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package kmer computes canonical 2-bit-packed k-mer fingerprints of ASCII
// sequence windows.  A canonical k-mer is the numerically smaller of a
// k-mer's encoding and its reverse complement's, so reads from either
// strand produce the same fingerprint.
package kmer

import "errors"

// MaxK is the largest k that fits a 64-bit encoding at 2 bits per base.
const MaxK = 32

// ErrUnknownBase means the window contains a byte that is not a nucleotide
// or IUPAC ambiguity code.  It takes precedence over ErrAmbiguousBase when
// both kinds occur in one window.
var ErrUnknownBase = errors.New("kmer: unknown non-nucleotide character")

// ErrAmbiguousBase means the window contains an N or another IUPAC
// ambiguity code, which has no 2-bit encoding.
var ErrAmbiguousBase = errors.New("kmer: ambiguous nucleotide")

// Invalid bytes carry a flag above the 2-bit code range, so classification
// can ride along with the packing loop in a single OR-accumulator.
const (
	flagUnknown   = 4
	flagAmbiguous = 8
)

// baseToTwoBit maps A/C/G/T (either case) to 0/1/2/3, the ten IUPAC
// ambiguity letters plus N (either case) to flagAmbiguous, and every other
// byte to flagUnknown.  The code assignment makes complement(code) equal
// ^code on 2 bits: A(0) pairs with T(3) and C(1) with G(2).  Downstream
// duplicate tracking depends on these exact classes and codes.
var baseToTwoBit = makeBaseToTwoBitTable()

func makeBaseToTwoBitTable() (table [256]uint64) {
	for i := range table {
		table[i] = flagUnknown
	}
	codes := map[byte]uint64{'A': 0, 'C': 1, 'G': 2, 'T': 3}
	for base, code := range codes {
		table[base] = code
		table[base+'a'-'A'] = code
	}
	for _, base := range []byte("NRYSWKMBDHV") {
		table[base] = flagAmbiguous
		table[base+'a'-'A'] = flagAmbiguous
	}
	return
}

// Canonical packs window[:k] into a 2-bit-per-base uint64 (first base in
// the most significant position) and returns the smaller of that value and
// its reverse complement.  It returns ErrUnknownBase or ErrAmbiguousBase
// if any byte in the window has no 2-bit encoding; ErrUnknownBase wins
// when both classes are present.
//
// It panics if k is outside [1, MaxK] or len(window) < k, and never reads
// window[k:].
func Canonical(window []byte, k int) (uint64, error) {
	if k < 1 || k > MaxK {
		panic("kmer.Canonical() requires 1 <= k <= 32.")
	}
	if len(window) < k {
		panic("kmer.Canonical() requires len(window) >= k.")
	}
	// Four bases per step keeps more adds in flight; results are identical
	// to the per-base loop below, invalid-flag bits included.
	var fwd, flags uint64
	pos := 0
	for ; pos+4 <= k; pos += 4 {
		nuc0 := baseToTwoBit[window[pos]]
		nuc1 := baseToTwoBit[window[pos+1]]
		nuc2 := baseToTwoBit[window[pos+2]]
		nuc3 := baseToTwoBit[window[pos+3]]
		flags |= nuc0 | nuc1 | nuc2 | nuc3
		fwd = fwd<<8 | nuc0<<6 | nuc1<<4 | nuc2<<2 | nuc3
	}
	for ; pos != k; pos++ {
		nuc := baseToTwoBit[window[pos]]
		flags |= nuc
		fwd = fwd<<2 | nuc
	}
	if flags > 3 {
		if flags&flagUnknown != 0 {
			return 0, ErrUnknownBase
		}
		return 0, ErrAmbiguousBase
	}
	revComp := RevComp(fwd, k)
	if revComp < fwd {
		return revComp, nil
	}
	return fwd, nil
}

// RevComp returns the reverse complement of a k-base 2-bit encoding.
//
// Complementing is a plain bitwise NOT thanks to the code assignment, and
// the base order is reversed by swapping progressively smaller bit groups
// across the full 64-bit word.  The full-width reversal leaves the 64-2k
// unused bits at the low end, so a final right shift realigns the k
// meaningful groups; for k == 32 that shift is zero.
func RevComp(code uint64, k int) uint64 {
	c := ^code
	c = c>>32 | c<<32
	c = (c&0xFFFF0000FFFF0000)>>16 | (c&0x0000FFFF0000FFFF)<<16
	c = (c&0xFF00FF00FF00FF00)>>8 | (c&0x00FF00FF00FF00FF)<<8
	c = (c&0xF0F0F0F0F0F0F0F0)>>4 | (c&0x0F0F0F0F0F0F0F0F)<<4
	c = (c&0xCCCCCCCCCCCCCCCC)>>2 | (c&0x3333333333333333)<<2
	return c >> (64 - uint(k)*2)
}

var twoBitToBase = [4]byte{'A', 'C', 'G', 'T'}

// Decode expands a 2-bit encoding back into an upper-case ACGT byte
// string, most significant base first.  It panics if k is outside
// [1, MaxK].  Bits above the k encoded bases are ignored.
func Decode(code uint64, k int) []byte {
	if k < 1 || k > MaxK {
		panic("kmer.Decode() requires 1 <= k <= 32.")
	}
	seq := make([]byte, k)
	for pos := k - 1; pos >= 0; pos-- {
		seq[pos] = twoBitToBase[code&3]
		code >>= 2
	}
	return seq
}
