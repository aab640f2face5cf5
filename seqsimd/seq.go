// Copyright 2023 the fasterqc authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seqsimd

// SeqASCIITable maps the 4-bit packed nucleotide codes to their ASCII
// representations.  This is the standard .bam seq-field alphabet, ambiguity
// codes included; downstream consumers depend on these exact characters, so
// the table must not be altered.  Code 0 ('=') does not appear in valid
// biological data but still decodes.
var SeqASCIITable = [16]byte{
	'=', 'A', 'C', 'M', 'G', 'R', 'S', 'V', 'T', 'W', 'Y', 'H', 'K', 'D', 'B', 'N'}

// DecodeSeq fills dst[] with the ASCII expansion of the packed sequence
// src[], as follows:
//
//	if pos is even, dst[pos] := SeqASCIITable[src[pos / 2] >> 4]
//	if pos is odd, dst[pos] := SeqASCIITable[src[pos / 2] & 15]
//
// The decoded length is len(dst); if it's odd, the final base comes from
// the high nibble of the last src[] byte and the low nibble is ignored.
// It panics if len(src) != (len(dst) + 1) / 2.
//
// Every nibble value decodes to a defined character; biological validity is
// not this layer's concern.  Exactly len(dst) bytes are written.
func DecodeSeq(dst, src []byte) {
	dstLen := len(dst)
	nSrcFullByte := dstLen >> 1
	srcOdd := dstLen & 1
	if len(src) != nSrcFullByte+srcOdd {
		panic("DecodeSeq() requires len(src) == (len(dst) + 1) / 2.")
	}
	srcPos := decodeSeqBlocks(dst, src, nSrcFullByte)
	for ; srcPos != nSrcFullByte; srcPos++ {
		srcByte := src[srcPos]
		dst[2*srcPos] = SeqASCIITable[srcByte>>4]
		dst[2*srcPos+1] = SeqASCIITable[srcByte&15]
	}
	if srcOdd == 1 {
		dst[2*nSrcFullByte] = SeqASCIITable[src[nSrcFullByte]>>4]
	}
}

// decodeSeqBlocksGeneric is the block decoder of last resort: it consumes
// nothing and leaves all the work to the scalar loop above.
func decodeSeqBlocksGeneric(dst, src []byte, nSrcFullByte int) int {
	return 0
}
