// Copyright 2023 the fasterqc authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seqsimd

import (
	"github.com/grailbio/base/simd"
)

// PhredOffset is added to every raw quality value to produce the printable
// Phred+33 ASCII encoding.
const PhredOffset = 33

// DecodeQuals sets dst[pos] := src[pos] + PhredOffset for every position.
// It panics if len(dst) != len(src).
//
// Raw qualities are nominally in [0, 93]; out-of-range input is not an
// error here and simply yields out-of-range output.  Validation needs full
// record context, which only the parser upstream has.
func DecodeQuals(dst, src []byte) {
	if len(dst) != len(src) {
		panic("DecodeQuals() requires len(dst) == len(src).")
	}
	simd.AddConst8(dst, src, PhredOffset)
}
