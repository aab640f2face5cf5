// Copyright 2023 the fasterqc authors.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || appengine

package seqsimd

// Without a vector unit every base goes through the scalar loop in
// DecodeSeq().
var decodeSeqBlocks = decodeSeqBlocksGeneric
