// SPDX-License-Identifier: MIT
// Copyright (c) 2026 gopglz authors
//
// Both tag bytes are bit-packed rather than holding a plain integer: T1
// carries both the match length's low nibble and the offset's high
// nibble, so there's no clean little-endian field for encoding/binary to
// read or write — the bytes are assembled and torn down by hand instead.

package pglz

// appendTag appends the encoding of a match (offset, length) to out,
// choosing the short (2-byte) or long (3-byte) form:
//
//	short: offset 1..4095, length 3..17
//	long:  offset 1..4095, length 18..273
//
// Callers must ensure offset and length are within these bounds.
func appendTag(out []byte, offset, length int) []byte {
	if length > shortMaxLen {
		t1 := byte(((offset>>4)&0xf0) | 0x0f)
		return append(out, t1, byte(offset&0xff), byte(length-18))
	}

	t1 := byte(((offset >> 4) & 0xf0) | (length - 3))
	return append(out, t1, byte(offset&0xff))
}

// decodeTag reads a tag starting at src[0]. It returns the decoded
// length, offset, the number of tag bytes consumed, and whether the
// bytes available were enough to decode it (false means the caller should
// treat this as ErrInputOverrun).
func decodeTag(src []byte) (length, offset, consumed int, ok bool) {
	if len(src) < 2 {
		return 0, 0, 0, false
	}

	t1 := src[0]
	t2 := src[1]

	length = int(t1&0x0f) + 3
	offset = (int(t1&0xf0) << 4) | int(t2)

	if length != 18 {
		return length, offset, 2, true
	}

	if len(src) < 3 {
		return 0, 0, 0, false
	}
	length += int(src[2])
	return length, offset, 3, true
}
