// SPDX-License-Identifier: MIT
// Copyright (c) 2026 gopglz authors

package pglz

// Decompress decompresses src into dst. len(dst) is the declared raw
// size — the wire format carries no embedded length. If requireComplete
// is true, both the input and output cursors must land exactly at their
// ends when the loop stops; otherwise a partial decode (slice) is
// permitted and a premature stop is not an error. Returns the number of
// bytes written to dst.
func Decompress(src []byte, dst []byte, requireComplete bool) (int, error) {
	sp := 0
	dp := 0

	for sp < len(src) && dp < len(dst) {
		ctrl := src[sp]
		sp++

		for item := 0; item < 8 && sp < len(src) && dp < len(dst); item++ {
			if ctrl&1 != 0 {
				length, offset, consumed, ok := decodeTag(src[sp:])
				if !ok {
					return 0, ErrInputOverrun
				}
				sp += consumed

				if length > len(dst)-dp {
					length = len(dst) - dp
				}

				if err := copyOverlapping(dst, dp, offset, length); err != nil {
					return 0, err
				}
				dp += length
			} else {
				dst[dp] = src[sp]
				sp++
				dp++
			}

			ctrl >>= 1
		}
	}

	if requireComplete && (dp != len(dst) || sp != len(src)) {
		return 0, ErrIncompleteStream
	}

	return dp, nil
}
