// SPDX-License-Identifier: MIT
// Copyright (c) 2026 gopglz authors

package pglz

// copyOverlapping copies length bytes to dst[outputPos:] from offset
// bytes behind it. Unlike a plain copy(), the source and destination
// regions are allowed to overlap when offset < length: bytes this same
// call just wrote become valid source material for the bytes still to
// come, which is exactly what's needed to expand a run (e.g. offset=1
// replays the single preceding byte length times).
//
// The read window dst[outputPos-offset:outputPos] never moves — only its
// width does. Each step copies min(offset, remaining) bytes from that
// fixed point, advances past what it just wrote, and doubles offset, so
// the readable region grows geometrically: after k steps it spans
// offset*2^k bytes instead of requiring length/offset individual
// byte-at-a-time steps.
func copyOverlapping(dst []byte, outputPos, offset, length int) error {
	if offset < 1 {
		// An offset of zero can't be advanced by doubling (2x of 0 is
		// still 0), which would spin forever below; it also never
		// denotes a valid back-reference.
		return ErrLookBehindUnderrun
	}

	readFrom := outputPos - offset
	if readFrom < 0 {
		return ErrLookBehindUnderrun
	}

	if outputPos+length > len(dst) {
		return ErrOutputOverrun
	}

	dp := outputPos
	remaining := length
	for remaining > offset {
		copy(dst[dp:dp+offset], dst[dp-offset:dp])
		dp += offset
		remaining -= offset
		offset *= 2
	}
	copy(dst[dp:dp+remaining], dst[dp-offset:dp-offset+remaining])

	return nil
}
