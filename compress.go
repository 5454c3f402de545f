// SPDX-License-Identifier: MIT
// Copyright (c) 2026 gopglz authors

package pglz

// CompressBound returns the largest number of bytes Compress could ever
// write for an input of length srcLen: the input itself, one control
// byte per up-to-8 items, plus 4 slop bytes for the trailing tag.
func CompressBound(srcLen int) int {
	return srcLen + (srcLen+7)/8 + 4
}

// compressor holds the cursor and bookkeeping state for one Compress call.
type compressor struct {
	src []byte
	dst []byte

	bytesWritten int
	foundMatch   bool

	// controlBytePos is the index in dst of the current group's control
	// byte, or -1 if none is open yet.
	controlBytePos int
	controlByte    byte
	itemsInGroup   int
}

// Compress compresses src into dst using strategy (nil = DefaultStrategy)
// and returns the number of bytes written. dst must have length (not
// just capacity) of at least CompressBound(len(src)); ErrDestinationTooSmall
// is returned otherwise. On failure to compress (per strategy), returns
// (0, err) with err wrapping ErrIncompressible; the caller is expected to
// fall back to storing src uncompressed in that case.
func Compress(src []byte, dst []byte, strategy *Strategy) (int, error) {
	if strategy == nil {
		strategy = DefaultStrategy
	}

	if len(dst) < CompressBound(len(src)) {
		return 0, ErrDestinationTooSmall
	}

	srcLen := len(src)

	if strategy.MatchSizeGood <= 0 || srcLen < strategy.MinInputSize || srcLen > strategy.MaxInputSize {
		return 0, ErrStrategyRejected
	}

	if srcLen == 0 {
		// Nothing to compress; the budget check below would otherwise
		// divide-by-zero-adjacent compare 0 >= 0 and misreport this as
		// ErrBudgetExceeded.
		return 0, nil
	}

	params := clampStrategy(strategy)
	resultMax := computeResultMax(srcLen, params.needRate)

	h := acquireHistoryIndex()
	defer releaseHistoryIndex(h)
	h.reset(src, hashSizeFor(srcLen))

	c := &compressor{src: src, dst: dst[:0], controlBytePos: -1}

	srcEnd := srcLen
	compressSrcEnd := srcEnd - 4

	dp := 0
	for dp < compressSrcEnd {
		if c.bytesWritten >= resultMax {
			return 0, ErrBudgetExceeded
		}
		if !c.foundMatch && c.bytesWritten >= strategy.FirstSuccessBy {
			return 0, ErrNoEarlyMatch
		}

		c.openGroupSlotIfNeeded()

		m := findMatch(h, src, dp, params.goodMatch, params.goodDrop)
		if m.found {
			c.setMatchBit()
			c.emitTag(m.offset, m.length)

			for i := 0; i < m.length; i++ {
				h.insert(src, dp)
				dp++
			}
			c.foundMatch = true
		} else {
			h.insert(src, dp)
			c.emitLiteral(src[dp])
			dp++
		}

		c.advanceGroupSlot()
	}

	// Tail: remaining bytes are not indexable (fewer than 4 bytes of
	// lookahead), so they are always emitted as literals.
	for dp < srcEnd {
		if c.bytesWritten >= resultMax {
			return 0, ErrBudgetExceeded
		}
		if !c.foundMatch && c.bytesWritten >= strategy.FirstSuccessBy {
			return 0, ErrNoEarlyMatch
		}

		c.openGroupSlotIfNeeded()
		c.emitLiteral(src[dp])
		dp++
		c.advanceGroupSlot()
	}

	c.flushControlByte()

	if c.bytesWritten >= resultMax {
		return 0, ErrBudgetExceeded
	}

	return c.bytesWritten, nil
}

// computeResultMax computes floor(srcLen*(100-needRate)/100) in a form
// that avoids overflow when srcLen is large. needRate=0 (ALWAYS's floor)
// is treated as "no rate requirement at all" rather than
// literally capping the result at srcLen: control-byte overhead means an
// all-literal encoding is always a few percent larger than srcLen, and a
// literal cap there would make ALWAYS fail on incompressible input, which
// contradicts the guarantee that ALWAYS never fails for non-empty input.
func computeResultMax(srcLen, needRate int) int {
	if needRate == 0 {
		return maxInt
	}

	const approxThreshold = maxInt / 100
	if srcLen > approxThreshold {
		return (srcLen / 100) * (100 - needRate)
	}
	return (srcLen * (100 - needRate)) / 100
}

// openGroupSlotIfNeeded flushes the previous control byte (if any) and
// reserves a new one when the current group has consumed all 8 item
// slots, or when no group is open yet.
func (c *compressor) openGroupSlotIfNeeded() {
	if c.controlBytePos >= 0 && c.itemsInGroup < 8 {
		return
	}

	c.flushControlByte()

	c.controlBytePos = len(c.dst)
	c.dst = append(c.dst, 0) // placeholder, patched by flushControlByte
	c.bytesWritten++
	c.controlByte = 0
	c.itemsInGroup = 0
}

// flushControlByte patches the pending control byte into place, if one
// is open.
func (c *compressor) flushControlByte() {
	if c.controlBytePos < 0 {
		return
	}
	c.dst[c.controlBytePos] = c.controlByte
	c.controlBytePos = -1
}

// setMatchBit marks the current item slot as a match (bit=1).
func (c *compressor) setMatchBit() {
	c.controlByte |= 1 << c.itemsInGroup
}

// advanceGroupSlot moves to the next item slot within the current group.
func (c *compressor) advanceGroupSlot() {
	c.itemsInGroup++
}

// emitLiteral appends one raw literal byte.
func (c *compressor) emitLiteral(b byte) {
	c.dst = append(c.dst, b)
	c.bytesWritten++
}

// emitTag appends a short or long match tag.
func (c *compressor) emitTag(offset, length int) {
	before := len(c.dst)
	c.dst = appendTag(c.dst, offset, length)
	c.bytesWritten += len(c.dst) - before
}
