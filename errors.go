// SPDX-License-Identifier: MIT
// Copyright (c) 2026 gopglz authors

package pglz

import (
	"errors"
	"fmt"
)

// The two top-level error kinds. Neither is retried by the core; both
// surface to the caller. Use errors.Is against these for coarse handling,
// or against one of the granular sentinels below for detail.
var (
	// ErrIncompressible is returned when the compressor gives up: the
	// strategy rejected the input outright, the output would exceed the
	// strategy's result budget, or first_success_by was exceeded without
	// any match ever being found. Not a defect; callers should store raw.
	ErrIncompressible = errors.New("pglz: incompressible")

	// ErrMalformed is returned when the decompressor detects an
	// inconsistent input: premature EOF under requireComplete, a tag
	// decoding to an out-of-range offset, or a produced size that differs
	// from the declared one.
	ErrMalformed = errors.New("pglz: malformed input")
)

// Granular sentinels. Each wraps one of the two kinds above so
// errors.Is(err, ErrIncompressible) / errors.Is(err, ErrMalformed) keep
// working regardless of which specific condition fired.
var (
	// ErrStrategyRejected wraps ErrIncompressible: the strategy forbids
	// compression outright (match_size_good <= 0, or src_len outside
	// [min_input_size, max_input_size]).
	ErrStrategyRejected = fmt.Errorf("%w: strategy rejected input", ErrIncompressible)

	// ErrBudgetExceeded wraps ErrIncompressible: bytes_written reached
	// result_max before the input was fully encoded.
	ErrBudgetExceeded = fmt.Errorf("%w: result budget exceeded", ErrIncompressible)

	// ErrNoEarlyMatch wraps ErrIncompressible: first_success_by bytes were
	// emitted without ever finding a match.
	ErrNoEarlyMatch = fmt.Errorf("%w: no match found within first_success_by budget", ErrIncompressible)

	// ErrInputOverrun wraps ErrMalformed: the decoder needed to read a
	// tag byte past the end of the compressed input.
	ErrInputOverrun = fmt.Errorf("%w: read past end of compressed input", ErrMalformed)

	// ErrOutputOverrun wraps ErrMalformed: a match copy would write past
	// the end of the destination buffer.
	ErrOutputOverrun = fmt.Errorf("%w: write past end of destination buffer", ErrMalformed)

	// ErrLookBehindUnderrun wraps ErrMalformed: a tag's offset points
	// before the start of the destination buffer.
	ErrLookBehindUnderrun = fmt.Errorf("%w: match offset before start of output", ErrMalformed)

	// ErrIncompleteStream wraps ErrMalformed: requireComplete was set and
	// the loop ended without both cursors exactly at their ends.
	ErrIncompleteStream = fmt.Errorf("%w: input or output not fully consumed", ErrMalformed)
)

// ErrDestinationTooSmall is returned when dst is not sized to at least
// CompressBound(len(src)). It is a caller usage error, not one of the two
// core kinds above.
var ErrDestinationTooSmall = errors.New("pglz: destination buffer too small")
