// SPDX-License-Identifier: MIT
// Copyright (c) 2026 gopglz authors

/*
Package pglz implements a byte-level LZ77-family codec compatible with
PostgreSQL's "pglz" wire format: a chained hash index over a 4094-byte
sliding window feeds a greedy match finder, and matches/literals are
packed into control-byte groups of up to 8 items.

# Compress

Strategy may be nil (uses DefaultStrategy). The ALWAYS strategy never
fails for non-empty input; the DEFAULT strategy gives up on
incompressible data:

	n, err := pglz.Compress(data, dst, nil)
	n, err := pglz.Compress(data, dst, pglz.AlwaysStrategy)

dst must be sized to at least CompressBound(len(data)).

# Decompress

rawSize (len(dst)) must be known ahead of time; there is no embedded
length in the wire format:

	n, err := pglz.Decompress(compressed, dst, true)
*/
package pglz
