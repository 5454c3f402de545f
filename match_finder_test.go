package pglz

import "testing"

func buildIndex(t *testing.T, src []byte) *historyIndex {
	t.Helper()
	h := &historyIndex{}
	h.reset(src, hashSizeFor(len(src)))
	return h
}

func TestFindMatch_NoRepetitionFindsNothing(t *testing.T) {
	src := []byte("abcdefghijklmnop")
	h := buildIndex(t, src)

	for pos := 0; pos+4 < len(src); pos++ {
		m := findMatch(h, src, pos, 128, 10)
		if m.found {
			t.Fatalf("pos=%d: unexpected match (len=%d off=%d) in non-repeating input", pos, m.length, m.offset)
		}
		h.insert(src, pos)
	}
}

func TestFindMatch_FindsEarlierRepeat(t *testing.T) {
	src := []byte("abcdefgh" + "abcdefgh" + "ZZZZ")
	h := buildIndex(t, src)

	var found matchResult
	for pos := 0; pos+4 < len(src); pos++ {
		m := findMatch(h, src, pos, 128, 10)
		if pos == 8 && m.found {
			found = m
		}
		h.insert(src, pos)
	}

	if !found.found {
		t.Fatal("expected a match at position 8 (start of second \"abcdefgh\")")
	}
	if found.offset != 8 {
		t.Fatalf("offset = %d, want 8", found.offset)
	}
	if found.length < minLen {
		t.Fatalf("length = %d, want at least %d", found.length, minLen)
	}
}

func TestFindMatch_StopsAtGoodMatchThreshold(t *testing.T) {
	// A long run of 'A's: the very first chain entry already satisfies any
	// small goodMatch threshold, so the walk should stop immediately and
	// report a match no longer than lenBound.
	src := make([]byte, 300)
	for i := range src {
		src[i] = 'A'
	}
	h := buildIndex(t, src)

	ip := len(src) - 20
	for pos := 0; pos < ip; pos++ {
		h.insert(src, pos)
	}

	m := findMatch(h, src, ip, 17, 10)
	if !m.found {
		t.Fatal("expected a match in an all-'A' run")
	}
	if m.length > len(src)-ip {
		t.Fatalf("length = %d, exceeds lenBound %d", m.length, len(src)-ip)
	}
}

func TestFindMatch_RespectsLengthBoundNearEnd(t *testing.T) {
	src := []byte("abcdabcdabcd")
	h := buildIndex(t, src)

	var lastMatch matchResult
	var lastIP int
	for pos := 0; pos+4 < len(src); pos++ {
		m := findMatch(h, src, pos, 128, 10)
		if m.found {
			lastMatch = m
			lastIP = pos
		}
		h.insert(src, pos)
	}

	if lastMatch.found && lastMatch.length > len(src)-lastIP {
		t.Fatalf("length = %d exceeds remaining bytes %d", lastMatch.length, len(src)-lastIP)
	}
}
