package engine

// BufferCapacity is the bounded syllable buffer size. Chosen to comfortably
// hold any Vietnamese syllable plus a few extra keystrokes before a word
// boundary is reached; exceeding it clears the buffer (spec.md §3, §7).
const BufferCapacity = 32

// Buffer is the ordered sequence of annotated keystrokes making up the
// syllable currently being composed. It is a fixed-capacity array, not a
// slice-backed growable buffer, so ProcessKey never allocates in the hot
// path (spec.md §5).
type Buffer struct {
	chars [BufferCapacity]BufferChar
	len   int
}

// Len returns the number of characters currently buffered.
func (b *Buffer) Len() int { return b.len }

// IsEmpty reports whether the buffer holds no characters.
func (b *Buffer) IsEmpty() bool { return b.len == 0 }

// At returns the character at position i. i must be in [0, Len()).
func (b *Buffer) At(i int) BufferChar { return b.chars[i] }

// Set overwrites the character at position i.
func (b *Buffer) Set(i int, c BufferChar) { b.chars[i] = c }

// Append adds a character to the end of the buffer. If the buffer is at
// capacity it is cleared first and the new character becomes the sole
// entry, per spec.md §3's overflow invariant.
func (b *Buffer) Append(c BufferChar) {
	if b.len >= BufferCapacity {
		b.Clear()
	}
	b.chars[b.len] = c
	b.len++
}

// Pop removes and returns the last character, if any.
func (b *Buffer) Pop() (BufferChar, bool) {
	if b.len == 0 {
		return BufferChar{}, false
	}
	b.len--
	return b.chars[b.len], true
}

// Last returns the last character without removing it.
func (b *Buffer) Last() (BufferChar, bool) {
	if b.len == 0 {
		return BufferChar{}, false
	}
	return b.chars[b.len-1], true
}

// Clear empties the buffer. Clearing an already-empty buffer is a no-op,
// so Clear is idempotent (spec.md §8 "idempotence of clear").
func (b *Buffer) Clear() {
	b.len = 0
}

// Keys returns the KeyCode of every buffered character, for callers that
// only need key identity (e.g. approximating the typed keys of a word
// restored from history).
func (b *Buffer) Keys() []KeyCode {
	keys := make([]KeyCode, b.len)
	for i := 0; i < b.len; i++ {
		keys[i] = b.chars[i].Key
	}
	return keys
}

// Snapshot copies the live characters out, for word-history storage.
func (b *Buffer) Snapshot() []BufferChar {
	out := make([]BufferChar, b.len)
	copy(out, b.chars[:b.len])
	return out
}

// Restore replaces the buffer contents with chars, truncating to capacity.
func (b *Buffer) Restore(chars []BufferChar) {
	b.Clear()
	for _, c := range chars {
		if b.len >= BufferCapacity {
			break
		}
		b.Append(c)
	}
}
