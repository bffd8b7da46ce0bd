package engine

// WordRecord is a snapshot of the most recently completed word, kept so a
// delete past an already-empty buffer can resume editing the word rather
// than losing its keystroke annotations (spec.md §3, §4.5, §9 "word-history
// restore after backspace"). Auto-restore does not read it; it works on the
// live buffer before the word is committed here. It has no teacher
// analogue: the teacher always re-derives everything from scratch and
// never tracks completed words, so this is built fresh.
type WordRecord struct {
	Snapshot []BufferChar
	Composed []rune
}

// WordHistory remembers the single most recently completed word. Only one
// slot is kept: spec.md's scenarios never need more than one word of
// lookback, and keeping an unbounded history would violate the
// no-allocation-growth discipline of the hot path.
type WordHistory struct {
	last    WordRecord
	hasLast bool
}

// Commit records a just-completed word, replacing any previous record.
func (h *WordHistory) Commit(snapshot []BufferChar, composed []rune) {
	h.last = WordRecord{
		Snapshot: append([]BufferChar(nil), snapshot...),
		Composed: append([]rune(nil), composed...),
	}
	h.hasLast = true
}

// Last returns the most recently committed word, if any.
func (h *WordHistory) Last() (WordRecord, bool) {
	return h.last, h.hasLast
}

// Clear forgets the recorded word.
func (h *WordHistory) Clear() {
	h.hasLast = false
	h.last = WordRecord{}
}
