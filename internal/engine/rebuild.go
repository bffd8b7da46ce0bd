package engine

// Rebuild composes every buffered character into its displayed rune,
// in order, always from the start of the buffer. It is the only place
// that turns buffer state into display text; ProcessKey compares the
// result against the previously sent text and, when they differ, replaces
// the whole in-progress word: it backspaces everything sent so far and
// inserts the full rebuilt text (spec.md §4.5). Grounded on the
// teacher's rebuild/compose walk in composition.go's handleBackspace,
// generalised from a raw-string replay into a direct BufferChar walk now
// that marks and tones live on BufferChar itself.
func Rebuild(b *Buffer) []rune {
	out := make([]rune, 0, b.Len())
	for i := 0; i < b.Len(); i++ {
		out = append(out, ComposedRune(b.At(i)))
	}
	return out
}
