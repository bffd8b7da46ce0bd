package engine

// AutoCapState tracks whether the next letter typed should be
// auto-capitalised because it starts a new sentence (spec.md §4.8, §3).
// It has no teacher analogue - the teacher repo never implements
// auto-capitalisation - so this is built fresh against spec.md's own
// transition table and the "ok. Ban" / "ok. Di" scenario in spec.md §8.
type AutoCapState struct {
	enabled     bool
	afterEnder  bool // saw_sentence_ender: a sentence-ending key was seen and not yet consumed by a break
	pending     bool // pending_capitalize: the next letter typed should be capitalised
	usedAutoCap bool // the in-progress word's first letter was auto-capitalised
}

// NewAutoCapState returns a tracker with no pending capitalisation: the
// first letter of a fresh session is typed as-is (spec.md §8's "ok. Ban"
// scenario has the leading "ok" stay lowercase), and only a sentence-ender
// keystroke arms the flag.
func NewAutoCapState(enabled bool) AutoCapState {
	return AutoCapState{enabled: enabled}
}

// OnKey advances the tracker's state for a non-letter keystroke. It is
// deliberately NOT called for Backspace/Delete: the pending
// capitalisation must survive the user backspacing over and retyping the
// current word (spec.md §8's "ok. Ban" -> backspace x3 -> "ok. Di").
// The engine calls this for ClassSentenceEnd, ClassBreak, ClassNavigation
// and ClassOther, and with ClassDigit for a digit that ends the word
// instead of joining it; letters update the tracker directly via
// ShouldCapitalize/Consume.
func (a *AutoCapState) OnKey(class KeyClass) {
	switch class {
	case ClassSentenceEnd:
		a.afterEnder = true
	case ClassBreak:
		// A break (space) following a sentence-ender promotes
		// saw_sentence_ender into pending_capitalize for the next word
		// (spec.md §4.8); the word that just crossed the boundary is done,
		// so its own auto-cap tracking no longer applies to what follows.
		if a.afterEnder {
			a.pending = true
			a.afterEnder = false
		}
		a.usedAutoCap = false
	case ClassNavigation:
		// Navigation is transparent to auto-cap: pending_capitalize (and
		// the word-boundary state it came from) persists untouched
		// (spec.md §9 - asserted by tests but never documented in the
		// source this was distilled from).
	default:
		// A digit (or other non-letter) seen between a sentence-ender and
		// the next letter suppresses promotion, so "1.5k" never becomes
		// "1.5K" (spec.md §4.8).
		a.afterEnder = false
		a.usedAutoCap = false
	}
}

// ShouldCapitalize reports whether the letter about to be typed should be
// capitalised.
func (a *AutoCapState) ShouldCapitalize() bool {
	return a.enabled && a.pending
}

// Consume clears the pending flag once a letter has been capitalised and
// remembers that the in-progress word used auto-capitalisation, so a
// backspace run that empties the buffer can restore the pending flag
// (spec.md §4.8, §8's "ok. Ban" -> backspace x3 -> "ok. Di" scenario).
func (a *AutoCapState) Consume() {
	a.pending = false
	a.usedAutoCap = true
}

// RestorePending re-arms capitalisation for the next letter typed, and
// forgets that the erased word used auto-cap so it only restores once.
func (a *AutoCapState) RestorePending() {
	if a.usedAutoCap {
		a.pending = true
		a.usedAutoCap = false
	}
}

// Clear discards per-word tracking for an arbitrary engine-side clear
// (a host-signalled selection delete or focus loss, not a keystroke),
// retaining pending_capitalize iff the word being discarded had used
// auto-capitalisation - the same rule RestorePending applies to a
// backspace-to-empty, generalised to any host-triggered clear (spec.md
// §4.8's "Arbitrary engine-side clear... retain pending_capitalize iff
// auto_capitalize_used_last was set").
func (a *AutoCapState) Clear() {
	a.pending = a.usedAutoCap
	a.afterEnder = false
	a.usedAutoCap = false
}
