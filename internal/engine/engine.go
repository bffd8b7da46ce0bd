package engine

import (
	"github.com/username/gonhanh/internal/dictionary"
	"github.com/username/gonhanh/internal/shortcut"
)

// Engine is the per-keystroke Vietnamese input-method reducer: it owns
// the single in-progress syllable Buffer plus the small amount of extra
// state (LastTransform, auto-capitalisation, word history) ProcessKey
// needs, and turns each keystroke into an EditCommand. It is not
// goroutine-safe and carries no internal queue - callers serialise their
// own key events (spec.md §5). Grounded in shape on the teacher's
// CompositionEngine in the old composition.go and in reducer contract on
// original_source/core/src/engine/mod.rs's Engine/on_key/process.
type Engine struct {
	descriptor MethodDescriptor
	buf        Buffer
	enabled    bool
	modern     bool

	validate     bool
	autoRestore  bool
	doubleRevert bool
	wAsVowel     bool

	last    lastTransform
	cap     AutoCapState
	history WordHistory

	shortcuts *shortcut.Table
	dict      dictionary.Dictionary

	sent []rune // runes currently committed to the host for the in-progress word

	// rawTyped is the literal, as-typed key sequence for the in-progress
	// word, kept separately from Buffer: a mark/tone trigger keystroke
	// (e.g. Telex "s" placing an acute mark) consumes itself into an
	// existing BufferChar rather than appending a new one, so Buffer.Keys
	// alone cannot reconstruct what the user actually typed. Auto-restore
	// needs that exact literal sequence (spec.md §4.6, §8 "auto-restore
	// inverse"), so every letter/digit keystroke is mirrored here too.
	rawTyped []rune
}

// Options configures a new Engine. It mirrors the persisted configuration
// surface in internal/config without importing that package, so engine
// stays independent of the TOML/file-path concerns of configuration
// storage.
type Options struct {
	Modern                bool
	EnableValidation      bool
	EnableAutoRestore     bool
	EnableDoubleKeyRevert bool
	EnableAutoCapitalize  bool
	EnableWAsVowel        bool
	Enabled               bool
}

// DefaultOptions returns the engine's out-of-the-box behaviour, matching
// spec.md §6's persisted defaults: auto-capitalisation and English
// auto-restore both start disabled.
func DefaultOptions() Options {
	return Options{
		Modern:                true,
		EnableValidation:      true,
		EnableAutoRestore:     false,
		EnableDoubleKeyRevert: true,
		EnableAutoCapitalize:  false,
		EnableWAsVowel:        true,
		Enabled:               true,
	}
}

// New builds an Engine for the given method. shortcuts and dict may be
// nil to disable those features; a nil shortcuts table is created on the
// first AddShortcut call.
func New(method Method, opts Options, shortcuts *shortcut.Table, dict dictionary.Dictionary) *Engine {
	return &Engine{
		descriptor:   DescriptorFor(method),
		enabled:      opts.Enabled,
		modern:       opts.Modern,
		validate:     opts.EnableValidation,
		autoRestore:  opts.EnableAutoRestore,
		doubleRevert: opts.EnableDoubleKeyRevert,
		wAsVowel:     opts.EnableWAsVowel,
		cap:          NewAutoCapState(opts.EnableAutoCapitalize),
		shortcuts:    shortcuts,
		dict:         dict,
	}
}

// SetMethod switches the active input method, clearing any in-progress
// word (spec.md §6: switching method mid-word is undefined otherwise).
func (e *Engine) SetMethod(method Method) {
	e.descriptor = DescriptorFor(method)
	e.resetWord()
}

// SetEnabled toggles the engine. Disabling clears in-progress state so
// re-enabling never resumes a stale composition.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
	if !enabled {
		e.resetWord()
	}
}

// Enabled reports whether the engine is currently composing keystrokes.
func (e *Engine) Enabled() bool { return e.enabled }

// SetModernPlacement toggles modern vs traditional diacritic placement
// (spec.md §4.4, §6 set_modern_placement). Takes effect on the next mark
// placed; it does not retroactively reflow the in-progress word.
func (e *Engine) SetModernPlacement(modern bool) {
	e.modern = modern
}

// SetAutoCapitalize toggles auto-capitalisation after sentence-ending
// punctuation (spec.md §6 set_auto_capitalize).
func (e *Engine) SetAutoCapitalize(enabled bool) {
	e.cap.enabled = enabled
}

// SetEnglishAutoRestore toggles the validator-driven rollback of
// non-Vietnamese words at a word boundary (spec.md §6
// set_english_auto_restore).
func (e *Engine) SetEnglishAutoRestore(enabled bool) {
	e.autoRestore = enabled
}

// AddShortcut registers or replaces an abbreviation-expansion entry
// (spec.md §6 add_shortcut). If the engine was built without a shortcut
// table, an empty one is created first.
func (e *Engine) AddShortcut(s shortcut.Shortcut) {
	if e.shortcuts == nil {
		e.shortcuts = shortcut.NewTable()
	}
	e.shortcuts.Add(s)
}

// RemoveShortcut deletes a shortcut by trigger text (spec.md §6
// remove_shortcut).
func (e *Engine) RemoveShortcut(trigger string) {
	if e.shortcuts != nil {
		e.shortcuts.Remove(trigger)
	}
}

// ClearShortcuts removes every registered shortcut (spec.md §6
// clear_shortcuts), leaving the table itself in place so subsequent
// AddShortcut calls still work.
func (e *Engine) ClearShortcuts() {
	e.shortcuts = shortcut.NewTable()
}

// Reset clears all engine state: the in-progress buffer, auto-capitalise
// tracking, and word history. This is the host's explicit Clear() call
// (spec.md §6) for a selection change or focus loss - an "arbitrary
// engine-side clear" in spec.md §4.8's vocabulary, not a keystroke, so
// auto-cap tracking follows AutoCapState.Clear's retention rule rather
// than being wiped outright.
func (e *Engine) Reset() {
	e.resetWord()
	e.cap.Clear()
	e.history.Clear()
}

// Preedit returns the composed text of the in-progress word, for hosts
// that render an uncommitted preedit string (spec.md §6).
func (e *Engine) Preedit() string {
	return string(Rebuild(&e.buf))
}

// ProcessKey is the engine's single entry point: it consumes one
// keystroke and returns the edit the host should perform in its place.
func (e *Engine) ProcessKey(key KeyCode, caps, ctrl bool) EditCommand {
	if !e.enabled {
		return NoneCommand()
	}

	class := Classify(key, ctrl)
	switch class {
	case ClassNavigation, ClassOther:
		e.resetWord()
		e.cap.OnKey(class)
		return NoneCommand()
	case ClassDelete:
		return e.handleDelete()
	case ClassSentenceEnd, ClassBreak:
		cmd := e.finalizeWord(key)
		e.cap.OnKey(class)
		return cmd
	default: // ClassLetter, ClassDigit
		return e.processLetterOrDigit(key, caps)
	}
}

func (e *Engine) handleDelete() EditCommand {
	if e.buf.IsEmpty() {
		return e.restoreFromHistory()
	}
	e.buf.Pop()
	if n := len(e.rawTyped); n > 0 {
		e.rawTyped = e.rawTyped[:n-1]
	}
	e.last = lastTransform{}
	if e.buf.IsEmpty() {
		e.cap.RestorePending()
		cmd := SendCommand(len(e.sent), nil)
		e.sent = nil
		return cmd
	}
	return e.rebuildAndSend()
}

// restoreFromHistory resumes editing the most recently completed word when
// Delete arrives with nothing buffered: the host has already removed one
// visible character (the word-boundary key, or the word's own trailing
// character), so the word is pushed back into the buffer minus that one
// keystroke and offered for continued editing (spec.md §4.5, §9 "word
// history restore after backspace"). Only the single most recent word is
// ever restorable, and only once - a second Delete in a row finds the
// history already consumed and behaves as plain passthrough.
func (e *Engine) restoreFromHistory() EditCommand {
	rec, ok := e.history.Last()
	if !ok || len(rec.Snapshot) == 0 {
		return NoneCommand()
	}
	e.history.Clear()
	e.buf.Restore(rec.Snapshot[:len(rec.Snapshot)-1])
	e.last = lastTransform{}
	// The exact as-typed keystrokes for the restored word are gone (only
	// its composed BufferChars survived); approximate rawTyped from the
	// restored buffer's key identities so a subsequent auto-restore at the
	// next word boundary still has something sane to fall back to.
	keys := e.buf.Keys()
	e.rawTyped = make([]rune, len(keys))
	for i, k := range keys {
		e.rawTyped[i] = rune(k)
	}
	e.sent = Rebuild(&e.buf)
	if len(e.sent) == 0 {
		return NoneCommand()
	}
	return SendCommand(0, e.sent)
}

// removeDiacritic implements the remove-diacritic trigger (spec.md §4.2,
// §4.5 step 4): clear the most recently set mark anywhere in the buffer,
// or, if none is set, clear the most recent vowel-modifier tone instead.
func (e *Engine) removeDiacritic() EditCommand {
	for i := e.buf.Len() - 1; i >= 0; i-- {
		bc := e.buf.At(i)
		if bc.Mark != MarkNone {
			bc.Mark = MarkNone
			e.buf.Set(i, bc)
			e.last = lastTransform{}
			return e.rebuildAndSend()
		}
	}
	for i := e.buf.Len() - 1; i >= 0; i-- {
		bc := e.buf.At(i)
		if bc.Tone != ToneNone {
			bc.Tone = ToneNone
			e.buf.Set(i, bc)
			e.last = lastTransform{}
			return e.rebuildAndSend()
		}
	}
	return e.rebuildAndSend()
}

func (e *Engine) processLetterOrDigit(key KeyCode, caps bool) EditCommand {
	e.rawTyped = append(e.rawTyped, Rune(key, caps))
	prev, hasPrev := e.buf.Last()

	if hasPrev && e.descriptor.IsStrokeTrigger(prev, key) {
		prev.Tone = ToneStroke
		e.buf.Set(e.buf.Len()-1, prev)
		e.last = lastTransform{kind: transformTone, key: key}
		return e.rebuildAndSend()
	}
	// Typing the stroke trigger's key a further time escapes it back to a
	// literal letter, e.g. Telex "ddd" -> "dd" (spec.md §8's double-key
	// revert property, extended to the đ trigger).
	if hasPrev && e.doubleRevert && prev.Key == KeyD && prev.Tone == ToneStroke && e.descriptor.IsStrokeTrigger(BufferChar{Key: KeyD}, key) {
		prev.Tone = ToneNone
		e.buf.Set(e.buf.Len()-1, prev)
		e.buf.Append(BufferChar{Key: key, Caps: caps})
		e.last = lastTransform{}
		return e.rebuildAndSend()
	}

	if mark, ok := e.descriptor.ToneKey(key); ok && mark == MarkNone && !e.buf.IsEmpty() {
		// Remove-diacritic trigger (Telex "z", VNI "0"): clear the most
		// recent mark; if none is set, clear the most recent vowel-modifier
		// tone instead (spec.md §4.5 step 4, §4.2).
		return e.removeDiacritic()
	}

	if mark, ok := e.descriptor.ToneKey(key); ok && !e.buf.IsEmpty() {
		syl := Parse(&e.buf)
		if pos, ok2 := MarkPosition(&e.buf, syl, e.modern); ok2 {
			target := e.buf.At(pos)
			if e.doubleRevert && e.last.kind == transformMark && e.last.key == key && target.Mark == mark && mark != MarkNone {
				// Escape: undo the mark and type the trigger key itself
				// literally, e.g. Telex "ass" -> "as" (spec.md §8).
				target.Mark = MarkNone
				e.buf.Set(pos, target)
				e.buf.Append(BufferChar{Key: key, Caps: caps})
				e.last = lastTransform{}
			} else {
				target.Mark = mark
				e.buf.Set(pos, target)
				e.last = lastTransform{kind: transformMark, key: key}
			}
			return e.rebuildAndSend()
		}
	}

	if tone, target, ok := e.descriptor.ModifierTrigger(&e.buf, key); ok {
		targetChar := e.buf.At(target)
		if e.doubleRevert && e.last.kind == transformTone && e.last.key == key && targetChar.Tone == tone {
			// Escape: undo the modifier and type the trigger key
			// itself literally, e.g. Telex "aaa" -> "aa".
			targetChar.Tone = ToneNone
			e.buf.Set(target, targetChar)
			e.buf.Append(BufferChar{Key: key, Caps: caps})
			e.last = lastTransform{}
		} else {
			targetChar.Tone = tone
			e.buf.Set(target, targetChar)
			e.last = lastTransform{kind: transformTone, key: key}
		}
		return e.rebuildAndSend()
	}

	if !isLetterKey(key) {
		// A digit with no tone/modifier meaning at this buffer state
		// interrupts the in-progress word rather than joining it, and (per
		// spec.md §4.8) suppresses a pending auto-capitalisation promotion
		// so "1.5k" never becomes "1.5K".
		e.resetWord()
		e.cap.OnKey(ClassDigit)
		return NoneCommand()
	}

	// Bare "w" with no preceding vowel to widen lowers straight to ư - the
	// common Telex convention spec.md §4.2/§9 flags as an open question
	// ("w→ư" vs "uw→ư"). The canonical path stays the method descriptor's
	// own ModifierTrigger (uw/ow -> ư/ơ checked above); this is the
	// fallback for a lone w, gated by its own option so a host can disable
	// it independently of the uw/ow rule (DESIGN.md).
	if e.wAsVowel && key == KeyW && !hasPrev {
		bc := BufferChar{Key: KeyU, Caps: caps, Tone: ToneHorn}
		if e.cap.ShouldCapitalize() {
			bc.Caps = true
			e.cap.Consume()
		}
		e.buf.Append(bc)
		e.last = lastTransform{}
		if cmd, ok := e.checkImmediateShortcut(); ok {
			return cmd
		}
		return e.rebuildAndSend()
	}

	bc := BufferChar{Key: key, Caps: caps}
	if e.cap.ShouldCapitalize() {
		bc.Caps = true
		e.cap.Consume()
	}
	e.buf.Append(bc)
	e.last = lastTransform{}
	if cmd, ok := e.checkImmediateShortcut(); ok {
		return cmd
	}
	return e.rebuildAndSend()
}

// checkImmediateShortcut fires a host-registered Immediate shortcut
// (spec.md §4.7) as soon as its trigger text has just been typed, with no
// word-boundary key needed. Unlike an OnWordBoundary match, firing
// concludes the in-progress word outright: the buffer, sent-text memo,
// and raw-keystroke mirror all reset, so typing continues fresh after
// the expansion (the same boundary-crossing shape finalizeWord uses for
// an ordinary word, minus the boundary key itself).
func (e *Engine) checkImmediateShortcut() (EditCommand, bool) {
	if e.shortcuts == nil {
		return EditCommand{}, false
	}
	m, ok := e.shortcuts.TryMatch(string(e.rawTyped), shortcut.Immediate)
	if !ok {
		return EditCommand{}, false
	}
	cmd := SendCommand(len(e.sent), []rune(m.Output))
	e.buf.Clear()
	e.sent = nil
	e.rawTyped = nil
	e.last = lastTransform{}
	return cmd, true
}

// finalizeWord runs shortcut expansion and auto-restore for the
// in-progress word, commits it to history, and folds the boundary key
// itself (a space, a sentence-ending mark, ...) into the emitted edit.
func (e *Engine) finalizeWord(boundary KeyCode) EditCommand {
	br := Rune(boundary, false)

	if e.buf.IsEmpty() {
		return NoneCommand()
	}

	composed := Rebuild(&e.buf)
	raw := string(e.rawTyped)
	finalRunes := composed
	restored := false

	if e.shortcuts != nil {
		if m, ok := e.shortcuts.TryMatch(raw, shortcut.OnWordBoundary); ok {
			finalRunes = []rune(m.Output)
		}
	}

	if sameRunes(finalRunes, composed) && e.autoRestore && e.dict != nil {
		word := string(composed)
		// Fast pre-check: a word that opens with a letter no native
		// Vietnamese syllable starts with is foreign regardless of what
		// the validator's syllable-shape rules say, mirroring the
		// original's allow_foreign gate ahead of the dictionary lookup.
		foreign := dictionary.StartsWithForeignConsonant(raw)
		valid := !foreign && (!e.validate || Validate(&e.buf, Parse(&e.buf)) == ValidOK)
		if !valid && !e.dict.ShouldKeep(word) && !e.dict.IsVietnamese(word) {
			finalRunes = []rune(raw)
			restored = true
		}
	}

	e.history.Commit(e.buf.Snapshot(), finalRunes)

	out := append([]rune(nil), finalRunes...)
	if br != 0 {
		out = append(out, br)
	}
	var cmd EditCommand
	if restored {
		cmd = RestoreCommand(len(e.sent), out)
	} else {
		cmd = SendCommand(len(e.sent), out)
	}

	e.buf.Clear()
	e.sent = nil
	e.last = lastTransform{}
	e.rawTyped = nil
	return cmd
}

// rebuildAndSend recomposes the in-progress buffer and diffs it against
// what was last sent to the host, per spec.md §4.5.
func (e *Engine) rebuildAndSend() EditCommand {
	newRunes := Rebuild(&e.buf)
	if sameRunes(newRunes, e.sent) {
		return NoneCommand()
	}
	cmd := SendCommand(len(e.sent), newRunes)
	e.sent = newRunes
	return cmd
}

func (e *Engine) resetWord() {
	e.buf.Clear()
	e.sent = nil
	e.last = lastTransform{}
	e.rawTyped = nil
}

func sameRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
