package engine

// vowelKeys are the Latin letters that can form a Vietnamese vowel
// nucleus. Diacritics are tracked separately on BufferChar.Mark/Tone, not
// as distinct KeyCode values, so this set is just a/e/i/o/u/y.
var vowelKeys = map[KeyCode]bool{
	KeyA: true, KeyE: true, KeyI: true, KeyO: true, KeyU: true, KeyY: true,
}

// consonantKeys are the Latin letters that can appear in an initial or
// final consonant cluster.
var consonantKeys = map[KeyCode]bool{
	KeyB: true, KeyC: true, KeyD: true, KeyG: true, KeyH: true, KeyK: true,
	KeyL: true, KeyM: true, KeyN: true, KeyP: true, KeyQ: true, KeyR: true,
	KeyS: true, KeyT: true, KeyV: true, KeyX: true,
}

func isVowelKey(k KeyCode) bool     { return vowelKeys[k] }
func isConsonantKey(k KeyCode) bool { return consonantKeys[k] }
func isLetterKey(k KeyCode) bool    { return IsLetter(k) }

// composedVowelRune returns the displayed rune for a vowel BufferChar,
// applying tone (vowel-modifier) then mark (pitch). Returns 0 if Key is
// not a vowel.
func composedVowelRune(c BufferChar) rune {
	if !isVowelKey(c.Key) {
		return 0
	}
	base := rune(c.Key)
	modified := applyToneModifier(base, c.Tone)
	result := applyPitchMark(modified, c.Mark)
	if c.Caps {
		return toUpperVi(result)
	}
	return result
}

// composedConsonantRune returns the displayed rune for a non-vowel
// BufferChar, applying the đ stroke if present.
func composedConsonantRune(c BufferChar) rune {
	base := rune(c.Key)
	if c.Key == KeyD && c.Tone == ToneStroke {
		if c.Caps {
			return 'Đ'
		}
		return 'đ'
	}
	if c.Caps {
		return toUpperVi(base)
	}
	return base
}

// ComposedRune returns the displayed rune for any buffered character,
// falling back to the bare key letter if composition fails (spec.md §7
// "invalid composition" fallback - unreachable given the closed Mark/Tone
// enums, but kept as the documented contract).
func ComposedRune(c BufferChar) rune {
	if isVowelKey(c.Key) {
		if r := composedVowelRune(c); r != 0 {
			return r
		}
		base := rune(c.Key)
		if c.Caps {
			return toUpperVi(base)
		}
		return base
	}
	return composedConsonantRune(c)
}
