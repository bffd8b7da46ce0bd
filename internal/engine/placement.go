package engine

// MarkPosition chooses which buffered vowel a pitch Mark lands on, given
// the syllable's decomposition and whether "modern" (new) or
// "traditional" (old) placement is configured. Grounded on the
// find_mark_pos cascade in original_source/core/src/engine/mod.rs and the
// teacher's findTonePosition in unicode.go (spec.md §4.4).
//
// Rule order:
//  1. When exactly one nucleus vowel carries a circumflex/breve/horn
//     modifier, that vowel wins (â, ê, ô, ơ, ư outrank plain vowels),
//     except a modified first vowel of a 3+-vowel nucleus.
//  2. A single-vowel nucleus takes the mark on that vowel.
//  3. A closed syllable (one with a final consonant) takes the mark on
//     the last nucleus vowel.
//  4. An open two-vowel nucleus: the oa/oe/uy/ua/ue glide+vowel pairs split by
//     modern (second vowel) vs traditional (first vowel); every other
//     pair takes the first vowel.
//  5. Three or more nucleus vowels: the mark lands on the second-to-last.
func MarkPosition(b *Buffer, syl Syllable, modern bool) (int, bool) {
	// The modifier-vowel priority rule only disambiguates when exactly one
	// nucleus vowel carries a circumflex/breve/horn: with two modified
	// vowels (e.g. the "ươ" in được), which one takes the mark still
	// follows the ordinary coda/open-syllable rules below. For a 3+-vowel
	// nucleus the spec's table only grants this priority to a modified
	// vowel other than the first; a lone modified first vowel falls
	// through to the ordinary middle-vowel rule below.
	modified := -1
	modifiedCount := 0
	for _, idx := range syl.Vowel {
		if b.At(idx).Tone != ToneNone {
			modified = idx
			modifiedCount++
		}
	}
	if modifiedCount == 1 && !(len(syl.Vowel) >= 3 && modified == syl.Vowel[0]) {
		return modified, true
	}

	switch len(syl.Vowel) {
	case 0:
		return 0, false
	case 1:
		return syl.Vowel[0], true
	case 2:
		if len(syl.Final) > 0 {
			return syl.Vowel[1], true
		}
		first := b.At(syl.Vowel[0]).Key
		second := b.At(syl.Vowel[1]).Key
		if isGlideVowelPair(first, second) {
			if modern {
				return syl.Vowel[1], true
			}
			return syl.Vowel[0], true
		}
		return syl.Vowel[0], true
	default:
		if len(syl.Final) > 0 {
			return syl.Vowel[len(syl.Vowel)-1], true
		}
		return syl.Vowel[len(syl.Vowel)-2], true
	}
}

// isGlideVowelPair reports whether first,second is one of the open
// two-vowel nuclei whose placement differs between modern and
// traditional style: oa, oe, uy, ua, ue (spec.md §4.4).
func isGlideVowelPair(first, second KeyCode) bool {
	switch {
	case first == KeyO && second == KeyA:
		return true
	case first == KeyO && second == KeyE:
		return true
	case first == KeyU && second == KeyY:
		return true
	case first == KeyU && second == KeyA:
		return true
	case first == KeyU && second == KeyE:
		return true
	}
	return false
}
