package engine

// ValidResult classifies why a syllable is or is not well-formed
// Vietnamese, per spec.md §4.6.
type ValidResult int

const (
	ValidOK ValidResult = iota
	InvalidIncomplete   // buffered letters left over outside initial/glide/vowel/final
	InvalidInitial      // initial cluster not a recognised consonant cluster
	InvalidFinal        // final cluster not a recognised consonant cluster
	InvalidNucleus      // no vowel nucleus
	InvalidSpelling      // a recognised-cluster combination Vietnamese spelling forbids
)

// validSingleInitials is the set of recognised single-letter initial
// consonants; the multi-letter clusters are doubleInitials/tripleInitials
// in syllable.go (spec.md §4.3). Grounded on the teacher's validInitials
// table in the old validation.go.
var validSingleInitials = map[KeyCode]bool{
	KeyB: true, KeyC: true, KeyD: true, KeyG: true, KeyH: true, KeyK: true,
	KeyL: true, KeyM: true, KeyN: true, KeyP: true, KeyQ: true, KeyR: true,
	KeyS: true, KeyT: true, KeyV: true, KeyX: true,
}

// validSingleFinals is the recognised set of single-letter finals: the
// stops/nasals plus the semi-vowel letters (permitted as finals even
// though the parser normally folds them into the vowel run). The ng/nh/ch
// digraphs are doubleFinals in syllable.go.
var validSingleFinals = map[KeyCode]bool{
	KeyC: true, KeyM: true, KeyN: true, KeyP: true, KeyT: true,
	KeyI: true, KeyY: true, KeyO: true, KeyU: true,
}

// spellingRules rejects initial+nucleus combinations that are recognised
// clusters in isolation but never occur together in Vietnamese spelling:
// "c" before e/i/y (should be "k"), "k" before a/o/u (should be "c"), "g"
// before e (should be "gh"), "gh" before a/o/u (should be plain "g"), "ng"
// before e/i (should be "ngh"), "ngh" before a/o/u (should be plain "ng").
// Grounded on the teacher's spellingRules map in the old validation.go.
func violatesSpelling(b *Buffer, syl Syllable) bool {
	if len(syl.Initial) == 0 || len(syl.Vowel) == 0 {
		return false
	}
	first := b.At(syl.Vowel[0]).Key
	eiy := first == KeyE || first == KeyI || first == KeyY
	aou := first == KeyA || first == KeyO || first == KeyU
	ei := first == KeyE || first == KeyI

	switch len(syl.Initial) {
	case 1:
		switch b.At(syl.Initial[0]).Key {
		case KeyC:
			return eiy
		case KeyK:
			return aou
		case KeyG:
			return first == KeyE
		}
	case 2:
		k := [2]KeyCode{b.At(syl.Initial[0]).Key, b.At(syl.Initial[1]).Key}
		switch k {
		case [2]KeyCode{KeyG, KeyH}:
			return aou
		case [2]KeyCode{KeyN, KeyG}:
			return ei
		}
	case 3:
		k := [3]KeyCode{b.At(syl.Initial[0]).Key, b.At(syl.Initial[1]).Key, b.At(syl.Initial[2]).Key}
		if k == [3]KeyCode{KeyN, KeyG, KeyH} {
			return aou
		}
	}
	return false
}

// Validate judges a parsed syllable against the current buffer contents,
// applying the ordered rules from spec.md §4.6: completeness, initial,
// final, nucleus, then spelling. The first violated rule determines the
// result.
func Validate(b *Buffer, syl Syllable) ValidResult {
	if syl.Consumed() != b.Len() {
		return InvalidIncomplete
	}
	if !isRecognisedInitial(b, syl) {
		return InvalidInitial
	}
	if !isRecognisedFinal(b, syl) {
		return InvalidFinal
	}
	if len(syl.Vowel) == 0 {
		return InvalidNucleus
	}
	if violatesSpelling(b, syl) {
		return InvalidSpelling
	}
	return ValidOK
}

func isRecognisedInitial(b *Buffer, syl Syllable) bool {
	switch len(syl.Initial) {
	case 0:
		return true
	case 1:
		return validSingleInitials[b.At(syl.Initial[0]).Key]
	case 2:
		k := [2]KeyCode{b.At(syl.Initial[0]).Key, b.At(syl.Initial[1]).Key}
		return doubleInitials[k]
	case 3:
		k := [3]KeyCode{b.At(syl.Initial[0]).Key, b.At(syl.Initial[1]).Key, b.At(syl.Initial[2]).Key}
		for _, t := range tripleInitials {
			if k == t {
				return true
			}
		}
		return false
	}
	return false
}

func isRecognisedFinal(b *Buffer, syl Syllable) bool {
	switch len(syl.Final) {
	case 0:
		return true
	case 1:
		return validSingleFinals[b.At(syl.Final[0]).Key]
	case 2:
		k := [2]KeyCode{b.At(syl.Final[0]).Key, b.At(syl.Final[1]).Key}
		return doubleFinals[k]
	}
	return false
}

// QuickValidate reports whether a committed word, given only its raw key
// sequence, looks like well-formed Vietnamese (spec.md §4.6). The engine's
// own auto-restore path does not call it; it runs Validate on the live
// buffer instead.
func QuickValidate(keys []KeyCode) bool {
	var b Buffer
	for _, k := range keys {
		b.Append(BufferChar{Key: k})
	}
	syl := Parse(&b)
	return Validate(&b, syl) == ValidOK
}
