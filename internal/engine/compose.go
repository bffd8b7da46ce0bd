package engine

import "unicode"

// toneModifiers maps a bare lowercase vowel plus a Tone (vowel-modifier
// diacritic, in this engine's vocabulary - see spec.md's glossary) to the
// modified vowel letter. Grounded on the teacher's telexDoublePatterns /
// telexHornPatterns and vniTransformations tables in telex.go/vni.go.
var toneModifiers = map[rune]map[Tone]rune{
	'a': {ToneCircumflex: 'â', ToneBreve: 'ă'},
	'e': {ToneCircumflex: 'ê'},
	'o': {ToneCircumflex: 'ô', ToneHorn: 'ơ'},
	'u': {ToneHorn: 'ư'},
}

// applyToneModifier returns the vowel-modifier result for base+tone,
// falling back to base unchanged when there is no such combination.
func applyToneModifier(base rune, tone Tone) rune {
	if tone == ToneNone {
		return base
	}
	if m, ok := toneModifiers[base]; ok {
		if r, ok := m[tone]; ok {
			return r
		}
	}
	return base
}

// pitchMarks maps every base Vietnamese vowel (including tone-modified
// ones) to its five accented forms. Grounded on the teacher's
// unicodeVowelTones table in unicode.go, unchanged in content (it is
// already a faithful rendition of the Unicode composition) but re-keyed
// to this package's Mark type.
var pitchMarks = map[rune]map[Mark]rune{
	'a': {MarkAcute: 'á', MarkGrave: 'à', MarkHook: 'ả', MarkTilde: 'ã', MarkDot: 'ạ'},
	'ă': {MarkAcute: 'ắ', MarkGrave: 'ằ', MarkHook: 'ẳ', MarkTilde: 'ẵ', MarkDot: 'ặ'},
	'â': {MarkAcute: 'ấ', MarkGrave: 'ầ', MarkHook: 'ẩ', MarkTilde: 'ẫ', MarkDot: 'ậ'},
	'e': {MarkAcute: 'é', MarkGrave: 'è', MarkHook: 'ẻ', MarkTilde: 'ẽ', MarkDot: 'ẹ'},
	'ê': {MarkAcute: 'ế', MarkGrave: 'ề', MarkHook: 'ể', MarkTilde: 'ễ', MarkDot: 'ệ'},
	'i': {MarkAcute: 'í', MarkGrave: 'ì', MarkHook: 'ỉ', MarkTilde: 'ĩ', MarkDot: 'ị'},
	'o': {MarkAcute: 'ó', MarkGrave: 'ò', MarkHook: 'ỏ', MarkTilde: 'õ', MarkDot: 'ọ'},
	'ô': {MarkAcute: 'ố', MarkGrave: 'ồ', MarkHook: 'ổ', MarkTilde: 'ỗ', MarkDot: 'ộ'},
	'ơ': {MarkAcute: 'ớ', MarkGrave: 'ờ', MarkHook: 'ở', MarkTilde: 'ỡ', MarkDot: 'ợ'},
	'u': {MarkAcute: 'ú', MarkGrave: 'ù', MarkHook: 'ủ', MarkTilde: 'ũ', MarkDot: 'ụ'},
	'ư': {MarkAcute: 'ứ', MarkGrave: 'ừ', MarkHook: 'ử', MarkTilde: 'ữ', MarkDot: 'ự'},
	'y': {MarkAcute: 'ý', MarkGrave: 'ỳ', MarkHook: 'ỷ', MarkTilde: 'ỹ', MarkDot: 'ỵ'},
}

// applyPitchMark returns the tone-marked form of vowel, falling back to
// vowel unchanged when there is no such mark (MarkNone, or an invalid
// combination - spec.md §7's "invalid composition" fallback).
func applyPitchMark(vowel rune, mark Mark) rune {
	if mark == MarkNone {
		return vowel
	}
	if m, ok := pitchMarks[vowel]; ok {
		if r, ok := m[mark]; ok {
			return r
		}
	}
	return vowel
}

// toUpperVi uppercases a rune, including precomposed Vietnamese vowels;
// Go's unicode tables already cover Latin Extended Additional, so this is
// a thin, documented alias rather than a hand-rolled case table.
func toUpperVi(r rune) rune {
	return unicode.ToUpper(r)
}
