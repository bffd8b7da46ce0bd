package engine

// Syllable is the transient decomposition of a buffer into
// (initial consonant cluster, optional medial glide, vowel nucleus, final
// consonant cluster), as index vectors into the buffer (spec.md §3, §4.3).
type Syllable struct {
	Initial []int
	Glide   []int // at most one index: 'u' in qu*, 'i' in gi+vowel
	Vowel   []int
	Final   []int
}

// IsEmpty reports whether the syllable has no vowel nucleus.
func (s Syllable) IsEmpty() bool { return len(s.Vowel) == 0 }

// tripleInitials/doubleInitials/singleInitials are the recognised initial
// consonant clusters from spec.md §4.3, grounded on the teacher's
// validInitials table in validation.go.
var tripleInitials = [][3]KeyCode{{KeyN, KeyG, KeyH}}

// "qu" and "gi" are deliberately absent here: both are recognised, but
// handled earlier as an Initial+Glide split rather than a plain two-letter
// Initial (see Parse).
var doubleInitials = map[[2]KeyCode]bool{
	{KeyC, KeyH}: true, {KeyG, KeyH}: true, {KeyK, KeyH}: true,
	{KeyN, KeyG}: true, {KeyN, KeyH}: true, {KeyP, KeyH}: true,
	{KeyT, KeyH}: true, {KeyT, KeyR}: true,
}

// doubleFinals are the recognised final consonant clusters.
var doubleFinals = map[[2]KeyCode]bool{
	{KeyC, KeyH}: true, {KeyN, KeyG}: true, {KeyN, KeyH}: true,
}

func key(b *Buffer, i int) KeyCode { return b.At(i).Key }

// Parse decomposes the buffer into a Syllable. It never fails: an
// unrecognised shape still produces index vectors, and the caller
// (Validator) judges legality separately, per spec.md §4.3/§4.6.
func Parse(b *Buffer) Syllable {
	var syl Syllable
	n := b.Len()
	i := 0

	// 1. Initial: longest recognised consonant cluster, up to 3 letters,
	// special-casing "qu" and "gi" whose second letter is vowel-class.
	if n >= 3 {
		k := [3]KeyCode{key(b, 0), key(b, 1), key(b, 2)}
		for _, t := range tripleInitials {
			if k == t {
				syl.Initial = []int{0, 1, 2}
				i = 3
				break
			}
		}
	}
	if i == 0 && n >= 2 {
		k := [2]KeyCode{key(b, 0), key(b, 1)}
		if k[0] == KeyQ && k[1] == KeyU {
			syl.Initial = []int{0}
			syl.Glide = []int{1}
			i = 2
		} else if k[0] == KeyG && k[1] == KeyI && n >= 3 && isVowelKey(key(b, 2)) {
			syl.Initial = []int{0}
			syl.Glide = []int{1}
			i = 2
		} else if doubleInitials[k] {
			syl.Initial = []int{0, 1}
			i = 2
		}
	}
	if i == 0 {
		for i < n && i < 3 && isConsonantKey(key(b, i)) {
			syl.Initial = append(syl.Initial, i)
			i++
		}
	}

	// 2. Vowel nucleus: maximal run of vowel letters.
	for i < n && isVowelKey(key(b, i)) {
		syl.Vowel = append(syl.Vowel, i)
		i++
	}

	// 3. Final: consonant letters after the nucleus, preferring a
	// recognised double over two singles.
	for i < n {
		if i+1 < n {
			k := [2]KeyCode{key(b, i), key(b, i+1)}
			if doubleFinals[k] {
				syl.Final = append(syl.Final, i, i+1)
				i += 2
				continue
			}
		}
		if isConsonantKey(key(b, i)) {
			syl.Final = append(syl.Final, i)
			i++
			continue
		}
		break
	}

	return syl
}

// Consumed returns how many leading buffer positions the syllable
// accounted for (initial+glide+vowel+final), used by the validator's
// "every buffered letter accounted for" rule.
func (s Syllable) Consumed() int {
	return len(s.Initial) + len(s.Glide) + len(s.Vowel) + len(s.Final)
}
