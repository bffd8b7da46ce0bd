package engine

// vniMethod is the VNI MethodDescriptor (spec.md §4.2, §6 - method name
// "vni"). Grounded on the teacher's vniToneKeys / vniVowelKeys tables in
// the old vni.go, restated against this package's key-classification
// types.
type vniMethod struct{}

var vniToneKeys = map[KeyCode]Mark{
	Key1: MarkAcute,
	Key2: MarkGrave,
	Key3: MarkHook,
	Key4: MarkTilde,
	Key5: MarkDot,
	Key0: MarkNone, // dedicated "clear tone" key
}

func (vniMethod) ToneKey(key KeyCode) (Mark, bool) {
	m, ok := vniToneKeys[key]
	return m, ok
}

// vniModifierLetters lists which vowel letters each digit key can apply
// its modifier to: 6 is circumflex (a/e/o), 7 is horn (o/u), 8 is breve
// (a).
var vniModifierLetters = map[KeyCode]struct {
	tone    Tone
	letters map[KeyCode]bool
}{
	Key6: {ToneCircumflex, map[KeyCode]bool{KeyA: true, KeyE: true, KeyO: true}},
	Key7: {ToneHorn, map[KeyCode]bool{KeyO: true, KeyU: true}},
	Key8: {ToneBreve, map[KeyCode]bool{KeyA: true}},
}

// ModifierTrigger scans the buffer from the end for the last vowel the
// digit key accepts, rather than only checking the immediately preceding
// character - VNI's digit keys are not positional, so typing "tuong7"
// must still land the horn on the "o" even though "g" sits between it
// and the "7" (original_source's is_tone_for).
func (vniMethod) ModifierTrigger(buf *Buffer, key KeyCode) (Tone, int, bool) {
	rule, ok := vniModifierLetters[key]
	if !ok {
		return ToneNone, 0, false
	}
	for i := buf.Len() - 1; i >= 0; i-- {
		c := buf.At(i)
		if rule.letters[c.Key] {
			return rule.tone, i, true
		}
	}
	return ToneNone, 0, false
}

func (vniMethod) IsStrokeTrigger(prev BufferChar, key KeyCode) bool {
	return key == Key9 && prev.Key == KeyD && prev.Tone != ToneStroke
}
