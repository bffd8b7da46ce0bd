package engine

// telexMethod is the Telex MethodDescriptor (spec.md §4.2, §6 - method
// name "telex"). Grounded on the teacher's telexToneKeys /
// telexDoublePatterns / telexHornPatterns tables in the old telex.go,
// restated against this package's key-classification types.
type telexMethod struct{}

var telexToneKeys = map[KeyCode]Mark{
	KeyS: MarkAcute,
	KeyF: MarkGrave,
	KeyR: MarkHook,
	KeyX: MarkTilde,
	KeyJ: MarkDot,
	KeyZ: MarkNone, // dedicated "clear tone" key
}

func (telexMethod) ToneKey(key KeyCode) (Mark, bool) {
	m, ok := telexToneKeys[key]
	return m, ok
}

func (telexMethod) ModifierTrigger(buf *Buffer, key KeyCode) (Tone, int, bool) {
	prev, ok := buf.Last()
	if !ok {
		return ToneNone, 0, false
	}
	target := buf.Len() - 1
	switch {
	case key == KeyA && prev.Key == KeyA:
		return ToneCircumflex, target, true
	case key == KeyE && prev.Key == KeyE:
		return ToneCircumflex, target, true
	case key == KeyO && prev.Key == KeyO:
		return ToneCircumflex, target, true
	case key == KeyW && prev.Key == KeyA:
		return ToneBreve, target, true
	case key == KeyW && prev.Key == KeyO:
		return ToneHorn, target, true
	case key == KeyW && prev.Key == KeyU:
		return ToneHorn, target, true
	}
	return ToneNone, 0, false
}

func (telexMethod) IsStrokeTrigger(prev BufferChar, key KeyCode) bool {
	return key == KeyD && prev.Key == KeyD && prev.Tone != ToneStroke
}
