package engine

// MethodDescriptor is an input-method descriptor: a pure function from a
// keystroke (and, for vowel-modifier triggers, the buffer character it
// would modify) to what that keystroke means. It holds no state of its
// own - all state (LastTransform, the buffer) lives in Engine, per
// spec.md §4.2.
type MethodDescriptor interface {
	// ToneKey reports the pitch Mark a key represents, if it is a tone key
	// for this method. MarkNone, true means "this key clears the mark".
	ToneKey(key KeyCode) (Mark, bool)

	// ModifierTrigger reports the vowel-modifier Tone a key would apply
	// and which buffer index it targets. Telex derives this from the
	// letter just typed, which can only ever modify the immediately
	// preceding character (doubling, or w after a/o/u). VNI's dedicated
	// digit keys are not positional, so they scan the whole buffer for
	// the last eligible vowel (original_source's is_tone_for).
	ModifierTrigger(buf *Buffer, key KeyCode) (tone Tone, target int, ok bool)

	// IsStrokeTrigger reports whether key, following prev, requests the đ
	// stroke (Telex: double d; VNI: d followed by 9).
	IsStrokeTrigger(prev BufferChar, key KeyCode) bool
}

// DescriptorFor returns the MethodDescriptor for the selected input method.
func DescriptorFor(m Method) MethodDescriptor {
	if m == MethodVNI {
		return vniMethod{}
	}
	return telexMethod{}
}
