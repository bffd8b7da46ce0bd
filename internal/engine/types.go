package engine

// Mark is a pitch-tone diacritic (thanh).
type Mark int

const (
	MarkNone Mark = iota
	MarkAcute
	MarkGrave
	MarkHook
	MarkTilde
	MarkDot
)

// Tone is a vowel-modifying diacritic, or the stroke on đ. Named "tone" to
// match the vocabulary in spec.md's data model even though it is not a
// pitch mark.
type Tone int

const (
	ToneNone Tone = iota
	ToneCircumflex
	ToneBreve
	ToneHorn
	ToneStroke
)

// BufferChar is a single typed letter retained for transformation. Mark
// and Tone are non-zero only when Key identifies a vowel, except for
// ToneStroke which applies to 'd'.
type BufferChar struct {
	Key  KeyCode
	Caps bool
	Mark Mark
	Tone Tone
}

// Method selects the active input method.
type Method uint8

const (
	MethodTelex Method = iota
	MethodVNI
)

// Action tags the effect an EditCommand asks the host to perform.
type Action uint8

const (
	// ActionNone: passthrough, no edit.
	ActionNone Action = iota
	// ActionSend: delete Backspace characters already committed, then
	// insert the first Count code points of Chars.
	ActionSend
	// ActionRestore: emit raw characters to undo a Vietnamese composition.
	// The façade emits it for an auto-restore rollback; it has the same
	// delete-then-insert meaning as ActionSend.
	ActionRestore
)

// MaxChars bounds EditCommand.Chars. It equals BufferCapacity, with no
// extra slack: SendCommand drops anything beyond it (e.g. the boundary
// character after a full buffer).
const MaxChars = 32

// EditCommand is the engine's per-keystroke output. Its layout is kept
// fixed-size and FFI-friendly: a transport layer can memcpy it across a
// language boundary without marshaling.
type EditCommand struct {
	Action    Action
	Backspace uint8
	Count     uint8
	Chars     [MaxChars]rune
}

// NoneCommand is the sentinel "nothing happened" result.
func NoneCommand() EditCommand {
	return EditCommand{Action: ActionNone}
}

// SendCommand builds a Send edit command from a backspace count and the
// characters to insert, truncating to MaxChars if necessary.
func SendCommand(backspace int, chars []rune) EditCommand {
	cmd := EditCommand{Action: ActionSend}
	if backspace > 0xff {
		backspace = 0xff
	}
	cmd.Backspace = uint8(backspace)
	n := len(chars)
	if n > MaxChars {
		n = MaxChars
	}
	copy(cmd.Chars[:], chars[:n])
	cmd.Count = uint8(n)
	return cmd
}

// RestoreCommand builds a Restore edit command: same shape as Send, but
// tagged so a host can distinguish "Vietnamese edit" from "auto-restore
// undo" if it wants to (e.g. for telemetry); both ask the host to delete
// Backspace chars and insert Chars.
func RestoreCommand(backspace int, chars []rune) EditCommand {
	cmd := SendCommand(backspace, chars)
	cmd.Action = ActionRestore
	return cmd
}

// String returns the inserted text as a string, for tests and logging.
func (c EditCommand) String() string {
	return string(c.Chars[:c.Count])
}

// lastTransformKind distinguishes the two things LastTransform can record.
type lastTransformKind int

const (
	transformNone lastTransformKind = iota
	transformMark
	transformTone
)

// lastTransform is the memo used to detect a same-key double-press revert.
type lastTransform struct {
	kind lastTransformKind
	key  KeyCode
}
