package engine

import (
	"testing"

	"github.com/username/gonhanh/internal/dictionary"
	"github.com/username/gonhanh/internal/shortcut"
)

// typeKeys feeds each rune of seq through eng.ProcessKey and returns the
// resulting displayed text. Uppercase ASCII letters are typed as their
// lowercase KeyCode with Caps set, matching how a host would translate a
// shifted keystroke. This mirrors the table-driven, whole-scenario style
// of the teacher's telex_test.go.
func typeKeys(t *testing.T, eng *Engine, seq string) string {
	t.Helper()
	var out []rune
	for _, r := range seq {
		key := KeyCode(r)
		caps := false
		switch {
		case r == ' ':
			key = KeySpace
		case r >= 'A' && r <= 'Z':
			key = KeyCode(r + ('a' - 'A'))
			caps = true
		}
		cmd := eng.ProcessKey(key, caps, false)
		out = applyEdit(out, cmd, r)
	}
	return string(out)
}

func applyEdit(line []rune, cmd EditCommand, raw rune) []rune {
	if cmd.Action == ActionNone {
		return append(line, raw)
	}
	n := len(line) - int(cmd.Backspace)
	if n < 0 {
		n = 0
	}
	line = line[:n]
	return append(line, cmd.Chars[:cmd.Count]...)
}

func newTestEngine(t *testing.T, method Method) *Engine {
	t.Helper()
	return New(method, DefaultOptions(), nil, nil)
}

func TestTelexEndToEnd(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"circumflex+grave", "chaof ", "chào "},
		{"horn+horn+dot", "dduwowcj ", "được "},
		{"horn+horn+grave", "nguwowif ", "người "},
		{"coda closed diphthong", "toanf ", "toàn "},
		{"modern oa grave", "hoaf ", "hoà "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine(t, MethodTelex)
			got := typeKeys(t, eng, tt.seq)
			if got != tt.want {
				t.Errorf("typeKeys(%q) = %q, want %q", tt.seq, got, tt.want)
			}
		})
	}
}

func TestTelexDoubleKeyRevert(t *testing.T) {
	eng := newTestEngine(t, MethodTelex)
	got := typeKeys(t, eng, "ass")
	if got != "as" {
		t.Errorf("typeKeys(%q) = %q, want %q", "ass", got, "as")
	}
}

func TestTelexDoubleLetterModifierRevert(t *testing.T) {
	eng := newTestEngine(t, MethodTelex)
	got := typeKeys(t, eng, "aaa")
	if got != "aa" {
		t.Errorf("typeKeys(%q) = %q, want %q", "aaa", got, "aa")
	}
}

func TestVNIEndToEnd(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"circumflex+grave", "chao2 ", "chào "},
		{"stroke+horn+horn+dot", "d9u7o7c5 ", "được "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine(t, MethodVNI)
			got := typeKeys(t, eng, tt.seq)
			if got != tt.want {
				t.Errorf("typeKeys(%q) = %q, want %q", tt.seq, got, tt.want)
			}
		})
	}
}

func TestVNIDigitDoublePressEscapesToLiteral(t *testing.T) {
	eng := newTestEngine(t, MethodVNI)
	got := typeKeys(t, eng, "a11")
	if got != "a1" {
		t.Errorf("typeKeys(%q) = %q, want %q", "a11", got, "a1")
	}
}

func TestBackspaceReparsesBuffer(t *testing.T) {
	eng := newTestEngine(t, MethodTelex)
	_ = typeKeys(t, eng, "chao")
	// Remove the 'o' and retype it: should still compose a circumflex-free
	// tone-free "chao" rather than leaking stale placement state.
	cmd := eng.ProcessKey(KeyDelete, false, false)
	if cmd.Action == ActionNone {
		t.Fatalf("expected backspace to edit the in-progress word")
	}
	if got := eng.Preedit(); got != "cha" {
		t.Errorf("Preedit() after backspace = %q, want %q", got, "cha")
	}
}

func TestAutoCapitalizeSurvivesBackspaceRetype(t *testing.T) {
	opts := DefaultOptions()
	opts.EnableAutoCapitalize = true
	eng := New(MethodTelex, opts, nil, nil)
	out := []rune(typeKeys(t, eng, "ok. "))
	out = append(out, []rune(typeKeys(t, eng, "ban"))...)
	for i := 0; i < 3; i++ {
		cmd := eng.ProcessKey(KeyDelete, false, false)
		out = applyEdit(out, cmd, 0)
	}
	out = append(out, []rune(typeKeys(t, eng, "di"))...)
	if got := string(out); got != "ok. Di" {
		t.Errorf("got %q, want %q", got, "ok. Di")
	}
}

func TestTelexRemoveDiacriticKey(t *testing.T) {
	eng := newTestEngine(t, MethodTelex)
	got := typeKeys(t, eng, "chaof")
	if got != "chào" {
		t.Fatalf("setup: typeKeys(%q) = %q, want %q", "chaof", got, "chào")
	}
	got = typeKeys(t, eng, "z")
	if got != "chao" {
		t.Errorf("typeKeys(%q) after chaof = %q, want %q", "z", got, "chao")
	}
}

func TestVNIRemoveDiacriticKey(t *testing.T) {
	eng := newTestEngine(t, MethodVNI)
	got := typeKeys(t, eng, "chao2")
	if got != "chào" {
		t.Fatalf("setup: typeKeys(%q) = %q, want %q", "chao2", got, "chào")
	}
	got = typeKeys(t, eng, "0")
	if got != "chao" {
		t.Errorf("typeKeys(%q) after chao2 = %q, want %q", "0", got, "chao")
	}
}

func TestSetModernPlacementTogglesAtRuntime(t *testing.T) {
	eng := newTestEngine(t, MethodTelex)
	eng.SetModernPlacement(false)
	got := typeKeys(t, eng, "hoas")
	if got != "hóa" {
		t.Errorf("traditional placement: typeKeys(%q) = %q, want %q", "hoas", got, "hóa")
	}

	eng = newTestEngine(t, MethodTelex)
	eng.SetModernPlacement(true)
	got = typeKeys(t, eng, "hoas")
	if got != "hoá" {
		t.Errorf("modern placement: typeKeys(%q) = %q, want %q", "hoas", got, "hoá")
	}
}

func TestSetAutoCapitalizeAtRuntime(t *testing.T) {
	eng := newTestEngine(t, MethodTelex)
	eng.SetAutoCapitalize(true)
	got := typeKeys(t, eng, "ok. ban")
	if got != "ok. Ban" {
		t.Errorf("typeKeys(%q) = %q, want %q", "ok. ban", got, "ok. Ban")
	}
}

func TestShortcutRuntimeMutation(t *testing.T) {
	eng := New(MethodTelex, DefaultOptions(), shortcut.NewTable(), nil)
	eng.AddShortcut(shortcut.New("vn", "Việt Nam"))
	got := typeKeys(t, eng, "vn ")
	if got != "Việt Nam " {
		t.Fatalf("after AddShortcut: typeKeys(%q) = %q, want %q", "vn ", got, "Việt Nam ")
	}

	eng.RemoveShortcut("vn")
	got = typeKeys(t, eng, "vn ")
	if got != "vn " {
		t.Errorf("after RemoveShortcut: typeKeys(%q) = %q, want %q", "vn ", got, "vn ")
	}

	eng2 := New(MethodTelex, DefaultOptions(), shortcut.WithDefaults(), nil)
	eng2.ClearShortcuts()
	got = typeKeys(t, eng2, "vn ")
	if got != "vn " {
		t.Errorf("after ClearShortcuts: typeKeys(%q) = %q, want %q", "vn ", got, "vn ")
	}
}

func TestAutoCapitalizeRequiresBreakAfterSentenceEnder(t *testing.T) {
	opts := DefaultOptions()
	opts.EnableAutoCapitalize = true
	eng := New(MethodTelex, opts, nil, nil)
	// A sentence-ender directly followed by a letter, with no intervening
	// break key, must not promote to pending_capitalize (spec.md §4.8: only
	// a break/space after saw_sentence_ender does that).
	got := typeKeys(t, eng, "ok.")
	got += typeKeys(t, eng, "ban")
	if got != "ok.ban" {
		t.Errorf("typeKeys without intervening space = %q, want %q", got, "ok.ban")
	}
}

func TestAutoRestoreRevertsNonVietnameseWord(t *testing.T) {
	opts := DefaultOptions()
	opts.EnableAutoRestore = true
	dict := dictionary.NewMapDictionary(nil, nil)
	eng := New(MethodTelex, opts, nil, dict)
	got := typeKeys(t, eng, "gusta ")
	if got != "gusta " {
		t.Errorf("typeKeys(%q) = %q, want passthrough %q", "gusta ", got, "gusta ")
	}
}

func TestAutoRestoreKeepsValidVietnameseWord(t *testing.T) {
	opts := DefaultOptions()
	opts.EnableAutoRestore = true
	dict := dictionary.NewMapDictionary(nil, nil)
	eng := New(MethodTelex, opts, nil, dict)
	got := typeKeys(t, eng, "chaof ")
	if got != "chào " {
		t.Errorf("typeKeys(%q) = %q, want %q", "chaof ", got, "chào ")
	}
}

func TestShortcutExpansion(t *testing.T) {
	eng := New(MethodTelex, DefaultOptions(), shortcut.WithDefaults(), nil)
	got := typeKeys(t, eng, "vn ")
	if got != "Việt Nam " {
		t.Errorf("typeKeys(%q) = %q, want %q", "vn ", got, "Việt Nam ")
	}
}

func TestAutoCapitalizeDigitSuppressesPending(t *testing.T) {
	opts := DefaultOptions()
	opts.EnableAutoCapitalize = true
	eng := New(MethodTelex, opts, nil, nil)
	// A digit arriving between a sentence-ender and the next word's break
	// clears saw_sentence_ender (spec.md §4.5, §4.8), so "1.5 k" never
	// promotes to "1.5 K" the way "ok. ban" -> "ok. Ban" does.
	got := typeKeys(t, eng, "1.5 k")
	if got != "1.5 k" {
		t.Errorf("typeKeys(%q) = %q, want %q", "1.5 k", got, "1.5 k")
	}
}

func TestImmediateShortcutFiresMidWord(t *testing.T) {
	eng := New(MethodTelex, DefaultOptions(), shortcut.NewTable(), nil)
	eng.AddShortcut(shortcut.NewImmediate("brb", "be right back"))
	got := typeKeys(t, eng, "brb")
	if got != "be right back" {
		t.Errorf("typeKeys(%q) = %q, want %q", "brb", got, "be right back")
	}
	// Typing continues fresh after an Immediate expansion fires.
	got = typeKeys(t, eng, "!")
	if got != "!" {
		t.Errorf("typeKeys(%q) after immediate expansion = %q, want %q", "!", got, "!")
	}
}

func TestVNIModifierTriggerScansPastConsonantCoda(t *testing.T) {
	// VNI's digit keys are not positional (spec.md §4.2): typing "tuong7"
	// must land the horn on the "o" even though a "g" coda sits between
	// it and the "7", which a prev-only check would miss entirely.
	eng := newTestEngine(t, MethodVNI)
	got := typeKeys(t, eng, "tuong7")
	if got != "tương" {
		t.Errorf("typeKeys(%q) = %q, want %q", "tuong7", got, "tương")
	}
}

func TestShortcutNeverFiresOnEmbeddedTrigger(t *testing.T) {
	eng := New(MethodTelex, DefaultOptions(), shortcut.WithDefaults(), nil)
	got := typeKeys(t, eng, "xvn ")
	if got != "xvn " {
		t.Errorf("typeKeys(%q) = %q, want passthrough %q (\"vn\" embedded in a longer word must not expand)", "xvn ", got, "xvn ")
	}
}

func TestDisabledEngineIsPassthrough(t *testing.T) {
	eng := newTestEngine(t, MethodTelex)
	eng.SetEnabled(false)
	got := typeKeys(t, eng, "chaof")
	if got != "chaof" {
		t.Errorf("typeKeys(%q) = %q, want passthrough %q", "chaof", got, "chaof")
	}
}
