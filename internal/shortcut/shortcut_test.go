package shortcut

import "testing"

func TestWithDefaultsLookup(t *testing.T) {
	tbl := WithDefaults()
	s, ok := tbl.Lookup("vn")
	if !ok {
		t.Fatalf("expected built-in \"vn\" shortcut")
	}
	if s.Replacement != "Việt Nam" || s.Condition != OnWordBoundary {
		t.Errorf("vn shortcut = %+v, want word-boundary Việt Nam", s)
	}
}

func TestTryMatchCaseMirroring(t *testing.T) {
	tbl := WithDefaults()
	tests := []struct {
		typed string
		want  string
	}{
		{"ko", "không"},
		{"KO", "KHÔNG"},
		{"Ko", "Không"},
	}
	for _, tt := range tests {
		m, ok := tbl.TryMatch(tt.typed, OnWordBoundary)
		if !ok {
			t.Fatalf("TryMatch(%q) did not match", tt.typed)
		}
		if m.Output != tt.want {
			t.Errorf("TryMatch(%q).Output = %q, want %q", tt.typed, m.Output, tt.want)
		}
		if m.BackspaceCount != len(tt.typed) {
			t.Errorf("TryMatch(%q).BackspaceCount = %d, want %d", tt.typed, m.BackspaceCount, len(tt.typed))
		}
	}
}

func TestTryMatchRequiresWholeWordMatch(t *testing.T) {
	tbl := NewTable()
	tbl.Add(New("vn", "Việt Nam"))

	// "vn" embedded in a longer typed word must not fire - TryMatch mirrors
	// ShortcutTable::lookup's whole-buffer equality, not a suffix scan, so
	// typing "xvn " is passed through untouched rather than losing its "x".
	if _, ok := tbl.TryMatch("xvn", OnWordBoundary); ok {
		t.Errorf("TryMatch(xvn) should not match trigger \"vn\" embedded in a longer word")
	}

	m, ok := tbl.TryMatch("vn", OnWordBoundary)
	if !ok || m.Output != "Việt Nam" || m.BackspaceCount != 2 {
		t.Errorf("TryMatch(vn) = %+v,%v, want Việt Nam,true with BackspaceCount 2", m, ok)
	}
}

func TestTryMatchRespectsCondition(t *testing.T) {
	tbl := NewTable()
	tbl.Add(NewImmediate("w", "ư"))

	if _, ok := tbl.TryMatch("w", OnWordBoundary); ok {
		t.Errorf("an Immediate shortcut must not fire for OnWordBoundary lookups")
	}
	m, ok := tbl.TryMatch("w", Immediate)
	if !ok || m.Output != "ư" {
		t.Errorf("TryMatch(w, Immediate) = %+v,%v, want ư,true", m, ok)
	}
}

func TestAddRemoveLookup(t *testing.T) {
	tbl := NewTable()
	tbl.Add(New("abc", "xyz"))
	if _, ok := tbl.Lookup("ABC"); !ok {
		t.Errorf("Lookup should be case-insensitive")
	}
	tbl.Remove("abc")
	if _, ok := tbl.Lookup("abc"); ok {
		t.Errorf("expected shortcut removed")
	}
}

func TestDisabledShortcutNeverMatches(t *testing.T) {
	tbl := NewTable()
	s := New("vn", "Việt Nam")
	s.Enabled = false
	tbl.Add(s)
	if _, ok := tbl.TryMatch("vn", OnWordBoundary); ok {
		t.Errorf("a disabled shortcut must not match")
	}
}
