// Package shortcut implements the expansion table that turns a short
// trigger word (e.g. "vn") into a longer replacement ("Việt Nam"), either
// immediately on the triggering keystroke or once a word boundary is
// reached. Ported from original_source/core/src/engine/shortcut.rs,
// which this package follows closely in shape (spec.md §4.7).
package shortcut

import (
	"sort"
	"strings"
)

// TriggerCondition decides when a shortcut fires.
type TriggerCondition int

const (
	// OnWordBoundary fires once a break key (space, punctuation, return)
	// follows the trigger text.
	OnWordBoundary TriggerCondition = iota
	// Immediate fires on the keystroke that completes the trigger text,
	// with no boundary key needed. The built-in table has no Immediate
	// entries; the engine turns a word-initial Telex "w" into ư itself.
	Immediate
)

// CaseMode decides how the replacement's case follows the trigger's case.
type CaseMode int

const (
	// MatchCase mirrors the trigger's casing onto the replacement: an
	// all-caps trigger yields an all-caps replacement, a capitalised
	// trigger capitalises the replacement's first letter, otherwise the
	// replacement is used verbatim.
	MatchCase CaseMode = iota
	// Exact always emits the replacement exactly as configured.
	Exact
)

// Shortcut is one trigger/replacement pair.
type Shortcut struct {
	Trigger     string
	Replacement string
	Condition   TriggerCondition
	CaseMode    CaseMode
	Enabled     bool
}

// New builds a word-boundary, case-matching shortcut - the default shape
// used by the dictionary-style entries (vn, hcm, hn, ...).
func New(trigger, replacement string) Shortcut {
	return Shortcut{
		Trigger:     trigger,
		Replacement: replacement,
		Condition:   OnWordBoundary,
		CaseMode:    MatchCase,
		Enabled:     true,
	}
}

// NewImmediate builds an immediate, exact-case shortcut.
func NewImmediate(trigger, replacement string) Shortcut {
	return Shortcut{
		Trigger:     trigger,
		Replacement: replacement,
		Condition:   Immediate,
		CaseMode:    Exact,
		Enabled:     true,
	}
}

// Match describes how to apply a fired shortcut: delete BackspaceCount
// already-sent characters (the trigger), then insert Output.
type Match struct {
	BackspaceCount int
	Output         string
}

// Table is the live set of configured shortcuts.
type Table struct {
	shortcuts      map[string]Shortcut
	sortedTriggers []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{shortcuts: make(map[string]Shortcut)}
}

// WithDefaults returns a table seeded with the built-in Vietnamese
// shortcuts, grounded on Shortcut::with_defaults in shortcut.rs.
func WithDefaults() *Table {
	t := NewTable()
	t.Add(New("vn", "Việt Nam"))
	t.Add(New("hcm", "Hồ Chí Minh"))
	t.Add(New("hn", "Hà Nội"))
	t.Add(New("dc", "được"))
	t.Add(New("ko", "không"))
	return t
}

// Add inserts or replaces a shortcut.
func (t *Table) Add(s Shortcut) {
	if t.shortcuts == nil {
		t.shortcuts = make(map[string]Shortcut)
	}
	t.shortcuts[strings.ToLower(s.Trigger)] = s
	t.rebuildSortedTriggers()
}

// Remove deletes a shortcut by trigger text.
func (t *Table) Remove(trigger string) {
	delete(t.shortcuts, strings.ToLower(trigger))
	t.rebuildSortedTriggers()
}

// Lookup returns the configured shortcut for an exact trigger, if any.
func (t *Table) Lookup(trigger string) (Shortcut, bool) {
	s, ok := t.shortcuts[strings.ToLower(trigger)]
	return s, ok
}

func (t *Table) rebuildSortedTriggers() {
	triggers := make([]string, 0, len(t.shortcuts))
	for k := range t.shortcuts {
		triggers = append(triggers, k)
	}
	sort.Slice(triggers, func(i, j int) bool { return len(triggers[i]) > len(triggers[j]) })
	t.sortedTriggers = triggers
}

// TryMatch checks whether word (the raw text typed so far, for the whole
// in-progress word) exactly equals a configured, enabled trigger for
// condition, mirroring ShortcutTable::lookup in shortcut.rs: the whole
// buffer must match, not just a suffix of it, so a trigger embedded in a
// longer word (e.g. "vn" inside "xvn") never fires.
func (t *Table) TryMatch(word string, condition TriggerCondition) (Match, bool) {
	lower := strings.ToLower(word)
	for _, trigger := range t.sortedTriggers {
		s := t.shortcuts[trigger]
		if !s.Enabled || s.Condition != condition {
			continue
		}
		if lower == trigger {
			out := applyCase(s, word)
			return Match{BackspaceCount: len(trigger), Output: out}, true
		}
	}
	return Match{}, false
}

// applyCase renders s.Replacement according to s.CaseMode, deriving the
// case pattern from how the matched trigger text was actually typed.
func applyCase(s Shortcut, typedTrigger string) string {
	if s.CaseMode == Exact {
		return s.Replacement
	}
	switch {
	case typedTrigger == strings.ToUpper(typedTrigger) && typedTrigger != strings.ToLower(typedTrigger):
		return strings.ToUpper(s.Replacement)
	case isTitleCase(typedTrigger):
		return titleCaseFirst(s.Replacement)
	default:
		return s.Replacement
	}
}

func isTitleCase(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return string(r[0]) == strings.ToUpper(string(r[0])) && string(r) != strings.ToUpper(s)
}

func titleCaseFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
