// Package dictionary defines the word-list contract auto-restore consults
// to decide whether a composed Vietnamese word should be left alone or
// reverted to its raw typed form. The actual word list is host-supplied:
// spec.md is explicit that the loader is not part of the engine core, and
// the retrieval pack's original dictionary data files were not available
// to ship here, grounded on original_source/core/src/data/dictionary.rs's
// is_vietnamese/should_keep split.
package dictionary

import "strings"

// Dictionary answers whether composed Vietnamese words, or words an
// auto-restore pass would otherwise revert, are known-good.
type Dictionary interface {
	// IsVietnamese reports whether word (already composed, in the case it
	// was typed) is a recognised Vietnamese word.
	IsVietnamese(word string) bool
	// ShouldKeep reports whether word should never be auto-restored even
	// if it fails IsVietnamese - e.g. a foreign loanword or an acronym the
	// user has typed deliberately.
	ShouldKeep(word string) bool
}

// MapDictionary is a small in-memory reference Dictionary backed by two
// word sets, mirroring dictionary.rs's vi.dic/keep.dic split. Hosts with a
// real word list load one into these sets instead of using this type
// directly.
type MapDictionary struct {
	Vietnamese map[string]bool
	Keep       map[string]bool
}

// NewMapDictionary builds a MapDictionary from word lists, lowercasing
// every entry.
func NewMapDictionary(vietnamese, keep []string) *MapDictionary {
	d := &MapDictionary{Vietnamese: make(map[string]bool), Keep: make(map[string]bool)}
	for _, w := range vietnamese {
		d.Vietnamese[strings.ToLower(w)] = true
	}
	for _, w := range keep {
		d.Keep[strings.ToLower(w)] = true
	}
	return d
}

func (d *MapDictionary) IsVietnamese(word string) bool {
	return d.Vietnamese[strings.ToLower(word)]
}

func (d *MapDictionary) ShouldKeep(word string) bool {
	return d.Keep[strings.ToLower(word)]
}

// StartsWithForeignConsonant reports whether word begins with a letter
// that never starts a native Vietnamese syllable (z, w, j, f), a cheap
// pre-filter auto-restore can use before consulting the full dictionary.
// Grounded on starts_with_foreign_consonant in dictionary.rs.
func StartsWithForeignConsonant(word string) bool {
	if word == "" {
		return false
	}
	switch strings.ToLower(word)[0] {
	case 'z', 'w', 'j', 'f':
		return true
	}
	return false
}
