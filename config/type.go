package config

import (
	"strings"
	"unicode"
)

// CommitType is a single entry of the commit type selection menu.
type CommitType struct {
	// Value is written verbatim at the start of the commit header. It may
	// begin with an emoji glyph, e.g. "✨ feat".
	Value string `json:"value" toml:"value"`
	// Name is the label shown in the selection menu.
	Name string `json:"name" toml:"name"`
}

// Keyword returns the conventional keyword of the type, which is the value
// without any leading glyphs or whitespace. "♻️ refactor" yields "refactor".
func (t CommitType) Keyword() string {
	return Keyword(t.Value)
}

// Keyword strips leading runes that are neither letters nor digits from s.
func Keyword(s string) string {
	kw := strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.TrimSpace(kw)
}

func (t CommitType) String() string {
	return t.Value
}
