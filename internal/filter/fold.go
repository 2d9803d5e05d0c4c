package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// folder lower-cases text for case-insensitive containment checks. Text is
// not normalized, so a decomposed accent stays a base letter plus a combining
// mark. A Caser keeps internal state, so each Apply call gets its own folder.
type folder struct {
	caser cases.Caser
}

func newFolder() *folder {
	return &folder{caser: cases.Lower(language.Und)}
}

func (f *folder) fold(s string) string {
	return f.caser.String(s)
}

// needle is the normalized form of a query: trimmed and lower-cased.
func (f *folder) needle(query string) string {
	return f.fold(strings.TrimSpace(query))
}
