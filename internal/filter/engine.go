package filter

import (
	"strings"

	"github.com/rcliao/bio-browser/internal/model"
)

// Apply returns the records that satisfy every criterion in s, in their
// base order. It never modifies records or s.
func Apply(records []model.Record, s *State) []model.Record {
	out := make([]model.Record, 0, len(records))
	if len(records) == 0 {
		return out
	}

	m := newMatcher(s)
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

type matcher struct {
	state  *State
	folder *folder
	needle string
}

func newMatcher(s *State) *matcher {
	f := newFolder()
	return &matcher{state: s, folder: f, needle: f.needle(s.query)}
}

func (m *matcher) match(r model.Record) bool {
	s := m.state
	if r.ExperienceLevel < s.minExperience {
		return false
	}
	for _, d := range model.Dimensions {
		if !s.set(d).matches(r.Value(d)) {
			return false
		}
	}
	if m.needle == "" {
		return true
	}
	return strings.Contains(m.folder.fold(r.Biography), m.needle)
}
