package filter

// facetSet is an insertion-ordered set of facet values. Facets have at most a
// handful of values, so membership is a linear scan.
type facetSet struct {
	values []string
}

func (s *facetSet) has(v string) bool {
	for _, x := range s.values {
		if x == v {
			return true
		}
	}
	return false
}

// toggle removes v when present and appends it otherwise.
func (s *facetSet) toggle(v string) {
	if s.has(v) {
		s.remove(v)
		return
	}
	s.values = append(s.values, v)
}

func (s *facetSet) remove(v string) {
	out := s.values[:0]
	for _, x := range s.values {
		if x != v {
			out = append(out, x)
		}
	}
	s.values = out
}

func (s *facetSet) empty() bool { return len(s.values) == 0 }

// matches applies the empty-means-unconstrained rule.
func (s *facetSet) matches(v string) bool {
	return s.empty() || s.has(v)
}

func (s *facetSet) list() []string {
	if len(s.values) == 0 {
		return nil
	}
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}
