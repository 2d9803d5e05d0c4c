// Package browser ties a loaded record snapshot to one user's filter state
// and projects what the presentation layer renders.
package browser

import (
	"context"
	"fmt"

	"github.com/rcliao/bio-browser/internal/filter"
	"github.com/rcliao/bio-browser/internal/model"
	"github.com/rcliao/bio-browser/internal/paginate"
	"github.com/rcliao/bio-browser/internal/store"
)

// Status is the load state of a session's snapshot.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Session is one interactive browsing session. It owns the filter state;
// derived values (filtered records, chips, page) are recomputed on every read.
//
// A Session is not safe for concurrent use.
type Session struct {
	status   Status
	err      error
	records  []model.Record
	byID     map[int]int
	state    *filter.State
	page     int
	pageSize int
}

// New returns a session waiting for its snapshot.
func New(pageSize int) *Session {
	return &Session{
		status:   StatusLoading,
		state:    filter.NewState(),
		page:     1,
		pageSize: paginate.ClampPageSize(pageSize, paginate.DefaultPageSizeConfig),
	}
}

// Load fetches the snapshot once. On failure the session stays in
// StatusFailed and the error is returned; callers decide whether to retry
// with a new session.
func (s *Session) Load(ctx context.Context, loader store.Loader) error {
	if s.status != StatusLoading {
		return fmt.Errorf("session already %s", s.status)
	}
	records, err := loader.Load(ctx)
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return err
	}

	s.records = records
	s.byID = make(map[int]int, len(records))
	for i, r := range records {
		s.byID[r.ID] = i
	}
	s.status = StatusReady
	return nil
}

// Status returns the load state.
func (s *Session) Status() Status { return s.status }

// Err returns the load failure, if any.
func (s *Session) Err() error { return s.err }

// PageSize returns the fixed page size.
func (s *Session) PageSize() int { return s.pageSize }

// Query returns the text query as it was set.
func (s *Session) Query() string { return s.state.Query() }

// MinExperience returns the experience floor.
func (s *Session) MinExperience() int { return s.state.MinExperience() }

// Selected returns a copy of the values selected in dimension d.
func (s *Session) Selected(d model.Dimension) []string { return s.state.Selected(d) }

// SetQuery replaces the text query.
func (s *Session) SetQuery(text string) {
	s.state.SetQuery(text)
	s.filtersChanged()
}

// ClearQuery removes the search chip.
func (s *Session) ClearQuery() { s.SetQuery("") }

// SetMinExperience sets the experience floor, clamped into [0, 100].
func (s *Session) SetMinExperience(n int) {
	s.state.SetMinExperience(n)
	s.filtersChanged()
}

// ClearMinExperience removes the experience chip.
func (s *Session) ClearMinExperience() { s.SetMinExperience(0) }

// ToggleFacet selects or deselects value in dimension d.
func (s *Session) ToggleFacet(d model.Dimension, value string) {
	s.state.ToggleFacet(d, value)
	s.filtersChanged()
}

// RemoveChip drops one facet selection.
func (s *Session) RemoveChip(c model.Chip) {
	s.state.RemoveChip(c)
	s.filtersChanged()
}

// ResetAll restores every filter to its default.
func (s *Session) ResetAll() {
	s.state.Reset()
	s.filtersChanged()
}

// filtersChanged runs after every filter mutation: the previous page no
// longer describes the new result.
func (s *Session) filtersChanged() {
	s.page = 1
}

// SetPage moves to page n, clamped into the current page range.
func (s *Session) SetPage(n int) {
	s.page = paginate.ClampIndex(n, len(s.Filtered()), s.pageSize)
}

// PageIndex returns the current 1-based page index.
func (s *Session) PageIndex() int { return s.page }

// Records returns the loaded snapshot in base order.
func (s *Session) Records() []model.Record { return s.records }

// Filtered applies the current filters to the snapshot.
func (s *Session) Filtered() []model.Record {
	return filter.Apply(s.records, s.state)
}

// Record looks up a record by id, for navigation to a detail view.
func (s *Session) Record(id int) (model.Record, bool) {
	i, ok := s.byID[id]
	if !ok {
		return model.Record{}, false
	}
	return s.records[i], true
}

// Similar returns up to n other records sharing the skill domain of id, in
// base order.
func (s *Session) Similar(id int, n int) []model.Record {
	target, ok := s.Record(id)
	if !ok || n <= 0 {
		return nil
	}
	var out []model.Record
	for _, r := range s.records {
		if r.ID == id || r.SkillDomain != target.SkillDomain {
			continue
		}
		out = append(out, r)
		if len(out) == n {
			break
		}
	}
	return out
}
