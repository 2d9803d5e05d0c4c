package browser

import (
	"github.com/rcliao/bio-browser/internal/filter"
	"github.com/rcliao/bio-browser/internal/model"
	"github.com/rcliao/bio-browser/internal/paginate"
)

// View is everything the presentation layer needs for one render.
type View struct {
	Status           Status                       `json:"status"`
	Error            string                       `json:"error,omitempty"`
	Total            int                          `json:"total"`
	Matched          int                          `json:"matched"`
	HasActiveFilters bool                         `json:"has_active_filters"`
	SearchChip       string                       `json:"search_chip,omitempty"`
	ExperienceChip   int                          `json:"experience_chip,omitempty"`
	Chips            []model.Chip                 `json:"chips"`
	Page             *paginate.Page[model.Record] `json:"page,omitempty"`
}

// View projects the session. While loading or after a failed load it has
// no page, so "no data yet" never looks like "zero matches".
func (s *Session) View() View {
	v := View{
		Status: s.status,
		Chips:  filter.Chips(s.state),
	}
	if v.Chips == nil {
		v.Chips = []model.Chip{}
	}
	v.HasActiveFilters = filter.HasActiveFilters(s.state)
	v.SearchChip, _ = filter.SearchChip(s.state)
	v.ExperienceChip, _ = filter.ExperienceChip(s.state)

	switch s.status {
	case StatusFailed:
		v.Error = s.err.Error()
		return v
	case StatusLoading:
		return v
	}

	filtered := s.Filtered()
	page := paginate.Paginate(filtered, s.page, s.pageSize)
	v.Total = len(s.records)
	v.Matched = len(filtered)
	v.Page = &page
	return v
}
