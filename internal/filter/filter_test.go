package filter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/bio-browser/internal/model"
)

func rec(id int, domain string, exp int) model.Record {
	return model.Record{
		ID:              id,
		Biography:       fmt.Sprintf("Profile %d works in %s", id, domain),
		SkillDomain:     domain,
		ExperienceLevel: exp,
		AIConfidence:    "High Confidence",
		BiographyLength: "Short Biography",
	}
}

func ids(records []model.Record) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func sampleRecords() []model.Record {
	domains := []string{"Arts", "Design", "Science", "Design", "Business", "Education",
		"Healthcare", "Arts", "Design", "Science", "Business", "Education"}
	records := make([]model.Record, len(domains))
	for i, d := range domains {
		records[i] = rec(i, d, i*8)
	}
	return records
}

func TestApply_DefaultStateIsIdentity(t *testing.T) {
	records := sampleRecords()
	got := Apply(records, NewState())
	assert.Equal(t, records, got)
}

func TestApply_EmptyInput(t *testing.T) {
	s := NewState()
	s.SetQuery("anything")
	s.ToggleFacet(model.DimensionDomain, "Arts")

	got := Apply(nil, s)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_Deterministic(t *testing.T) {
	records := sampleRecords()
	s := NewState()
	s.ToggleFacet(model.DimensionDomain, "Design")
	s.ToggleFacet(model.DimensionDomain, "Arts")
	s.SetMinExperience(10)

	first := Apply(records, s)
	second := Apply(records, s)
	assert.Equal(t, first, second)
}

func TestApply_DomainFacetKeepsBaseOrder(t *testing.T) {
	records := sampleRecords()
	s := NewState()
	s.ToggleFacet(model.DimensionDomain, "Design")

	got := Apply(records, s)
	assert.Equal(t, []int{1, 3, 8}, ids(got))
}

func TestApply_FacetsUnionWithinAndIntersectAcross(t *testing.T) {
	records := []model.Record{
		{ID: 0, SkillDomain: "Arts", AIConfidence: "High Confidence", BiographyLength: "Short Biography"},
		{ID: 1, SkillDomain: "Design", AIConfidence: "Low Confidence", BiographyLength: "Short Biography"},
		{ID: 2, SkillDomain: "Design", AIConfidence: "High Confidence", BiographyLength: "Detailed Biography"},
		{ID: 3, SkillDomain: "Science", AIConfidence: "High Confidence", BiographyLength: "Short Biography"},
	}
	s := NewState()
	s.ToggleFacet(model.DimensionDomain, "Arts")
	s.ToggleFacet(model.DimensionDomain, "Design")
	s.ToggleFacet(model.DimensionConfidence, "High Confidence")

	assert.Equal(t, []int{0, 2}, ids(Apply(records, s)))

	s.ToggleFacet(model.DimensionBioLength, "Short Biography")
	assert.Equal(t, []int{0}, ids(Apply(records, s)))
}

func TestApply_ExperienceFloorIsInclusive(t *testing.T) {
	records := []model.Record{rec(0, "Arts", 10), rec(1, "Arts", 50), rec(2, "Arts", 90)}
	s := NewState()
	s.SetMinExperience(50)

	got := Apply(records, s)
	require.Len(t, got, 2)
	assert.Equal(t, 50, got[0].ExperienceLevel)
	assert.Equal(t, 90, got[1].ExperienceLevel)
}

func TestApply_QueryIsTrimmedCaseInsensitiveSubstring(t *testing.T) {
	records := []model.Record{
		{ID: 0, Biography: "She is a Doctor at the city hospital."},
		{ID: 1, Biography: "A composer of film music."},
		{ID: 2, Biography: "Former DOCTORAL student turned painter."},
	}

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty", "", []int{0, 1, 2}},
		{"whitespace only", "   ", []int{0, 1, 2}},
		{"lower case", "doctor", []int{0, 2}},
		{"mixed case with padding", "  MuSiC ", []int{1}},
		{"phrase", "film music", []int{1}},
		{"words are not tokenized", "music film", []int{}},
		{"no match", "javascript", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.SetQuery(tt.query)
			assert.Equal(t, tt.want, ids(Apply(records, s)))
		})
	}
}

func TestApply_QueryFoldsUnicode(t *testing.T) {
	records := []model.Record{{ID: 0, Biography: "ÉCOLE de danse in Montréal"}}
	s := NewState()
	s.SetQuery("école")
	assert.Len(t, Apply(records, s), 1)
}

func TestApply_QueryDoesNotNormalizeAccents(t *testing.T) {
	// "Cafe" followed by a combining acute accent.
	records := []model.Record{{ID: 0, Biography: "Cafe\u0301 owner in Lyon"}}

	s := NewState()
	s.SetQuery("cafe")
	assert.Len(t, Apply(records, s), 1, "decomposed accent keeps the base letters")

	s.SetQuery("café")
	assert.Empty(t, Apply(records, s), "precomposed query does not match a decomposed biography")
}

func TestSetQuery_StoresVerbatim(t *testing.T) {
	s := NewState()
	s.SetQuery("  Doctor ")
	assert.Equal(t, "  Doctor ", s.Query())
}

func TestSetMinExperience_Clamps(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 0}, {0, 0}, {35, 35}, {100, 100}, {250, 100},
	}
	for _, tt := range tests {
		s := NewState()
		s.SetMinExperience(tt.in)
		assert.Equal(t, tt.want, s.MinExperience(), "input %d", tt.in)
	}
}

func TestToggleFacet_InvolutionAndIsolation(t *testing.T) {
	for _, d := range model.Dimensions {
		t.Run(d.String(), func(t *testing.T) {
			s := NewState()
			for _, other := range model.Dimensions {
				s.ToggleFacet(other, other.Values()[0])
			}
			before := map[model.Dimension][]string{}
			for _, other := range model.Dimensions {
				before[other] = s.Selected(other)
			}

			v := d.Values()[1]
			s.ToggleFacet(d, v)
			assert.True(t, s.Has(d, v))
			for _, other := range model.Dimensions {
				if other != d {
					assert.Equal(t, before[other], s.Selected(other))
				}
			}

			s.ToggleFacet(d, v)
			for _, other := range model.Dimensions {
				assert.Equal(t, before[other], s.Selected(other))
			}
		})
	}
}

func TestToggleFacet_UnknownDimensionPanics(t *testing.T) {
	s := NewState()
	assert.Panics(t, func() { s.ToggleFacet(model.Dimension(42), "Arts") })
}

func TestRemoveChip_IsDimensionScoped(t *testing.T) {
	s := NewState()
	s.ToggleFacet(model.DimensionDomain, "Design")
	s.ToggleFacet(model.DimensionDomain, "Arts")
	s.ToggleFacet(model.DimensionConfidence, "High Confidence")

	s.RemoveChip(model.Chip{Dimension: model.DimensionDomain, Value: "Design"})

	assert.Equal(t, []string{"Arts"}, s.Selected(model.DimensionDomain))
	assert.Equal(t, []string{"High Confidence"}, s.Selected(model.DimensionConfidence))
	assert.Empty(t, s.Selected(model.DimensionBioLength))
}

func TestRemoveChip_SameValueInAnotherDimensionSurvives(t *testing.T) {
	// Values never collide across the fixed enumerations, but removal must
	// not depend on that.
	s := NewState()
	s.ToggleFacet(model.DimensionDomain, "shared")
	s.ToggleFacet(model.DimensionBioLength, "shared")

	s.RemoveChip(model.Chip{Dimension: model.DimensionBioLength, Value: "shared"})

	assert.Equal(t, []string{"shared"}, s.Selected(model.DimensionDomain))
	assert.Empty(t, s.Selected(model.DimensionBioLength))
}

func TestReset(t *testing.T) {
	s := NewState()
	s.SetQuery("doctor")
	s.SetMinExperience(40)
	s.ToggleFacet(model.DimensionDomain, "Arts")
	s.ToggleFacet(model.DimensionConfidence, "Low Confidence")
	s.ToggleFacet(model.DimensionBioLength, "Short Biography")

	s.Reset()

	assert.Equal(t, NewState(), s)
	assert.False(t, HasActiveFilters(s))
}

func TestSelected_ReturnsCopy(t *testing.T) {
	s := NewState()
	s.ToggleFacet(model.DimensionDomain, "Arts")

	got := s.Selected(model.DimensionDomain)
	got[0] = "Science"

	assert.Equal(t, []string{"Arts"}, s.Selected(model.DimensionDomain))
}

func TestChips_FixedDimensionOrderThenInsertionOrder(t *testing.T) {
	s := NewState()
	s.ToggleFacet(model.DimensionBioLength, "Detailed Biography")
	s.ToggleFacet(model.DimensionConfidence, "Low Confidence")
	s.ToggleFacet(model.DimensionDomain, "Science")
	s.ToggleFacet(model.DimensionDomain, "Arts")

	want := []model.Chip{
		{Dimension: model.DimensionDomain, Value: "Science"},
		{Dimension: model.DimensionDomain, Value: "Arts"},
		{Dimension: model.DimensionConfidence, Value: "Low Confidence"},
		{Dimension: model.DimensionBioLength, Value: "Detailed Biography"},
	}
	assert.Equal(t, want, Chips(s))
}

func TestChips_EmptyState(t *testing.T) {
	assert.Empty(t, Chips(NewState()))
}

func TestHasActiveFilters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *State)
		want   bool
	}{
		{"default", func(s *State) {}, false},
		{"blank query", func(s *State) { s.SetQuery("  ") }, false},
		{"query", func(s *State) { s.SetQuery("doctor") }, true},
		{"floor", func(s *State) { s.SetMinExperience(5) }, true},
		{"domain", func(s *State) { s.ToggleFacet(model.DimensionDomain, "Arts") }, true},
		{"confidence", func(s *State) { s.ToggleFacet(model.DimensionConfidence, "High Confidence") }, true},
		{"length", func(s *State) { s.ToggleFacet(model.DimensionBioLength, "Short Biography") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			tt.mutate(s)
			assert.Equal(t, tt.want, HasActiveFilters(s))
		})
	}
}

func TestScalarChips(t *testing.T) {
	s := NewState()
	_, ok := SearchChip(s)
	assert.False(t, ok)
	_, ok = ExperienceChip(s)
	assert.False(t, ok)

	s.SetQuery("  music  ")
	s.SetMinExperience(30)

	q, ok := SearchChip(s)
	assert.True(t, ok)
	assert.Equal(t, "music", q)

	n, ok := ExperienceChip(s)
	assert.True(t, ok)
	assert.Equal(t, 30, n)
}
