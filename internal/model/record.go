// Package model defines the core profile record types.
package model

import (
	"fmt"
	"strings"
)

// Record is one profile as loaded from the source document. Records are
// immutable once loaded.
type Record struct {
	ID                  int     `json:"id" validate:"gte=0"`
	Biography           string  `json:"biography"`
	PredictedLabel      int     `json:"predicted_label"`
	PredictedProfession string  `json:"predicted_profession"`
	Reason              string  `json:"reason"`
	SkillDomain         string  `json:"skill_domain" validate:"skill_domain"`
	ExperienceLevel     int     `json:"experience_level" validate:"gte=0,lte=100"`
	ConfidenceScore     float64 `json:"confidence_score"`
	AIConfidence        string  `json:"ai_confidence" validate:"ai_confidence"`
	BiographyLength     string  `json:"biography_length" validate:"biography_length"`
}

// PreviewLength is the number of biography characters shown on a card.
const PreviewLength = 120

// DisplayName is the label shown for a record in listings.
func (r Record) DisplayName() string {
	return fmt.Sprintf("Biography %d", r.ID+1)
}

// Preview returns the first n characters of the biography followed by "...".
func (r Record) Preview(n int) string {
	runes := []rune(strings.TrimSpace(r.Biography))
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}

// Skill domains, in display order.
var SkillDomains = []string{"Education", "Arts", "Business", "Design", "Science", "Healthcare"}

// AI confidence bands, in display order.
var ConfidenceLevels = []string{"High Confidence", "Medium Confidence", "Low Confidence"}

// Biography length bands, in display order.
var BiographyLengths = []string{"Short Biography", "Medium Biography", "Detailed Biography"}

// ValidSkillDomains are the allowed skill domain values.
var ValidSkillDomains = setOf(SkillDomains)

// ValidConfidenceLevels are the allowed AI confidence bands.
var ValidConfidenceLevels = setOf(ConfidenceLevels)

// ValidBiographyLengths are the allowed biography length bands.
var ValidBiographyLengths = setOf(BiographyLengths)

func setOf(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}
