package store

import (
	"fmt"

	"github.com/rcliao/bio-browser/internal/model"
)

func testRecords(n int) []model.Record {
	domains := model.SkillDomains
	records := make([]model.Record, n)
	for i := range records {
		records[i] = model.Record{
			ID:                  i,
			Biography:           fmt.Sprintf("Biography text number %d", i),
			PredictedLabel:      i % 3,
			PredictedProfession: "Painter",
			Reason:              "Mentions exhibitions",
			SkillDomain:         domains[i%len(domains)],
			ExperienceLevel:     (i * 7) % 101,
			ConfidenceScore:     0.9,
			AIConfidence:        model.ConfidenceLevels[i%len(model.ConfidenceLevels)],
			BiographyLength:     model.BiographyLengths[i%len(model.BiographyLengths)],
		}
	}
	return records
}

const validDocument = `[
  {
    "id": 0,
    "biography": "She is a painter based in Lisbon.",
    "predicted_label": 9,
    "predicted_profession": "Painter",
    "reason": "Mentions exhibitions and canvases.",
    "skill_domain": "Arts",
    "experience_level": 40,
    "confidence_score": 0.91,
    "ai_confidence": "High Confidence",
    "biography_length": "Short Biography"
  },
  {
    "id": 1,
    "biography": "He designs bridges.",
    "skill_domain": "Design",
    "experience_level": 75,
    "ai_confidence": "Medium Confidence",
    "biography_length": "Medium Biography"
  }
]`
