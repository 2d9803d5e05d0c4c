package model

import "fmt"

// Dimension identifies one of the set-valued facet filters.
type Dimension int

const (
	DimensionDomain Dimension = iota
	DimensionConfidence
	DimensionBioLength
)

// Dimensions lists every facet dimension in chip order.
var Dimensions = []Dimension{DimensionDomain, DimensionConfidence, DimensionBioLength}

func (d Dimension) String() string {
	switch d {
	case DimensionDomain:
		return "domain"
	case DimensionConfidence:
		return "confidence"
	case DimensionBioLength:
		return "bioLength"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// MarshalText encodes the dimension by name.
func (d Dimension) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("unknown dimension %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a dimension name as accepted by ParseDimension.
func (d *Dimension) UnmarshalText(b []byte) error {
	parsed, err := ParseDimension(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Valid reports whether d is one of the known dimensions.
func (d Dimension) Valid() bool {
	return d >= DimensionDomain && d <= DimensionBioLength
}

// Values returns the allowed values for the dimension.
func (d Dimension) Values() []string {
	switch d {
	case DimensionDomain:
		return SkillDomains
	case DimensionConfidence:
		return ConfidenceLevels
	case DimensionBioLength:
		return BiographyLengths
	default:
		return nil
	}
}

// Allows reports whether value belongs to the dimension's enumeration.
func (d Dimension) Allows(value string) bool {
	switch d {
	case DimensionDomain:
		return ValidSkillDomains[value]
	case DimensionConfidence:
		return ValidConfidenceLevels[value]
	case DimensionBioLength:
		return ValidBiographyLengths[value]
	default:
		return false
	}
}

// ParseDimension maps a user-facing name to a Dimension.
func ParseDimension(s string) (Dimension, error) {
	switch s {
	case "domain", "skill_domain":
		return DimensionDomain, nil
	case "confidence", "ai_confidence":
		return DimensionConfidence, nil
	case "bioLength", "bio", "length", "biography_length":
		return DimensionBioLength, nil
	}
	return 0, fmt.Errorf("unknown dimension %q (valid: domain, confidence, bioLength)", s)
}

// Value returns the record's value for the dimension.
func (r Record) Value(d Dimension) string {
	switch d {
	case DimensionDomain:
		return r.SkillDomain
	case DimensionConfidence:
		return r.AIConfidence
	case DimensionBioLength:
		return r.BiographyLength
	default:
		panic(fmt.Sprintf("model: unknown dimension %d", int(d)))
	}
}

// Chip is one active facet selection, rendered as a removable token.
type Chip struct {
	Dimension Dimension `json:"dimension"`
	Value     string    `json:"value"`
}
