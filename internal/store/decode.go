package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/rcliao/bio-browser/internal/model"
)

//go:embed records.schema.json
var recordsSchema string

var schemaLoader = gojsonschema.NewStringLoader(recordsSchema)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	enums := map[string]map[string]bool{
		"skill_domain":     model.ValidSkillDomains,
		"ai_confidence":    model.ValidConfidenceLevels,
		"biography_length": model.ValidBiographyLengths,
	}
	for tag, allowed := range enums {
		allowed := allowed
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return allowed[fl.Field().String()]
		})
		if err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
	return v
}

// DecodeRecords parses a profession predictions document. The document is
// checked against the embedded schema, then every record is validated and
// ids are checked for uniqueness. Errors are *LoadError with Op decode or
// validate.
func DecodeRecords(source string, data []byte) ([]model.Record, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &LoadError{Source: source, Op: OpDecode, Cause: err}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, &LoadError{Source: source, Op: OpDecode, Cause: fmt.Errorf("schema: %s", strings.Join(msgs, "; "))}
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Source: source, Op: OpDecode, Cause: err}
	}

	if err := ValidateRecords(records); err != nil {
		return nil, &LoadError{Source: source, Op: OpValidate, Cause: err}
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

// ValidateRecords checks field constraints and id uniqueness.
func ValidateRecords(records []model.Record) error {
	seen := make(map[int]int, len(records))
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("record %d (id %d): %w", i, r.ID, err)
		}
		if j, dup := seen[r.ID]; dup {
			return fmt.Errorf("record %d: duplicate id %d (first at record %d)", i, r.ID, j)
		}
		seen[r.ID] = i
	}
	return nil
}
