package extraction

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed rfp_draft.schema.json
var draftSchemaJSON string

var (
	draftSchemaOnce sync.Once
	draftSchema     *gojsonschema.Schema
	draftSchemaErr  error
)

// loadDraftSchema compiles the embedded draft schema once.
func loadDraftSchema() (*gojsonschema.Schema, error) {
	draftSchemaOnce.Do(func() {
		loader := gojsonschema.NewStringLoader(draftSchemaJSON)
		draftSchema, draftSchemaErr = gojsonschema.NewSchema(loader)
	})
	if draftSchemaErr != nil {
		return nil, fmt.Errorf("failed to compile draft schema: %w", draftSchemaErr)
	}
	return draftSchema, nil
}

// ValidateDraftJSON checks that jsonText is a single JSON object carrying
// exactly the six contracted draft fields with the contracted types. Missing
// keys, wrong types, and unexpected extra keys are all rejected.
func ValidateDraftJSON(jsonText string) error {
	schema, err := loadDraftSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonText))
	if err != nil {
		return &ExtractionError{
			Message: "response is not valid JSON",
			Cause:   err,
		}
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, violation := range result.Errors() {
			details = append(details, fmt.Sprintf("%s: %s", violation.Field(), violation.Description()))
		}
		return &ExtractionError{
			Message: "response violates the draft schema",
			Details: details,
		}
	}

	return nil
}
