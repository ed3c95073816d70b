package discovery

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed answers.schema.json
var answersSchemaJSON []byte

var answersSchema = mustLoadSchema(answersSchemaJSON)

func mustLoadSchema(raw []byte) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("discovery: invalid answers schema: %v", err))
	}
	return schema
}

// ValidationError lists every schema violation found in a questionnaire.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// Validate checks answers as a whole before classification runs.
func Validate(answers Answers) error {
	result, err := answersSchema.Validate(gojsonschema.NewGoLoader(answers))
	if err != nil {
		return fmt.Errorf("validate answers: %w", err)
	}
	if result.Valid() {
		return nil
	}
	violations := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		violations[i] = desc.String()
	}
	return &ValidationError{Violations: violations}
}
