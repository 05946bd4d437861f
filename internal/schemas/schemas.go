// Package schemas validates input JSON payloads against embedded JSON
// Schemas before they are decoded into Go types. Schema validation
// catches shape errors (wrong types, missing structure) early with
// field-level messages; semantic checks (required header values) stay
// with the renderer.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

//go:embed cover_letter.schema.json
var coverLetterSchema []byte

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every schema violation in the payload.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// ValidateResume checks a raw resume payload against the resume schema.
func ValidateResume(doc []byte) error {
	return validate(resumeSchema, doc)
}

// ValidateCoverLetter checks a raw cover-letter header payload against
// the cover-letter schema.
func ValidateCoverLetter(doc []byte) error {
	return validate(coverLetterSchema, doc)
}

func validate(schema, doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		// Loader errors here mean the document is not JSON at all; the
		// embedded schemas themselves are exercised by tests.
		return fmt.Errorf("parsing JSON document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
