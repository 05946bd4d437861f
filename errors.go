package resumegen

import "errors"

// Sentinel errors for library operations.
var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidStyle  = errors.New("invalid style configuration")
	ErrPDFGeneration = errors.New("PDF generation failed")
	ErrEmptyDocument = errors.New("document has no nodes")
)
