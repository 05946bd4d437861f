package main

import (
	"errors"
	"os"

	resumegen "github.com/alnah/go-resumegen"
	"github.com/alnah/go-resumegen/internal/config"
	"github.com/alnah/go-resumegen/internal/fetch"
	"github.com/alnah/go-resumegen/internal/schemas"
)

// Exit codes for the resumegen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Document generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input data
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitFetch   = 4 // Remote JSON could not be retrieved
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Fetch errors (exit 4)
	var fetchErr *fetch.Error
	if errors.As(err, &fetchErr) {
		return ExitFetch
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return ExitUsage
	}
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrConflictingInput) ||
		errors.Is(err, ErrMissingCompany) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, resumegen.ErrMissingField) ||
		errors.Is(err, resumegen.ErrInvalidStyle) {
		return ExitUsage
	}

	return ExitGeneral
}
