package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	resumegen "github.com/alnah/go-resumegen"
	"github.com/alnah/go-resumegen/internal/config"
	"github.com/alnah/go-resumegen/internal/fetch"
	"github.com/alnah/go-resumegen/internal/schemas"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "fetch error",
			err:  &fetch.Error{URL: "https://example.com", Message: "HTTP 404"},
			want: ExitFetch,
		},
		{
			name: "wrapped fetch error",
			err:  fmt.Errorf("loading input: %w", &fetch.Error{URL: "https://example.com", Message: "timeout"}),
			want: ExitFetch,
		},
		{
			name: "file not found",
			err:  fmt.Errorf("open: %w", os.ErrNotExist),
			want: ExitIO,
		},
		{
			name: "read input",
			err:  fmt.Errorf("%w: permission denied", ErrReadInput),
			want: ExitIO,
		},
		{
			name: "read template",
			err:  ErrReadTemplate,
			want: ExitIO,
		},
		{
			name: "write output",
			err:  ErrWriteOutput,
			want: ExitIO,
		},
		{
			name: "schema validation",
			err:  &schemas.ValidationError{},
			want: ExitUsage,
		},
		{
			name: "no input",
			err:  fmt.Errorf("%w: use --file or --url", ErrNoInput),
			want: ExitUsage,
		},
		{
			name: "conflicting input",
			err:  ErrConflictingInput,
			want: ExitUsage,
		},
		{
			name: "missing company",
			err:  ErrMissingCompany,
			want: ExitUsage,
		},
		{
			name: "malformed input",
			err:  ErrMalformedInput,
			want: ExitUsage,
		},
		{
			name: "config not found",
			err:  fmt.Errorf("%w: work.yaml", config.ErrConfigNotFound),
			want: ExitUsage,
		},
		{
			name: "missing data field",
			err:  fmt.Errorf("%w: name", resumegen.ErrMissingField),
			want: ExitUsage,
		},
		{
			name: "invalid style",
			err:  resumegen.ErrInvalidStyle,
			want: ExitUsage,
		},
		{
			name: "pdf generation",
			err:  resumegen.ErrPDFGeneration,
			want: ExitGeneral,
		},
		{
			name: "unclassified error",
			err:  errors.New("something odd"),
			want: ExitGeneral,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
