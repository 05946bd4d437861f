package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{
			name:   "YYYY converts to Go year format",
			format: "YYYY",
			want:   "2006",
		},
		{
			name:   "ISO date format YYYY-MM-DD",
			format: "YYYY-MM-DD",
			want:   "2006-01-02",
		},
		{
			name:   "year-month format YYYY-MM",
			format: "YYYY-MM",
			want:   "2006-01",
		},
		{
			name:   "long format with full month name",
			format: "MMMM D, YYYY",
			want:   "January 2, 2006",
		},
		{
			name:   "letter date format pads the day",
			format: LetterDateFormat,
			want:   "January 02, 2006",
		},
		{
			name:   "bracket-escaped literals are preserved",
			format: "[Date:] YYYY",
			want:   "Date: 2006",
		},
		{
			name:   "non-token characters pass through",
			format: "YYYY_MM",
			want:   "2006_01",
		},
		{
			name:    "empty format is rejected",
			format:  "",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "unclosed bracket is rejected",
			format:  "[Date YYYY",
			wantErr: ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, time.May, 4, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"iso preset", "iso", "2025-05-04"},
		{"month preset", "month", "2025-05"},
		{"long preset", "long", "May 4, 2025"},
		{"letter date pads single-digit days", LetterDateFormat, "May 04, 2025"},
		{"explicit token format", "DD/MM/YYYY", "04/05/2025"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(ts, tt.format)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestExpandDatetime(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, time.May, 24, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		template string
		format   string
		want     string
		wantErr  error
	}{
		{
			name:     "resume path uses year-month",
			template: "{datetime}_resume.pdf",
			format:   "month",
			want:     "2025-05_resume.pdf",
		},
		{
			name:     "cover letter path uses full date",
			template: "{datetime}_cover_letter.pdf",
			format:   "iso",
			want:     "2025-05-24_cover_letter.pdf",
		},
		{
			name:     "template without token passes through",
			template: "out/final.pdf",
			format:   "iso",
			want:     "out/final.pdf",
		},
		{
			name:     "multiple tokens all expand",
			template: "{datetime}/{datetime}.pdf",
			format:   "iso",
			want:     "2025-05-24/2025-05-24.pdf",
		},
		{
			name:     "bad format surfaces the error",
			template: "{datetime}.pdf",
			format:   "[oops",
			wantErr:  ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExpandDatetime(tt.template, ts, tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandDatetime(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}
