package resumegen

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. validator.Validate caches
// struct metadata, so a single instance is reused across calls.
var validate = validator.New()

// Margins holds page margins in centimeters.
type Margins struct {
	Top    float64 `validate:"gte=0"`
	Bottom float64 `validate:"gte=0"`
	Left   float64 `validate:"gte=0"`
	Right  float64 `validate:"gte=0"`
}

// StyleConfig holds document-wide styling: font face, font size in
// points, and page margins in centimeters. It is validated once at
// renderer construction and applied once at document creation.
type StyleConfig struct {
	FontName   string  `validate:"required"`
	FontSizePt float64 `validate:"required,gt=0"`
	Margins    Margins
}

// Validate checks that all required style fields are populated and in
// range. Required keys are verified at construction, not at point of use.
func (s StyleConfig) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	return nil
}

// DefaultResumeStyle returns the stock resume style: compact 8pt body
// with narrow top/bottom margins.
func DefaultResumeStyle() StyleConfig {
	return StyleConfig{
		FontName:   "Arial",
		FontSizePt: 8,
		Margins:    Margins{Top: 0.5, Bottom: 0.5, Left: 1.0, Right: 1.0},
	}
}

// DefaultCoverLetterStyle returns the stock cover-letter style: 11pt
// body with one-inch margins on all sides.
func DefaultCoverLetterStyle() StyleConfig {
	return StyleConfig{
		FontName:   "Arial",
		FontSizePt: 11,
		Margins:    Margins{Top: 2.54, Bottom: 2.54, Left: 2.54, Right: 2.54},
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle sets the style applied to rendered documents.
func WithStyle(style StyleConfig) Option {
	return func(r *Renderer) {
		r.style = style
	}
}

// Renderer builds document models from input payloads. A Renderer is
// stateless across renders: each call builds one fresh document.
type Renderer struct {
	style StyleConfig
}

// NewRenderer creates a Renderer. The default style is DefaultResumeStyle;
// use WithStyle to override. Returns ErrInvalidStyle if the resulting
// style is incomplete.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{style: DefaultResumeStyle()}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.style.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
