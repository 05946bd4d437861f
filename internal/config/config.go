// Package config loads the optional YAML configuration file that
// overrides document styling and output defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	resumegen "github.com/alnah/go-resumegen"
	"github.com/alnah/go-resumegen/internal/fileutil"
	"github.com/alnah/go-resumegen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// configDirName is the subdirectory under the user config dir searched
// for named configs.
const configDirName = "go-resumegen"

// FontConfig overrides the document font.
type FontConfig struct {
	Name string  `yaml:"name"` // empty = keep default
	Size float64 `yaml:"size"` // 0 = keep default
}

// MarginsConfig overrides page margins, in centimeters. A nil value
// keeps the stock margins; an explicit zero is honored.
type MarginsConfig struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// DocumentConfig holds the per-pipeline overrides shared by both
// document kinds.
type DocumentConfig struct {
	Font    FontConfig     `yaml:"font"`
	Margins *MarginsConfig `yaml:"margins"`
	Output  string         `yaml:"output"` // path template, {datetime} supported
}

// CoverLetterConfig adds the cover-letter-only settings.
type CoverLetterConfig struct {
	DocumentConfig `yaml:",inline"`
	Template       string `yaml:"template"` // template file path
	Position       string `yaml:"position"` // default --position value
}

// FetchConfig tunes remote JSON loading.
type FetchConfig struct {
	Timeout   string `yaml:"timeout"` // Go duration string, e.g. "30s"
	UserAgent string `yaml:"userAgent"`
}

// Config holds all configuration for document generation.
type Config struct {
	Resume      DocumentConfig    `yaml:"resume"`
	CoverLetter CoverLetterConfig `yaml:"coverLetter"`
	Fetch       FetchConfig       `yaml:"fetch"`
}

// Defaults used when no config file overrides them.
const (
	DefaultResumeOutput      = "{datetime}_resume.pdf"
	DefaultCoverLetterOutput = "{datetime}_cover_letter.pdf"
	DefaultTemplatePath      = "templates/cover_letter.txt"
	DefaultPosition          = "Principal Software Engineer"
)

// DefaultConfig returns a configuration with all overrides unset and
// the stock output defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		Resume: DocumentConfig{Output: DefaultResumeOutput},
		CoverLetter: CoverLetterConfig{
			DocumentConfig: DocumentConfig{Output: DefaultCoverLetterOutput},
			Template:       DefaultTemplatePath,
			Position:       DefaultPosition,
		},
	}
}

// Validate checks value ranges. Zero values mean "keep default" and
// are always valid.
func (c *Config) Validate() error {
	for name, doc := range map[string]*DocumentConfig{
		"resume":      &c.Resume,
		"coverLetter": &c.CoverLetter.DocumentConfig,
	} {
		if doc.Font.Size < 0 {
			return fmt.Errorf("%s.font.size: must not be negative, got %v", name, doc.Font.Size)
		}
		if m := doc.Margins; m != nil {
			for side, v := range map[string]float64{"top": m.Top, "bottom": m.Bottom, "left": m.Left, "right": m.Right} {
				if v < 0 {
					return fmt.Errorf("%s.margins.%s: must not be negative, got %v", name, side, v)
				}
			}
		}
	}
	if c.Fetch.Timeout != "" {
		if _, err := time.ParseDuration(c.Fetch.Timeout); err != nil {
			return fmt.Errorf("fetch.timeout: %v", err)
		}
	}
	return nil
}

// Style merges the overrides in d over base and returns the result.
func (d DocumentConfig) Style(base resumegen.StyleConfig) resumegen.StyleConfig {
	if d.Font.Name != "" {
		base.FontName = d.Font.Name
	}
	if d.Font.Size > 0 {
		base.FontSizePt = d.Font.Size
	}
	if m := d.Margins; m != nil {
		base.Margins = resumegen.Margins{Top: m.Top, Bottom: m.Bottom, Left: m.Left, Right: m.Right}
	}
	return base
}

// FetchTimeout returns the configured fetch timeout, or zero when unset.
// Validate has already checked the syntax.
func (c *Config) FetchTimeout() time.Duration {
	if c.Fetch.Timeout == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Fetch.Timeout)
	return d
}

// LoadConfig loads configuration from a file path or config name and
// overlays it on the defaults. If nameOrPath contains a path separator
// it is treated as a file path; otherwise it is searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions .yaml then .yml, first in the current
// directory, then in ~/.config/go-resumegen/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
