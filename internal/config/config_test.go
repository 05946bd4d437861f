package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	resumegen "github.com/alnah/go-resumegen"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Resume.Output != DefaultResumeOutput {
		t.Errorf("Resume.Output = %q, want %q", cfg.Resume.Output, DefaultResumeOutput)
	}
	if cfg.CoverLetter.Output != DefaultCoverLetterOutput {
		t.Errorf("CoverLetter.Output = %q, want %q", cfg.CoverLetter.Output, DefaultCoverLetterOutput)
	}
	if cfg.CoverLetter.Position != DefaultPosition {
		t.Errorf("CoverLetter.Position = %q, want %q", cfg.CoverLetter.Position, DefaultPosition)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "negative font size",
			mutate:  func(c *Config) { c.Resume.Font.Size = -1 },
			wantErr: true,
		},
		{
			name:    "negative margin",
			mutate:  func(c *Config) { c.CoverLetter.Margins = &MarginsConfig{Top: -0.5} },
			wantErr: true,
		},
		{
			name:   "explicit zero margins are valid",
			mutate: func(c *Config) { c.Resume.Margins = &MarginsConfig{} },
		},
		{
			name:   "valid fetch timeout",
			mutate: func(c *Config) { c.Fetch.Timeout = "45s" },
		},
		{
			name:    "malformed fetch timeout",
			mutate:  func(c *Config) { c.Fetch.Timeout = "soon" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDocumentConfigStyle(t *testing.T) {
	t.Parallel()

	base := resumegen.DefaultResumeStyle()

	t.Run("empty overrides keep base", func(t *testing.T) {
		t.Parallel()

		got := DocumentConfig{}.Style(base)
		if got != base {
			t.Errorf("Style() = %+v, want %+v", got, base)
		}
	})

	t.Run("font and margins override", func(t *testing.T) {
		t.Parallel()

		doc := DocumentConfig{
			Font:    FontConfig{Name: "Times", Size: 10},
			Margins: &MarginsConfig{Top: 1, Bottom: 1, Left: 2, Right: 2},
		}
		got := doc.Style(base)

		if got.FontName != "Times" {
			t.Errorf("FontName = %q, want %q", got.FontName, "Times")
		}
		if got.FontSizePt != 10 {
			t.Errorf("FontSizePt = %v, want 10", got.FontSizePt)
		}
		if got.Margins.Left != 2 {
			t.Errorf("Margins.Left = %v, want 2", got.Margins.Left)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want %v", err, ErrEmptyConfigName)
		}
	})

	t.Run("explicit path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.yaml")
		writeFile(t, path, "resume:\n  font:\n    name: Courier\n    size: 9\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Resume.Font.Name != "Courier" {
			t.Errorf("Resume.Font.Name = %q, want %q", cfg.Resume.Font.Name, "Courier")
		}
		// Untouched sections keep their defaults.
		if cfg.CoverLetter.Position != DefaultPosition {
			t.Errorf("CoverLetter.Position = %q, want default %q", cfg.CoverLetter.Position, DefaultPosition)
		}
	})

	t.Run("explicit path not found", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want %v", err, ErrConfigNotFound)
		}
	})

	t.Run("named config in current directory", func(t *testing.T) {
		chdir(t, t.TempDir())
		writeFile(t, "work.yaml", "coverLetter:\n  position: Staff Engineer\n")

		cfg, err := LoadConfig("work")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.CoverLetter.Position != "Staff Engineer" {
			t.Errorf("CoverLetter.Position = %q, want %q", cfg.CoverLetter.Position, "Staff Engineer")
		}
	})

	t.Run("named config missing", func(t *testing.T) {
		chdir(t, t.TempDir())

		_, err := LoadConfig("nonexistent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want %v", err, ErrConfigNotFound)
		}
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "typo.yaml")
		writeFile(t, path, "resune:\n  font:\n    name: Arial\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want %v", err, ErrConfigParse)
		}
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "resume:\n  font:\n    size: -4\n")

		if _, err := LoadConfig(path); err == nil {
			t.Error("LoadConfig() error = nil, want validation error")
		}
	})
}

func TestFetchTimeout(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if got := cfg.FetchTimeout(); got != 0 {
		t.Errorf("FetchTimeout() = %v, want 0", got)
	}

	cfg.Fetch.Timeout = "10s"
	if got := cfg.FetchTimeout(); got != 10*time.Second {
		t.Errorf("FetchTimeout() = %v, want 10s", got)
	}
}
