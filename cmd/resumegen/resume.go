package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	resumegen "github.com/alnah/go-resumegen"
	"github.com/alnah/go-resumegen/internal/config"
	"github.com/alnah/go-resumegen/internal/dateutil"
	"github.com/alnah/go-resumegen/internal/fetch"
	"github.com/alnah/go-resumegen/internal/fileutil"
	"github.com/alnah/go-resumegen/internal/schemas"
)

// resumeDatePreset stamps output filenames with the year and month,
// e.g. 2026-08_resume.pdf.
const resumeDatePreset = "month"

// runResume loads resume JSON from a file or URL, validates it, and
// writes the rendered PDF.
func runResume(ctx context.Context, flags *resumeFlags, envCfg *envConfig, env *Environment) error {
	if flags.file == "" && flags.url == "" {
		return fmt.Errorf("%w: use --file or --url", ErrNoInput)
	}
	if flags.file != "" && flags.url != "" {
		return ErrConflictingInput
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	raw, err := loadResumeJSON(ctx, flags, fetchOptions(cfg, envCfg), env)
	if err != nil {
		return err
	}

	if err := schemas.ValidateResume(raw); err != nil {
		return err
	}

	var data resumegen.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	style := cfg.Resume.Style(resumegen.DefaultResumeStyle())
	renderer, err := resumegen.NewRenderer(resumegen.WithStyle(style))
	if err != nil {
		return err
	}

	doc, err := renderer.Resume(data)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := doc.WritePDF(&buf); err != nil {
		return err
	}

	outputTemplate := flags.common.output
	if outputTemplate == "" {
		outputTemplate = cfg.Resume.Output
	}
	outputPath, err := dateutil.ExpandDatetime(outputTemplate, env.Now(), resumeDatePreset)
	if err != nil {
		return err
	}

	if err := fileutil.WriteAtomic(outputPath, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}

// fetchOptions resolves fetch settings: config file values first, then
// environment overrides for anything the config left unset.
func fetchOptions(cfg *config.Config, envCfg *envConfig) *fetch.Options {
	opts := fetch.DefaultOptions()
	if ua := cfg.Fetch.UserAgent; ua != "" {
		opts.UserAgent = ua
	} else if envCfg.UserAgent != "" {
		opts.UserAgent = envCfg.UserAgent
	}
	if t := cfg.FetchTimeout(); t > 0 {
		opts.Timeout = t
	} else if envCfg.Timeout > 0 {
		opts.Timeout = envCfg.Timeout
	}
	return opts
}

// loadResumeJSON reads the input from disk or over HTTP, per flags.
func loadResumeJSON(ctx context.Context, flags *resumeFlags, opts *fetch.Options, env *Environment) ([]byte, error) {
	if flags.url != "" {
		if flags.common.verbose {
			fmt.Fprintf(env.Stderr, "Fetching %s\n", flags.url)
		}
		return fetch.JSON(ctx, flags.url, opts)
	}

	raw, err := os.ReadFile(flags.file) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return raw, nil
}
