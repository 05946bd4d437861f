package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	resumegen "github.com/alnah/go-resumegen"
	"github.com/alnah/go-resumegen/internal/dateutil"
	"github.com/alnah/go-resumegen/internal/fileutil"
	"github.com/alnah/go-resumegen/internal/schemas"
)

// letterDatePreset stamps output filenames with the full date,
// e.g. 2026-08-26_cover_letter.pdf.
const letterDatePreset = "iso"

// applicantFile mirrors the applicant JSON shape: contact details
// under a header object.
type applicantFile struct {
	Header struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
	} `json:"header"`
}

// runCoverLetter fills the letter template with applicant data and
// writes the rendered PDF.
func runCoverLetter(flags *coverLetterFlags, env *Environment) error {
	if flags.json == "" {
		return fmt.Errorf("%w: use --json", ErrNoInput)
	}
	if flags.company == "" {
		return ErrMissingCompany
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	templatePath := flags.template
	if templatePath == "" {
		templatePath = cfg.CoverLetter.Template
	}
	template, err := os.ReadFile(templatePath) // #nosec G304 -- template path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}

	raw, err := os.ReadFile(flags.json) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	if err := schemas.ValidateCoverLetter(raw); err != nil {
		return err
	}

	var applicant applicantFile
	if err := json.Unmarshal(raw, &applicant); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	date, err := dateutil.Format(env.Now(), dateutil.LetterDateFormat)
	if err != nil {
		return err
	}

	position := flags.position
	if position == "" {
		position = cfg.CoverLetter.Position
	}

	data := resumegen.CoverLetterData{
		Name:     applicant.Header.Name,
		Address:  applicant.Header.Address,
		Phone:    applicant.Header.Phone,
		Email:    applicant.Header.Email,
		Date:     date,
		Position: position,
		Company:  flags.company,
	}

	style := cfg.CoverLetter.Style(resumegen.DefaultCoverLetterStyle())
	renderer, err := resumegen.NewRenderer(resumegen.WithStyle(style))
	if err != nil {
		return err
	}

	doc, err := renderer.CoverLetter(string(template), data)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := doc.WritePDF(&buf); err != nil {
		return err
	}

	outputTemplate := flags.common.output
	if outputTemplate == "" {
		outputTemplate = cfg.CoverLetter.Output
	}
	outputPath, err := dateutil.ExpandDatetime(outputTemplate, env.Now(), letterDatePreset)
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
