package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	output  string
	quiet   bool
	verbose bool
}

// resumeFlags holds flags for the resume command.
type resumeFlags struct {
	common commonFlags
	file   string
	url    string
}

// coverLetterFlags holds flags for the cover-letter command.
type coverLetterFlags struct {
	common   commonFlags
	json     string
	template string
	company  string
	position string
}

// addCommonFlags adds shared flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output path template ({datetime} supported)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress details")
}

// parseResumeFlags parses resume command flags and returns positional args.
func parseResumeFlags(args []string) (*resumeFlags, []string, error) {
	fs := flag.NewFlagSet("resume", flag.ContinueOnError)
	f := &resumeFlags{}

	fs.StringVarP(&f.file, "file", "f", "", "resume JSON file path")
	fs.StringVarP(&f.url, "url", "u", "", "resume JSON URL")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printResumeUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseCoverLetterFlags parses cover-letter command flags and returns positional args.
func parseCoverLetterFlags(args []string) (*coverLetterFlags, []string, error) {
	fs := flag.NewFlagSet("cover-letter", flag.ContinueOnError)
	f := &coverLetterFlags{}

	fs.StringVarP(&f.json, "json", "j", "", "applicant JSON file path")
	fs.StringVarP(&f.template, "template", "t", "", "letter template file path")
	fs.StringVar(&f.company, "company", "", "target company name")
	fs.StringVar(&f.position, "position", "", "target position title")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printCoverLetterUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
