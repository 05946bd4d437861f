package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumegen <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  resume        Generate a resume PDF from JSON data")
	fmt.Fprintln(w, "  cover-letter  Generate a cover letter PDF from a template")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'resumegen help <command>' for details on a specific command.")
}

// printResumeUsage prints usage for the resume command.
func printResumeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumegen resume [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a resume PDF from structured JSON.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input (exactly one required):")
	fmt.Fprintln(w, "  -f, --file <path>      Resume JSON file")
	fmt.Fprintln(w, "  -u, --url <url>        Resume JSON URL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>    Output path template")
	fmt.Fprintln(w, "                         {datetime} expands to the current year-month")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show progress details")
}

// printCoverLetterUsage prints usage for the cover-letter command.
func printCoverLetterUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumegen cover-letter [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a cover letter PDF from a $key template and applicant JSON.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -j, --json <path>      Applicant JSON file (name, address, phone, email)")
	fmt.Fprintln(w, "  -t, --template <path>  Letter template file")
	fmt.Fprintln(w, "      --company <name>   Target company name (required)")
	fmt.Fprintln(w, "      --position <name>  Target position title")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>    Output path template")
	fmt.Fprintln(w, "                         {datetime} expands to the current date")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show progress details")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "resume":
		printResumeUsage(env.Stdout)
	case "cover-letter":
		printCoverLetterUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: resumegen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: resumegen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
