package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-resumegen/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrNoInput          = errors.New("no input specified")
	ErrConflictingInput = errors.New("--file and --url are mutually exclusive")
	ErrReadInput        = errors.New("failed to read input JSON")
	ErrReadTemplate     = errors.New("failed to read template file")
	ErrWriteOutput      = errors.New("failed to write PDF file")
	ErrMissingCompany   = errors.New("missing required flag: --company")
	ErrMalformedInput   = errors.New("malformed input JSON")
)

// run dispatches the subcommand and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	command, rest := args[0], args[1:]
	envCfg := loadEnvConfig()

	switch command {
	case "resume":
		flags, _, err := parseResumeFlags(rest)
		if err != nil {
			return ExitUsage
		}
		applyEnvCommon(envCfg, &flags.common, env)
		return report(runResume(ctx, flags, envCfg, env), env)

	case "cover-letter":
		flags, _, err := parseCoverLetterFlags(rest)
		if err != nil {
			return ExitUsage
		}
		applyEnvCommon(envCfg, &flags.common, env)
		if flags.template == "" {
			flags.template = envCfg.Template
		}
		if flags.position == "" {
			flags.position = envCfg.Position
		}
		return report(runCoverLetter(flags, env), env)

	case "version":
		fmt.Fprintf(env.Stdout, "resumegen %s\n", Version)
		return ExitSuccess

	case "help":
		runHelp(rest, env)
		return ExitSuccess

	default:
		fmt.Fprintf(env.Stderr, "%v: %s\n", ErrUnknownCommand, command)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// applyEnvCommon fills shared flags left empty from the environment and
// warns about unrecognized RESUMEGEN_* variables when verbose.
func applyEnvCommon(envCfg *envConfig, common *commonFlags, env *Environment) {
	if common.config == "" {
		common.config = envCfg.ConfigPath
	}
	if common.verbose {
		warnUnknownEnvVars(env.Stderr)
	}
}

// report prints err to stderr, if any, and maps it to an exit code.
func report(err error, env *Environment) int {
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// loadConfig resolves the named config, or the defaults when no name is given.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}
