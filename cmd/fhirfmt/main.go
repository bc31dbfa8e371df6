// Command fhirfmt reads FHIR R4 JSON resources and writes them back in canonical form.
//
// Resources are read from the files given as arguments, or from stdin if there are none.
// Input may hold a single resource or newline delimited resources as produced by bulk
// exports. Members are written in the order FHIR R4 declares them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fhirfmt [file...]",
		Short:        "Format FHIR R4 JSON resources",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg, os.Stderr)
			if err != nil {
				return err
			}
			return run(args, cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.String("indent", defaultIndent, "indentation of the output, empty for compact output")
	flags.String("format", "json", "output format, json or ndjson")
	flags.String("log-level", "info", "log level")
	flags.Bool("check-choice-types", false, "fail on choice elements holding a type they do not permit")

	return cmd
}

func run(args []string, stdin io.Reader, stdout io.Writer, cfg *Config, logger zerolog.Logger) error {
	if len(args) == 0 {
		return format(stdin, stdout, cfg, logger)
	}

	for _, name := range args {
		if err := formatFile(name, stdout, cfg, logger.With().Str("file", name).Logger()); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func formatFile(name string, out io.Writer, cfg *Config, logger zerolog.Logger) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return format(f, out, cfg, logger)
}

// newLogger writes human readable logs to terminals and JSON otherwise.
func newLogger(cfg *Config, out *os.File) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	if isatty.IsTerminal(out.Fd()) {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	}
	return logger.Level(level), nil
}
