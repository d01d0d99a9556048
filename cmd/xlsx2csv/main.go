// Package main provides the CLI entry point for xlsx2csv.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/carlmjohnson/exitcode"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsx2csv-go/pkg/xlsx2csv"
)

const usageLine = "Usage: xlsx2csv <path_to_xlsx_file>"

const notFoundLine = "Error: The specified file does not exist."

// usageError reports a malformed command line.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

type flags struct {
	outputDir string
	sanitize  bool
	raw       bool
	printArea bool
	delimiter string
	verbose   bool
}

func main() {
	exitcode.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and prints the failure, if any. The returned
// error determines the exit code.
func execute(args []string, stdout, stderr io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()

	var usageErr *usageError
	switch {
	case err == nil:
	case errors.As(err, &usageErr):
		fmt.Fprintln(stdout, usageLine)
	case errors.Is(err, xlsx2csv.ErrFileNotFound):
		fmt.Fprintln(stdout, notFoundLine)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	var fl flags

	rootCmd := &cobra.Command{
		Use:   "xlsx2csv <path_to_xlsx_file>",
		Short: "Convert every sheet of a workbook to CSV",
		Long: `xlsx2csv writes one CSV file per sheet of an Excel workbook,
named <sheet_name>.csv, into the current directory.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &usageError{fmt.Errorf("expected 1 argument, got %d", len(args))}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], fl)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	rootCmd.Flags().StringVarP(&fl.outputDir, "output-dir", "o", "", "Directory for CSV files (default: current directory)")
	rootCmd.Flags().BoolVar(&fl.sanitize, "sanitize-names", false, "Replace characters that are unsafe in file names")
	rootCmd.Flags().BoolVar(&fl.raw, "raw", false, "Write raw cell values instead of formatted ones")
	rootCmd.Flags().BoolVar(&fl.printArea, "print-area", false, "Export only each sheet's print area, when defined")
	rootCmd.Flags().StringVarP(&fl.delimiter, "delimiter", "d", ",", "Field delimiter (single character)")
	rootCmd.Flags().BoolVarP(&fl.verbose, "verbose", "v", false, "Print debug diagnostics to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, inputPath string, fl flags) error {
	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", xlsx2csv.ErrFileNotFound, inputPath)
	}

	comma, size := utf8.DecodeRuneInString(fl.delimiter)
	if size == 0 || size != len(fl.delimiter) {
		return &usageError{fmt.Errorf("invalid delimiter: %q (must be a single character)", fl.delimiter)}
	}

	opts := xlsx2csv.DefaultOptions()
	opts.OutputDir = fl.outputDir
	opts.SanitizeNames = fl.sanitize
	opts.RawValues = fl.raw
	opts.Comma = comma
	opts.Out = cmd.OutOrStdout()
	if cmd.Flags().Changed("print-area") {
		opts.UsePrintArea = &fl.printArea
	}
	if fl.verbose {
		opts.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	if _, err := xlsx2csv.Convert(inputPath, opts); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	return nil
}
