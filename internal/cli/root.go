// Package cli implements the cobra command behind the justify binary.
//
// The command reads paragraphs (one per input line) from a file or standard
// input, justifies each to the requested width, and writes the result in the
// selected output format. All layout work is delegated to package justify;
// this package only resolves flags, opens the input, and maps failures to
// exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/justify"
)

// Version, Commit, and Date are set from the main package, which receives
// them via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootFlags holds the flag values of one command instance.
type rootFlags struct {
	width        int
	format       string
	displayWidth bool
	verbose      bool
}

// NewRootCommand creates the justify command.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "justify -w WIDTH [file]",
		Short: "Justify each paragraph of the input to fill the page width",
		Long: `justify fills every line of a paragraph to exactly WIDTH columns by
widening the spaces between words. Each input line is a separate paragraph.
Words longer than the width are placed on their own lines.

Examples:
  justify -w 40 notes.txt
  cat notes.txt | justify -w 72
  justify -w 20 -o json - < notes.txt
  justify -w 30 -o 'go-template={{len .Lines}}' notes.txt`,

		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return WrapCLIError(ExitUsage, "invalid arguments", err)
			}
			return nil
		},

		// Errors are printed by Execute so they can carry exit codes.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runJustify(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.width, "width", "w", 0, "page width (greater than 0, required)")
	cmd.Flags().StringVarP(&flags.format, "format", "o", justify.Plain.String(),
		"output format: plain, json, jsonl, yaml, or go-template=<tmpl>")
	cmd.Flags().BoolVar(&flags.displayWidth, "display-width", false,
		"measure words in terminal columns instead of characters")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapCLIError(ExitUsage, "invalid arguments", err)
	})

	return cmd
}

// Execute runs the command and exits the process with the matching code.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(exitCode(err)))
	}
}

func exitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitGeneralError
}

func (f *rootFlags) logf(cmd *cobra.Command, format string, args ...any) {
	if f.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "[verbose] "+format+"\n", args...)
	}
}

func runJustify(cmd *cobra.Command, args []string, flags *rootFlags) error {
	if !cmd.Flags().Changed("width") {
		return NewCLIError(ExitUsage, `required flag "width" not set`)
	}
	if flags.width <= 0 {
		return NewCLIError(ExitUsage, fmt.Sprintf("invalid positive value: '%d'", flags.width))
	}
	format, err := justify.ParseFormat(flags.format)
	if err != nil {
		return WrapCLIError(ExitUsage, "invalid --format", err)
	}

	var opts []justify.Option
	if flags.displayWidth {
		opts = append(opts, justify.WithMeasure(justify.DisplayWidth))
	}

	in, name, err := openInput(cmd, args)
	if err != nil {
		return WrapCLIError(ExitGeneralError, "open input", err)
	}
	defer func() { _ = in.Close() }()
	flags.logf(cmd, "reading paragraphs from %s", name)

	var readErr error
	paras := func(yield func(string) bool) {
		for para, err := range justify.ReadParagraphs(in) {
			if err != nil {
				readErr = err
				return
			}
			if !yield(para) {
				return
			}
		}
	}

	seq, err := justify.Paragraphs(paras, flags.width, opts...)
	if err != nil {
		return WrapCLIError(ExitUsage, "invalid width", err)
	}

	count := 0
	if err := justify.WriteIter(cmd.OutOrStdout(), format, counting(seq, &count)); err != nil {
		return WrapCLIError(ExitGeneralError, "write output", err)
	}
	if readErr != nil {
		return WrapCLIError(ExitGeneralError, "read "+name, readErr)
	}

	flags.logf(cmd, "justified %d paragraphs to width %d (%s)", count, flags.width, format)
	return nil
}

// openInput returns the file named by args, or the command's stdin when no
// file or "-" is given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, args[0], err
	}
	return f, args[0], nil
}

func counting[T any](seq iter.Seq[T], n *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range seq {
			*n++
			if !yield(item) {
				return
			}
		}
	}
}
