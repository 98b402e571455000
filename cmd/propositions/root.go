package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	props "github.com/zephyrtronium/propositions"
)

type options struct {
	config   string
	in       string
	format   string
	lines    bool
	list     bool
	vars     bool
	maxDepth int
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "propositions [flags] [formula ...]",
		Short: "Parse propositional logic formulas",
		Long: `Parses propositional logic formulas and prints their trees.

Variables are single uppercase letters. Operators, from loosest to tightest:
  >      implies
  | v    or
  &      and
  -      not (prefix)
Parentheses group. Binary operators associate to the left.

Formulas come from the arguments, or else from --in or standard input. When
standard input is a terminal and there are no arguments, formulas are read
interactively one per line.

Examples:
  propositions 'A & B > C'
  propositions --format yaml '-(A v B)'
  propositions --list 'A & (B | C)'
  propositions -n --in formulas.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.config, "config", "", "TOML config file with defaults")
	f.StringVar(&opts.in, "in", "", "input file, - for stdin (default stdin if no args given)")
	f.StringVarP(&opts.format, "format", "f", formatText, "output format: text, source, or yaml")
	f.BoolVarP(&opts.lines, "lines", "n", false, "parse separate input lines as separate formulas")
	f.BoolVar(&opts.list, "list", false, "print every subexpression instead of each formula")
	f.BoolVar(&opts.vars, "vars", false, "print the variables of each formula")
	f.IntVar(&opts.maxDepth, "max-depth", props.DefaultMaxDepth, "maximum nesting of brackets and negations")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information")
	return cmd
}

// errParse indicates that some input failed to parse. The individual errors
// have already been reported.
var errParse = errors.New("some formulas failed to parse")

func run(cmd *cobra.Command, opts *options, args []string) error {
	setupLogging(cmd.ErrOrStderr(), opts.verbose)
	if opts.config != "" {
		cfg, err := loadConfig(opts.config)
		if err != nil {
			return err
		}
		cfg.apply(cmd, opts)
	}
	pr, err := newPrinter(cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}
	err = parseAll(cmd, opts, args, pr)
	if cerr := pr.close(); err == nil {
		err = cerr
	}
	return err
}

// parseAll parses and prints formulas from the arguments, or else from the
// input named by --in, or else from stdin.
func parseAll(cmd *cobra.Command, opts *options, args []string, pr *printer) error {
	popts := []props.ParseOption{props.MaxDepth(opts.maxDepth)}

	if len(args) > 0 {
		logger.Debugf("parsing %d formulas from arguments", len(args))
		failed := false
		for i, arg := range args {
			x, err := props.ParseString(arg, popts...)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "arg %d: %v\n", i+1, err)
				failed = true
				continue
			}
			if err := pr.print(x); err != nil {
				return err
			}
		}
		if failed {
			return errParse
		}
		return nil
	}

	in, name := cmd.InOrStdin(), "stdin"
	if opts.in != "" && opts.in != "-" {
		f, err := os.Open(opts.in)
		if err != nil {
			return fmt.Errorf("couldn't open input: %w", err)
		}
		defer f.Close()
		in, name = f, opts.in
	}
	if opts.in == "" && interactive(in) {
		logger.Debug("reading formulas interactively")
		return repl(in, cmd.OutOrStdout(), pr, popts)
	}
	logger.Debugf("reading formulas from %s", name)
	return batch(in, name, opts.lines, cmd.ErrOrStderr(), pr, popts)
}

// interactive reports whether r is a terminal.
func interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// batch parses formulas from in until EOF. A formula which fails to parse is
// reported on stderr. With lines, parsing resumes at the next line;
// otherwise, the rest of the input is abandoned.
func batch(r io.Reader, name string, lines bool, stderr io.Writer, pr *printer, popts []props.ParseOption) error {
	in := &runeTracker{Reader: bufio.NewReader(r)}
	if lines {
		popts = append(popts, props.StopOn('\n'))
	}
	failed := false
	for n := 1; ; n++ {
		// First check whether we're done with the input.
		if err := skipSpace(in); err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		x, err := props.Parse(in, popts...)
		if err != nil {
			var se props.SyntaxError
			if !errors.As(err, &se) {
				return fmt.Errorf("reading %s: %w", name, err)
			}
			fmt.Fprintf(stderr, "%s: formula %d: %v\n", name, n, err)
			failed = true
			if !lines {
				break
			}
			if in.last != '\n' {
				if err := skipLine(in); err != nil && err != io.EOF {
					return err
				}
			}
			continue
		}
		logger.Debugf("formula %d: %v", n, x)
		if err := pr.print(x); err != nil {
			return err
		}
	}
	if failed {
		return errParse
	}
	return nil
}

// runeTracker is a RuneScanner that remembers the last rune it read, so that
// batch can tell whether an error consumed the end of its line.
type runeTracker struct {
	*bufio.Reader
	last, prev rune
}

func (t *runeTracker) ReadRune() (r rune, size int, err error) {
	r, size, err = t.Reader.ReadRune()
	if err == nil {
		t.prev, t.last = t.last, r
	}
	return r, size, err
}

func (t *runeTracker) UnreadRune() error {
	if err := t.Reader.UnreadRune(); err != nil {
		return err
	}
	t.last = t.prev
	return nil
}

// skipSpace discards leading whitespace. The result is io.EOF if nothing else
// remains.
func skipSpace(in io.RuneScanner) error {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			return in.UnreadRune()
		}
	}
}

// skipLine discards input through the next newline.
func skipLine(in io.RuneReader) error {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			return err
		}
		if r == '\n' {
			return nil
		}
	}
}
