// Command retable narrows fixed-width text tables found in files or stdin.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/bjaus/retable"
)

// Exit codes. exitChanged mirrors the convention of format checkers: under
// --fail it signals that an input is not in narrowed form.
const (
	exitOK      = 0
	exitError   = 1
	exitChanged = 2
)

// Version can be set during build with -ldflags.
var version = "dev"

type params struct {
	write bool
	list  bool
	diff  bool
	fail  bool
	glyph string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var changed *changedError
	if errors.As(err, &changed) {
		return exitChanged
	}
	return exitError
}

// changedError reports that an input is not in narrowed form. Returned only
// under --fail.
type changedError struct {
	path string
}

func (e *changedError) Error() string {
	return fmt.Sprintf("%s would change", e.path)
}

func newRootCmd() *cobra.Command {
	p := &params{}
	cmd := &cobra.Command{
		Use:   "retable [path ...]",
		Short: "Narrow fixed-width text tables",
		Long: `Narrow fixed-width text tables embedded in plain text.

retable reads each input, shrinks every detected table column to the width of
its longest value, and prints the result. Text outside tables passes through
untouched. With no path arguments, or with "-", input is read from stdin.

With '-w' the files are rewritten in place instead of printed.

With '-l' only the names of files whose contents would change are printed.

With '-d' a unified diff between the original and narrowed contents is
printed instead of the result.

With '--fail' the exit code is 2 when any input would change.`,
		Args:         cobra.ArbitraryArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(p, cmd.OutOrStdout(), cmd.InOrStdin(), args)
		},
	}
	cmd.SetVersionTemplate(`{{printf "retable version %s\n" .Version}}`)
	cmd.Flags().BoolVarP(&p.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVarP(&p.list, "list", "l", false, "list files whose contents would change")
	cmd.Flags().BoolVarP(&p.diff, "diff", "d", false, "print a unified diff instead of the result")
	cmd.Flags().BoolVar(&p.fail, "fail", false, "exit with code 2 when an input would change")
	cmd.Flags().StringVar(&p.glyph, "glyph", "-", "rune that separator lines are made of")
	return cmd
}

func run(p *params, out io.Writer, in io.Reader, args []string) error {
	opts, err := options(p)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		if path == "-" {
			err = filterStdin(p, out, in, opts)
		} else {
			err = filterFile(p, out, path, opts)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func options(p *params) ([]retable.Option, error) {
	if p.glyph == "-" {
		return nil, nil
	}
	r, size := utf8.DecodeRuneInString(p.glyph)
	if r == utf8.RuneError || size != len(p.glyph) {
		return nil, fmt.Errorf("glyph must be a single character, got %q", p.glyph)
	}
	return []retable.Option{retable.WithGlyph(r)}, nil
}

func filterStdin(p *params, out io.Writer, in io.Reader, opts []retable.Option) error {
	if p.write || p.list {
		return errors.New("cannot use --write or --list with standard input")
	}
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	res := retable.Source(src, opts...)
	changed := !bytes.Equal(src, res)

	if p.diff {
		if changed {
			if err := writeDiff(out, "stdin", src, res); err != nil {
				return err
			}
		}
	} else if _, err := out.Write(res); err != nil {
		return err
	}

	if p.fail && changed {
		return &changedError{path: "stdin"}
	}
	return nil
}

func filterFile(p *params, out io.Writer, path string, opts []retable.Option) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	res := retable.Source(src, opts...)
	changed := !bytes.Equal(src, res)

	switch {
	case p.list:
		if changed {
			if _, err := fmt.Fprintln(out, path); err != nil {
				return err
			}
		}
	case p.diff:
		if changed {
			if err := writeDiff(out, path, src, res); err != nil {
				return err
			}
		}
	case p.write:
		if changed {
			if err := os.WriteFile(path, res, info.Mode().Perm()); err != nil {
				return err
			}
		}
	default:
		if _, err := out.Write(res); err != nil {
			return err
		}
	}

	if p.fail && changed {
		return &changedError{path: path}
	}
	return nil
}

func writeDiff(out io.Writer, path string, src, res []byte) error {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(src)),
		B:        difflib.SplitLines(string(res)),
		FromFile: path + ".orig",
		ToFile:   path,
		Context:  3,
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}
