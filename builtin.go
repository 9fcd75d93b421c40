package classics

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

var builtins = map[string]Command{
	"nl": {
		Usage:   "nl [file...]",
		Short:   "number lines of files",
		Help:    "With no file, read standard input. Numbering continues from one file to the next.",
		Execute: runNl,
	},
	"tail": {
		Usage:   "tail [-n count] [file...]",
		Short:   "output the last part of files",
		Help:    "With no file, read standard input. With more than one file, precede each with a header giving the file name.",
		Execute: runTail,
	},
	"wc": {
		Usage:   "wc [file...]",
		Short:   "print newline, word, and byte counts for each file",
		Help:    "With no file, read standard input. With more than one file, print a line with the total counts.",
		Execute: runWc,
	},
}

type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type Command struct {
	Usage   string
	Short   string
	Help    string
	Execute func(Command) error

	Args  []string
	Lines int
	Stdio
}

func (c Command) Name() string {
	i := strings.Index(c.Usage, " ")
	if i <= 0 {
		return c.Usage
	}
	return c.Usage[:i]
}

func Lookup(name string) (Command, error) {
	c, ok := builtins[name]
	if !ok {
		return c, fmt.Errorf("%s: %w", name, ErrUnknown)
	}
	return c, nil
}

func Commands() []string {
	var list []string
	for n := range builtins {
		list = append(list, n)
	}
	slices.Sort(list)
	return list
}

// Exec runs the command name with the given arguments and returns the exit
// code of the run. A fatal error is printed on the stderr of the command.
func Exec(name string, args []string, options ...Option) int {
	cmd := Command{
		Lines: DefaultLines,
		Stdio: Stdio{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
	}
	for _, o := range options {
		if err := o(&cmd); err != nil {
			return report(cmd.Stderr, name, configError(name, err))
		}
	}
	other, err := Lookup(name)
	if err != nil {
		fmt.Fprintln(cmd.Stderr, err)
		return ExitUnknown
	}
	other.Args = args
	other.Lines = cmd.Lines
	other.Stdio = cmd.Stdio

	return report(other.Stderr, name, other.Execute(other))
}

func report(w io.Writer, name string, err error) int {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return ExitSuccess
	}
	var e *Error
	if !errors.As(err, &e) {
		fmt.Fprintf(w, "%s: %s", name, err)
		fmt.Fprintln(w)
		return ExitFailure
	}
	fmt.Fprintln(w, e)
	return e.ExitCode()
}

func runNl(c Command) error {
	set := pflag.NewFlagSet(c.Name(), pflag.ContinueOnError)
	if err := c.parse(set); err != nil {
		return err
	}
	nl := NewNumberer(c.Stdout)
	if set.NArg() == 0 {
		return c.read(c.Stdin, nl.Number)
	}
	for _, f := range set.Args() {
		if err := c.open(f, nl.Number); err != nil {
			return err
		}
	}
	return nil
}

func runTail(c Command) error {
	var (
		set   = pflag.NewFlagSet(c.Name(), pflag.ContinueOnError)
		count = set.StringP("lines", "n", "", "output the last `count` lines")
	)
	err := c.parse(set)
	if err != nil && !errors.Is(err, pflag.ErrHelp) && missingValue(c.Args, set.Lookup("lines")) {
		err = configError(c.Name(), ErrInvalidLines)
	}
	if err != nil {
		return err
	}
	lines := c.Lines
	if set.Changed("lines") {
		n, err := strconv.Atoi(*count)
		if err != nil || n < 0 {
			return configError(c.Name(), fmt.Errorf("%w: %s", ErrInvalidLines, *count))
		}
		lines = n
	}

	var (
		tail  = NewTail(c.Stdout, lines)
		files = set.Args()
	)
	if len(files) == 0 {
		return c.read(c.Stdin, func(r io.Reader) error {
			last, err := tail.Last(r)
			if err != nil {
				return err
			}
			return tail.Print(last)
		})
	}
	for i, f := range files {
		err := c.open(f, func(r io.Reader) error {
			last, err := tail.Last(r)
			if err != nil {
				return err
			}
			if len(files) > 1 {
				if err := tail.Header(f); err != nil {
					return err
				}
			}
			return tail.Print(last)
		})
		if err != nil {
			return err
		}
		if i < len(files)-1 {
			if err := tail.Separate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func runWc(c Command) error {
	set := pflag.NewFlagSet(c.Name(), pflag.ContinueOnError)
	if err := c.parse(set); err != nil {
		return err
	}
	var (
		wc    = NewCounter()
		files = set.Args()
	)
	if len(files) == 0 {
		err := c.read(c.Stdin, func(r io.Reader) error {
			_, err := wc.Count(r, "")
			return err
		})
		if err != nil {
			return err
		}
	}
	for _, f := range files {
		err := c.open(f, func(r io.Reader) error {
			_, err := wc.Count(r, f)
			return err
		})
		if err != nil {
			return err
		}
	}
	return wc.Report(c.Stdout, len(files) > 1)
}
