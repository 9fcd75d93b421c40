package classics

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/midbel/classics/internal/stdio"
)

func (c Command) parse(set *pflag.FlagSet) error {
	set.SetOutput(io.Discard)
	err := set.Parse(c.Args)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pflag.ErrHelp):
		c.help(set)
		return err
	default:
		return configError(c.Name(), err)
	}
}

func (c Command) help(set *pflag.FlagSet) {
	fmt.Fprintf(c.Stdout, "usage: %s", c.Usage)
	fmt.Fprintln(c.Stdout)
	fmt.Fprintln(c.Stdout, c.Short)
	if len(c.Help) > 0 {
		fmt.Fprintln(c.Stdout)
		fmt.Fprintln(c.Stdout, c.Help)
	}
	if usage := set.FlagUsages(); len(usage) > 0 {
		fmt.Fprintln(c.Stdout)
		fmt.Fprint(c.Stdout, usage)
	}
}

func (c Command) read(r io.Reader, fn func(io.Reader) error) error {
	if err := fn(r); err != nil {
		return readError(c.Name(), r, err)
	}
	return nil
}

func (c Command) open(file string, fn func(io.Reader) error) error {
	r, err := stdio.Open(file)
	if err != nil {
		return fileError(c.Name(), file, err)
	}
	defer r.Close()
	return c.read(r, fn)
}

// missingValue reports whether the last argument is the flag itself, meaning
// that its value has been forgotten.
func missingValue(args []string, flag *pflag.Flag) bool {
	if len(args) == 0 || flag == nil {
		return false
	}
	last := args[len(args)-1]
	return last == "--"+flag.Name || (flag.Shorthand != "" && last == "-"+flag.Shorthand)
}
