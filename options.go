package classics

import (
	"fmt"
	"io"
)

type Option func(*Command) error

func WithStdin(r io.Reader) Option {
	return func(c *Command) error {
		c.Stdin = r
		return nil
	}
}

func WithStdout(w io.Writer) Option {
	return func(c *Command) error {
		c.Stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) Option {
	return func(c *Command) error {
		c.Stderr = w
		return nil
	}
}

// WithLines sets the number of lines printed by tail when -n is not given.
func WithLines(n int) Option {
	return func(c *Command) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidLines, n)
		}
		c.Lines = n
		return nil
	}
}
