package classics

import (
	"fmt"
	"io"

	"github.com/midbel/classics/internal/stdio"
)

const DefaultLines = 17

type Tail struct {
	lines int
	out   *stdio.Writer
}

func NewTail(w io.Writer, lines int) *Tail {
	if lines < 0 {
		lines = 0
	}
	return &Tail{
		lines: lines,
		out:   stdio.NewWriter(w),
	}
}

func (t *Tail) Lines() int {
	return t.lines
}

// Last reads r until its end and gives back, in order, its last lines. Only
// the requested number of lines is kept in memory while reading.
func (t *Tail) Last(r io.Reader) ([]string, error) {
	var (
		ring []string
		pos  int
	)
	err := scanLines(r, func(line string) {
		if t.lines == 0 {
			return
		}
		if len(ring) < t.lines {
			ring = append(ring, line)
			return
		}
		ring[pos] = line
		pos = (pos + 1) % t.lines
	})
	if err != nil {
		return nil, err
	}
	last := make([]string, 0, len(ring))
	last = append(last, ring[pos:]...)
	return append(last, ring[:pos]...), nil
}

// Print writes lines as they are: no terminator is added or removed.
func (t *Tail) Print(lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(t.out, line); err != nil {
			return err
		}
	}
	return t.out.Flush()
}

func (t *Tail) Header(file string) error {
	_, err := fmt.Fprintf(t.out, "==> %s <==\n", file)
	return err
}

func (t *Tail) Separate() error {
	_, err := fmt.Fprintln(t.out)
	return err
}
