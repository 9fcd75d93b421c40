package classics

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/midbel/classics/internal/stdio"
)

type Count struct {
	Lines int
	Words int
	Bytes int
	Label string
}

func (c *Count) add(line string) {
	c.Lines++
	c.Words += len(strings.Fields(line))
	c.Bytes += len(line)
}

// Counter counts lines, words and bytes of its inputs and keeps the totals of
// all of them.
type Counter struct {
	total   Count
	results []Count
}

func NewCounter() *Counter {
	return &Counter{
		total: Count{Label: "total"},
	}
}

func (c *Counter) Count(r io.Reader, label string) (Count, error) {
	res := Count{Label: label}
	if err := scanLines(r, res.add); err != nil {
		return res, err
	}
	c.total.Lines += res.Lines
	c.total.Words += res.Words
	c.total.Bytes += res.Bytes
	c.results = append(c.results, res)
	return res, nil
}

func (c *Counter) Total() Count {
	return c.total
}

func (c *Counter) Results() []Count {
	return slices.Clone(c.results)
}

// Report writes one row per counted input, then the row of the totals if
// total is true. Each column is aligned on its widest value.
func (c *Counter) Report(w io.Writer, total bool) error {
	rows := c.Results()
	if total {
		rows = append(rows, c.total)
	}
	return printCounts(w, rows)
}

func printCounts(w io.Writer, rows []Count) error {
	var lw, ww, bw int
	for _, r := range rows {
		lw = max(lw, len(strconv.Itoa(r.Lines)))
		ww = max(ww, len(strconv.Itoa(r.Words)))
		bw = max(bw, len(strconv.Itoa(r.Bytes)))
	}
	out := stdio.NewWriter(w)
	for _, r := range rows {
		str := fmt.Sprintf("%*d %*d %*d %s", lw, r.Lines, ww, r.Words, bw, r.Bytes, r.Label)
		if _, err := fmt.Fprintln(out, strings.TrimRightFunc(str, unicode.IsSpace)); err != nil {
			return err
		}
	}
	return nil
}
