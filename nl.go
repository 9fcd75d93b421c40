package classics

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/midbel/classics/internal/stdio"
)

// Numberer prefixes each line it reads with its number. The counter is kept
// between calls to Number so that successive inputs continue the numbering.
type Numberer struct {
	line int
	out  *stdio.Writer
}

func NewNumberer(w io.Writer) *Numberer {
	return &Numberer{
		line: 1,
		out:  stdio.NewWriter(w),
	}
}

// Line gives the number that the next line will get.
func (n *Numberer) Line() int {
	return n.line
}

// Number reads all the lines of r before printing them so that every number
// of the batch is aligned on the width of the last one.
func (n *Numberer) Number(r io.Reader) error {
	lines, err := readLines(r)
	if err != nil {
		return err
	}
	return n.print(lines)
}

func (n *Numberer) print(lines []string) error {
	width := len(strconv.Itoa(n.line + len(lines) - 1))
	for _, str := range lines {
		str = strings.TrimRightFunc(str, unicode.IsSpace)
		if _, err := fmt.Fprintf(n.out, "%*d\t%s\n", width, n.line, str); err != nil {
			return err
		}
		n.line++
	}
	return nil
}
