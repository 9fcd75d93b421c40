package classics

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// scanLines calls fn for each line of r. Lines keep their terminator and a
// final line without one is still given to fn.
func scanLines(r io.Reader, fn func(string)) error {
	var (
		rs  = bufio.NewReader(r)
		num int
	)
	for {
		line, err := rs.ReadString('\n')
		if len(line) > 0 {
			num++
			if !utf8.ValidString(line) {
				return fmt.Errorf("%w at line %d", ErrEncoding, num)
			}
			fn(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			return err
		}
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	err := scanLines(r, func(line string) {
		lines = append(lines, line)
	})
	return lines, err
}
