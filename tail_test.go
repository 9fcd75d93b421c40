package classics_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/midbel/classics"
)

func TestTail(t *testing.T) {
	data := []struct {
		Name  string
		Lines int
		Input string
		Want  string
	}{
		{
			Name:  "last-three",
			Lines: 3,
			Input: "Line 1\nLine 2\nLine 3\nLine 4\nLine 5\n",
			Want:  "Line 3\nLine 4\nLine 5\n",
		},
		{
			Name:  "whole-input",
			Lines: 10,
			Input: "Line 1\nLine 2\n",
			Want:  "Line 1\nLine 2\n",
		},
		{
			Name:  "exact",
			Lines: 2,
			Input: "Line 1\nLine 2\n",
			Want:  "Line 1\nLine 2\n",
		},
		{
			Name:  "none",
			Lines: 0,
			Input: "Line 1\nLine 2\n",
			Want:  "",
		},
		{
			Name:  "empty",
			Lines: classics.DefaultLines,
			Input: "",
			Want:  "",
		},
		{
			Name:  "unterminated",
			Lines: 2,
			Input: "foo\nbar\nbaz",
			Want:  "bar\nbaz",
		},
		{
			Name:  "verbatim",
			Lines: 2,
			Input: "foo\r\n  bar \n\n",
			Want:  "  bar \n\n",
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			var (
				out  bytes.Buffer
				tail = classics.NewTail(&out, d.Lines)
			)
			last, err := tail.Last(strings.NewReader(d.Input))
			require.NoError(t, err)
			require.NoError(t, tail.Print(last))
			require.Equal(t, d.Want, out.String())
		})
	}
}

func TestTailRing(t *testing.T) {
	var (
		input strings.Builder
		want  strings.Builder
	)
	for i := 1; i <= 100; i++ {
		fmt.Fprintf(&input, "line %d\n", i)
		if i > 100-classics.DefaultLines {
			fmt.Fprintf(&want, "line %d\n", i)
		}
	}
	tail := classics.NewTail(&bytes.Buffer{}, classics.DefaultLines)
	last, err := tail.Last(strings.NewReader(input.String()))
	require.NoError(t, err)
	require.Len(t, last, classics.DefaultLines)
	require.Equal(t, want.String(), strings.Join(last, ""))
}

func TestTailHeader(t *testing.T) {
	var (
		out  bytes.Buffer
		tail = classics.NewTail(&out, 1)
	)
	require.NoError(t, tail.Header("foo.txt"))
	require.NoError(t, tail.Print([]string{"foo\n"}))
	require.NoError(t, tail.Separate())
	require.Equal(t, "==> foo.txt <==\nfoo\n\n", out.String())
}

func TestTailNegative(t *testing.T) {
	tail := classics.NewTail(&bytes.Buffer{}, -5)
	require.Equal(t, 0, tail.Lines())
}
