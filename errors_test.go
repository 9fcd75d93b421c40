package classics_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/midbel/classics"
)

func TestError(t *testing.T) {
	data := []struct {
		Name string
		Err  *classics.Error
		Want string
		Code int
	}{
		{
			Name: "not-found",
			Err:  &classics.Error{Tool: "wc", File: "missing.txt", Kind: classics.NotFound, Err: fs.ErrNotExist},
			Want: "wc: missing.txt: No such file or directory",
			Code: classics.ExitFailure,
		},
		{
			Name: "access",
			Err:  &classics.Error{Tool: "nl", File: "foo.txt", Kind: classics.AccessFailure, Err: fs.ErrPermission},
			Want: "nl: foo.txt: permission denied",
			Code: classics.ExitFailure,
		},
		{
			Name: "stream",
			Err:  &classics.Error{Tool: "tail", Kind: classics.AccessFailure, Err: errors.New("broken")},
			Want: "tail: error reading from stream: broken",
			Code: classics.ExitFailure,
		},
		{
			Name: "config",
			Err:  &classics.Error{Tool: "tail", Kind: classics.ConfigError, Err: classics.ErrInvalidLines},
			Want: "tail: invalid number of lines",
			Code: classics.ExitConfig,
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			assert.Equal(t, d.Want, d.Err.Error())
			assert.Equal(t, d.Code, d.Err.ExitCode())
			assert.ErrorIs(t, d.Err, d.Err.Err)
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := &classics.Error{Tool: "nl", File: "foo", Kind: classics.NotFound, Err: fs.ErrNotExist}
	assert.ErrorIs(t, err, classics.ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	err = &classics.Error{Tool: "nl", File: "foo", Kind: classics.AccessFailure, Err: fs.ErrPermission}
	assert.NotErrorIs(t, err, classics.ErrNotFound)

	var target *classics.Error
	assert.True(t, errors.As(error(err), &target))
	assert.Equal(t, "access failure", target.Kind.String())
}
