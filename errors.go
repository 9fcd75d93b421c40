package classics

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/midbel/classics/internal/stdio"
)

const (
	ExitSuccess = 0
	ExitConfig  = 1
	ExitUnknown = 127
	ExitFailure = 255
)

var (
	ErrNotFound     = errors.New("No such file or directory")
	ErrInvalidLines = errors.New("invalid number of lines")
	ErrEncoding     = errors.New("invalid UTF-8 sequence")
	ErrUnknown      = errors.New("command not found")
)

type Kind int8

const (
	AccessFailure Kind = iota
	NotFound
	ConfigError
)

func (k Kind) String() string {
	switch k {
	case AccessFailure:
		return "access failure"
	case NotFound:
		return "not found"
	case ConfigError:
		return "configuration error"
	default:
		return "unknown"
	}
}

// Error is a fatal error of one of the commands. Its message is the line
// printed on stderr before the command exits.
type Error struct {
	Tool string
	File string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == ConfigError:
		return fmt.Sprintf("%s: %s", e.Tool, e.Err)
	case e.Kind == NotFound:
		return fmt.Sprintf("%s: %s: %s", e.Tool, e.File, ErrNotFound)
	case e.File == "":
		return fmt.Sprintf("%s: error reading from stream: %s", e.Tool, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %s", e.Tool, e.File, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return e.Kind == NotFound && target == ErrNotFound
}

func (e *Error) ExitCode() int {
	if e.Kind == ConfigError {
		return ExitConfig
	}
	return ExitFailure
}

func configError(tool string, err error) error {
	return &Error{
		Tool: tool,
		Kind: ConfigError,
		Err:  err,
	}
}

func fileError(tool, file string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	kind := AccessFailure
	if errors.Is(err, fs.ErrNotExist) {
		kind = NotFound
	}
	return &Error{
		Tool: tool,
		File: file,
		Kind: kind,
		Err:  err,
	}
}

func readError(tool string, r io.Reader, err error) error {
	if f, ok := stdio.FileFrom(r); ok {
		return fileError(tool, f.Name(), err)
	}
	return &Error{
		Tool: tool,
		Kind: AccessFailure,
		Err:  err,
	}
}
