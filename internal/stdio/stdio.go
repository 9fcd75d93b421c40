package stdio

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/midbel/rw"
)

// File is an input opened from the file system. It can be unwrapped back to
// its *os.File so that failures can be reported with the name of the file.
type File struct {
	*os.File
}

func Open(file string) (*File, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	return &File{File: f}, nil
}

func (f *File) Unwrap() io.Reader {
	return f.File
}

// FileFrom gives the file behind r if r has been opened with Open.
func FileFrom(r io.Reader) (*os.File, bool) {
	u, ok := r.(rw.UnwrapReader)
	if !ok {
		return nil, ok
	}
	f, ok := u.Unwrap().(*os.File)
	return f, ok
}

// Writer buffers what is written to it and flushes as soon as a complete line
// has been written.
type Writer struct {
	inner *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	if x, ok := w.(*Writer); ok {
		return x
	}
	return &Writer{
		inner: bufio.NewWriter(w),
	}
}

func (w *Writer) Write(b []byte) (int, error) {
	n, err := w.inner.Write(b)
	if err == nil && bytes.IndexByte(b, '\n') >= 0 {
		err = w.inner.Flush()
	}
	return n, err
}

func (w *Writer) WriteString(str string) (int, error) {
	return w.Write([]byte(str))
}

func (w *Writer) Flush() error {
	return w.inner.Flush()
}
