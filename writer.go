package csvline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("file not found")
	ErrClosed          = errors.New("writer is closed")
)

// Writer writes delimited lines to a file or an [io.Writer] through a
// buffered stream. Each [Writer.Write] call is validated against the
// configured column count and rendered with the current [LineFormat]
// template. Column values are written verbatim: there is no quoting or
// escaping of delimiters or terminators that appear inside a value.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	format *LineFormat
	dst    *bufio.Writer
	file   *os.File

	closed bool
	err    error
}

// Open opens the file at path for writing and returns a Writer for it. The
// file is created if it does not exist and truncated if it does; use
// [WithAppend] to append instead.
//
// Open fails with [ErrInvalidArgument] if path is blank or names a
// directory, and with [ErrNotFound] if the file cannot be created (for
// example when the parent directory does not exist). Other open errors are
// returned as-is.
func Open(path string, opts ...Option) (*Writer, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: blank path", ErrInvalidArgument)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", ErrInvalidArgument, path)
	}

	cfg := newOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if cfg.append {
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, err)
		}
		return nil, err
	}

	w := &Writer{
		format: cfg.format(),
		dst:    bufio.NewWriter(f),
		file:   f,
	}
	return w, nil
}

// NewWriter returns a Writer that writes to w. The caller keeps ownership
// of w; [Writer.Close] flushes buffered data but does not close it.
// NewWriter panics if w is nil.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	if w == nil {
		panic("csvline: writer destination cannot be nil")
	}
	cfg := newOptions()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Writer{
		format: cfg.format(),
		dst:    bufio.NewWriter(w),
	}
}

// Format returns the writer's line format for configuration between writes.
func (w *Writer) Format() *LineFormat { return w.format }

// Write renders one line from columns and writes it to the output stream.
// It fails with [ErrInvalidArgument] if the number of columns does not match
// the configured column count, and with [ErrClosed] after Close. The first
// I/O error is latched and returned by all subsequent calls.
func (w *Writer) Write(columns ...string) error {
	if w.closed {
		return ErrClosed
	}
	if w.err != nil {
		return w.err
	}
	if len(columns) != w.format.Columns() {
		return fmt.Errorf("%w: got %d columns, want %d",
			ErrInvalidArgument, len(columns), w.format.Columns())
	}

	args := make([]any, len(columns))
	for i, c := range columns {
		args[i] = c
	}
	if _, err := w.dst.WriteString(fmt.Sprintf(w.format.Template(), args...)); err != nil {
		w.err = err
		return err
	}
	return nil
}

// WriteAll writes one line per row, stopping at the first error.
func (w *Writer) WriteAll(rows [][]string) error {
	for _, row := range rows {
		if err := w.Write(row...); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes buffered data to the underlying stream.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Close flushes buffered data and releases the underlying file. It is safe
// to call multiple times; calls after the first are no-ops. For writers
// created with [NewWriter], Close flushes but leaves the destination open.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.dst.Flush()
	if w.file != nil {
		if cerr := w.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
