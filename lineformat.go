package csvline

import (
	"runtime"
	"strings"
)

// Line terminators accepted by [LineFormat.SetLineTerminator]. An empty
// string means no terminator is appended.
const (
	LF   = "\n"
	CRLF = "\r\n"
	CR   = "\r"
	None = ""
)

// LineFormat holds the formatting configuration for a single output line:
// the column count, the delimiter between columns, and the line terminator.
// It caches the derived format template and rebuilds it lazily on the next
// [LineFormat.Template] call after a configuration change.
//
// Setters silently ignore invalid values and keep the last accepted
// configuration, so a bad value from a caller degrades to "use the previous
// setting" instead of failing a write loop. I/O errors are a [Writer]
// concern and always propagate.
type LineFormat struct {
	columns    int
	delimiter  string
	terminator string

	template string
	dirty    bool
}

// NewLineFormat returns a LineFormat with one column, a comma delimiter,
// and the platform's native line terminator.
func NewLineFormat() *LineFormat {
	return &LineFormat{
		columns:    1,
		delimiter:  ",",
		terminator: defaultLineTerminator(),
		dirty:      true,
	}
}

// Template returns the fmt-style format string for one line: a %s verb per
// column, the delimiter between verbs, and the terminator at the end. The
// result is cached; it is recomputed only if a setter changed the
// configuration since the last call.
func (f *LineFormat) Template() string {
	if !f.dirty {
		return f.template
	}
	var b strings.Builder
	sep := escapePercent(f.delimiter)
	b.WriteString("%s")
	for i := 1; i < f.columns; i++ {
		b.WriteString(sep)
		b.WriteString("%s")
	}
	b.WriteString(f.terminator)
	f.template = b.String()
	f.dirty = false
	return f.template
}

// Columns returns the number of columns per line.
func (f *LineFormat) Columns() int { return f.columns }

// SetColumns sets the number of columns per line. Values below 1 are
// ignored: a line always has at least one column.
func (f *LineFormat) SetColumns(n int) {
	if n == f.columns || n < 1 {
		return
	}
	f.columns = n
	f.dirty = true
}

// Delimiter returns the string written between adjacent columns.
func (f *LineFormat) Delimiter() string { return f.delimiter }

// SetDelimiter sets the string written between adjacent columns. An empty
// string is ignored.
func (f *LineFormat) SetDelimiter(s string) {
	if s == "" || s == f.delimiter {
		return
	}
	f.delimiter = s
	f.dirty = true
}

// LineTerminator returns the sequence appended after the last column.
func (f *LineFormat) LineTerminator() string { return f.terminator }

// SetLineTerminator sets the sequence appended after the last column. Only
// [LF], [CRLF], [CR], and [None] are accepted; anything else is ignored and
// the previous terminator stays in effect.
func (f *LineFormat) SetLineTerminator(s string) {
	if s == f.terminator {
		return
	}
	switch s {
	case LF, CRLF, CR, None:
		f.terminator = s
		f.dirty = true
	}
}

// String returns the current template.
func (f *LineFormat) String() string { return f.Template() }

// escapePercent doubles % characters so a delimiter like "%" survives the
// trip through fmt unchanged. Column values are fmt arguments, never part
// of the format string, so they need no escaping.
func escapePercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	return strings.ReplaceAll(s, "%", "%%")
}

func defaultLineTerminator() string {
	if runtime.GOOS == "windows" {
		return CRLF
	}
	return LF
}
