package csvline

// options collects construction-time settings before the underlying file is
// opened and the [LineFormat] is built.
type options struct {
	append     bool
	columns    int
	delimiter  string
	terminator string
	hasTerm    bool
}

// Option configures a Writer at construction time.
type Option func(*options)

func newOptions() *options {
	return &options{columns: 1}
}

// format builds the writer's LineFormat from the collected options. Invalid
// values follow the same silent no-op policy as the LineFormat setters.
func (o *options) format() *LineFormat {
	f := NewLineFormat()
	f.SetColumns(o.columns)
	f.SetDelimiter(o.delimiter)
	if o.hasTerm {
		f.SetLineTerminator(o.terminator)
	}
	return f
}

// WithAppend opens the file in append mode instead of truncating it.
// It has no effect on writers created with [NewWriter].
func WithAppend() Option {
	return func(o *options) {
		o.append = true
	}
}

// WithColumns sets the initial column count. Values below 1 are ignored.
func WithColumns(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.columns = n
		}
	}
}

// WithDelimiter sets the initial delimiter. An empty string is ignored.
func WithDelimiter(s string) Option {
	return func(o *options) {
		o.delimiter = s
	}
}

// WithLineTerminator sets the initial line terminator. Values other than
// [LF], [CRLF], [CR], and [None] are ignored.
func WithLineTerminator(s string) Option {
	return func(o *options) {
		o.terminator = s
		o.hasTerm = true
	}
}
