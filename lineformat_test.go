package csvline_test

import (
	"strings"
	"testing"

	"github.com/bmartin/csvline"
	"github.com/stretchr/testify/assert"
)

func TestLineFormatDefaults(t *testing.T) {
	t.Parallel()
	f := csvline.NewLineFormat()
	assert.Equal(t, 1, f.Columns())
	assert.Equal(t, ",", f.Delimiter())
	assert.Contains(t, []string{csvline.LF, csvline.CRLF}, f.LineTerminator())
}

func TestSetColumns(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input int
		want  int
	}{
		"negative ignored": {input: -1, want: 1},
		"zero ignored":     {input: 0, want: 1},
		"one is a no-op":   {input: 1, want: 1},
		"two accepted":     {input: 2, want: 2},
		"ten accepted":     {input: 10, want: 10},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f := csvline.NewLineFormat()
			f.SetColumns(tt.input)
			assert.Equal(t, tt.want, f.Columns())
		})
	}
}

func TestSetColumnsKeepsLastAccepted(t *testing.T) {
	t.Parallel()
	f := csvline.NewLineFormat()
	f.SetColumns(5)
	f.SetColumns(0)
	f.SetColumns(-3)
	assert.Equal(t, 5, f.Columns())
}

func TestSetDelimiter(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"empty ignored":      {input: "", want: ","},
		"same is a no-op":    {input: ",", want: ","},
		"tab accepted":       {input: "\t", want: "\t"},
		"semicolon accepted": {input: "; ", want: "; "},
		"multi-space":        {input: "  ", want: "  "},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f := csvline.NewLineFormat()
			f.SetDelimiter(tt.input)
			assert.Equal(t, tt.want, f.Delimiter())
		})
	}
}

func TestSetLineTerminator(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"lf":              {input: "\n", want: "\n"},
		"crlf":            {input: "\r\n", want: "\r\n"},
		"cr":              {input: "\r", want: "\r"},
		"empty":           {input: "", want: ""},
		"letter rejected": {input: "x", want: "\n"},
		"double rejected": {input: "\n\n", want: "\n"},
		"space rejected":  {input: " ", want: "\n"},
		"tab rejected":    {input: "\t", want: "\n"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f := csvline.NewLineFormat()
			// Pin the starting point so the test does not depend on the
			// platform default.
			f.SetLineTerminator(csvline.LF)
			f.SetLineTerminator(tt.input)
			assert.Equal(t, tt.want, f.LineTerminator())
		})
	}
}

func TestTemplatePlaceholderCount(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 3, 6} {
		f := csvline.NewLineFormat()
		f.SetColumns(n)
		f.SetLineTerminator(csvline.LF)
		got := f.Template()
		assert.Equal(t, n, strings.Count(got, "%s"), "columns=%d template=%q", n, got)
		want := "%s" + strings.Repeat(",%s", n-1) + "\n"
		assert.Equal(t, want, got)
	}
}

func TestTemplateDelimiter(t *testing.T) {
	t.Parallel()
	f := csvline.NewLineFormat()
	f.SetColumns(3)
	f.SetDelimiter("; ")
	f.SetLineTerminator(csvline.None)
	assert.Equal(t, "%s; %s; %s", f.Template())
}

func TestTemplateIdempotent(t *testing.T) {
	t.Parallel()
	f := csvline.NewLineFormat()
	f.SetColumns(4)
	first := f.Template()
	assert.Equal(t, first, f.Template())
	assert.Equal(t, first, f.Template())
}

func TestTemplateRebuildsAfterChange(t *testing.T) {
	t.Parallel()
	f := csvline.NewLineFormat()
	f.SetColumns(2)
	f.SetLineTerminator(csvline.LF)
	assert.Equal(t, "%s,%s\n", f.Template())

	f.SetDelimiter("|")
	assert.Equal(t, "%s|%s\n", f.Template())
}

func TestRejectedValuesNeverAlterTemplate(t *testing.T) {
	t.Parallel()
	f := csvline.NewLineFormat()
	f.SetColumns(2)
	f.SetLineTerminator(csvline.LF)
	before := f.Template()

	f.SetColumns(0)
	f.SetDelimiter("")
	f.SetLineTerminator("bogus")
	assert.Equal(t, before, f.Template())
}

func TestLineFormatString(t *testing.T) {
	t.Parallel()
	f := csvline.NewLineFormat()
	f.SetLineTerminator(csvline.None)
	assert.Equal(t, "%s", f.String())
}
