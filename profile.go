package csvline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile reports a profile that failed validation.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile is a Writer configuration loadable from a YAML document:
//
//	columns: 3
//	delimiter: "\t"
//	line_terminator: lf
//
// The line terminator may be one of the tokens "lf", "crlf", "cr", or
// "none", or the literal sequence. Zero values leave the corresponding
// Writer default in place.
type Profile struct {
	Columns        int    `yaml:"columns"`
	Delimiter      string `yaml:"delimiter"`
	LineTerminator string `yaml:"line_terminator"`
}

// ParseProfile parses and validates a YAML profile.
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("%w: %s", ErrInvalidProfile, err)
	}
	if err := p.validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// LoadProfile reads and parses a YAML profile from a file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	return ParseProfile(data)
}

// Options converts the profile into construction options for [Open] or
// [NewWriter]. Unset or unrecognized fields are skipped, leaving the
// corresponding Writer default in place.
func (p Profile) Options() []Option {
	var opts []Option
	if p.Columns > 0 {
		opts = append(opts, WithColumns(p.Columns))
	}
	if p.Delimiter != "" {
		opts = append(opts, WithDelimiter(p.Delimiter))
	}
	if term, ok := parseLineTerminator(p.LineTerminator); ok {
		opts = append(opts, WithLineTerminator(term))
	}
	return opts
}

func (p Profile) validate() error {
	if p.Columns < 0 {
		return fmt.Errorf("%w: columns must not be negative, got %d", ErrInvalidProfile, p.Columns)
	}
	if p.LineTerminator != "" {
		if _, ok := parseLineTerminator(p.LineTerminator); !ok {
			return fmt.Errorf("%w: unknown line terminator %q", ErrInvalidProfile, p.LineTerminator)
		}
	}
	return nil
}

func parseLineTerminator(s string) (string, bool) {
	switch strings.ToLower(s) {
	case "lf", LF:
		return LF, true
	case "crlf", CRLF:
		return CRLF, true
	case "cr", CR:
		return CR, true
	case "none":
		return None, true
	}
	return "", false
}
