// Package csvline writes delimited text (CSV-style) lines to files.
//
// The package formats a sequence of string columns into a single line using
// a configurable delimiter and line terminator, and appends that line to the
// output through a buffered stream. It is a writer only: there is no
// parsing, no quoting, and no escaping of delimiter or terminator sequences
// that appear inside a column value. For a line with columns c1..cN,
// delimiter d, and terminator t, the output is exactly
//
//	c1 d c2 d ... d cN t
//
// # Writing
//
// [Open] creates or truncates a file; [WithAppend] appends instead. The
// file does not need to exist beforehand: [ErrNotFound] is returned only
// when it cannot be created, such as when the parent directory is missing.
// [NewWriter] wraps any [io.Writer]. Each [Writer.Write] call takes one
// string per column and fails with [ErrInvalidArgument] if the count does
// not match the configured column count:
//
//	w, err := csvline.Open("out.csv", csvline.WithColumns(3))
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.Write("a", "b", "c"); err != nil {
//		return err
//	}
//
// # Line format
//
// [LineFormat] holds the column count, delimiter, and line terminator, and
// caches the derived line template, rebuilding it lazily after a
// configuration change. [Writer.Format] exposes it for reconfiguration
// between writes:
//
//	w.Format().SetDelimiter("; ")
//	w.Format().SetLineTerminator(csvline.CRLF)
//
// Setters silently ignore invalid values (a column count below 1, an empty
// delimiter, or a terminator outside [LF], [CRLF], [CR], and [None]) and
// keep the last accepted configuration. The default terminator is the
// platform's native line ending.
//
// # Profiles
//
// Writer settings can be loaded from a YAML document with [LoadProfile] or
// [ParseProfile] and passed to a constructor via [Profile.Options]:
//
//	p, err := csvline.LoadProfile("format.yaml")
//	if err != nil {
//		return err
//	}
//	w, err := csvline.Open("out.csv", p.Options()...)
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidArgument] — blank path, directory target, or column-count
//     mismatch
//   - [ErrNotFound] — the output file cannot be created
//   - [ErrClosed] — write or flush after Close
//   - [ErrInvalidProfile] — malformed or invalid profile document
//
// Underlying I/O errors are returned unwrapped; the first one encountered is
// latched and returned by all subsequent writes.
//
// # Concurrency
//
// A [Writer] and its [LineFormat] are not safe for concurrent use without
// external synchronization. The output handle is exclusively owned by one
// Writer for its lifetime.
package csvline
