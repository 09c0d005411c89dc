// Package dialect defines the separator rules for one family of paths.
// A Dialect is a stateless value; the two variants cover Unix-style
// paths (forward slash only) and Windows-style paths (forward slash or
// backslash accepted, backslash emitted).
package dialect

import "strings"

// Dialect holds the separator rules for a path family.
type Dialect struct {
	canonical byte
	accepted  string
}

var (
	// Unix paths use a single forward slash as the only separator.
	Unix = Dialect{canonical: '/', accepted: "/"}

	// Windows paths accept forward slash or backslash as separators
	// and use backslash when reassembling.
	Windows = Dialect{canonical: '\\', accepted: `\/`}
)

// Canonical returns the separator used when reassembling a path.
func (d Dialect) Canonical() string {
	return string(d.canonical)
}

// IsSeparator reports whether c is a separator byte in this dialect.
func (d Dialect) IsSeparator(c byte) bool {
	return strings.IndexByte(d.accepted, c) >= 0
}

// IsExactSeparator reports whether path consists of exactly one
// separator character, i.e. the root path.
func (d Dialect) IsExactSeparator(path string) bool {
	return len(path) == 1 && d.IsSeparator(path[0])
}

// StartsWithSeparator reports whether path begins with a separator,
// which marks it as rooted.
func (d Dialect) StartsWithSeparator(path string) bool {
	return len(path) > 0 && d.IsSeparator(path[0])
}

// TrimTrailing strips all trailing separator bytes from path.
func (d Dialect) TrimTrailing(path string) string {
	return strings.TrimRight(path, d.accepted)
}

// Split cuts path on every separator byte. Empty substrings from
// leading, trailing, or doubled separators are kept; the cleaner
// relies on them to recognize separator boundaries.
func (d Dialect) Split(path string) []string {
	var segments []string
	start := 0
	for i := 0; i < len(path); i++ {
		if d.IsSeparator(path[i]) {
			segments = append(segments, path[start:i])
			start = i + 1
		}
	}
	return append(segments, path[start:])
}

// Join concatenates segments with exactly one canonical separator
// between them. Zero segments join to the empty string.
func (d Dialect) Join(segments []string) string {
	return strings.Join(segments, d.Canonical())
}

// PrependRoot prefixes s with one canonical separator.
func (d Dialect) PrependRoot(s string) string {
	return d.Canonical() + s
}
