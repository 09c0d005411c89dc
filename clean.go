// Package joatpath normalizes file-system paths lexically, without
// touching the file system. Clean applies the classic Plan 9
// cleanname reduction:
//
//  1. Reduce multiple separators to a single separator.
//  2. Eliminate "." path elements (the current directory).
//  3. Eliminate ".." path elements together with the non-"." non-".."
//     element that precedes them.
//  4. Eliminate ".." elements that begin a rooted path (replace "/.."
//     by "/" at the beginning of a path).
//  5. Leave intact ".." elements that begin a non-rooted path.
//
// If the result is an empty string, Clean returns ".". Because the
// transform is purely lexical it never resolves symlinks and never
// checks that a path exists.
package joatpath

import "github.com/rcook/joatpath/internal/dialect"

// Clean normalizes path using the host platform's path rules.
func Clean(path string) string {
	return cleanDialect(hostDialect, path)
}

// CleanUnix normalizes path using Unix path rules: "/" is the only
// separator and a backslash is an ordinary name character.
func CleanUnix(path string) string {
	return cleanDialect(dialect.Unix, path)
}

// CleanWindows normalizes path using Windows path rules: "/" and "\"
// are both accepted as separators and the output uses "\" only.
func CleanWindows(path string) string {
	return cleanDialect(dialect.Windows, path)
}

func cleanDialect(d dialect.Dialect, path string) string {
	if s, ok := specialPath(d, path); ok {
		return s
	}

	rooted := d.StartsWithSeparator(path)
	segments := d.Split(d.TrimTrailing(path))

	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case "":
			// Doubled or boundary separator.
		case ".":
			// A path like ".//" trims to a lone "."; keep it. "."
			// between other segments is dropped.
			if len(segments) == 1 {
				out = append(out, segment)
			}
		case "..":
			switch n := len(out); {
			case n == 0:
				// Relative paths keep leading ".." elements; rooted
				// paths cannot go above the root, so drop them.
				if !rooted {
					out = append(out, segment)
				}
			case !canBacktrack(out[n-1]):
				out = append(out, segment)
			default:
				out = out[:n-1]
			}
		default:
			out = append(out, segment)
		}
	}

	s := d.Join(out)
	if rooted {
		s = d.PrependRoot(s)
	}
	if s == "" {
		return "."
	}
	return s
}

// specialPath handles the inputs the segment walk would mishandle:
// the root path, the empty path, and a bare "." or "..".
func specialPath(d dialect.Dialect, path string) (string, bool) {
	if d.IsExactSeparator(path) {
		return d.Canonical(), true
	}
	switch path {
	case "", ".":
		return ".", true
	case "..":
		return "..", true
	}
	return "", false
}

// canBacktrack reports whether a ".." may cancel segment. Only normal
// name segments cancel; "." and ".." do not.
func canBacktrack(segment string) bool {
	return segment != "." && segment != ".."
}
