package joatpath

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBaseNotAbsolute is returned by AbsolutePath when the supplied
	// base directory is not an absolute path.
	ErrBaseNotAbsolute = errors.New("base directory is not absolute")

	// ErrUnrepresentable is returned by AbsolutePath when a computed
	// path cannot be represented as a host path.
	ErrUnrepresentable = errors.New("path is not representable")
)

// AbsolutePath resolves path to an absolute path relative to baseDir
// (typically the current working directory, supplied by the caller)
// without accessing the file system. baseDir must already be absolute.
// An absolute path overrides baseDir; an empty path yields baseDir
// alone. The result is cleaned with the host platform's path rules.
func AbsolutePath(baseDir, path string) (string, error) {
	d := hostDialect
	if !d.StartsWithSeparator(baseDir) {
		return "", fmt.Errorf("base directory %q: %w", baseDir, ErrBaseNotAbsolute)
	}

	var joined string
	switch {
	case componentCount(path) == 0:
		joined = baseDir
	case d.StartsWithSeparator(path):
		joined = path
	default:
		joined = baseDir + d.Canonical() + path
	}

	// NUL can never appear in a host path.
	if strings.IndexByte(joined, 0) >= 0 {
		return "", fmt.Errorf("path %q: %w", joined, ErrUnrepresentable)
	}

	return cleanDialect(d, joined), nil
}

// componentCount counts path components the way the host represents
// them: a leading separator is the root component, and every non-empty
// segment (including "." and "..") counts as one. Only the empty
// string has zero components.
func componentCount(path string) int {
	n := 0
	if hostDialect.StartsWithSeparator(path) {
		n++
	}
	for _, segment := range hostDialect.Split(path) {
		if segment != "" {
			n++
		}
	}
	return n
}
