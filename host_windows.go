//go:build windows

package joatpath

import "github.com/rcook/joatpath/internal/dialect"

// hostDialect selects the path rules matching the build target.
var hostDialect = dialect.Windows
