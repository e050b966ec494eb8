// Package rusage reports process resource usage for the growth report.
package rusage

import "errors"

// ErrUnsupported is returned on platforms without a peak RSS counter.
var ErrUnsupported = errors.New("rusage: peak RSS not available on this platform")
