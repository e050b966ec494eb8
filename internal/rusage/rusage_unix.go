//go:build linux || freebsd

package rusage

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// PeakRSS returns the largest resident set size of the process in bytes.
//
// Linux and FreeBSD report ru_maxrss in kilobytes.
func PeakRSS() (int64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, fmt.Errorf("getrusage: %w", err)
	}
	return int64(ru.Maxrss) * 1024, nil
}
